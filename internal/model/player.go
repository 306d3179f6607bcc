package model

// PlayerID identifies one of the two fixed player slots
type PlayerID string

const (
	PlayerOne PlayerID = "one"
	PlayerTwo PlayerID = "two"
)

// Seat is an index into the engine's fixed two-element player list
type Seat int

const (
	SeatOne Seat = 0
	SeatTwo Seat = 1
)

// SeatCount is the number of seats at a Pig table
const SeatCount = 2

// Seats returns both seats in turn order
func Seats() []Seat {
	return []Seat{SeatOne, SeatTwo}
}

// Other returns the opposing seat
func (s Seat) Other() Seat {
	if s == SeatOne {
		return SeatTwo
	}
	return SeatOne
}

// IsValid returns true for SeatOne and SeatTwo
func (s Seat) IsValid() bool {
	return s == SeatOne || s == SeatTwo
}

// PlayerID returns the fixed player slot sitting in this seat
func (s Seat) PlayerID() PlayerID {
	if s == SeatTwo {
		return PlayerTwo
	}
	return PlayerOne
}

// Player represents one of the two participants and their banked score
type Player struct {
	ID          PlayerID
	Name        string
	TotalPoints int // Banked points, never decreases within a game
}

// NewPlayer creates a player with no banked points
func NewPlayer(id PlayerID, name string) *Player {
	return &Player{
		ID:   id,
		Name: name,
	}
}

// ResetTotalPoints clears the banked score for a new game
func (p *Player) ResetTotalPoints() {
	p.TotalPoints = 0
}

// Bank adds points to the banked total. Negative amounts are ignored.
func (p *Player) Bank(points int) {
	if points <= 0 {
		return
	}
	p.TotalPoints += points
}

// HasWon reports whether the banked total has reached the winning score
func (p *Player) HasWon() bool {
	return p.TotalPoints >= WinningScore
}
