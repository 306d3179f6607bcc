package model

import "fmt"

// Die is a single six-sided die face
type Die int

const (
	DieOne   Die = 1
	DieTwo   Die = 2
	DieThree Die = 3
	DieFour  Die = 4
	DieFive  Die = 5
	DieSix   Die = 6
)

// DieSides is the number of faces on a die
const DieSides = 6

// AllDice returns every face in ascending order
func AllDice() []Die {
	return []Die{DieOne, DieTwo, DieThree, DieFour, DieFive, DieSix}
}

// DieFromIndex maps a zero-based random index in [0, DieSides) to a face
func DieFromIndex(i int) (Die, error) {
	if i < 0 || i >= DieSides {
		return 0, fmt.Errorf("%w: index %d", ErrInvalidDie, i)
	}
	return Die(i + 1), nil
}

// Value returns the face value in points
func (d Die) Value() int {
	return int(d)
}

// IsValid returns true if the face is in 1..6
func (d Die) IsValid() bool {
	return d >= DieOne && d <= DieSix
}

// EndsTurn returns true if rolling this face forfeits the turn
func (d Die) EndsTurn() bool {
	return d == TurnEndingFace
}
