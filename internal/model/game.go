package model

// Rules for the standard two-player game
const (
	WinningScore   = 100
	TurnEndingFace = DieOne

	// EmptyHoldAllowed permits holding with nothing at risk, which simply passes the turn
	EmptyHoldAllowed = true
)

// GameState represents the current phase of a game
type GameState string

const (
	GameStateNotStarted   GameState = "not_started"   // Engine created, no game begun
	GameStateAwaitingRoll GameState = "awaiting_roll" // Active player may roll or hold
	GameStateGameOver     GameState = "game_over"     // Someone banked the winning score
)

// GameSnapshot is a read-only copy of the engine state
type GameSnapshot struct {
	State        GameState
	Players      [SeatCount]Player
	ActiveSeat   Seat
	PointsRolled int // At-risk points for the active player
	RollCounts   [SeatCount]int
	LastDie      Die       // 0 until the first resolved roll of a game
	Winner       *PlayerID // nil until GameOver
	RollPending  bool      // An animated roll has been started but not resolved
}

// ActivePlayer returns the player whose turn it is
func (s GameSnapshot) ActivePlayer() Player {
	return s.Players[s.ActiveSeat]
}

// CanRoll reports whether a roll would currently be accepted
func (s GameSnapshot) CanRoll() bool {
	return s.State == GameStateAwaitingRoll && !s.RollPending
}

// CanHold reports whether a hold would currently be accepted
func (s GameSnapshot) CanHold() bool {
	if !s.CanRoll() {
		return false
	}
	return EmptyHoldAllowed || s.PointsRolled > 0
}
