package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	// Engine notifications
	EventDieShown           EventType = "die_shown"
	EventPointsRolled       EventType = "points_rolled"
	EventPlayerScoreChanged EventType = "player_score_changed"
	EventTurnWillChange     EventType = "turn_will_change"
	EventGameLog            EventType = "game_log"
	EventGameWon            EventType = "game_won"

	// Presentation-only frames of an animated roll
	EventDieFrame EventType = "die_frame"
)

// Event is a recorded engine notification
type Event struct {
	Seq       int // Monotonic per table, starting at 1
	Type      EventType
	Timestamp time.Time
	Payload   any // Type-specific data
}

// DiePayload contains data for die shown and die frame events
type DiePayload struct {
	Face  Die
	Frame int // Zero-based frame index, only set for die frames
	Of    int // Total frames in the animation, only set for die frames
}

// PointsRolledPayload contains the active player's at-risk total
type PointsRolledPayload struct {
	PointsRolled int
}

// PlayerPayload contains a copy of a player for score and turn events
type PlayerPayload struct {
	Player Player
}

// GameLogPayload contains a human-readable status line
type GameLogPayload struct {
	Text string
}

// GameWonPayload contains the winner alert contents
type GameWonPayload struct {
	Title       string
	Message     string
	ActionLabel string
}
