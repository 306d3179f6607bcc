package response

import (
	"time"

	"github.com/mcoot/pig/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TotalPoints int    `json:"total_points"`
	RollCount   int    `json:"roll_count,omitempty"`
}

// Game represents the table's game state
type Game struct {
	State        string   `json:"state"`
	Players      []Player `json:"players"`
	ActivePlayer string   `json:"active_player"`
	PointsRolled int      `json:"points_rolled"`
	LastDie      int      `json:"last_die,omitempty"`
	Winner       *string  `json:"winner"`
	RollPending  bool     `json:"roll_pending"`
	CanRoll      bool     `json:"can_roll"`
	CanHold      bool     `json:"can_hold"`
}

// GameFromSnapshot converts a model.GameSnapshot to a response Game
func GameFromSnapshot(s model.GameSnapshot) Game {
	players := make([]Player, 0, len(s.Players))
	for _, seat := range model.Seats() {
		p := s.Players[seat]
		players = append(players, Player{
			ID:          string(p.ID),
			Name:        p.Name,
			TotalPoints: p.TotalPoints,
			RollCount:   s.RollCounts[seat],
		})
	}

	var winner *string
	if s.Winner != nil {
		w := string(*s.Winner)
		winner = &w
	}

	return Game{
		State:        string(s.State),
		Players:      players,
		ActivePlayer: string(s.ActivePlayer().ID),
		PointsRolled: s.PointsRolled,
		LastDie:      s.LastDie.Value(),
		Winner:       winner,
		RollPending:  s.RollPending,
		CanRoll:      s.CanRoll(),
		CanHold:      s.CanHold(),
	}
}

// RollStarted is returned when an animated roll begins
type RollStarted struct {
	Frames          int   `json:"frames"`
	FrameIntervalMS int64 `json:"frame_interval_ms"`
	Game            Game  `json:"game"`
}

// Event represents a recorded game event
type Event struct {
	Seq       int       `json:"seq"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// DiePayload is the payload of die_shown and die_frame events
type DiePayload struct {
	Face  int `json:"face"`
	Frame int `json:"frame,omitempty"`
	Of    int `json:"of,omitempty"`
}

// PointsRolledPayload is the payload of points_rolled events
type PointsRolledPayload struct {
	PointsRolled int `json:"points_rolled"`
}

// PlayerPayload is the payload of player_score_changed and turn_will_change events
type PlayerPayload struct {
	Player Player `json:"player"`
}

// GameLogPayload is the payload of game_log events
type GameLogPayload struct {
	Text string `json:"text"`
}

// GameWonPayload is the payload of game_won events
type GameWonPayload struct {
	Title       string `json:"title"`
	Message     string `json:"message"`
	ActionLabel string `json:"action_label"`
}

// EventFromModel converts a model.Event to a response Event
func EventFromModel(e model.Event) Event {
	out := Event{
		Seq:       e.Seq,
		Type:      string(e.Type),
		Timestamp: e.Timestamp,
	}

	switch p := e.Payload.(type) {
	case model.DiePayload:
		out.Payload = DiePayload{Face: p.Face.Value(), Frame: p.Frame, Of: p.Of}
	case model.PointsRolledPayload:
		out.Payload = PointsRolledPayload{PointsRolled: p.PointsRolled}
	case model.PlayerPayload:
		out.Payload = PlayerPayload{Player: Player{
			ID:          string(p.Player.ID),
			Name:        p.Player.Name,
			TotalPoints: p.Player.TotalPoints,
		}}
	case model.GameLogPayload:
		out.Payload = GameLogPayload{Text: p.Text}
	case model.GameWonPayload:
		out.Payload = GameWonPayload{Title: p.Title, Message: p.Message, ActionLabel: p.ActionLabel}
	}
	return out
}

// EventsFromModel converts a slice of events
func EventsFromModel(events []model.Event) []Event {
	out := make([]Event, len(events))
	for i, e := range events {
		out[i] = EventFromModel(e)
	}
	return out
}

// EventLog is the response for the event log endpoint
type EventLog struct {
	Events  []Event `json:"events"`
	LastSeq int     `json:"last_seq"`
}

// Health is the response for the health endpoint
type Health struct {
	Status string `json:"status"`
}
