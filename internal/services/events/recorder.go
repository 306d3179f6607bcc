// Package events turns engine notifications into sequenced, timestamped events.
package events

import (
	"github.com/mcoot/pig/internal/dependencies/clock"
	"github.com/mcoot/pig/internal/model"
	"github.com/mcoot/pig/internal/services/game"
)

// DefaultHistoryLimit is the number of events kept for replay
const DefaultHistoryLimit = 512

// Sink receives every recorded event in order
type Sink func(model.Event)

// Recorder is a game.Observer that stamps each notification with a sequence
// number and the current time, keeps a bounded history and forwards the event
// to its sink. It is not safe for concurrent use.
type Recorder struct {
	clock   clock.Clock
	sink    Sink
	limit   int
	seq     int
	history []model.Event
}

var _ game.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder. A limit <= 0 uses DefaultHistoryLimit; sink may be nil.
func NewRecorder(clk clock.Clock, limit int, sink Sink) *Recorder {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Recorder{
		clock: clk,
		sink:  sink,
		limit: limit,
	}
}

// Record appends an event of the given type and forwards it to the sink
func (r *Recorder) Record(eventType model.EventType, payload any) model.Event {
	r.seq++
	event := model.Event{
		Seq:       r.seq,
		Type:      eventType,
		Timestamp: r.clock.Now(),
		Payload:   payload,
	}

	r.history = append(r.history, event)
	if over := len(r.history) - r.limit; over > 0 {
		r.history = append(r.history[:0], r.history[over:]...)
	}

	if r.sink != nil {
		r.sink(event)
	}
	return event
}

// Since returns the retained events with a sequence number greater than seq
func (r *Recorder) Since(seq int) []model.Event {
	var out []model.Event
	for _, e := range r.history {
		if e.Seq > seq {
			out = append(out, e)
		}
	}
	return out
}

// LastSeq returns the sequence number of the most recent event, or 0
func (r *Recorder) LastSeq() int {
	return r.seq
}

func (r *Recorder) DieShown(face model.Die) {
	r.Record(model.EventDieShown, model.DiePayload{Face: face})
}

func (r *Recorder) PointsRolledChanged(pointsRolled int) {
	r.Record(model.EventPointsRolled, model.PointsRolledPayload{PointsRolled: pointsRolled})
}

func (r *Recorder) PlayerScoreChanged(player model.Player) {
	r.Record(model.EventPlayerScoreChanged, model.PlayerPayload{Player: player})
}

func (r *Recorder) TurnWillChange(next model.Player) {
	r.Record(model.EventTurnWillChange, model.PlayerPayload{Player: next})
}

func (r *Recorder) GameLogUpdated(text string) {
	r.Record(model.EventGameLog, model.GameLogPayload{Text: text})
}

func (r *Recorder) GameWon(title, message, actionLabel string) {
	r.Record(model.EventGameWon, model.GameWonPayload{
		Title:       title,
		Message:     message,
		ActionLabel: actionLabel,
	})
}
