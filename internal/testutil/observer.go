package testutil

import (
	"fmt"

	"github.com/mcoot/pig/internal/model"
)

// Notification kinds recorded by Recorder
const (
	KindDie    = "die"
	KindPoints = "points"
	KindScore  = "score"
	KindTurn   = "turn"
	KindLog    = "log"
	KindWon    = "won"
)

// Notification is one recorded engine callback
type Notification struct {
	Kind    string
	Face    model.Die
	Points  int
	Player  model.Player
	Text    string
	Title   string
	Message string
	Action  string
}

// String renders the notification compactly for assertions
func (n Notification) String() string {
	switch n.Kind {
	case KindDie:
		return fmt.Sprintf("die:%d", n.Face)
	case KindPoints:
		return fmt.Sprintf("points:%d", n.Points)
	case KindScore:
		return fmt.Sprintf("score:%s=%d", n.Player.ID, n.Player.TotalPoints)
	case KindTurn:
		return fmt.Sprintf("turn:%s", n.Player.ID)
	case KindLog:
		return "log"
	case KindWon:
		return "won"
	default:
		return n.Kind
	}
}

// Recorder is an engine observer that keeps every notification in order.
// It satisfies game.Observer.
type Recorder struct {
	Notifications []Notification
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) DieShown(face model.Die) {
	r.Notifications = append(r.Notifications, Notification{Kind: KindDie, Face: face})
}

func (r *Recorder) PointsRolledChanged(pointsRolled int) {
	r.Notifications = append(r.Notifications, Notification{Kind: KindPoints, Points: pointsRolled})
}

func (r *Recorder) PlayerScoreChanged(player model.Player) {
	r.Notifications = append(r.Notifications, Notification{Kind: KindScore, Player: player})
}

func (r *Recorder) TurnWillChange(next model.Player) {
	r.Notifications = append(r.Notifications, Notification{Kind: KindTurn, Player: next})
}

func (r *Recorder) GameLogUpdated(text string) {
	r.Notifications = append(r.Notifications, Notification{Kind: KindLog, Text: text})
}

func (r *Recorder) GameWon(title, message, actionLabel string) {
	r.Notifications = append(r.Notifications, Notification{Kind: KindWon, Title: title, Message: message, Action: actionLabel})
}

// Sequence returns the String form of every notification
func (r *Recorder) Sequence() []string {
	out := make([]string, len(r.Notifications))
	for i, n := range r.Notifications {
		out[i] = n.String()
	}
	return out
}

// OfKind returns the notifications of one kind in order
func (r *Recorder) OfKind(kind string) []Notification {
	var out []Notification
	for _, n := range r.Notifications {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// LastLog returns the most recent game log text, or "" if none
func (r *Recorder) LastLog() string {
	logs := r.OfKind(KindLog)
	if len(logs) == 0 {
		return ""
	}
	return logs[len(logs)-1].Text
}

// Reset discards all recorded notifications
func (r *Recorder) Reset() {
	r.Notifications = nil
}
