package game

import "github.com/mcoot/pig/internal/model"

// Observer receives engine notifications synchronously, in emission order.
// Players are passed by value; observers cannot change engine state.
type Observer interface {
	// DieShown reports a drawn face. Presentation only.
	DieShown(face model.Die)
	// PointsRolledChanged reports the active player's at-risk total
	PointsRolledChanged(pointsRolled int)
	// PlayerScoreChanged reports a player's banked total
	PlayerScoreChanged(player model.Player)
	// TurnWillChange fires when the active seat flips, before the new turn is described
	TurnWillChange(next model.Player)
	// GameLogUpdated carries a human-readable status line
	GameLogUpdated(text string)
	// GameWon fires once per game, from Hold, when the winning score is banked
	GameWon(title, message, actionLabel string)
}

// NopObserver ignores every notification
type NopObserver struct{}

var _ Observer = NopObserver{}

func (NopObserver) DieShown(model.Die) {}
func (NopObserver) PointsRolledChanged(int) {}
func (NopObserver) PlayerScoreChanged(model.Player) {}
func (NopObserver) TurnWillChange(model.Player) {}
func (NopObserver) GameLogUpdated(string) {}
func (NopObserver) GameWon(string, string, string) {}

// Observers fans each notification out to every observer in order
type Observers []Observer

var _ Observer = Observers(nil)

func (o Observers) DieShown(face model.Die) {
	for _, obs := range o {
		obs.DieShown(face)
	}
}

func (o Observers) PointsRolledChanged(pointsRolled int) {
	for _, obs := range o {
		obs.PointsRolledChanged(pointsRolled)
	}
}

func (o Observers) PlayerScoreChanged(player model.Player) {
	for _, obs := range o {
		obs.PlayerScoreChanged(player)
	}
}

func (o Observers) TurnWillChange(next model.Player) {
	for _, obs := range o {
		obs.TurnWillChange(next)
	}
}

func (o Observers) GameLogUpdated(text string) {
	for _, obs := range o {
		obs.GameLogUpdated(text)
	}
}

func (o Observers) GameWon(title, message, actionLabel string) {
	for _, obs := range o {
		obs.GameWon(title, message, actionLabel)
	}
}
