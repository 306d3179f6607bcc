package tui

import (
	"github.com/mcoot/pig/internal/model"
	"github.com/mcoot/pig/internal/services/game"
)

// maxLogLines bounds the game log shown under the scores
const maxLogLines = 6

// banner is the winner announcement
type banner struct {
	title   string
	message string
	action  string
}

// board is the table as the players see it, built only from engine notifications
type board struct {
	die          model.Die
	pointsRolled int
	players      [model.SeatCount]model.Player
	active       model.PlayerID
	log          []string
	won          *banner
}

var _ game.Observer = (*board)(nil)

func (b *board) reset() {
	b.die = 0
	b.pointsRolled = 0
	b.log = nil
	b.won = nil
}

func (b *board) DieShown(face model.Die) {
	b.die = face
}

func (b *board) PointsRolledChanged(pointsRolled int) {
	b.pointsRolled = pointsRolled
}

func (b *board) PlayerScoreChanged(player model.Player) {
	for _, seat := range model.Seats() {
		if seat.PlayerID() == player.ID {
			b.players[seat] = player
		}
	}
}

func (b *board) TurnWillChange(next model.Player) {
	b.active = next.ID
}

func (b *board) GameLogUpdated(text string) {
	b.log = append(b.log, text)
	if len(b.log) > maxLogLines {
		b.log = b.log[len(b.log)-maxLogLines:]
	}
}

func (b *board) GameWon(title, message, actionLabel string) {
	b.won = &banner{title: title, message: message, action: actionLabel}
}
