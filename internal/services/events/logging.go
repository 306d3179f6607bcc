package events

import (
	"log/slog"

	"github.com/mcoot/pig/internal/model"
	"github.com/mcoot/pig/internal/services/game"
)

// LoggingObserver writes every engine notification as a debug record
type LoggingObserver struct {
	logger *slog.Logger
}

var _ game.Observer = (*LoggingObserver)(nil)

// NewLoggingObserver creates a LoggingObserver
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	return &LoggingObserver{
		logger: logger.With(slog.String("component", "game-events")),
	}
}

func (o *LoggingObserver) DieShown(face model.Die) {
	o.logger.Debug("die shown", slog.Int("face", face.Value()))
}

func (o *LoggingObserver) PointsRolledChanged(pointsRolled int) {
	o.logger.Debug("points rolled changed", slog.Int("points_rolled", pointsRolled))
}

func (o *LoggingObserver) PlayerScoreChanged(player model.Player) {
	o.logger.Debug("player score changed",
		slog.String("player_id", string(player.ID)),
		slog.Int("total_points", player.TotalPoints))
}

func (o *LoggingObserver) TurnWillChange(next model.Player) {
	o.logger.Debug("turn will change", slog.String("next_player", string(next.ID)))
}

func (o *LoggingObserver) GameLogUpdated(text string) {
	o.logger.Debug("game log updated", slog.String("text", text))
}

func (o *LoggingObserver) GameWon(title, message, _ string) {
	o.logger.Debug("game won", slog.String("title", title), slog.String("message", message))
}
