package game

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mcoot/pig/internal/dependencies/random"
	"github.com/mcoot/pig/internal/i18n"
	"github.com/mcoot/pig/internal/model"
)

// Config holds per-engine settings
type Config struct {
	// Language selects the catalog for log text and default player names
	Language language.Tag
	// PlayerNames overrides the display names; empty entries use the localized defaults
	PlayerNames [model.SeatCount]string
	// FrameInterval is the pause between animated roll frames (default 150ms)
	FrameInterval time.Duration
}

// DefaultConfig returns the default engine configuration
func DefaultConfig() Config {
	return Config{
		Language:      i18n.Default(),
		FrameInterval: DefaultFrameInterval,
	}
}

// Engine runs the Pig rules for two players and reports every change to its Observer.
// It is not safe for concurrent use; callers sharing an engine must serialize access.
type Engine struct {
	players  [model.SeatCount]*model.Player
	observer Observer
	random   random.Random
	printer  *message.Printer
	logger   *slog.Logger
	interval time.Duration

	state        model.GameState
	active       model.Seat
	pointsRolled int
	rollCounts   [model.SeatCount]int
	lastDie      model.Die
	winner       *model.PlayerID
	pending      *PendingRoll
	gamesStarted int
}

// NewEngine creates an engine with both players seated and no game in progress
func NewEngine(cfg Config, observer Observer, random random.Random, logger *slog.Logger) *Engine {
	if observer == nil {
		observer = NopObserver{}
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = DefaultFrameInterval
	}

	printer := i18n.Printer(cfg.Language)
	defaults := [model.SeatCount]string{
		printer.Sprintf(i18n.KeyPlayerOne),
		printer.Sprintf(i18n.KeyPlayerTwo),
	}

	e := &Engine{
		observer: observer,
		random:   random,
		printer:  printer,
		logger:   logger.With(slog.String("component", "engine")),
		interval: cfg.FrameInterval,
		state:    model.GameStateNotStarted,
		active:   model.SeatOne,
	}
	for _, seat := range model.Seats() {
		name := cfg.PlayerNames[seat]
		if name == "" {
			name = defaults[seat]
		}
		e.players[seat] = model.NewPlayer(seat.PlayerID(), name)
	}
	return e
}

// BeginNewGame resets scores, roll counts and turn state and hands the first turn to player one.
// It is valid in every state and abandons any pending animated roll.
func (e *Engine) BeginNewGame() {
	e.pending = nil
	e.pointsRolled = 0
	e.rollCounts = [model.SeatCount]int{}
	e.lastDie = 0
	e.winner = nil
	e.state = model.GameStateAwaitingRoll
	e.gamesStarted++

	for _, p := range e.players {
		p.ResetTotalPoints()
	}
	e.setActive(model.SeatOne)

	for _, p := range e.players {
		e.observer.PlayerScoreChanged(*p)
	}
	e.observer.GameLogUpdated(e.printer.Sprintf(i18n.KeyWelcome, e.current().Name))

	e.logger.Info("game started",
		slog.Int("game", e.gamesStarted),
		slog.String("first_player", e.current().Name),
	)
}

// Roll draws one die for the active player and applies it immediately
func (e *Engine) Roll() error {
	if err := e.checkCanAct("roll"); err != nil {
		return err
	}

	face, err := e.draw()
	if err != nil {
		return err
	}

	e.resolveRoll(face)
	return nil
}

// Hold banks the active player's at-risk points and ends their turn.
// Holding with nothing at risk is allowed and simply passes the turn.
func (e *Engine) Hold() error {
	if err := e.checkCanAct("hold"); err != nil {
		return err
	}
	if !model.EmptyHoldAllowed && e.pointsRolled == 0 {
		return model.ErrNothingAtRisk
	}

	seat := e.active
	holder := e.players[seat]
	held := e.pointsRolled

	holder.Bank(held)
	e.observer.PlayerScoreChanged(*holder)

	e.pointsRolled = 0
	e.setActive(seat.Other())

	if holder.HasWon() {
		e.state = model.GameStateGameOver
		winner := holder.ID
		e.winner = &winner

		e.observer.GameLogUpdated(e.printer.Sprintf(i18n.KeyHasWon, holder.Name))
		e.observer.PointsRolledChanged(e.pointsRolled)
		e.observer.GameWon(
			e.printer.Sprintf(i18n.KeyWinTitle),
			e.printer.Sprintf(i18n.KeyWinMessage, holder.Name, holder.TotalPoints, e.rollCounts[seat]),
			e.printer.Sprintf(i18n.KeyWinAction),
		)

		e.logger.Info("game won",
			slog.String("winner", holder.Name),
			slog.Int("total_points", holder.TotalPoints),
			slog.Int("roll_count", e.rollCounts[seat]),
		)
		return nil
	}

	e.observer.GameLogUpdated(e.printer.Sprintf(i18n.KeyHolds, holder.Name, held, e.current().Name))
	e.observer.PointsRolledChanged(e.pointsRolled)
	return nil
}

// resolveRoll applies one resolved face to the turn state
func (e *Engine) resolveRoll(face model.Die) {
	seat := e.active
	roller := e.players[seat]

	e.rollCounts[seat]++
	e.lastDie = face
	e.observer.DieShown(face)

	if face.EndsTurn() {
		// Only the at-risk points are forfeited; the banked total is untouched
		e.observer.GameLogUpdated(e.printer.Sprintf(i18n.KeyRolledOut, roller.Name, face.Value(), e.next().Name))
		e.pointsRolled = 0
		e.setActive(seat.Other())
		e.observer.PointsRolledChanged(e.pointsRolled)
		return
	}

	e.pointsRolled += face.Value()
	e.observer.GameLogUpdated(e.printer.Sprintf(i18n.KeyRolled, roller.Name, face.Value()))
	e.observer.PointsRolledChanged(e.pointsRolled)
}

// checkCanAct rejects roll and hold outside of AwaitingRoll or while a roll is pending
func (e *Engine) checkCanAct(op string) error {
	var err error
	switch {
	case e.state == model.GameStateNotStarted:
		err = model.ErrGameNotStarted
	case e.state == model.GameStateGameOver:
		err = model.ErrGameOver
	case e.pending != nil:
		err = model.ErrRollPending
	}
	if err != nil {
		e.logger.Warn("operation rejected",
			slog.String("operation", op),
			slog.String("state", string(e.state)),
			slog.String("error", err.Error()),
		)
	}
	return err
}

// draw returns one uniformly random face
func (e *Engine) draw() (model.Die, error) {
	face, err := model.DieFromIndex(e.random.Intn(model.DieSides))
	if err != nil {
		return 0, fmt.Errorf("draw die: %w", err)
	}
	return face, nil
}

// setActive hands the turn to seat, notifying only on an actual flip
func (e *Engine) setActive(seat model.Seat) {
	if seat == e.active {
		return
	}
	e.active = seat
	e.observer.TurnWillChange(*e.players[seat])
}

func (e *Engine) current() *model.Player {
	return e.players[e.active]
}

func (e *Engine) next() *model.Player {
	return e.players[e.active.Other()]
}

// State returns the current game phase
func (e *Engine) State() model.GameState {
	return e.state
}

// ActiveSeat returns the seat whose turn it is
func (e *Engine) ActiveSeat() model.Seat {
	return e.active
}

// CurrentPlayer returns a copy of the active player
func (e *Engine) CurrentPlayer() model.Player {
	return *e.current()
}

// NextPlayer returns a copy of the player who moves after the active one
func (e *Engine) NextPlayer() model.Player {
	return *e.next()
}

// Player returns a copy of the player in the given seat
func (e *Engine) Player(seat model.Seat) (model.Player, error) {
	if !seat.IsValid() {
		return model.Player{}, model.ErrInvalidSeat
	}
	return *e.players[seat], nil
}

// PointsRolled returns the active player's at-risk points
func (e *Engine) PointsRolled() int {
	return e.pointsRolled
}

// RollCount returns the number of resolved rolls for a seat in the current game
func (e *Engine) RollCount(seat model.Seat) int {
	if !seat.IsValid() {
		return 0
	}
	return e.rollCounts[seat]
}

// Winner returns the winning player once the game is over
func (e *Engine) Winner() (model.Player, bool) {
	if e.winner == nil {
		return model.Player{}, false
	}
	for _, p := range e.players {
		if p.ID == *e.winner {
			return *p, true
		}
	}
	return model.Player{}, false
}

// Snapshot returns a copy of the full engine state
func (e *Engine) Snapshot() model.GameSnapshot {
	snap := model.GameSnapshot{
		State:        e.state,
		ActiveSeat:   e.active,
		PointsRolled: e.pointsRolled,
		RollCounts:   e.rollCounts,
		LastDie:      e.lastDie,
		RollPending:  e.pending != nil,
	}
	for _, seat := range model.Seats() {
		snap.Players[seat] = *e.players[seat]
	}
	if e.winner != nil {
		winner := *e.winner
		snap.Winner = &winner
	}
	return snap
}
