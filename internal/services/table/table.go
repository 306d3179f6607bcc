// Package table hosts the single hot-seat game served by the API.
package table

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/pig/internal/dependencies/clock"
	"github.com/mcoot/pig/internal/dependencies/random"
	"github.com/mcoot/pig/internal/model"
	"github.com/mcoot/pig/internal/services/events"
	"github.com/mcoot/pig/internal/services/game"
)

// Config holds table settings
type Config struct {
	Engine       game.Config
	HistoryLimit int // Events kept for replay; <= 0 uses events.DefaultHistoryLimit
}

// RollStarted describes an animated roll that is now playing
type RollStarted struct {
	Frames   int
	Interval time.Duration
	Snapshot model.GameSnapshot
}

// Table serializes access to one engine, records its notifications as events
// and plays animated rolls in the background.
type Table struct {
	mu       sync.Mutex
	engine   *game.Engine
	recorder *events.Recorder
	clock    clock.Clock
	logger   *slog.Logger

	pending *game.PendingRoll

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a table with no game in progress. Every recorded event is passed to sink.
func New(cfg Config, clk clock.Clock, rnd random.Random, sink events.Sink, logger *slog.Logger) *Table {
	recorder := events.NewRecorder(clk, cfg.HistoryLimit, sink)
	observers := game.Observers{recorder, events.NewLoggingObserver(logger)}

	ctx, cancel := context.WithCancel(context.Background())
	return &Table{
		engine:   game.NewEngine(cfg.Engine, observers, rnd, logger),
		recorder: recorder,
		clock:    clk,
		logger:   logger.With(slog.String("component", "table")),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// NewGame starts a fresh game, abandoning any animated roll in flight
func (t *Table) NewGame() model.GameSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending != nil {
		t.logger.Info("animated roll abandoned by new game")
		t.pending = nil
	}
	t.engine.BeginNewGame()
	return t.engine.Snapshot()
}

// Roll rolls once for the active player
func (t *Table) Roll() (model.GameSnapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.engine.Roll(); err != nil {
		return model.GameSnapshot{}, err
	}
	return t.engine.Snapshot(), nil
}

// StartAnimatedRoll begins an animated roll. Frames are recorded as die_frame
// events at the engine's frame interval; the final face is applied afterwards.
func (t *Table) StartAnimatedRoll() (RollStarted, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	roll, err := t.engine.StartRoll()
	if err != nil {
		return RollStarted{}, err
	}
	t.pending = roll

	t.wg.Add(1)
	go t.play(roll)

	t.logger.Debug("animated roll started", slog.Int("frames", len(roll.Faces())))
	return RollStarted{
		Frames:   len(roll.Faces()),
		Interval: roll.Interval(),
		Snapshot: t.engine.Snapshot(),
	}, nil
}

// play paces the frames of roll and then resolves it under the lock
func (t *Table) play(roll *game.PendingRoll) {
	defer t.wg.Done()

	frames := len(roll.Faces())
	roll.PlayFrames(t.ctx, t.clock, func(frame int, face model.Die) {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.pending != roll {
			return
		}
		t.recorder.Record(model.EventDieFrame, model.DiePayload{Face: face, Frame: frame, Of: frames})
	})

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending == roll {
		t.pending = nil
	}
	if err := roll.Resolve(); err != nil {
		if errors.Is(err, model.ErrStaleRoll) {
			t.logger.Debug("stale animated roll discarded")
			return
		}
		t.logger.Error("animated roll failed", slog.Any("error", err))
	}
}

// Hold banks the active player's points
func (t *Table) Hold() (model.GameSnapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.engine.Hold(); err != nil {
		return model.GameSnapshot{}, err
	}
	return t.engine.Snapshot(), nil
}

// Snapshot returns the current game state
func (t *Table) Snapshot() model.GameSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.engine.Snapshot()
}

// Events returns retained events with a sequence number greater than since
func (t *Table) Events(since int) []model.Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.recorder.Since(since)
}

// LastSeq returns the sequence number of the latest event
func (t *Table) LastSeq() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.recorder.LastSeq()
}

// Wait blocks until the current animated roll, if any, has been resolved
func (t *Table) Wait(ctx context.Context) error {
	t.mu.Lock()
	roll := t.pending
	t.mu.Unlock()
	if roll == nil {
		return nil
	}

	select {
	case <-roll.Done():
		// Resolve closes done while play still holds the lock
		t.mu.Lock()
		defer t.mu.Unlock()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close cuts short any animation, resolving it immediately, and waits for playback to finish
func (t *Table) Close() {
	t.cancel()
	t.wg.Wait()
}
