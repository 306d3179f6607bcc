package game

import (
	"context"
	"time"

	"github.com/mcoot/pig/internal/dependencies/clock"
	"github.com/mcoot/pig/internal/dependencies/random"
	"github.com/mcoot/pig/internal/model"
)

// Animated roll settings
const (
	MinRollFrames        = 5
	MaxRollFrames        = 10
	DefaultFrameInterval = 150 * time.Millisecond
)

// PendingRoll is an animated roll whose faces are drawn up front.
// Only the final face counts; the game changes once, when Resolve is called.
type PendingRoll struct {
	engine   *Engine
	faces    []model.Die
	interval time.Duration
	resolved bool
	err      error
	done     chan struct{}
}

// StartRoll draws an animated roll for the active player.
// Until the roll is resolved the engine rejects Roll, StartRoll and Hold.
func (e *Engine) StartRoll() (*PendingRoll, error) {
	if err := e.checkCanAct("start_roll"); err != nil {
		return nil, err
	}

	faces := make([]model.Die, random.Between(e.random, MinRollFrames, MaxRollFrames))
	for i := range faces {
		face, err := e.draw()
		if err != nil {
			return nil, err
		}
		faces[i] = face
	}

	roll := &PendingRoll{
		engine:   e,
		faces:    faces,
		interval: e.interval,
		done:     make(chan struct{}),
	}
	e.pending = roll
	return roll, nil
}

// Faces returns every face of the animation; the last one is the result
func (r *PendingRoll) Faces() []model.Die {
	out := make([]model.Die, len(r.faces))
	copy(out, r.faces)
	return out
}

// Final returns the face that decides the roll
func (r *PendingRoll) Final() model.Die {
	return r.faces[len(r.faces)-1]
}

// Interval returns the pause between frames
func (r *PendingRoll) Interval() time.Duration {
	return r.interval
}

// Done is closed once the roll has been resolved
func (r *PendingRoll) Done() <-chan struct{} {
	return r.done
}

// Err returns the resolution result once Done is closed
func (r *PendingRoll) Err() error {
	return r.err
}

// Resolve applies the final face to the game. Only the first call has any effect;
// a roll abandoned by BeginNewGame resolves to ErrStaleRoll without touching state.
func (r *PendingRoll) Resolve() error {
	if r.resolved {
		return model.ErrRollResolved
	}
	r.resolved = true
	defer close(r.done)

	e := r.engine
	if e.pending != r {
		r.err = model.ErrStaleRoll
		return r.err
	}

	e.pending = nil
	e.resolveRoll(r.Final())
	return nil
}

// PlayFrames passes every face except the last to show, waiting Interval after each.
// A cancelled context skips the remaining frames.
func (r *PendingRoll) PlayFrames(ctx context.Context, clk clock.Clock, show func(frame int, face model.Die)) {
	frames := r.faces[:len(r.faces)-1]
	for i, face := range frames {
		if ctx.Err() != nil {
			return
		}
		show(i, face)
		select {
		case <-ctx.Done():
			return
		case <-clk.After(r.interval):
		}
	}
}

// Play runs the animation and then resolves the roll. The roll is resolved even
// when ctx is cancelled part way through.
func (r *PendingRoll) Play(ctx context.Context, clk clock.Clock, show func(frame int, face model.Die)) error {
	r.PlayFrames(ctx, clk, show)
	return r.Resolve()
}
