package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pig/internal/dependencies/mocks"
	"github.com/mcoot/pig/internal/model"
	"github.com/mcoot/pig/internal/services/game"
	"github.com/mcoot/pig/internal/testutil"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestRecorderSequencesAndStamps(t *testing.T) {
	clk := mocks.NewMockClock(epoch)
	var sunk []model.Event
	rec := NewRecorder(clk, 0, func(e model.Event) { sunk = append(sunk, e) })

	rec.DieShown(model.DieFour)
	clk.Advance(time.Second)
	rec.PointsRolledChanged(4)

	require.Len(t, sunk, 2)
	assert.Equal(t, 1, sunk[0].Seq)
	assert.Equal(t, model.EventDieShown, sunk[0].Type)
	assert.Equal(t, epoch, sunk[0].Timestamp)
	assert.Equal(t, model.DiePayload{Face: model.DieFour}, sunk[0].Payload)

	assert.Equal(t, 2, sunk[1].Seq)
	assert.Equal(t, model.EventPointsRolled, sunk[1].Type)
	assert.Equal(t, epoch.Add(time.Second), sunk[1].Timestamp)
	assert.Equal(t, model.PointsRolledPayload{PointsRolled: 4}, sunk[1].Payload)

	assert.Equal(t, 2, rec.LastSeq())
	assert.Equal(t, sunk, rec.Since(0))
}

func TestRecorderSince(t *testing.T) {
	rec := NewRecorder(mocks.NewMockClock(epoch), 0, nil)
	for i := 0; i < 5; i++ {
		rec.GameLogUpdated("line")
	}

	got := rec.Since(3)
	require.Len(t, got, 2)
	assert.Equal(t, 4, got[0].Seq)
	assert.Equal(t, 5, got[1].Seq)
	assert.Empty(t, rec.Since(5))
}

func TestRecorderHistoryIsBounded(t *testing.T) {
	rec := NewRecorder(mocks.NewMockClock(epoch), 3, nil)
	for i := 0; i < 10; i++ {
		rec.PointsRolledChanged(i)
	}

	got := rec.Since(0)
	require.Len(t, got, 3)
	assert.Equal(t, []int{8, 9, 10}, []int{got[0].Seq, got[1].Seq, got[2].Seq})
	assert.Equal(t, 10, rec.LastSeq())
}

func TestRecorderFollowsEngine(t *testing.T) {
	rec := NewRecorder(mocks.NewMockClock(epoch), 0, nil)
	random := mocks.NewMockRandom()
	engine := game.NewEngine(game.DefaultConfig(), rec, random, testutil.NopLogger())

	engine.BeginNewGame()
	random.QueueDice(model.DieOne)
	require.NoError(t, engine.Roll())

	var types []model.EventType
	for _, e := range rec.Since(0) {
		types = append(types, e.Type)
	}
	assert.Equal(t, []model.EventType{
		model.EventPlayerScoreChanged,
		model.EventPlayerScoreChanged,
		model.EventGameLog,
		model.EventDieShown,
		model.EventGameLog,
		model.EventTurnWillChange,
		model.EventPointsRolled,
	}, types)

	turn := rec.Since(0)[5].Payload.(model.PlayerPayload)
	assert.Equal(t, model.PlayerTwo, turn.Player.ID)
}

func TestRecorderGameWonPayload(t *testing.T) {
	rec := NewRecorder(mocks.NewMockClock(epoch), 0, nil)
	rec.GameWon("Winner!", "msg", "New Game")

	got := rec.Since(0)
	require.Len(t, got, 1)
	e := got[0]
	assert.Equal(t, model.EventGameWon, e.Type)
	assert.Equal(t, model.GameWonPayload{Title: "Winner!", Message: "msg", ActionLabel: "New Game"}, e.Payload)
}

func TestLoggingObserver(t *testing.T) {
	logger, buf := testutil.CaptureLogger()
	obs := NewLoggingObserver(logger)

	obs.PlayerScoreChanged(model.Player{ID: model.PlayerTwo, TotalPoints: 12})
	obs.GameLogUpdated("hello")

	out := buf.String()
	assert.Contains(t, out, `"msg":"player score changed"`)
	assert.Contains(t, out, `"player_id":"two"`)
	assert.Contains(t, out, `"total_points":12`)
	assert.Contains(t, out, `"text":"hello"`)
	assert.Contains(t, out, `"component":"game-events"`)
}
