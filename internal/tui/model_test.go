package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/mcoot/pig/internal/dependencies/mocks"
	"github.com/mcoot/pig/internal/model"
	"github.com/mcoot/pig/internal/services/game"
)

func newTestModel(t *testing.T) (Model, *mocks.MockRandom) {
	t.Helper()
	rnd := mocks.NewMockRandom()
	return New(Options{Engine: game.DefaultConfig(), Random: rnd}), rnd
}

func press(t *testing.T, m Model, r rune) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return next.(Model), cmd
}

// queueRoll queues a five-frame animation ending on final
func queueRoll(rnd *mocks.MockRandom, final model.Die) {
	rnd.QueueIntn(0)
	rnd.QueueDice(model.DieTwo, model.DieThree, model.DieFour, model.DieFive, final)
}

// finishRoll feeds frame messages until the pending roll resolves
func finishRoll(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; m.pending != nil; i++ {
		require.Less(t, i, game.MaxRollFrames, "roll did not resolve")
		next, _ := m.Update(frameMsg{roll: m.pending, frame: m.frame + 1})
		m = next.(Model)
	}
	return m
}

func rollAndFinish(t *testing.T, m Model, rnd *mocks.MockRandom, final model.Die) Model {
	t.Helper()
	queueRoll(rnd, final)
	m, cmd := press(t, m, 'r')
	require.NotNil(t, cmd)
	return finishRoll(t, m)
}

func TestNewBeginsGame(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, model.GameStateAwaitingRoll, m.engine.State())
	assert.Equal(t, model.PlayerOne, m.board.active)
	require.Len(t, m.board.log, 1)
	assert.Contains(t, m.board.log[0], "Welcome to Pig, Player One!")

	view := m.View()
	assert.Contains(t, view, "Player One")
	assert.Contains(t, view, "Player Two")
	assert.Contains(t, view, "At risk: 0")
}

func TestAnimatedRollShowsFramesThenResolves(t *testing.T) {
	m, rnd := newTestModel(t)
	queueRoll(rnd, model.DieSix)

	m, cmd := press(t, m, 'r')
	require.NotNil(t, cmd)
	require.NotNil(t, m.pending)
	assert.Equal(t, model.DieTwo, m.board.die)
	assert.Equal(t, 0, m.board.pointsRolled)
	assert.Contains(t, m.View(), "Player One is rolling...")

	next, cmd := m.Update(frameMsg{roll: m.pending, frame: 1})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, model.DieThree, m.board.die)
	assert.Equal(t, 0, m.board.pointsRolled)

	m = finishRoll(t, m)
	assert.Nil(t, m.pending)
	assert.NoError(t, m.err)
	assert.Equal(t, model.DieSix, m.board.die)
	assert.Equal(t, 6, m.board.pointsRolled)
	assert.Equal(t, 1, m.engine.RollCount(model.SeatOne))
}

func TestKeysIgnoredWhileRolling(t *testing.T) {
	m, rnd := newTestModel(t)
	m = rollAndFinish(t, m, rnd, model.DieSix)
	queueRoll(rnd, model.DieFive)
	m, _ = press(t, m, 'r')
	require.NotNil(t, m.pending)

	before := m.engine.Snapshot()
	m, cmd := press(t, m, 'h')
	assert.Nil(t, cmd)
	m, cmd = press(t, m, 'r')
	assert.Nil(t, cmd)

	after := m.engine.Snapshot()
	assert.Equal(t, 6, after.PointsRolled)
	assert.Equal(t, before.ActiveSeat, after.ActiveSeat)
	assert.True(t, after.RollPending)
	assert.Contains(t, m.View(), "[h] hold")
}

func TestHoldDisabledWithNothingAtRisk(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, 'h')
	assert.Equal(t, model.SeatOne, m.engine.ActiveSeat())
	assert.Len(t, m.board.log, 1)
}

func TestHoldBanksPoints(t *testing.T) {
	m, rnd := newTestModel(t)
	m = rollAndFinish(t, m, rnd, model.DieFour)
	m = rollAndFinish(t, m, rnd, model.DieThree)

	m, _ = press(t, m, 'h')
	assert.Equal(t, 7, m.board.players[model.SeatOne].TotalPoints)
	assert.Equal(t, 0, m.board.pointsRolled)
	assert.Equal(t, model.PlayerTwo, m.board.active)
	assert.Contains(t, m.board.log[len(m.board.log)-1], "Player One holds 7 points.")
}

func TestRollingOneForfeitsTurn(t *testing.T) {
	m, rnd := newTestModel(t)
	m = rollAndFinish(t, m, rnd, model.DieFive)
	m = rollAndFinish(t, m, rnd, model.DieOne)

	assert.Equal(t, 0, m.board.pointsRolled)
	assert.Equal(t, 0, m.board.players[model.SeatOne].TotalPoints)
	assert.Equal(t, model.PlayerTwo, m.board.active)
}

func TestNewGameAbandonsAnimation(t *testing.T) {
	m, rnd := newTestModel(t)
	queueRoll(rnd, model.DieSix)

	m, _ = press(t, m, 'r')
	stale := m.pending
	require.NotNil(t, stale)

	m, _ = press(t, m, 'n')
	assert.Nil(t, m.pending)
	assert.False(t, m.engine.Snapshot().RollPending)

	next, cmd := m.Update(frameMsg{roll: stale, frame: 4})
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.board.pointsRolled)
	assert.Equal(t, model.Die(0), m.board.die)
	assert.Equal(t, 0, m.engine.RollCount(model.SeatOne))
}

func TestWinnerBanner(t *testing.T) {
	m, rnd := newTestModel(t)
	for i := 0; i < 17; i++ {
		m = rollAndFinish(t, m, rnd, model.DieSix)
	}
	m, _ = press(t, m, 'h')

	require.NotNil(t, m.board.won)
	assert.Equal(t, "Winner!", m.board.won.title)
	assert.Equal(t, "Player One,\nyou won with a score of 102 in 17 rolls.", m.board.won.message)
	assert.Equal(t, model.GameStateGameOver, m.engine.State())

	view := m.View()
	assert.Contains(t, view, "Winner!")
	assert.Contains(t, view, "[n] new game")

	// Rolling is refused until a new game starts
	_, cmd := press(t, m, 'r')
	assert.Nil(t, cmd)

	m, _ = press(t, m, 'n')
	assert.Nil(t, m.board.won)
	assert.Equal(t, 0, m.board.players[model.SeatOne].TotalPoints)
	assert.Equal(t, model.PlayerOne, m.board.active)
}

func TestGermanLabels(t *testing.T) {
	rnd := mocks.NewMockRandom()
	cfg := game.DefaultConfig()
	cfg.Language = language.German
	m := New(Options{Engine: cfg, Random: rnd})

	assert.Equal(t, "Spieler Eins", m.board.players[model.SeatOne].Name)
	queueRoll(rnd, model.DieSix)
	m, _ = press(t, m, 'r')
	assert.Contains(t, m.View(), "Spieler Eins")
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	}
}

func TestDieGlyph(t *testing.T) {
	assert.Equal(t, "⚀ 1", dieGlyph(model.DieOne))
	assert.Equal(t, "⚅ 6", dieGlyph(model.DieSix))
	assert.Equal(t, "   ", dieGlyph(0))
}
