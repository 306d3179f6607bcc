// Package tui is a hot-seat terminal front end that drives a local engine.
package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/message"

	"github.com/mcoot/pig/internal/dependencies/random"
	"github.com/mcoot/pig/internal/i18n"
	"github.com/mcoot/pig/internal/model"
	"github.com/mcoot/pig/internal/services/events"
	"github.com/mcoot/pig/internal/services/game"
)

// Options configures a Model
type Options struct {
	Engine game.Config
	Random random.Random // nil uses the crypto source
	Logger *slog.Logger  // nil discards
}

// frameMsg advances an animated roll to the given frame
type frameMsg struct {
	roll  *game.PendingRoll
	frame int
}

// Model is the bubbletea model for one table
type Model struct {
	engine  *game.Engine
	board   *board
	printer *message.Printer

	pending *game.PendingRoll
	frame   int
	err     error
	width   int
}

// New seats both players and begins the first game
func New(opts Options) Model {
	if opts.Random == nil {
		opts.Random = random.New()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	b := &board{active: model.PlayerOne}
	engine := game.NewEngine(opts.Engine, game.Observers{b, events.NewLoggingObserver(opts.Logger)}, opts.Random, opts.Logger)
	for _, seat := range model.Seats() {
		p, _ := engine.Player(seat)
		b.players[seat] = p
	}
	engine.BeginNewGame()

	return Model{
		engine:  engine,
		board:   b,
		printer: i18n.Printer(opts.Engine.Language),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		return m.handleFrame(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "r":
		if !m.canRoll() {
			return m, nil
		}
		roll, err := m.engine.StartRoll()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.pending = roll
		m.frame = 0
		m.board.die = roll.Faces()[0]
		return m, nextFrame(roll, 1)

	case "h":
		if !m.canHold() {
			return m, nil
		}
		m.err = m.engine.Hold()
		return m, nil

	case "n":
		m.pending = nil
		m.err = nil
		m.board.reset()
		m.engine.BeginNewGame()
		return m, nil
	}
	return m, nil
}

func (m Model) handleFrame(msg frameMsg) (tea.Model, tea.Cmd) {
	// Frames of a roll abandoned by a new game are dropped
	if msg.roll != m.pending {
		return m, nil
	}

	faces := msg.roll.Faces()
	if msg.frame < len(faces)-1 {
		m.frame = msg.frame
		m.board.die = faces[msg.frame]
		return m, nextFrame(msg.roll, msg.frame+1)
	}

	m.pending = nil
	m.err = msg.roll.Resolve()
	return m, nil
}

func nextFrame(roll *game.PendingRoll, frame int) tea.Cmd {
	return tea.Tick(roll.Interval(), func(time.Time) tea.Msg {
		return frameMsg{roll: roll, frame: frame}
	})
}

func (m Model) canRoll() bool {
	return m.engine.Snapshot().CanRoll()
}

// canHold additionally requires points at risk
func (m Model) canHold() bool {
	snap := m.engine.Snapshot()
	return snap.CanHold() && snap.PointsRolled > 0
}

func (m Model) View() string {
	sections := []string{titleStyle.Render("Pig"), ""}

	if w := m.board.won; w != nil {
		sections = append(sections,
			bannerStyle.Render(titleStyle.Render(w.title)+"\n"+w.message),
			"",
		)
	}

	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center,
		m.renderDie(),
		"  ",
		riskStyle.Render(fmt.Sprintf("At risk: %d", m.board.pointsRolled)),
	), "")

	for _, p := range m.board.players {
		line := fmt.Sprintf("  %-16s %3d", p.Name, p.TotalPoints)
		if p.ID == m.board.active && m.board.won == nil {
			sections = append(sections, activePlayerStyle.Render("> "+strings.TrimPrefix(line, "  ")))
			continue
		}
		sections = append(sections, playerStyle.Render(line))
	}
	sections = append(sections, "")

	log := logStyle
	if m.width > 0 {
		log = log.Width(m.width)
	}
	for _, line := range m.board.log {
		sections = append(sections, log.Render(line))
	}
	if m.pending != nil {
		active := m.engine.CurrentPlayer()
		sections = append(sections, log.Render(m.printer.Sprintf(i18n.KeyRollPending, active.Name)))
	}
	if m.err != nil {
		sections = append(sections, errorStyle.Render(m.err.Error()))
	}

	sections = append(sections, "", m.renderHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderDie() string {
	style := dieStyle
	if m.pending != nil {
		style = rollingDieStyle
	}
	return style.Render(dieGlyph(m.board.die))
}

func (m Model) renderHelp() string {
	newGame := "new game"
	if w := m.board.won; w != nil {
		newGame = strings.ToLower(w.action)
	}

	keys := []string{
		helpKey("r", "roll", m.canRoll()),
		helpKey("h", "hold", m.canHold()),
		helpKey("n", newGame, true),
		helpKey("q", "quit", true),
	}
	return strings.Join(keys, "  ")
}

func helpKey(key, label string, enabled bool) string {
	text := fmt.Sprintf("[%s] %s", key, label)
	if !enabled {
		return disabledStyle.Render(text)
	}
	return helpStyle.Render(text)
}

// dieGlyph renders a face as its Unicode die symbol followed by its value
func dieGlyph(d model.Die) string {
	if !d.IsValid() {
		return "   "
	}
	return fmt.Sprintf("%c %d", rune(0x2680+d.Value()-1), d.Value())
}
