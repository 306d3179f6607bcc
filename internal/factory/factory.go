package factory

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/mcoot/pig/internal/api"
	"github.com/mcoot/pig/internal/dependencies/clock"
	"github.com/mcoot/pig/internal/dependencies/random"
	"github.com/mcoot/pig/internal/services/game"
	"github.com/mcoot/pig/internal/services/table"
	"github.com/mcoot/pig/internal/web/sse"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Table       *table.Table
	Hub         *sse.Hub
	Broadcaster *sse.Broadcaster

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Engine holds language, player names and frame interval.
	// Zero fields fall back to the engine defaults
	Engine game.Config
	// HistoryLimit is the number of events kept for replay (optional)
	HistoryLimit int
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	return newWithDependencies(cfg, clock.New(), random.New())
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(cfg Config, clk clock.Clock, rnd random.Random) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	hub := sse.NewHub(logger)
	go hub.Run()
	broadcaster := sse.NewBroadcaster(hub, logger)

	tbl := table.New(table.Config{
		Engine:       cfg.Engine,
		HistoryLimit: cfg.HistoryLimit,
	}, clk, rnd, broadcaster.Publish, logger)

	return &App{
		Clock:       clk,
		Random:      rnd,
		Table:       tbl,
		Hub:         hub,
		Broadcaster: broadcaster,
		Logger:      logger,
	}
}

// Router returns the API router for the app
func (a *App) Router() http.Handler {
	return api.NewRouter(api.RouterConfig{
		Logger:      a.Logger,
		Table:       a.Table,
		Hub:         a.Hub,
		Broadcaster: a.Broadcaster,
	})
}

// Close stops animations and disconnects event stream clients
func (a *App) Close() {
	a.Table.Close()
	a.Hub.Close()
}
