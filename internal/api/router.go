package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pig/internal/api/handler"
	"github.com/mcoot/pig/internal/api/middleware"
	"github.com/mcoot/pig/internal/api/response"
	"github.com/mcoot/pig/internal/services/table"
	"github.com/mcoot/pig/internal/web/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger *slog.Logger
	Table  *table.Table
	// Hub and Broadcaster serve the event stream; when nil the stream endpoint reports an error
	Hub         *sse.Hub
	Broadcaster *sse.Broadcaster
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.Table, cfg.Hub, cfg.Broadcaster)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	api.HandleFunc("/game", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/game", gameHandler.NewGame).Methods(http.MethodPost)
	api.HandleFunc("/game/roll", gameHandler.Roll).Methods(http.MethodPost)
	api.HandleFunc("/game/hold", gameHandler.Hold).Methods(http.MethodPost)
	api.HandleFunc("/game/log", gameHandler.Log).Methods(http.MethodGet)
	api.HandleFunc("/game/events", gameHandler.Events).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
