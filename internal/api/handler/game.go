package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/mcoot/pig/internal/api/request"
	"github.com/mcoot/pig/internal/api/response"
	"github.com/mcoot/pig/internal/services/table"
	"github.com/mcoot/pig/internal/web/sse"
)

// GameHandler handles the table's game endpoints
type GameHandler struct {
	table       *table.Table
	hub         *sse.Hub
	broadcaster *sse.Broadcaster
}

// NewGameHandler creates a new game handler. hub and broadcaster may be nil, disabling the event stream.
func NewGameHandler(t *table.Table, hub *sse.Hub, broadcaster *sse.Broadcaster) *GameHandler {
	return &GameHandler{
		table:       t,
		hub:         hub,
		broadcaster: broadcaster,
	}
}

// Get handles GET /api/v1/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.GameFromSnapshot(h.table.Snapshot()))
}

// NewGame handles POST /api/v1/game
func (h *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	snap := h.table.NewGame()
	response.JSON(w, http.StatusCreated, response.GameFromSnapshot(snap))
}

// Roll handles POST /api/v1/game/roll
func (h *GameHandler) Roll(w http.ResponseWriter, r *http.Request) {
	var req request.RollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Animate {
		started, err := h.table.StartAnimatedRoll()
		if err != nil {
			WriteError(w, err)
			return
		}
		response.JSON(w, http.StatusAccepted, response.RollStarted{
			Frames:          started.Frames,
			FrameIntervalMS: started.Interval.Milliseconds(),
			Game:            response.GameFromSnapshot(started.Snapshot),
		})
		return
	}

	snap, err := h.table.Roll()
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromSnapshot(snap))
}

// Hold handles POST /api/v1/game/hold
func (h *GameHandler) Hold(w http.ResponseWriter, r *http.Request) {
	snap, err := h.table.Hold()
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromSnapshot(snap))
}

// Log handles GET /api/v1/game/log?since=N
func (h *GameHandler) Log(w http.ResponseWriter, r *http.Request) {
	since, err := parseSince(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	events := h.table.Events(since)
	response.JSON(w, http.StatusOK, response.EventLog{
		Events:  response.EventsFromModel(events),
		LastSeq: h.table.LastSeq(),
	})
}

// Events handles GET /api/v1/game/events, an SSE stream of table events.
// Retained events after ?since=N or the Last-Event-ID header are replayed first.
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil || h.broadcaster == nil {
		WriteError(w, NewInvalidRequestError("event stream is not available"))
		return
	}

	since, err := parseSince(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	if id := r.Header.Get("Last-Event-ID"); id != "" {
		if n, err := strconv.Atoi(id); err == nil {
			since = n
		}
	}

	var backlog [][]byte
	if since >= 0 {
		backlog = h.broadcaster.Backlog(h.table.Events(since))
	}
	sse.ServeSSE(w, r, h.hub, backlog)
}

// parseSince reads the optional since query parameter; -1 means absent
func parseSince(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("since")
	if raw == "" {
		return -1, nil
	}
	since, err := strconv.Atoi(raw)
	if err != nil || since < 0 {
		return 0, NewInvalidRequestError("since must be a non-negative integer")
	}
	return since, nil
}
