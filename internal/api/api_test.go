package api_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pig/internal/api/apierr"
	"github.com/mcoot/pig/internal/api/response"
	"github.com/mcoot/pig/internal/factory"
	"github.com/mcoot/pig/internal/model"
)

// testServer wraps a router backed by mocked dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	t.Cleanup(app.Close)

	return &testServer{
		handler: app.Router(),
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decodeGame(t *testing.T, rr *httptest.ResponseRecorder) response.Game {
	t.Helper()
	var g response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &g))
	return g
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierr.APIError {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"ok"`)
}

func TestGetGameBeforeStart(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/game", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	g := decodeGame(t, rr)
	assert.Equal(t, "not_started", g.State)
	assert.False(t, g.CanRoll)
	assert.False(t, g.CanHold)
	require.Len(t, g.Players, 2)
	assert.Equal(t, "Player One", g.Players[0].Name)
	assert.Equal(t, "Player Two", g.Players[1].Name)
}

func TestRollBeforeStartIsConflict(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/api/v1/game/roll", "/api/v1/game/hold"} {
		rr := ts.request(http.MethodPost, path, nil)
		assert.Equal(t, http.StatusConflict, rr.Code, path)
		assert.Equal(t, apierr.CodeGameNotStarted, decodeError(t, rr).Code, path)
	}
}

func TestPlayTurn(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/game", nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	g := decodeGame(t, rr)
	assert.Equal(t, "awaiting_roll", g.State)
	assert.Equal(t, "one", g.ActivePlayer)
	assert.True(t, g.CanRoll)

	ts.app.QueueDice(model.DieThree, model.DieFour)
	ts.request(http.MethodPost, "/api/v1/game/roll", nil)
	rr = ts.request(http.MethodPost, "/api/v1/game/roll", map[string]bool{"animate": false})
	require.Equal(t, http.StatusOK, rr.Code)
	g = decodeGame(t, rr)
	assert.Equal(t, 7, g.PointsRolled)
	assert.Equal(t, 4, g.LastDie)
	assert.Equal(t, 2, g.Players[0].RollCount)

	rr = ts.request(http.MethodPost, "/api/v1/game/hold", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	g = decodeGame(t, rr)
	assert.Equal(t, 7, g.Players[0].TotalPoints)
	assert.Equal(t, 0, g.PointsRolled)
	assert.Equal(t, "two", g.ActivePlayer)
	assert.Nil(t, g.Winner)
}

func TestRollWithInvalidBody(t *testing.T) {
	ts := newTestServer(t)
	ts.request(http.MethodPost, "/api/v1/game", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/game/roll", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rr).Code)
}

func TestAnimatedRoll(t *testing.T) {
	ts := newTestServer(t)
	ts.request(http.MethodPost, "/api/v1/game", nil)

	ts.app.QueueAnimatedRoll(model.DieSix, model.DieFive, model.DieFour, model.DieThree, model.DieTwo, model.DieFive)
	rr := ts.request(http.MethodPost, "/api/v1/game/roll", map[string]bool{"animate": true})
	require.Equal(t, http.StatusAccepted, rr.Code)

	var started response.RollStarted
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &started))
	assert.Equal(t, 6, started.Frames)
	assert.Equal(t, int64(150), started.FrameIntervalMS)
	assert.True(t, started.Game.RollPending)
	assert.False(t, started.Game.CanHold)

	require.NoError(t, ts.app.Table.Wait(context.Background()))

	g := decodeGame(t, ts.request(http.MethodGet, "/api/v1/game", nil))
	assert.False(t, g.RollPending)
	assert.Equal(t, 5, g.PointsRolled)
}

func TestGameOverIsConflict(t *testing.T) {
	ts := newTestServer(t)
	ts.request(http.MethodPost, "/api/v1/game", nil)

	for i := 0; i < 17; i++ {
		ts.app.QueueDice(model.DieSix)
		require.Equal(t, http.StatusOK, ts.request(http.MethodPost, "/api/v1/game/roll", nil).Code)
	}
	rr := ts.request(http.MethodPost, "/api/v1/game/hold", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	g := decodeGame(t, rr)
	assert.Equal(t, "game_over", g.State)
	require.NotNil(t, g.Winner)
	assert.Equal(t, "one", *g.Winner)

	rr = ts.request(http.MethodPost, "/api/v1/game/roll", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeGameOver, decodeError(t, rr).Code)
}

func TestEventLog(t *testing.T) {
	ts := newTestServer(t)
	ts.request(http.MethodPost, "/api/v1/game", nil)
	ts.app.QueueDice(model.DieOne)
	ts.request(http.MethodPost, "/api/v1/game/roll", nil)

	rr := ts.request(http.MethodGet, "/api/v1/game/log?since=3", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var log response.EventLog
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &log))
	assert.Equal(t, 7, log.LastSeq)

	var types []string
	for _, e := range log.Events {
		types = append(types, e.Type)
	}
	assert.Equal(t, []string{"die_shown", "game_log", "turn_will_change", "points_rolled"}, types)

	rr = ts.request(http.MethodGet, "/api/v1/game/log", nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &log))
	assert.Len(t, log.Events, 7)
}

func TestEventLogRejectsBadSince(t *testing.T) {
	ts := newTestServer(t)

	for _, q := range []string{"abc", "-2"} {
		rr := ts.request(http.MethodGet, "/api/v1/game/log?since="+q, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code, q)
	}
}

func TestEventStreamReplaysAndStreams(t *testing.T) {
	ts := newTestServer(t)
	ts.request(http.MethodPost, "/api/v1/game", nil)

	srv := httptest.NewServer(ts.handler)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/game/events?since=2", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEvent := func() string {
		var lines []string
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if line == "\n" {
				return strings.Join(lines, "")
			}
			lines = append(lines, line)
		}
	}

	assert.Contains(t, readEvent(), "event: connected")

	replayed := readEvent()
	assert.Contains(t, replayed, "id: 3\n")
	assert.Contains(t, replayed, "event: game_log\n")

	// Live events follow once the stream is registered
	require.Eventually(t, func() bool { return ts.app.Hub.ClientCount() == 1 }, time.Second, time.Millisecond)
	ts.app.QueueDice(model.DieFive)
	ts.request(http.MethodPost, "/api/v1/game/roll", nil)

	live := readEvent()
	assert.Contains(t, live, "id: 4\n")
	assert.Contains(t, live, "event: die_shown\n")
	assert.Contains(t, live, `"face":5`)
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)
	rr := ts.request(http.MethodDelete, "/api/v1/game", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
