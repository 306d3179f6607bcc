package sse

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/mcoot/pig/internal/api/response"
	"github.com/mcoot/pig/internal/model"
)

// Broadcaster publishes table events to SSE clients as JSON
type Broadcaster struct {
	hub    *Hub
	logger *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hub *Hub, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hub:    hub,
		logger: logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// Encode frames an event as an SSE message; the id is the event sequence number
func Encode(e model.Event) ([]byte, error) {
	data, err := json.Marshal(response.EventFromModel(e))
	if err != nil {
		return nil, fmt.Errorf("encode event %d: %w", e.Seq, err)
	}
	return formatSSEMessage(strconv.Itoa(e.Seq), string(e.Type), string(data)), nil
}

// Publish broadcasts one event. It never blocks and can be used as a table event sink.
func (b *Broadcaster) Publish(e model.Event) {
	msg, err := Encode(e)
	if err != nil {
		b.logger.Error("sse failed to encode event",
			slog.Int("seq", e.Seq),
			slog.Any("error", err))
		return
	}
	b.hub.Broadcast(msg)
}

// Backlog encodes events for replay to a newly connected client
func (b *Broadcaster) Backlog(events []model.Event) [][]byte {
	out := make([][]byte, 0, len(events))
	for _, e := range events {
		msg, err := Encode(e)
		if err != nil {
			b.logger.Error("sse failed to encode event",
				slog.Int("seq", e.Seq),
				slog.Any("error", err))
			continue
		}
		out = append(out, msg)
	}
	return out
}
