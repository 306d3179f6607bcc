package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/pig/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.errOut, string(data))
	} else {
		_, _ = fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintEvent outputs one streamed event, as a JSON line in json mode
func (o *Output) PrintEvent(e response.Event) {
	if o.format == "json" {
		data, _ := json.Marshal(e)
		_, _ = fmt.Fprintln(o.out, string(data))
		return
	}
	o.printEvent(e)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Game:
		o.printGame(v)
	case response.RollStarted:
		o.printRollStarted(v)
	case response.EventLog:
		o.printEventLog(v)
	case response.Health:
		o.printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.out, format, args...)
}

func (o *Output) printGame(g response.Game) {
	o.printf("State: %s\n", g.State)
	for _, p := range g.Players {
		marker := " "
		if p.ID == g.ActivePlayer && g.State != "game_over" {
			marker = ">"
		}
		o.printf("%s %s: %d points (%d rolls)\n", marker, p.Name, p.TotalPoints, p.RollCount)
	}

	if g.LastDie != 0 {
		o.printf("Last die: %d\n", g.LastDie)
	}
	o.printf("At risk: %d\n", g.PointsRolled)

	if g.RollPending {
		o.printf("A roll is being resolved\n")
	}
	if g.Winner != nil {
		for _, p := range g.Players {
			if p.ID == *g.Winner {
				o.printf("\nWinner: %s\n", p.Name)
			}
		}
	}
}

func (o *Output) printRollStarted(r response.RollStarted) {
	o.printf("Rolling: %d frames, %dms apart\n", r.Frames, r.FrameIntervalMS)
}

func (o *Output) printEventLog(l response.EventLog) {
	for _, e := range l.Events {
		o.printEvent(e)
	}
	o.printf("Last seq: %d\n", l.LastSeq)
}

func (o *Output) printEvent(e response.Event) {
	o.printf("[%d] %s: %s\n", e.Seq, e.Type, summarize(e.Payload))
}

// summarize flattens a decoded payload into a single display line
func summarize(payload any) string {
	switch p := payload.(type) {
	case nil:
		return ""
	case map[string]any:
		if text, ok := p["text"].(string); ok {
			return strings.ReplaceAll(text, "\n", " ")
		}
		if msg, ok := p["message"].(string); ok {
			return strings.ReplaceAll(msg, "\n", " ")
		}
	}

	data, _ := json.Marshal(payload)
	display := string(data)
	if len(display) > 100 {
		display = display[:100] + "..."
	}
	return display
}
