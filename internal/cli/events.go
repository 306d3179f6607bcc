package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/pig/internal/api/response"
)

func newLogCmd() *cobra.Command {
	var since int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the recorded game events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/game/log"
			if since > 0 {
				path += "?since=" + strconv.Itoa(since)
			}

			var result response.EventLog
			if err := client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}
			outputFor(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&since, "since", 0, "Only show events after this sequence number")

	return cmd
}

func newEventsCmd() *cobra.Command {
	var (
		since int
		count int
	)

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Stream game events",
		Long: `Connect to the game's SSE endpoint and stream events in real-time.

Events include:
  - player_score_changed: A player's banked total changed
  - turn_will_change: The turn is passing to the other player
  - die_frame: An animation frame of an animated roll
  - die_shown: The die has been rolled
  - points_rolled: The points at risk changed
  - game_log: A status line for the players
  - game_won: A player reached the winning score

Press Ctrl+C to disconnect.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return streamEvents(ctx, outputFor(cmd), since, count)
		},
	}

	cmd.Flags().IntVar(&since, "since", -1, "Replay retained events after this sequence number first")
	cmd.Flags().IntVar(&count, "count", 0, "Disconnect after this many events (0 streams until interrupted)")

	return cmd
}

// sseFrame is one parsed server-sent event
type sseFrame struct {
	ID    string
	Event string
	Data  string
}

func streamEvents(ctx context.Context, out *Output, since, count int) error {
	path := "/api/v1/game/events"
	if since >= 0 {
		path += "?since=" + strconv.Itoa(since)
	}

	body, err := client.Stream(ctx, path, nil)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	received := 0
	err = readFrames(body, func(f sseFrame) bool {
		if f.Event == "connected" {
			if out.format != "json" {
				out.printf("Connected to %s\n", cfg.ServerURL)
			}
			return true
		}

		var e response.Event
		if err := json.Unmarshal([]byte(f.Data), &e); err != nil {
			out.PrintError(fmt.Errorf("malformed %s event: %w", f.Event, err))
			return true
		}
		out.PrintEvent(e)

		received++
		return count <= 0 || received < count
	})

	// Context cancellation is expected
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("stream error: %w", err)
	}
	if out.format != "json" {
		out.printf("Disconnected\n")
	}
	return nil
}

// readFrames parses an SSE stream, calling handle for each complete event until it returns false
func readFrames(r io.Reader, handle func(sseFrame) bool) error {
	scanner := bufio.NewScanner(r)
	var current sseFrame
	var dataLines []string

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, ":"):
			// Comment, used for keepalives
		case strings.HasPrefix(line, "id: "):
			current.ID = strings.TrimPrefix(line, "id: ")
		case strings.HasPrefix(line, "event: "):
			current.Event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			dataLines = append(dataLines, strings.TrimPrefix(line, "data: "))
		case line == "":
			if current.Event != "" {
				current.Data = strings.Join(dataLines, "\n")
				if !handle(current) {
					return nil
				}
			}
			current = sseFrame{}
			dataLines = nil
		}
	}
	return scanner.Err()
}
