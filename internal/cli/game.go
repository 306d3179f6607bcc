package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/pig/internal/api/request"
	"github.com/mcoot/pig/internal/api/response"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameRollCmd())
	cmd.AddCommand(newGameHoldCmd())

	return cmd
}

func newGameNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new game, discarding the current one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game
			if err := client.Post(cmd.Context(), "/api/v1/game", nil, &result); err != nil {
				return err
			}
			outputFor(cmd).Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the current game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game
			if err := client.Get(cmd.Context(), "/api/v1/game", &result); err != nil {
				return err
			}
			outputFor(cmd).Print(result)
			return nil
		},
	}
}

func newGameRollCmd() *cobra.Command {
	var animate bool

	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Roll the die for the active player",
		Long: `Roll the die for the active player.

With --animate the server plays a short animation before the roll counts;
the frames are published on the event stream (see 'pig events').`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.RollRequest{Animate: animate}
			out := outputFor(cmd)

			if animate {
				var result response.RollStarted
				if err := client.Post(cmd.Context(), "/api/v1/game/roll", req, &result); err != nil {
					return err
				}
				out.Print(result)
				return nil
			}

			var result response.Game
			if err := client.Post(cmd.Context(), "/api/v1/game/roll", req, &result); err != nil {
				return err
			}
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&animate, "animate", false, "Play the roll animation before the result counts")

	return cmd
}

func newGameHoldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hold",
		Short: "Bank the points at risk and pass the turn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Game
			if err := client.Post(cmd.Context(), "/api/v1/game/hold", nil, &result); err != nil {
				return err
			}
			outputFor(cmd).Print(result)
			return nil
		},
	}
}
