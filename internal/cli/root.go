package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "pig",
		Short: "CLI tool for the Pig dice game",
		Long: `pig is a CLI tool for the Pig dice game.

It drives a pig server's JSON API (game, log, events, health) or runs a
local hot-seat game in the terminal (play).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch cfg.Output {
			case "text", "json":
			default:
				return fmt.Errorf("unknown output format %q (want text or json)", cfg.Output)
			}

			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: PIG_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: PIG_OUTPUT)")

	// Add subcommands
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newEventsCmd())
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newPlayCmd())

	return rootCmd
}

// outputFor formats results onto the command's output streams
func outputFor(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// Execute runs the root command
func Execute() {
	if err := execute(NewRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs cmd, reporting any error in the configured output format
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		outputFor(cmd).PrintError(err)
	}
	return err
}
