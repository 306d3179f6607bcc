package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mcoot/pig/internal/i18n"
	"github.com/mcoot/pig/internal/services/game"
	"github.com/mcoot/pig/internal/tui"
)

func newPlayCmd() *cobra.Command {
	var (
		lang          string
		playerOne     string
		playerTwo     string
		frameInterval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a hot-seat game in the terminal",
		Long: `Play Pig on this terminal, two players taking turns at the keyboard.
No server is needed.

Keys: r roll, h hold, n new game, q quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engineCfg := game.DefaultConfig()
			engineCfg.Language = i18n.ParseLanguage(lang)
			engineCfg.PlayerNames[0] = playerOne
			engineCfg.PlayerNames[1] = playerTwo
			engineCfg.FrameInterval = frameInterval

			program := tea.NewProgram(
				tui.New(tui.Options{Engine: engineCfg}),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			_, err := program.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "en", "Language for player names and messages (en, de)")
	cmd.Flags().StringVar(&playerOne, "player-one", "", "Name of the first player")
	cmd.Flags().StringVar(&playerTwo, "player-two", "", "Name of the second player")
	cmd.Flags().DurationVar(&frameInterval, "frame-interval", game.DefaultFrameInterval, "Pause between roll animation frames")

	return cmd
}
