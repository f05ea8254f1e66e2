package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-game/internal/catalog"
	"github.com/vovakirdan/color-game/internal/console"
	"github.com/vovakirdan/color-game/internal/game"
	"github.com/vovakirdan/color-game/internal/palette"
)

func newPlayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a game",
		Long: `Start a two-player game of 'What Color Do You Choose?'.

Each round a category is drawn at random. Each player picks a color
by number and then names an item of that color in the category.
Answers are matched ignoring case and surrounding spaces.

Examples:
  colorgame play
  colorgame play --seed 7
  colorgame play --catalog ./my-categories.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, opts)
		},
	}
}

func runPlay(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveSettings(cmd, opts)
	if err != nil {
		return err
	}

	logger, cleanup, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	tty := isTerminal(out)
	theme := palette.ForWriter(out, cfg.Color.Enabled(tty))

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return err
	}
	if err := catalog.Validate(cat, theme.Colors); err != nil {
		return err
	}
	logger.Debug("catalog loaded", "path", cfg.Catalog, "categories", cat.Len())

	con := console.New(cmd.InOrStdin(), out, console.WithClear(cfg.ClearScreen.Enabled(tty)))
	engine := game.NewEngine(con, cat, theme, game.NewPicker(cfg.Seed), logger)
	session := game.NewSession(engine)

	res, err := session.Run(cmd.Context())
	if err != nil {
		logger.Debug("session aborted", "session", session.ID(), "error", err)
		return fmt.Errorf("game aborted: %w", err)
	}

	logger.Info("game over", "session", res.SessionID, "outcome", res.Outcome, "rounds", len(res.Rounds))
	return nil
}
