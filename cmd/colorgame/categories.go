package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-game/internal/catalog"
	"github.com/vovakirdan/color-game/internal/game"
	"github.com/vovakirdan/color-game/internal/palette"
)

func newCategoriesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show the category catalog",
		Long: `Shows every category with the accepted items for each color.

Examples:
  colorgame categories
  colorgame categories --catalog ./gems.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCategories(cmd, opts)
		},
	}
}

func runCategories(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveSettings(cmd, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	theme := palette.ForWriter(out, cfg.Color.Enabled(isTerminal(out)))

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return err
	}
	if err := catalog.Validate(cat, theme.Colors); err != nil {
		return err
	}

	fmt.Fprintln(out, "Categories:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, game.RenderCatalog(theme, cat))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'colorgame' to play.")
	return nil
}
