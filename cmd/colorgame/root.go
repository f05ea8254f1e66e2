package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// options holds the raw global flag values.
type options struct {
	configPath string
	catalog    string
	color      string
	clear      string
	seed       int64
	logLevel   string
	logFile    string
}

func newRootCmd(opts *options) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("COLORGAME")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "colorgame",
		Short: "What Color Do You Choose? - a two-player terminal trivia game",
		Long: `Two players take turns picking a color and naming an item of that
color in a randomly chosen category. Each correct answer is worth one
point. After 3 rounds the player with more points wins.

Examples:
  colorgame
  colorgame --seed 42 --color never
  colorgame --catalog ./gems.toml
  colorgame categories`,
		Args:    cobra.NoArgs,
		Version: releaseVersion,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, opts)
		},
	}

	fs := cmd.PersistentFlags()
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVar(&opts.configPath, "config", "", "path to settings YAML (env: COLORGAME_CONFIG)")
	fs.StringVar(&opts.catalog, "catalog", "", "path to a custom category catalog (env: COLORGAME_CATALOG)")
	fs.StringVar(&opts.color, "color", "auto", "colored output: auto, always, never (env: COLORGAME_COLOR)")
	fs.StringVar(&opts.clear, "clear", "auto", "clear screen between sections: auto, always, never (env: COLORGAME_CLEAR)")
	fs.Int64Var(&opts.seed, "seed", 0, "RNG seed, 0 = random based on time (env: COLORGAME_SEED)")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error (env: COLORGAME_LOG_LEVEL)")
	fs.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr (env: COLORGAME_LOG_FILE)")

	// Environment values are applied as flag values; a bad one fails the
	// command before it runs.
	var envErr error
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			if err := fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
				envErr = errors.Join(envErr, fmt.Errorf("invalid %s: %w", envName(f.Name), err))
			}
		}
	})
	cmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return envErr
	}

	cmd.AddCommand(newPlayCmd(opts))
	cmd.AddCommand(newCategoriesCmd(opts))

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetVersionTemplate("colorgame v{{.Version}}\n")
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}

// envName returns the environment variable bound to a flag.
func envName(flag string) string {
	return "COLORGAME_" + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}
