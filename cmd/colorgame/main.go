// colorgame is a two-player terminal trivia game: pick a color, then name
// an item of that color in a randomly chosen category.
//
// Usage:
//
//	colorgame                 - Play a game (same as 'colorgame play')
//	colorgame play            - Play a game
//	colorgame categories      - Show the category catalog
//
// Global flags (env: COLORGAME_<FLAG>):
//
//	--config <path>     - Settings file (default search: ~/.colorgame/config.yaml, ./configs/colorgame.yaml)
//	--catalog <path>    - Custom category catalog (.yaml, .yml, .toml)
//	--color <mode>      - auto, always, never
//	--clear <mode>      - Clear screen between sections: auto, always, never
//	--seed <value>      - RNG seed for category draws (0 = time-based)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"
)

const releaseVersion = "0.1.0"

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
