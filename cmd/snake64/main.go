// snake64 is a terminal remake of the classic bordered-grid snake
// game: steer the snake with arrow keys or WASD, eat hearts to grow
// and speed up, pause with the action key.
//
// Flags:
//
//	--fps <rate>        - Frame rate (default from config, 50)
//	--seed <value>      - RNG seed for reproducible sessions (0 = clock)
//	--config <path>     - Path to a custom tuning YAML
//	--controls <scheme> - "arrows" or "wasd" to skip the splash screen
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagControls string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake64",
	Short: "Classic snake for your terminal",
	Long: `snake64 is a faithful terminal remake of a classic 8-bit snake game
on a 40x25 character playfield.

Eat hearts to grow the snake and raise your score; the game speeds up
as you grow. Crashing into the border or your own body ends the run.

Controls are chosen on the title screen:
  Enter - arrow keys
  Space - WASD

In game:
  Space/Enter - pause and resume
  Q/Ctrl+C    - quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config value)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = seed from clock)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.Flags().StringVar(&flagControls, "controls", "", `Control scheme: "arrows" or "wasd" (skips the splash)`)
}
