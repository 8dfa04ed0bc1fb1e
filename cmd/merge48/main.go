// merge48 is a terminal sliding-tile puzzle with selectable board sizes.
//
// Usage:
//
//	merge48 list               - List available board variants
//	merge48 play [variant]     - Play a board directly
//	merge48 menu               - Start menu to pick boards interactively
//	merge48 serve              - Start SSH server for remote play
//	merge48 scores [variant]   - Show high scores for a board
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible boards
//	--db <path>      - Set database path (default: ~/.merge48/scores.db)
//	--config <path>  - Path to a variant config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/merge48/merge48/internal/config"
	"github.com/merge48/merge48/internal/tilegame"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "merge48",
	Short: "merge48 - Slide and merge tiles in your terminal",
	Long: `merge48 is a terminal puzzle where you slide numbered tiles and merge
equal pairs, on boards from 3x3 up to whatever fits your screen.

Available commands:
  list     - Show all registered board variants
  play     - Play a board directly
  menu     - Interactive board picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  merge48 list
  merge48 play classic
  merge48 play --size 8
  merge48 menu
  merge48 serve --addr :2222
  merge48 scores classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.merge48/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to variant config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// applyConfig loads the variant config file and registers the user
// variants it defines on top of the built-ins. A broken explicit
// --config path is fatal; problems with discovered files only warn.
func applyConfig() config.Config {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		if flagConfigPath != "" {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		cfg = config.DefaultConfig()
	}

	for _, v := range cfg.Variants {
		if regErr := tilegame.RegisterVariant(v); regErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping variant %q: %v\n", v.ID, regErr)
		}
	}

	return cfg
}
