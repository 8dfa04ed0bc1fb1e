package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/merge48/merge48/internal/config"
	"github.com/merge48/merge48/internal/core"
	"github.com/merge48/merge48/internal/platform/tui"
	"github.com/merge48/merge48/internal/registry"
	"github.com/merge48/merge48/internal/storage"
	"github.com/merge48/merge48/internal/tilegame"
)

var (
	flagDifficulty string
	flagSize       int
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Start playing the given board variant. Without an argument the
config file's default variant is used, falling back to classic.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  P                - Pause
  R                - Restart (after game over)
  B                - Leave the board
  Q/Esc/Ctrl+C     - Quit

Difficulty presets shift how often a 4 spawns instead of a 2:
  easy   - 5% fours
  normal - the variant's configured chance (10% for built-ins)
  hard   - 20% fours

Examples:
  merge48 play
  merge48 play huge
  merge48 play classic --difficulty hard
  merge48 play --size 8
  merge48 play wild --config ./boards.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Play an ad-hoc NxN board (minimum 2)")
}

func runPlay(cmd *cobra.Command, args []string) {
	fileCfg := applyConfig()

	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		tilegame.SetDifficulty(preset)
	}

	variantID := resolveVariant(args, fileCfg)

	// Check if the variant exists
	if !registry.Exists(variantID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'merge48 list' to see available boards.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Create game instance
	game, err := registry.Create(variantID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game; without a menu, backing out just exits
	_, runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveVariant picks the board to play: --size builds an ad-hoc
// variant, otherwise the argument, the config default, or classic.
func resolveVariant(args []string, fileCfg config.Config) string {
	if flagSize > 0 {
		v := tilegame.CustomVariant(flagSize)
		if !registry.Exists(v.ID) {
			if err := tilegame.RegisterVariant(v); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
		return v.ID
	}
	if len(args) > 0 {
		return args[0]
	}
	if fileCfg.DefaultVariant != "" {
		return fileCfg.DefaultVariant
	}
	return "classic"
}
