// flappy is a Flappy Bird clone for the terminal.
//
// Usage:
//
//	flappy           - Play the game
//	flappy config    - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--config <path>         - Load game constants from a YAML file
//	--assets <dir>          - Load sprites from <dir>/sprites instead of the built-in set
//	--screenshot-dir <dir>  - Where screenshots are written (default: ~/.flappy/screenshots)
//	--log-file <path>       - Log destination (default: ~/.flappy/flappy.log)
//	--debug                 - Enable debug logging
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	// Global flags
	flagFPS           int
	flagSeed          int64
	flagConfig        string
	flagAssets        string
	flagScreenshotDir string
	flagLogFile       string
	flagDebug         bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Pink Flappy Bird in your terminal",
	Long: `Guide the bird through the gaps between the pipes.
Every pipe that scrolls off screen scores a point.

Controls:
  Space/Enter  - Start
  Space/Up/W   - Flap
  R            - Restart (after game over)
  S            - Save a screenshot
  Q/Esc/Ctrl+C - Quit

Examples:
  flappy
  flappy --seed 42
  flappy --config ./my-flappy.yaml
  flappy config > ~/.flappy/configs/flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory containing sprites/*.yaml (default: built-in)")
	rootCmd.Flags().StringVar(&flagScreenshotDir, "screenshot-dir", "~/.flappy/screenshots", "Directory for screenshots")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.flappy/flappy.log", "Path to log file")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(configCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", flagFPS)
		os.Exit(1)
	}

	gameCfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	var sprites fs.FS = assets.Sprites
	if flagAssets != "" {
		sprites = os.DirFS(flagAssets)
	}
	art, err := flappy.LoadArt(sprites)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sprites: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := openLogger(flagLogFile, flagDebug)
	defer closeLog()

	shotDir, err := expandHome(flagScreenshotDir)
	if err != nil {
		logger.Warn("using screenshot dir as given", "dir", flagScreenshotDir, "err", err)
		shotDir = flagScreenshotDir
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger:        logger,
		ScreenshotDir: shotDir,
	}

	logger.Info("starting", "fps", flagFPS, "seed", flagSeed, "terminal", fmt.Sprintf("%dx%d", width, height))
	if err := tui.Run(flappy.New(gameCfg, art), opts); err != nil {
		logger.Error("game exited with error", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
