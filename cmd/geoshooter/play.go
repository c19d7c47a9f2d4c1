package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/geo-shooter/internal/config"
	"github.com/vovakirdan/geo-shooter/internal/core"
	"github.com/vovakirdan/geo-shooter/internal/platform/tui"
	"github.com/vovakirdan/geo-shooter/internal/shooter"
	"github.com/vovakirdan/geo-shooter/internal/storage"
)

var (
	flagConfig      string
	flagDifficulty  string
	flagRechargeURL string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a local game session.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  Enter        - Start
  P/Esc        - Pause / Resume
  R            - Restart (after game over)
  C            - Recharge coins (menu, pause, game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  geoshooter play
  geoshooter play --difficulty easy
  geoshooter play --config ./my-shooter.yaml
  geoshooter play --seed 42 --fps 30`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagRechargeURL, "recharge-url", "", "Recharge endpoint (empty = offline mode)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyShooterPreset(&gameCfg, config.DifficultyPreset(flagDifficulty))
	}

	// Get terminal size for the initial screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := shooter.New(gameCfg)

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, flagRechargeURL, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
