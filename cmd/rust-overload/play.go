package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rust-overload/internal/games/overload"
	"github.com/vovakirdan/rust-overload/internal/platform/tui"
	"github.com/vovakirdan/rust-overload/internal/registry"
)

var (
	flagEndless  bool
	flagSpectate string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run directly, without the title menu.

Controls:
  C / W / Tab     - Go to the wasteland / workshop / toggle
  Up/Down (k/j)   - Select a weapon in the workshop
  Enter/Space     - Repair the selected weapon
  Left/Right (a/d)- Move the collector in the wasteland
  P/Esc           - Pause
  R               - Restart (after game over)
  Ctrl+S          - Save a text screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - More health, bigger inventory, slower aging
  normal - Default settings, wasteland starts at 20% speed-up
  hard   - Less health, smaller inventory, faster aging

Examples:
  rust-overload play
  rust-overload play --endless
  rust-overload play --difficulty hard --seed 42
  rust-overload play --spectate :8080
  rust-overload play --config ./my-rust.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play without a victory goal")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a websocket spectator feed on this address (e.g. :8080)")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}

	logger, closeLog, err := newLogger("rust", nil)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	mode := string(overload.ModeCampaign)
	if flagEndless {
		mode = string(overload.ModeEndless)
	}

	game, err := registry.Create(mode, gameCfg, logger)
	if err != nil {
		fatal("creating game: %v", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	publisher, stopSpectator := startSpectator(flagSpectate, logger)
	defer stopSpectator()

	opts := tui.ModelOptions{
		Store:     store,
		Logger:    logger,
		Publisher: publisher,
	}
	if _, err := tui.Run(game, runtimeConfig(), opts); err != nil {
		logger.Error("game stopped", "err", err)
		fatal("running game: %v", err)
	}
}
