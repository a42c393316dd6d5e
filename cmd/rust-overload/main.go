// rust-overload is a terminal scavenging game: collect scrap in the wasteland,
// repair corroding weapons in the workshop, and never handle toxic scrap.
//
// Usage:
//
//	rust-overload play              - Play a campaign run
//	rust-overload play --endless    - Play without a victory goal
//	rust-overload menu              - Start the title menu
//	rust-overload serve             - Start SSH server for remote play
//	rust-overload scores            - Show the run history
//	rust-overload recipes [weapon]  - Show weapon recipes
//	rust-overload config            - Print the effective configuration
//	rust-overload modes             - List playable modes
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.rust-overload/runs.db)
//	--config <path>       - Load a custom YAML configuration
//	--difficulty <preset> - easy, normal or hard
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/rust-overload/internal/games/overload"
	"github.com/vovakirdan/rust-overload/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rust-overload",
	Short: "Rust Overload - scavenge scrap, repair weapons, avoid the toxic pile",
	Long: `Rust Overload is a terminal game about a scavenger in a rusting world.

Collect falling scrap in the wasteland, spend it to repair weapons in the
workshop, and keep an eye on your inventory: when it is full, the most used
piece of scrap is thrown out, and handling overused scrap is toxic.

Available commands:
  play     - Play a run directly
  menu     - Interactive title menu
  serve    - Start SSH server for remote play
  scores   - View the run history
  recipes  - Show weapon recipes
  config   - Print the effective configuration
  modes    - List playable modes

Examples:
  rust-overload play
  rust-overload play --endless --difficulty hard
  rust-overload menu
  rust-overload serve --ssh :2222 --spectate :8080
  rust-overload recipes rifle`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(recipesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(modesCmd)
}
