package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rust-overload/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a run would use, after the config search order
and the difficulty preset are applied. Redirect it to a file to start a
custom configuration.

Search order:
  --config path -> ~/.rust-overload/configs/rust.yaml -> ./configs/rust.yaml -> built-in

Examples:
  rust-overload config
  rust-overload config --difficulty hard > ~/.rust-overload/configs/rust.yaml
  rust-overload config --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default file with comments")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fatal("encoding config: %v", err)
	}
	os.Stdout.Write(data)
}
