package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rust-overload/internal/config"
)

var recipesCmd = &cobra.Command{
	Use:   "recipes [weapon]",
	Short: "Show weapon recipes",
	Long: `List every weapon with the scrap it needs and the points it is worth.
Pass a weapon kind or name to show a single recipe. Prefixes work, and
misspelled names get suggestions.

Examples:
  rust-overload recipes
  rust-overload recipes rifle
  rust-overload recipes "plasma cannon"`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRecipes,
}

func runRecipes(_ *cobra.Command, args []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}

	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	if err := printRecipes(os.Stdout, cfg, name); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printRecipes writes one recipe, or all of them when name is empty.
func printRecipes(w io.Writer, cfg config.GameConfig, name string) error {
	if name == "" {
		fmt.Fprintln(w, "Weapon recipes:")
		fmt.Fprintln(w)
		for _, wc := range cfg.Weapons {
			printRecipe(w, cfg, wc)
		}
		return nil
	}

	wc, err := cfg.FindWeapon(name)
	if err != nil {
		var unknown *config.UnknownKindError
		if errors.As(err, &unknown) && len(unknown.Suggestions) == 0 {
			return fmt.Errorf("%w\nRun 'rust-overload recipes' to list all weapons", err)
		}
		return err
	}
	printRecipe(w, cfg, wc)
	return nil
}

func printRecipe(w io.Writer, cfg config.GameConfig, wc config.WeaponConfig) {
	spec := cfg.Spec(wc)
	fmt.Fprintf(w, "  %-16s %d pt  %s\n", spec.Name, spec.Points, cfg.Recipe(spec))
}
