package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/finplan/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Plan:      %s\n", cfg.General.Plan)
	if flagPlan != "" && flagPlan != cfg.General.Plan {
		fmt.Printf("    (--plan):  %s\n", flagPlan)
	}
	db := flagDB
	if db == "" {
		db = config.DatabasePath(cfg)
	}
	fmt.Printf("    Database:  %s\n", db)
	fmt.Println()

	p := cfg.Policy()
	fmt.Println("  [Formatting]")
	fmt.Printf("    Currency prefix:  %q\n", cfg.Formatting.CurrencyPrefix)
	fmt.Printf("    Placeholders:     %s / %s\n", cfg.Formatting.CurrencyPlaceholder, cfg.Formatting.PercentPlaceholder)
	fmt.Printf("    Example:          %s\n", p.Currency(exampleAmount))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `finplan setup` to reconfigure.")
	return nil
}
