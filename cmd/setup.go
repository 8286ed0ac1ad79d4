package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/finplan/internal/config"
	"github.com/theirongolddev/finplan/internal/tui"
)

var exampleAmount = decimal.RequireFromString("1234.5")

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	records := 0
	if st, err := openStore(); err == nil {
		if plans, err := st.Plans(); err == nil {
			records = totalRecords(plans)
		}
		_ = st.Close()
	}

	vals := tui.DefaultSetupValues(cfg)
	if err := tui.NewSetupForm(&vals, records).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled.")
			return nil
		}
		return err
	}

	next := tui.ApplySetup(cfg, vals)
	if err := config.Save(next); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Printf("  Amounts will look like %s\n", next.Policy().Currency(exampleAmount))
	fmt.Println("  Run `finplan setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
