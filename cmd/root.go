// Package cmd implements the finplan CLI commands.
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/theirongolddev/finplan/internal/config"
	"github.com/theirongolddev/finplan/internal/store"
)

var (
	flagPlan    string
	flagDB      string
	flagVerbose bool

	// cfg is loaded once per invocation by the persistent pre-run.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "finplan",
	Short: "Personal budget planner",
	Long:  "Track incomes and expenses per plan and see where the money goes.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
		log.SetLevel(log.WarnLevel)
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		return nil
	},
	RunE:          runSummary,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %s\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnFinalize(func() { resetFlags(rootCmd) })

	rootCmd.PersistentFlags().StringVarP(&flagPlan, "plan", "p", "", "Plan to work on (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database path (default $FINPLAN_DB or state dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
}

// resetFlags restores the flags of c and its subcommands to their defaults so
// a later Execute in the same process starts clean.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// planName returns the plan selected by flag or config.
func planName() string {
	if flagPlan != "" {
		return flagPlan
	}
	return cfg.General.Plan
}

// openStore opens the plan database chosen by --db, env or config.
func openStore() (*store.Store, error) {
	path := flagDB
	if path == "" {
		path = config.DatabasePath(cfg)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return st, nil
}

// loadPlan reads both record lists of the current plan.
func loadPlan(st *store.Store) (planData, error) {
	plan := planName()
	incomes, err := st.ListIncomes(plan)
	if err != nil {
		return planData{}, fmt.Errorf("loading incomes: %w", err)
	}
	expenses, err := st.ListExpenses(plan)
	if err != nil {
		return planData{}, fmt.Errorf("loading expenses: %w", err)
	}
	return planData{name: plan, incomes: incomes, expenses: expenses}, nil
}
