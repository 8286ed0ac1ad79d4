package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/finplan/internal/cli"
	"github.com/theirongolddev/finplan/internal/pipeline"
	"github.com/theirongolddev/finplan/internal/source"
)

var (
	flagSplitPlans bool
	flagQuiet      bool
)

var importCmd = &cobra.Command{
	Use:   "import PATH",
	Short: "Import records from a JSONL file or a directory of them",
	Long: "Import incomes and expenses from JSON Lines files. Each line is an object with\n" +
		"a \"kind\" of income or expense. Lines that do not decode are skipped and counted.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&flagSplitPlans, "split", false, "Import each file into the plan named after it")
	importCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	files, err := source.Discover(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	if len(files) == 0 {
		fmt.Printf("\n  No .jsonl files found in %s\n", args[0])
		return nil
	}

	progressFn := func(current, total int) {
		if flagQuiet || total < 2 {
			return
		}
		fmt.Fprintf(os.Stderr, "\r  Parsing [%d/%d]", current, total)
	}
	res := pipeline.Load(files, progressFn)
	if !flagQuiet && len(files) > 1 {
		fmt.Fprintln(os.Stderr)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	touched := map[string]bool{}
	for _, fr := range res.Files {
		if fr.Err != nil {
			log.WithError(fr.Err).WithField("file", fr.File.Path).Warn("import file unreadable")
			continue
		}
		plan := planName()
		if flagSplitPlans {
			plan = fr.File.Plan
		}
		if err := st.Import(plan, fr.Incomes, fr.Expenses); err != nil {
			return fmt.Errorf("importing %s: %w", fr.File.Path, err)
		}
		touched[plan] = true
	}

	log.WithFields(log.Fields{
		"files":    res.TotalFiles,
		"incomes":  res.Incomes,
		"expenses": res.Expenses,
		"skipped":  res.Skipped,
		"failed":   res.FileErrors,
	}).Info("import finished")

	p := cfg.Policy()
	fmt.Printf("  Imported %s incomes and %s expenses into %s\n",
		cli.FormatCount(p, res.Incomes), cli.FormatCount(p, res.Expenses), planList(touched))
	if res.Skipped > 0 {
		fmt.Fprintf(os.Stderr, "  %d lines skipped (use --verbose to see why)\n", res.Skipped)
	}
	if res.FileErrors > 0 {
		fmt.Fprintf(os.Stderr, "  %d files could not be read\n", res.FileErrors)
	}
	return nil
}

func planList(plans map[string]bool) string {
	if len(plans) == 1 {
		for p := range plans {
			return fmt.Sprintf("plan %q", p)
		}
	}
	return fmt.Sprintf("%d plans", len(plans))
}
