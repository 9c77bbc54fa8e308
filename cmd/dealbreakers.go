package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/distromatch/internal/config"
	"github.com/dotcommander/distromatch/internal/dealbreaker"
	"github.com/dotcommander/distromatch/internal/output"
	"github.com/dotcommander/distromatch/internal/outputters"
)

var dealbreakersCmd = &cobra.Command{
	Use:   "dealbreakers",
	Short: "Check answers for hard compatibility problems",
	Long: `Dealbreakers scans the answers for problems that no distribution choice
can fix: games with incompatible anti-cheat, software without a native
Linux port, hardware that needs special care, and Secure Boot
constraints. The exit code is 1 when a critical issue is found.`,
	Run: func(cmd *cobra.Command, args []string) {
		critical, err := runDealBreakers()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if critical {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(dealbreakersCmd)
}

func runDealBreakers() (bool, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return false, fmt.Errorf("error loading configuration: %w", err)
	}

	answers, err := loadAnswers(answersFile)
	if err != nil {
		return false, err
	}

	c, err := loadCatalog(cfg)
	if err != nil {
		return false, err
	}

	detector := dealbreaker.NewDetector(c)
	summary := detector.Summarize(answers)

	report := &output.Report{
		DealBreakers: detector.Detect(answers),
		Summary:      summary,
	}

	outputter := outputters.NewOutputter(cfg)
	if err := outputter.Format(report, cfg.Format); err != nil {
		return false, fmt.Errorf("error formatting output: %w", err)
	}

	if summary.Count == 0 && !cfg.Quiet && cfg.Format == "console" {
		fmt.Println("No deal-breakers found.")
	}

	return summary.HasCritical, nil
}
