package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/distromatch/internal/config"
	"github.com/dotcommander/distromatch/internal/match"
	"github.com/dotcommander/distromatch/internal/output"
	"github.com/dotcommander/distromatch/internal/outputters"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show a live preview for partially answered questionnaires",
	Long: `Preview evaluates an incomplete answers file the way the quiz UI would
while the user is still answering: nothing is shown until the experience
and primary-use questions are answered, then the top three matches.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPreview(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	answers, err := loadAnswers(answersFile)
	if err != nil {
		return err
	}

	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	engine := match.NewEngine(c)
	matches := engine.Preview(answers)

	if len(matches) == 0 && !cfg.Quiet {
		fmt.Println("Not enough answers yet - answer at least the experience and primary-use questions.")
		return nil
	}

	report := &output.Report{Matches: matches}
	outputter := outputters.NewOutputter(cfg)
	if err := outputter.Format(report, cfg.Format); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	return nil
}
