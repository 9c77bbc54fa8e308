package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/distromatch/internal/config"
	"github.com/dotcommander/distromatch/internal/dealbreaker"
	"github.com/dotcommander/distromatch/internal/match"
	"github.com/dotcommander/distromatch/internal/output"
	"github.com/dotcommander/distromatch/internal/outputters"
)

var (
	catalogDir   string
	answersFile  string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	topN         int
)

var rootCmd = &cobra.Command{
	Use:   "distromatch",
	Short: "Distromatch - find the Linux distribution that fits you",
	Long: `Distromatch evaluates questionnaire answers against a catalog of Linux
distributions and desktop environments, and produces a ranked list of
recommendations with reasons and warnings.

By default, distromatch reads answers from the file given with --answers
and prints the top matches. Use the subcommands for previews, deal-breaker
checks, catalog browsing, and the HTTP API.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMatch(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&catalogDir, "catalog-dir", "c", "", "Directory with catalog overlay files (built-in catalog if not specified)")
	rootCmd.PersistentFlags().StringVarP(&answersFile, "answers", "a", "", "Questionnaire answers file (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (requires --format)")
	rootCmd.PersistentFlags().IntVarP(&topN, "top", "n", 3, "Number of recommendations to show")

	viper.BindPFlag("catalogDir", rootCmd.PersistentFlags().Lookup("catalog-dir"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("top", rootCmd.PersistentFlags().Lookup("top"))
}

func initConfig() {
	configPaths := []string{".distromatchrc.json", ".distromatchrc.yaml", ".distromatchrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				os.Exit(1)
			}
			break
		}
	}
}

func runMatch() error {
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
	detector := dealbreaker.NewDetector(c)

	report := &output.Report{
		Matches:      engine.Top(answers, cfg.Top),
		DealBreakers: detector.Detect(answers),
		Summary:      detector.Summarize(answers),
	}

	outputter := outputters.NewOutputter(cfg)
	if err := outputter.Format(report, cfg.Format); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	return nil
}
