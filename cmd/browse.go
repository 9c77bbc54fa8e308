package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dotcommander/distromatch/internal/catalog"
	"github.com/dotcommander/distromatch/internal/config"
)

var (
	browseSearch       string
	browseDifficulty   []string
	browseReleaseModel []string
	browseAudience     []string
	browseSort         string
	browseDescending   bool
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse and filter the distribution catalog",
	Long: `Browse lists the distributions in the catalog, with optional filtering
by search term, difficulty, release model and target audience, and
sorting by a catalog attribute.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBrowse(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	browseCmd.Flags().StringVarP(&browseSearch, "search", "s", "", "Search term matched against name and description")
	browseCmd.Flags().StringSliceVar(&browseDifficulty, "difficulty", nil, "Filter by difficulty (beginner|intermediate|advanced)")
	browseCmd.Flags().StringSliceVar(&browseReleaseModel, "release-model", nil, "Filter by release model (fixed|rolling|semi-rolling|immutable)")
	browseCmd.Flags().StringSliceVar(&browseAudience, "audience", nil, "Filter by target audience")
	browseCmd.Flags().StringVar(&browseSort, "sort", "name", "Sort by attribute (name|beginnerFriendly|stability|gamingSupport|performance)")
	browseCmd.Flags().BoolVar(&browseDescending, "desc", false, "Sort descending")

	rootCmd.AddCommand(browseCmd)
}

func runBrowse() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	distros := catalog.ApplyFilters(c.Distros, catalog.FilterOptions{
		SearchTerm:     browseSearch,
		Difficulty:     browseDifficulty,
		ReleaseModel:   browseReleaseModel,
		TargetAudience: browseAudience,
		SortBy:         catalog.SortOption(browseSort),
		Descending:     browseDescending,
	})

	if cfg.Format == "json" {
		jsonBytes, err := json.MarshalIndent(distros, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling JSON: %w", err)
		}
		if cfg.Output != "" {
			return os.WriteFile(cfg.Output, jsonBytes, 0644)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	printDistroTable(distros)
	return nil
}

func printDistroTable(distros []catalog.Distro) {
	if len(distros) == 0 {
		fmt.Println("No distributions match the given filters.")
		return
	}

	nameStyle := lipgloss.NewStyle().Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	for _, d := range distros {
		fmt.Printf("%s  %s\n", nameStyle.Render(d.Name), dimStyle.Render(d.ID))
		fmt.Printf("    %s release, default DE %s, beginner %d/10, gaming %d/10\n",
			d.ReleaseModel, d.DefaultDE, d.BeginnerFriendly, d.GamingSupport)
		if len(d.TargetAudience) > 0 {
			fmt.Printf("    audience: %s\n", strings.Join(d.TargetAudience, ", "))
		}
	}
	fmt.Printf("\n%d distributions\n", len(distros))
}
