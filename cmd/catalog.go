package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dotcommander/distromatch/internal/schema"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate catalog data",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate catalog overlay files against the schema",
	Long: `Validate checks every .yaml/.yml file under the given directory (or the
configured catalog directory) against the catalog schema. The exit code
is 1 when any file fails validation.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := catalogDir
		if len(args) > 0 {
			dir = args[0]
		}
		failed, err := runCatalogValidate(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogValidate(dir string) (bool, error) {
	if dir == "" {
		return false, fmt.Errorf("no catalog directory given")
	}

	validator := schema.NewValidator()
	if err := validator.LoadSchemas(); err != nil {
		return false, fmt.Errorf("error loading schemas: %w", err)
	}

	fsys := os.DirFS(dir)
	var files []string
	for _, pattern := range []string{"**/*.yaml", "**/*.yml"} {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return false, fmt.Errorf("error scanning %s: %w", dir, err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	if len(files) == 0 {
		fmt.Printf("No catalog files found in %s\n", dir)
		return false, nil
	}

	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	anyFailed := false
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return false, fmt.Errorf("error reading %s: %w", file, err)
		}

		issues, err := validator.ValidateCatalogYAML(file, data)
		if err != nil {
			return false, fmt.Errorf("error validating %s: %w", file, err)
		}

		if len(issues) == 0 {
			if !quiet {
				fmt.Printf("%s %s\n", okStyle.Render("✓"), file)
			}
			continue
		}

		anyFailed = true
		fmt.Printf("%s %s\n", errStyle.Render("✗"), file)
		for _, issue := range issues {
			fmt.Printf("    %s\n", issue.Message)
		}
	}

	return anyFailed, nil
}
