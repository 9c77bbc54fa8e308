package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dotcommander/distromatch/internal/catalog"
	"github.com/dotcommander/distromatch/internal/config"
	"github.com/dotcommander/distromatch/internal/quiz"
)

// loadAnswers reads a questionnaire answers file. YAML and JSON both
// decode through the yaml parser. Unknown questions and invalid values
// are ignored rather than rejected.
func loadAnswers(path string) (quiz.Answers, error) {
	if path == "" {
		return quiz.Answers{}, fmt.Errorf("no answers file given (use --answers)")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return quiz.Answers{}, fmt.Errorf("error reading answers file: %w", err)
	}

	var raw quiz.RawAnswers
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return quiz.Answers{}, fmt.Errorf("error parsing answers file %s: %w", path, err)
	}

	return quiz.Parse(raw), nil
}

// loadCatalog builds the catalog: the built-in data, plus overlay files
// when a catalog directory is configured. The --catalog-dir flag wins
// over the config file value.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	dir := catalogDir
	if dir == "" {
		dir = cfg.CatalogDir
	}

	if dir == "" {
		c, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("error loading built-in catalog: %w", err)
		}
		return c, nil
	}

	c, err := catalog.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error loading catalog from %s: %w", dir, err)
	}
	return c, nil
}
