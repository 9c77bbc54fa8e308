// Package outputters selects the right formatter for the configured format.
package outputters

import (
	"fmt"
	"time"

	"github.com/dotcommander/distromatch/internal/config"
	"github.com/dotcommander/distromatch/internal/output"
)

// Outputter handles output formatting
type Outputter struct {
	config *config.Config
}

// NewOutputter creates a new Outputter
func NewOutputter(config *config.Config) *Outputter {
	return &Outputter{
		config: config,
	}
}

// Format formats the report using the configured format
func (o *Outputter) Format(report *output.Report, format string) error {
	if report.StartTime.IsZero() {
		report.StartTime = time.Now()
	}

	switch format {
	case "console":
		formatter := output.NewConsoleFormatter(o.config.Quiet, o.config.Verbose)
		return formatter.Format(report)
	case "json":
		formatter := output.NewJSONFormatter(o.config.Quiet, true, o.config.Output)
		return formatter.Format(report)
	case "markdown":
		formatter := output.NewMarkdownFormatter(o.config.Quiet, o.config.Verbose, o.config.Output)
		return formatter.Format(report)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
