package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/distromatch/internal/dealbreaker"
	"github.com/dotcommander/distromatch/internal/match"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct {
	quiet      bool
	verbose    bool
	outputFile string
	renderer   match.Renderer
}

// NewMarkdownFormatter creates a new MarkdownFormatter
func NewMarkdownFormatter(quiet, verbose bool, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		quiet:      quiet,
		verbose:    verbose,
		outputFile: outputFile,
		renderer:   match.EnglishRenderer{},
	}
}

// Format writes the report as Markdown to the output file or stdout.
func (f *MarkdownFormatter) Format(report *Report) error {
	var builder strings.Builder

	builder.WriteString("# Distromatch Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(strings.Repeat("-", 50) + "\n\n")

	f.writeDealBreakers(&builder, report)
	f.writeMatches(&builder, report)

	content := builder.String()
	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(content), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
	} else {
		fmt.Print(content)
	}
	return nil
}

func (f *MarkdownFormatter) writeDealBreakers(builder *strings.Builder, report *Report) {
	if len(report.DealBreakers) == 0 {
		return
	}

	builder.WriteString("## Things to know before switching\n\n")
	for _, w := range report.DealBreakers {
		marker := "⚠️"
		if w.Severity == dealbreaker.SeverityCritical {
			marker = "❌"
		}
		builder.WriteString(fmt.Sprintf("### %s %s\n\n", marker, w.Title))
		builder.WriteString(w.Message + "\n\n")
		if w.Suggestion != "" {
			builder.WriteString(fmt.Sprintf("> %s\n\n", w.Suggestion))
		}
		for _, link := range w.Links {
			builder.WriteString(fmt.Sprintf("- [%s](%s)\n", link.Text, link.URL))
		}
		if len(w.Links) > 0 {
			builder.WriteString("\n")
		}
	}
}

func (f *MarkdownFormatter) writeMatches(builder *strings.Builder, report *Report) {
	builder.WriteString("## Recommendations\n\n")

	if len(report.Matches) == 0 {
		builder.WriteString("*No matching distribution found for these answers.*\n")
		return
	}

	builder.WriteString("| # | Distribution | Desktop | Match |\n")
	builder.WriteString("|---|--------------|---------|-------|\n")
	for i, m := range report.Matches {
		builder.WriteString(fmt.Sprintf("| %d | %s | %s | %d%% |\n",
			i+1, m.Distro.Name, m.DE.Name, m.Percentage))
	}
	builder.WriteString("\n")

	for _, m := range report.Matches {
		builder.WriteString(fmt.Sprintf("### %s + %s (%d%%)\n\n", m.Distro.Name, m.DE.Name, m.Percentage))
		for _, reason := range m.Reasons {
			builder.WriteString(fmt.Sprintf("- ✅ %s\n", f.renderer.Render(reason)))
		}
		for _, warning := range m.Warnings {
			builder.WriteString(fmt.Sprintf("- ⚠️ %s\n", f.renderer.Render(warning)))
		}
		builder.WriteString("\n")
		if f.verbose {
			builder.WriteString(fmt.Sprintf("Website: %s\n\n", m.Distro.Website))
		}
	}
}
