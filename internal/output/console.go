package output

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/distromatch/internal/dealbreaker"
	"github.com/dotcommander/distromatch/internal/match"
)

// ConsoleFormatter formats output for console display
type ConsoleFormatter struct {
	quiet     bool
	verbose   bool
	colorize  bool
	renderer  match.Renderer
	startTime time.Time
}

// NewConsoleFormatter creates a new ConsoleFormatter
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:     quiet,
		verbose:   verbose,
		colorize:  true,
		renderer:  match.EnglishRenderer{},
		startTime: time.Now(),
	}
}

// Format prints the report to stdout.
func (f *ConsoleFormatter) Format(report *Report) error {
	if f.quiet {
		return nil
	}

	f.printDealBreakers(report)
	f.printMatches(report)
	f.printConclusion(report)

	return nil
}

func (f *ConsoleFormatter) style(color string) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

func (f *ConsoleFormatter) printDealBreakers(report *Report) {
	if len(report.DealBreakers) == 0 {
		return
	}

	for _, w := range report.DealBreakers {
		var headStyle lipgloss.Style
		marker := "⚠"
		if w.Severity == dealbreaker.SeverityCritical {
			headStyle = f.style("9").Bold(true) // red
			marker = "✗"
		} else {
			headStyle = f.style("3") // yellow
		}

		fmt.Printf("%s %s\n", headStyle.Render(marker), headStyle.Render(w.Title))
		fmt.Printf("    %s\n", w.Message)
		if f.verbose && w.Suggestion != "" {
			fmt.Printf("    %s\n", w.Suggestion)
		}
		for _, link := range w.Links {
			fmt.Printf("    %s: %s\n", link.Text, f.style("12").Render(link.URL))
		}
	}
	fmt.Println()
}

func (f *ConsoleFormatter) printMatches(report *Report) {
	for i, m := range report.Matches {
		pct := fmt.Sprintf("%d%%", m.Percentage)
		var pctStyle lipgloss.Style
		switch {
		case m.Percentage >= 80:
			pctStyle = f.style("10") // green
		case m.Percentage >= 50:
			pctStyle = f.style("3") // yellow
		default:
			pctStyle = f.style("7") // gray
		}

		nameStyle := f.style("15").Bold(true)
		fmt.Printf("%d. %s + %s  %s\n", i+1,
			nameStyle.Render(m.Distro.Name), m.DE.Name, pctStyle.Render(pct))

		for _, reason := range m.Reasons {
			fmt.Printf("    %s %s\n", f.style("10").Render("+"), f.renderer.Render(reason))
		}
		for _, warning := range m.Warnings {
			fmt.Printf("    %s %s\n", f.style("3").Render("!"), f.renderer.Render(warning))
		}
		fmt.Println()
	}
}

func (f *ConsoleFormatter) printConclusion(report *Report) {
	if len(report.Matches) == 0 {
		fmt.Println("No matching distribution found for these answers.")
		return
	}

	if f.verbose {
		duration := time.Since(f.startTime)
		fmt.Printf("%d matches (%v)\n", len(report.Matches), duration.Round(time.Millisecond))
	}
}
