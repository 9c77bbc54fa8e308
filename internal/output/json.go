package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dotcommander/distromatch/internal/dealbreaker"
	"github.com/dotcommander/distromatch/internal/match"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	quiet      bool
	indent     bool
	outputFile string
	renderer   match.Renderer
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(quiet bool, indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		quiet:      quiet,
		indent:     indent,
		outputFile: outputFile,
		renderer:   match.EnglishRenderer{},
	}
}

// Format writes the report as JSON to the output file or stdout.
func (f *JSONFormatter) Format(report *Report) error {
	out := JSONReport{
		Header: JSONHeader{
			Tool:      "distromatch",
			Version:   "1.0.0",
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Summary: JSONSummary{
			Matches:       len(report.Matches),
			DealBreakers:  report.Summary.Count,
			CriticalCount: report.Summary.CriticalCount,
			HasCritical:   report.Summary.HasCritical,
			MainIssue:     report.Summary.MainIssue,
		},
		Matches:      make([]JSONMatch, len(report.Matches)),
		DealBreakers: report.DealBreakers,
	}

	for i, m := range report.Matches {
		out.Matches[i] = JSONMatch{
			DistroID:   m.Distro.ID,
			DistroName: m.Distro.Name,
			DE:         m.DE.Name,
			Percentage: m.Percentage,
			Reasons:    renderReasons(f.renderer, m.Reasons),
			Warnings:   renderReasons(f.renderer, m.Warnings),
		}
	}

	var jsonBytes []byte
	var err error
	if f.indent {
		jsonBytes, err = json.MarshalIndent(out, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
	} else {
		fmt.Println(string(jsonBytes))
	}

	return nil
}

func renderReasons(r match.Renderer, reasons []match.Reason) []JSONReason {
	out := make([]JSONReason, len(reasons))
	for i, re := range reasons {
		out[i] = JSONReason{
			Rule: string(re.Rule),
			Text: r.Render(re),
		}
	}
	return out
}

// JSONReport represents the complete JSON report structure
type JSONReport struct {
	Header       JSONHeader            `json:"header"`
	Summary      JSONSummary           `json:"summary"`
	Matches      []JSONMatch           `json:"matches"`
	DealBreakers []dealbreaker.Warning `json:"dealBreakers,omitempty"`
}

// JSONHeader contains report metadata
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONSummary contains summary statistics
type JSONSummary struct {
	Matches       int    `json:"matches"`
	DealBreakers  int    `json:"dealBreakers"`
	CriticalCount int    `json:"criticalCount"`
	HasCritical   bool   `json:"hasCritical"`
	MainIssue     string `json:"mainIssue,omitempty"`
}

// JSONMatch represents a single ranked recommendation
type JSONMatch struct {
	DistroID   string       `json:"distroId"`
	DistroName string       `json:"distroName"`
	DE         string       `json:"desktopEnvironment"`
	Percentage int          `json:"percentage"`
	Reasons    []JSONReason `json:"reasons"`
	Warnings   []JSONReason `json:"warnings,omitempty"`
}

// JSONReason is a fired rule with its rendered text
type JSONReason struct {
	Rule string `json:"rule"`
	Text string `json:"text"`
}
