// Package output renders recommendation results for the console, JSON
// consumers, and markdown reports.
package output

import (
	"time"

	"github.com/dotcommander/distromatch/internal/dealbreaker"
	"github.com/dotcommander/distromatch/internal/match"
)

// Report bundles everything a single quiz evaluation produced.
type Report struct {
	Matches      []match.DistroMatch
	DealBreakers []dealbreaker.Warning
	Summary      dealbreaker.Summary
	StartTime    time.Time
}

// Formatter renders a report to its destination.
type Formatter interface {
	Format(report *Report) error
}
