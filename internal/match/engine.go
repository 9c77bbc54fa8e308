// Package match implements the recommendation engine: scoring distributions
// against a user profile, selecting a desktop environment, and explaining
// the result. All functions are pure computations over the injected catalog;
// concurrent Rank calls are safe because nothing here mutates shared state.
package match

import (
	"sort"

	"github.com/dotcommander/distromatch/internal/catalog"
	"github.com/dotcommander/distromatch/internal/profile"
	"github.com/dotcommander/distromatch/internal/quiz"
)

// DistroMatch is one ranked recommendation.
type DistroMatch struct {
	Distro     catalog.Distro             `json:"distro"`
	DE         catalog.DesktopEnvironment `json:"desktopEnvironment"`
	Percentage int                        `json:"percentage"`
	Reasons    []Reason                   `json:"reasons"`
	Warnings   []Reason                   `json:"warnings,omitempty"`
}

// Engine scores profiles against an explicitly injected catalog. It holds
// no other state and is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates an Engine over the given catalog.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// BuildProfile derives the normalized profile for the given answers.
func (e *Engine) BuildProfile(a quiz.Answers) profile.Profile {
	return profile.Build(a, e.catalog)
}

// Rank computes matches for every eligible distribution, sorted by
// percentage descending. The sort is stable, so equal percentages keep
// catalog order. An empty result (everything filtered out) is a valid
// outcome, not an error.
func (e *Engine) Rank(a quiz.Answers) []DistroMatch {
	p := e.BuildProfile(a)

	results := make([]DistroMatch, 0, len(e.catalog.Distros))
	for i := range e.catalog.Distros {
		d := &e.catalog.Distros[i]
		if !e.eligible(p, d) {
			continue
		}
		de := e.SelectDE(p, d)
		results = append(results, DistroMatch{
			Distro:     *d,
			DE:         de,
			Percentage: e.ScoreDistro(p, d),
			Reasons:    e.Reasons(p, d, &de),
			Warnings:   e.Warnings(p, d, &de),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Percentage > results[j].Percentage
	})
	return results
}

// eligible applies the hard filters that run before any scoring.
func (e *Engine) eligible(p profile.Profile, d *catalog.Distro) bool {
	// Maximum-privacy systems are unusable as general recommendations
	// unless privacy is what the user is actually here for.
	if d.MaxPrivacy && p.NeedsPrivacy < privacyEligibilityNeed {
		return false
	}
	// Newcomers without learning ambition never get a demanding distro,
	// no matter how well the numbers line up otherwise.
	if p.ExperienceLevel < intermediateExperience && !p.WantsToLearn &&
		d.BeginnerFriendly < beginnerEligibilityMin {
		return false
	}
	return true
}

// Top returns the best n matches.
func (e *Engine) Top(a quiz.Answers, n int) []DistroMatch {
	results := e.Rank(a)
	if len(results) > n {
		results = results[:n]
	}
	return results
}

// Preview is the live-preview variant: it returns nothing until the minimum
// required questions (experience and primary use) are answered, then the
// top three matches.
func (e *Engine) Preview(a quiz.Answers) []DistroMatch {
	if a.Experience == "" || a.PrimaryUse == "" {
		return nil
	}
	return e.Top(a, 3)
}
