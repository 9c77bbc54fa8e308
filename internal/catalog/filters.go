package catalog

import (
	"sort"
	"strings"
)

// SortOption selects the attribute used by SortDistros.
type SortOption string

// Supported sort options.
const (
	SortByName             SortOption = "name"
	SortByBeginnerFriendly SortOption = "beginnerFriendly"
	SortByStability        SortOption = "stability"
	SortByGamingSupport    SortOption = "gamingSupport"
	SortByPerformance      SortOption = "performance"
)

// FilterOptions combines the browse filters applied by ApplyFilters.
type FilterOptions struct {
	SearchTerm     string
	Difficulty     []string // beginner, intermediate, advanced
	ReleaseModel   []string
	TargetAudience []string
	SortBy         SortOption
	Descending     bool
}

// SearchDistros filters by a case-insensitive match on name or description.
// An empty or whitespace-only term returns the input unchanged.
func SearchDistros(distros []Distro, term string) []Distro {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return distros
	}
	var out []Distro
	for _, d := range distros {
		if strings.Contains(strings.ToLower(d.Name), term) ||
			strings.Contains(strings.ToLower(d.Description), term) {
			out = append(out, d)
		}
	}
	return out
}

// FilterByDifficulty keeps distros matching any of the requested difficulty
// bands: beginner means beginnerFriendly >= 7, intermediate 4-6, advanced <= 3.
func FilterByDifficulty(distros []Distro, difficulties []string) []Distro {
	if len(difficulties) == 0 {
		return distros
	}
	var out []Distro
	for _, d := range distros {
		for _, diff := range difficulties {
			if matchesDifficulty(d.BeginnerFriendly, diff) {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

func matchesDifficulty(score int, difficulty string) bool {
	switch difficulty {
	case "beginner":
		return score >= 7
	case "intermediate":
		return score >= 4 && score <= 6
	case "advanced":
		return score <= 3
	}
	return false
}

// FilterByReleaseModel keeps distros whose release model is in models.
func FilterByReleaseModel(distros []Distro, models []string) []Distro {
	if len(models) == 0 {
		return distros
	}
	var out []Distro
	for _, d := range distros {
		for _, m := range models {
			if d.ReleaseModel == m {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// FilterByTargetAudience keeps distros targeting any of the given audiences.
func FilterByTargetAudience(distros []Distro, audiences []string) []Distro {
	if len(audiences) == 0 {
		return distros
	}
	var out []Distro
	for _, d := range distros {
		for _, a := range audiences {
			if d.HasAudience(a) {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// SortDistros returns a sorted copy. Name sorting is lexicographic; numeric
// options sort ascending unless descending is set. The sort is stable so
// equal keys keep catalog order.
func SortDistros(distros []Distro, by SortOption, descending bool) []Distro {
	sorted := make([]Distro, len(distros))
	copy(sorted, distros)

	less := func(a, b *Distro) bool {
		switch by {
		case SortByBeginnerFriendly:
			return a.BeginnerFriendly < b.BeginnerFriendly
		case SortByStability:
			return a.Stability < b.Stability
		case SortByGamingSupport:
			return a.GamingSupport < b.GamingSupport
		case SortByPerformance:
			return a.Performance < b.Performance
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return less(&sorted[j], &sorted[i])
		}
		return less(&sorted[i], &sorted[j])
	})
	return sorted
}

// ApplyFilters applies search, band, model and audience filters, then sorts.
func ApplyFilters(distros []Distro, opts FilterOptions) []Distro {
	result := SearchDistros(distros, opts.SearchTerm)
	result = FilterByDifficulty(result, opts.Difficulty)
	result = FilterByReleaseModel(result, opts.ReleaseModel)
	result = FilterByTargetAudience(result, opts.TargetAudience)
	return SortDistros(result, opts.SortBy, opts.Descending)
}

// AvailableReleaseModels returns the distinct release models, sorted.
func AvailableReleaseModels(distros []Distro) []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range distros {
		if !seen[d.ReleaseModel] {
			seen[d.ReleaseModel] = true
			out = append(out, d.ReleaseModel)
		}
	}
	sort.Strings(out)
	return out
}

// AvailableTargetAudiences returns the distinct audience tags, sorted.
func AvailableTargetAudiences(distros []Distro) []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range distros {
		for _, a := range d.TargetAudience {
			if !seen[a] {
				seen[a] = true
				out = append(out, a)
			}
		}
	}
	sort.Strings(out)
	return out
}
