package match

import (
	"github.com/dotcommander/distromatch/internal/catalog"
	"github.com/dotcommander/distromatch/internal/profile"
)

// SelectDE picks the best-fitting desktop environment offered by the
// distribution. It never fails: if none of the distro's DE ids resolve in
// the catalog it falls back to the declared default, then to the first
// catalog entry. Ties keep the first candidate in catalog order.
func (e *Engine) SelectDE(p profile.Profile, d *catalog.Distro) catalog.DesktopEnvironment {
	var candidates []*catalog.DesktopEnvironment
	for _, id := range d.AvailableDEs {
		if de := e.catalog.DEByID(id); de != nil {
			candidates = append(candidates, de)
		}
	}
	if len(candidates) == 0 {
		if de := e.catalog.DEByID(d.DefaultDE); de != nil {
			return *de
		}
		return e.catalog.DesktopEnvironments[0]
	}

	best := candidates[0]
	bestScore := deScore(p, candidates[0])
	for _, de := range candidates[1:] {
		if s := deScore(p, de); s > bestScore {
			best, bestScore = de, s
		}
	}
	return *best
}

func deScore(p profile.Profile, de *catalog.DesktopEnvironment) float64 {
	var score float64

	if p.PrefersWindowsLike {
		score += float64(de.WindowsLike) * deStyleMultiplier
	}
	if p.PrefersMacLike {
		score += float64(de.MacLike) * deStyleMultiplier
	}
	if p.PrefersModern {
		score += float64(de.ModernLook) * deStyleMultiplier
	}
	if p.PrefersTiling && de.TilingSupport {
		score += deTilingBonus
	}

	if p.HasLimitedRAM || p.HasOldHardware {
		score += float64(10-de.ResourceUsage) * deResourceMultiplier
		if p.RAMAmount > 0 {
			// idleRAM is MB, RAMAmount is GB.
			requiredGB := float64(de.IdleRAM) / 1024
			if requiredGB > float64(p.RAMAmount)*0.5 {
				score -= deHeavyRAMPenalty
			}
		}
	}

	if p.NeedsGaming > needThreshold {
		score += float64(de.GamingFriendly)
	}
	if p.NeedsBeginnerFriendly > deBeginnerNeedThreshold {
		score += float64(de.BeginnerFriendly) * deBeginnerMultiplier
	}
	if p.NeedsCustomization > deCustomizeNeedThreshold {
		score += float64(de.Customizability)
	}

	// Beginners who picked "tiling" anyway: steering them to an unfriendly
	// tiling WM would be a disservice, so the tiling bonus gets outweighed.
	if p.ExperienceLevel < intermediateExperience && de.TilingSupport && de.BeginnerFriendly < 4 {
		score -= deTilingBeginnerPenalty
	}

	return score
}
