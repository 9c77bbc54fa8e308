package match

import (
	"math"

	"github.com/dotcommander/distromatch/internal/catalog"
	"github.com/dotcommander/distromatch/internal/profile"
)

// ScoreDistro computes the match percentage for one distribution.
//
// Weighted criteria accumulate into score and maxScore; a criterion only
// contributes (to either side) when the corresponding need clears its
// threshold, and beginner-friendliness is the one criterion compared by
// distance rather than by product. Flat bonuses and penalties adjust the
// numerator only. The result is round(score/maxScore*100) clamped to
// [0,100]; the RAM disqualification sentinel relies on the lower clamp.
func (e *Engine) ScoreDistro(p profile.Profile, d *catalog.Distro) int {
	var score, maxScore float64

	// Beginner-friendliness always applies: too demanding and too dumbed-
	// down are both mismatches.
	beginnerDiff := math.Abs(float64(d.BeginnerFriendly - p.NeedsBeginnerFriendly))
	score += (10 - beginnerDiff) * weightBeginnerFriendly
	maxScore += 10 * weightBeginnerFriendly

	if p.NeedsStability > needThreshold {
		score += float64(d.Stability) * (float64(p.NeedsStability) / 10) * weightStability
		maxScore += 10 * weightStability
	}
	if p.NeedsCuttingEdge > needThreshold {
		score += float64(d.CuttingEdge) * (float64(p.NeedsCuttingEdge) / 10) * weightCuttingEdge
		maxScore += 10 * weightCuttingEdge
	}
	if p.NeedsGaming > 0 {
		score += float64(d.GamingSupport) * (float64(p.NeedsGaming) / 10) * weightGaming
		maxScore += 10 * weightGaming
	}
	if p.NeedsPrivacy > needThreshold {
		score += float64(d.PrivacyFocus) * (float64(p.NeedsPrivacy) / 10) * weightPrivacy
		maxScore += 10 * weightPrivacy
	}
	if p.NeedsCustomization > needThreshold {
		score += float64(d.Customizability) * (float64(p.NeedsCustomization) / 10) * weightCustomization
		maxScore += 10 * weightCustomization
	}
	if p.HasOldHardware || p.HasLimitedRAM {
		score += float64(d.Performance) * (float64(p.NeedsPerformance) / 10) * weightPerformance
		maxScore += 10 * weightPerformance
	}

	// RAM feasibility gate. Applies to everyone with a known RAM amount,
	// not just resource-constrained profiles, so a 16 GB-minimum distro
	// can never be recommended to a 2 GB machine.
	if p.RAMAmount > 0 && d.MinRAM > float64(p.RAMAmount) {
		ratio := d.MinRAM / float64(p.RAMAmount)
		switch {
		case ratio >= ramDisqualifyRatio:
			score = ramDisqualifyScore
		case ratio >= ramSevereRatio:
			score -= ramSeverePenalty
		default:
			score -= ramModeratePenalty
		}
	}

	if p.NeedsProfessional > needThreshold {
		score += float64(d.ProfessionalUse) * (float64(p.NeedsProfessional) / 10) * weightProfessional
		maxScore += 10 * weightProfessional
	}

	if p.HasNvidia {
		score += float64(d.HardwareSupport) * weightHardwareSupport
		maxScore += 10 * weightHardwareSupport
		if d.NvidiaFriendly {
			score += bonusNvidiaFriendly
		}
	}
	if p.HasIntelArc {
		score += float64(d.HardwareSupport) * weightHardwareSupport
		maxScore += 10 * weightHardwareSupport
		// Arc needs a recent kernel and Mesa, so the bonus is larger than
		// the NVIDIA one.
		if d.IntelArcFriendly {
			score += bonusIntelArcFriendly
		}
	}

	if p.NeedsGermanCommunity {
		score += float64(d.CommunitySupport) * weightCommunitySupport
		maxScore += 10 * weightCommunitySupport
		if d.StrongGermanCommunity {
			score += bonusGermanCommunity
		}
	}

	if p.NeedsSecureBoot {
		switch d.SecureBootSupport {
		case catalog.SecureBootNone:
			score -= penaltySecureBootNone
		case catalog.SecureBootPartial:
			score -= penaltySecureBootPartial
		case catalog.SecureBootFull:
			score += bonusSecureBootFull
		}
	} else if p.PrefersSecureBoot {
		switch d.SecureBootSupport {
		case catalog.SecureBootNone:
			score -= penaltySecureBootNonePref
		case catalog.SecureBootFull:
			score += bonusSecureBootFullPref
		}
	}

	if p.ExperienceLevel < intermediateExperience {
		if d.BeginnerFriendly < beginnerFriendlinessFloor {
			score -= float64(beginnerFriendlinessFloor-d.BeginnerFriendly) * beginnerPenaltyPerPoint
		}
	} else if p.ExperienceLevel >= advancedExperience && p.WantsToLearn && d.LearningOriented {
		score += bonusLearningOriented
	}

	if p.NeedsGaming > audienceGamingThreshold && d.HasAudience(catalog.AudienceGamer) {
		score += bonusAudienceGamer
	}
	if p.NeedsPrivacy > audiencePrivacyThreshold && d.HasAudience(catalog.AudiencePrivacy) {
		score += bonusAudiencePrivacy
	}
	if p.NeedsProfessional > audienceProThreshold && d.HasAudience(catalog.AudienceDeveloper) {
		score += bonusAudienceDeveloper
	}
	if p.ExperienceLevel < intermediateExperience && d.HasAudience(catalog.AudienceBeginner) {
		score += bonusAudienceBeginner
	}

	if maxScore <= 0 {
		return 0
	}
	pct := int(math.Round(score / maxScore * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
