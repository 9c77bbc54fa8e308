package match

// Criterion weights for the distro scorer. These and the bonus/penalty
// magnitudes below are hand-tuned; treat them as tunable, not derived.
const (
	weightBeginnerFriendly = 2.0
	weightStability        = 1.5
	weightCuttingEdge      = 1.5
	weightGaming           = 2.5
	weightPrivacy          = 2.0
	weightCustomization    = 1.0
	weightPerformance      = 1.5
	weightProfessional     = 1.0
	weightHardwareSupport  = 1.5
	weightCommunitySupport = 1.0
)

// A criterion only participates when its need clears this threshold, so
// attributes nobody asked for cannot dilute the match percentage.
const needThreshold = 5

// RAM feasibility bands. A distro needing several times the user's RAM is
// not a worse match, it is not installable; the sentinel pushes the final
// percentage below the 0 clamp.
const (
	ramDisqualifyRatio = 4.0
	ramSevereRatio     = 2.0
	ramDisqualifyScore = -1000
	ramSeverePenalty   = 50
	ramModeratePenalty = 30
)

// Flat bonuses and penalties.
const (
	bonusNvidiaFriendly   = 5
	bonusIntelArcFriendly = 8
	bonusGermanCommunity  = 3

	bonusSecureBootFull        = 5
	penaltySecureBootPartial   = 10
	penaltySecureBootNone      = 40
	bonusSecureBootFullPref    = 3
	penaltySecureBootNonePref  = 15
	beginnerPenaltyPerPoint    = 3
	beginnerFriendlinessFloor  = 5
	bonusLearningOriented      = 5
	bonusAudienceGamer         = 10
	bonusAudiencePrivacy       = 10
	bonusAudienceDeveloper     = 5
	bonusAudienceBeginner      = 8
	audienceGamingThreshold    = 7
	audiencePrivacyThreshold   = 7
	audienceProThreshold       = 7
	intermediateExperience     = 2
	advancedExperience         = 3
)

// Desktop environment selection constants.
const (
	deStyleMultiplier        = 2
	deTilingBonus            = 20
	deResourceMultiplier     = 3
	deHeavyRAMPenalty        = 10
	deBeginnerMultiplier     = 1.5
	deBeginnerNeedThreshold  = 6
	deCustomizeNeedThreshold = 7
	deTilingBeginnerPenalty  = 15
)

// Hard eligibility filters applied before scoring.
const (
	privacyEligibilityNeed = 8
	beginnerEligibilityMin = 5
)

// Output caps.
const (
	maxReasons  = 4
	maxWarnings = 3
)
