package match

import (
	"strconv"

	"github.com/dotcommander/distromatch/internal/catalog"
	"github.com/dotcommander/distromatch/internal/profile"
)

// Reasons explains why the (distro, DE) pair fits the profile. Rules are
// evaluated in a fixed priority order and each mirrors a scoring bonus, so
// the explanation can never drift from the score. The list is capped at
// four entries and is never empty: if nothing specific fired, a generic
// solid-choice reason stands in.
func (e *Engine) Reasons(p profile.Profile, d *catalog.Distro, de *catalog.DesktopEnvironment) []Reason {
	var reasons []Reason

	if p.NeedsBeginnerFriendly > 6 && d.BeginnerFriendly >= 8 {
		reasons = append(reasons, reason(RuleBeginnerFit, "distro", d.Name))
	}
	if p.NeedsStability > 7 && d.Stability >= 8 {
		reasons = append(reasons, reason(RuleStability, "distro", d.Name))
	}
	if p.NeedsCuttingEdge > 7 && d.CuttingEdge >= 8 {
		reasons = append(reasons, reason(RuleCuttingEdge, "distro", d.Name))
	}
	if p.NeedsGaming > 5 && d.GamingSupport >= 8 {
		reasons = append(reasons, reason(RuleGamingFit, "distro", d.Name))
	}
	if p.NeedsPrivacy > 7 && d.PrivacyFocus >= 8 {
		reasons = append(reasons, reason(RulePrivacyFocus, "distro", d.Name))
	}
	if (p.HasOldHardware || p.HasLimitedRAM) && d.Performance >= 8 {
		reasons = append(reasons, reason(RuleLightweight, "distro", d.Name))
	}
	if p.HasNvidia && d.NvidiaFriendly {
		reasons = append(reasons, reason(RuleNvidiaSupport, "distro", d.Name))
	}
	if p.HasIntelArc && d.IntelArcFriendly {
		reasons = append(reasons, reason(RuleIntelArcSupport, "distro", d.Name))
	}
	if p.PrefersWindowsLike && de.WindowsLike >= 7 {
		reasons = append(reasons, reason(RuleWindowsLikeDE, "de", de.Name))
	}
	if p.PrefersMacLike && de.MacLike >= 7 {
		reasons = append(reasons, reason(RuleMacLikeDE, "de", de.Name))
	}
	if p.PrefersTiling && de.TilingSupport {
		reasons = append(reasons, reason(RuleTilingDE, "de", de.Name))
	}
	if p.NeedsCustomization > 7 && d.Customizability >= 8 {
		reasons = append(reasons, reason(RuleCustomizable, "distro", d.Name))
	}
	if p.NeedsGermanCommunity && d.CommunitySupport >= 8 {
		reasons = append(reasons, reason(RuleGermanCommunity, "distro", d.Name))
	}
	if p.WantsToLearn && p.ExperienceLevel >= advancedExperience && d.LearningOriented {
		reasons = append(reasons, reason(RuleLearningDistro, "distro", d.Name))
	}
	if p.NeedsCuttingEdge > 6 && d.HasAUR {
		reasons = append(reasons, reason(RuleAURAccess, "distro", d.Name))
	}
	if p.NeedsProprietarySoftware && d.HasFlatpak {
		reasons = append(reasons, reason(RuleFlatpakSupport, "distro", d.Name))
	}
	if (p.NeedsSecureBoot || p.PrefersSecureBoot) && d.SecureBootSupport == catalog.SecureBootFull {
		reasons = append(reasons, reason(RuleSecureBootFull, "distro", d.Name))
	}

	if len(reasons) == 0 {
		reasons = append(reasons, reason(RuleSolidChoice, "distro", d.Name, "de", de.Name))
	}
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

// Warnings lists caveats for the (distro, DE) pair, capped at three. Unlike
// Reasons it may legitimately be empty.
func (e *Engine) Warnings(p profile.Profile, d *catalog.Distro, de *catalog.DesktopEnvironment) []Reason {
	var warnings []Reason

	if p.ExperienceLevel < intermediateExperience && d.BeginnerFriendly < beginnerFriendlinessFloor {
		warnings = append(warnings, reason(WarnExperienceGap, "distro", d.Name))
	}
	if p.RAMAmount > 0 && p.RAMAmount <= 4 && de.IdleRAM > 500 {
		warnings = append(warnings, reason(WarnHeavyDERAM,
			"de", de.Name, "ram", strconv.Itoa(p.RAMAmount)))
	}
	if p.HasNvidia && !d.NvidiaFriendly {
		warnings = append(warnings, reason(WarnNvidiaManual, "distro", d.Name))
	}
	if p.HasIntelArc && !d.IntelArcFriendly {
		warnings = append(warnings, reason(WarnIntelArcKernel, "distro", d.Name))
	}
	if p.NeedsStability > 7 && d.ReleaseModel == catalog.ReleaseRolling {
		warnings = append(warnings, reason(WarnRollingUnstable, "distro", d.Name))
	}
	if p.HasOldHardware && d.MinRAM > 2 {
		warnings = append(warnings, reason(WarnSlowOnOldHardware, "distro", d.Name))
	}
	if p.ExperienceLevel < intermediateExperience && de.TilingSupport && de.BeginnerFriendly < 5 {
		warnings = append(warnings, reason(WarnTilingLearningCurve, "de", de.Name))
	}
	if d.MaxPrivacy {
		if p.NeedsGaming > 3 {
			warnings = append(warnings, reason(WarnPrivacyNoGaming, "distro", d.Name))
		}
		warnings = append(warnings, reason(WarnPrivacyDailyUse, "distro", d.Name))
	}
	if p.NeedsSecureBoot || p.PrefersSecureBoot {
		switch d.SecureBootSupport {
		case catalog.SecureBootNone:
			warnings = append(warnings, reason(WarnSecureBootNone, "distro", d.Name))
		case catalog.SecureBootPartial:
			warnings = append(warnings, reason(WarnSecureBootPartial, "distro", d.Name))
		}
	}

	if len(warnings) > maxWarnings {
		warnings = warnings[:maxWarnings]
	}
	return warnings
}
