package match

// RuleID identifies a single explanation rule. Rule ids, not the rendered
// prose, are the stable contract: each mirrors a scoring bonus or penalty,
// and tests assert on which rules fired.
type RuleID string

// Reason rules, in the priority order the generator emits them.
const (
	RuleBeginnerFit      RuleID = "beginner-fit"
	RuleStability        RuleID = "stability"
	RuleCuttingEdge      RuleID = "cutting-edge"
	RuleGamingFit        RuleID = "gaming-fit"
	RulePrivacyFocus     RuleID = "privacy-focus"
	RuleLightweight      RuleID = "lightweight"
	RuleNvidiaSupport    RuleID = "nvidia-support"
	RuleIntelArcSupport  RuleID = "intel-arc-support"
	RuleWindowsLikeDE    RuleID = "windows-like-de"
	RuleMacLikeDE        RuleID = "mac-like-de"
	RuleTilingDE         RuleID = "tiling-de"
	RuleCustomizable     RuleID = "customizable"
	RuleGermanCommunity  RuleID = "german-community"
	RuleLearningDistro   RuleID = "learning-distro"
	RuleAURAccess        RuleID = "aur-access"
	RuleFlatpakSupport   RuleID = "flatpak-support"
	RuleSecureBootFull   RuleID = "secure-boot-full"
	RuleSolidChoice      RuleID = "solid-choice"
)

// Warning rules, in priority order.
const (
	WarnExperienceGap      RuleID = "experience-gap"
	WarnHeavyDERAM         RuleID = "heavy-de-ram"
	WarnNvidiaManual       RuleID = "nvidia-manual-setup"
	WarnIntelArcKernel     RuleID = "intel-arc-old-kernel"
	WarnRollingUnstable    RuleID = "rolling-for-stability-seeker"
	WarnSlowOnOldHardware  RuleID = "slow-on-old-hardware"
	WarnTilingLearningCurve RuleID = "tiling-learning-curve"
	WarnPrivacyNoGaming    RuleID = "privacy-distro-no-gaming"
	WarnPrivacyDailyUse    RuleID = "privacy-distro-daily-use"
	WarnSecureBootNone     RuleID = "secure-boot-none"
	WarnSecureBootPartial  RuleID = "secure-boot-partial"
)

// Reason is one fired explanation rule with its rendering parameters.
// Rendering to natural language is a separate, swappable step.
type Reason struct {
	Rule   RuleID            `json:"rule"`
	Params map[string]string `json:"params,omitempty"`
}

func reason(rule RuleID, params ...string) Reason {
	r := Reason{Rule: rule}
	if len(params) > 0 {
		r.Params = make(map[string]string, len(params)/2)
		for i := 0; i+1 < len(params); i += 2 {
			r.Params[params[i]] = params[i+1]
		}
	}
	return r
}
