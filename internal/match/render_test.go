package match

import (
	"strings"
	"testing"
)

func TestEnglishRendererCoversAllRules(t *testing.T) {
	rules := []RuleID{
		RuleBeginnerFit, RuleStability, RuleCuttingEdge, RuleGamingFit,
		RulePrivacyFocus, RuleLightweight, RuleNvidiaSupport, RuleIntelArcSupport,
		RuleWindowsLikeDE, RuleMacLikeDE, RuleTilingDE, RuleCustomizable,
		RuleGermanCommunity, RuleLearningDistro, RuleAURAccess, RuleFlatpakSupport,
		RuleSecureBootFull, RuleSolidChoice,
		WarnExperienceGap, WarnHeavyDERAM, WarnNvidiaManual, WarnIntelArcKernel,
		WarnRollingUnstable, WarnSlowOnOldHardware, WarnTilingLearningCurve,
		WarnPrivacyNoGaming, WarnPrivacyDailyUse, WarnSecureBootNone,
		WarnSecureBootPartial,
	}

	r := EnglishRenderer{}
	for _, rule := range rules {
		t.Run(string(rule), func(t *testing.T) {
			got := r.Render(reason(rule, "distro", "TestOS", "de", "TestDE", "ram", "4"))
			if got == "" {
				t.Fatal("rendered empty string")
			}
			// A known rule must produce prose, not fall through to the raw id.
			if got == string(rule) {
				t.Errorf("rule %s fell through to the fallback", rule)
			}
		})
	}
}

func TestEnglishRendererSubstitutesParams(t *testing.T) {
	r := EnglishRenderer{}

	got := r.Render(reason(RuleBeginnerFit, "distro", "Linux Mint"))
	if !strings.Contains(got, "Linux Mint") {
		t.Errorf("Render(beginner-fit) = %q, want distro name in prose", got)
	}

	got = r.Render(reason(WarnHeavyDERAM, "de", "GNOME", "ram", "4"))
	if !strings.Contains(got, "GNOME") || !strings.Contains(got, "4 GB") {
		t.Errorf("Render(heavy-de-ram) = %q, want DE and RAM substituted", got)
	}

	got = r.Render(reason(RuleSolidChoice, "distro", "Fedora", "de", "KDE Plasma"))
	if !strings.Contains(got, "Fedora") || !strings.Contains(got, "KDE Plasma") {
		t.Errorf("Render(solid-choice) = %q, want both names", got)
	}
}

func TestEnglishRendererUnknownRuleFallsBack(t *testing.T) {
	got := EnglishRenderer{}.Render(Reason{Rule: "no-such-rule"})
	if got != "no-such-rule" {
		t.Errorf("Render(unknown) = %q, want raw rule id", got)
	}
}

func TestRenderAll(t *testing.T) {
	reasons := []Reason{
		reason(RuleNvidiaSupport),
		reason(RuleAURAccess),
	}

	got := RenderAll(EnglishRenderer{}, reasons)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for i, text := range got {
		if text == "" {
			t.Errorf("entry %d is empty", i)
		}
	}
}
