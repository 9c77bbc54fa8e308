package match

import (
	"testing"

	"github.com/dotcommander/distromatch/internal/catalog"
	"github.com/dotcommander/distromatch/internal/profile"
	"github.com/dotcommander/distromatch/internal/quiz"
)

// testCatalog builds a small, fully controlled catalog.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	distros := []catalog.Distro{
		{
			ID: "easy", Name: "Easy Linux",
			BeginnerFriendly: 9, Stability: 8, CuttingEdge: 3, Customizability: 6,
			Performance: 6, GamingSupport: 7, HardwareSupport: 8, CommunitySupport: 9,
			ProfessionalUse: 5, PrivacyFocus: 5,
			AvailableDEs: []string{"friendly", "lean"}, DefaultDE: "friendly",
			TargetAudience: []string{catalog.AudienceBeginner},
			ReleaseModel:   catalog.ReleaseFixed,
			MinRAM:         2, MinStorage: 20,
			SecureBootSupport: catalog.SecureBootFull,
			NvidiaFriendly:    true,
		},
		{
			ID: "hacker", Name: "Hacker Linux",
			BeginnerFriendly: 2, Stability: 6, CuttingEdge: 10, Customizability: 10,
			Performance: 9, GamingSupport: 8, HardwareSupport: 8, CommunitySupport: 9,
			ProfessionalUse: 8, PrivacyFocus: 6,
			AvailableDEs: []string{"lean", "tiles"}, DefaultDE: "tiles",
			TargetAudience: []string{catalog.AudienceAdvanced, catalog.AudienceDeveloper},
			ReleaseModel:   catalog.ReleaseRolling,
			MinRAM:         1, MinStorage: 10,
			SecureBootSupport: catalog.SecureBootNone,
			HasAUR:            true, LearningOriented: true, IntelArcFriendly: true,
		},
		{
			ID: "heavy", Name: "Heavy Linux",
			BeginnerFriendly: 7, Stability: 7, CuttingEdge: 5, Customizability: 5,
			Performance: 3, GamingSupport: 5, HardwareSupport: 6, CommunitySupport: 6,
			ProfessionalUse: 6, PrivacyFocus: 5,
			AvailableDEs: []string{"friendly"}, DefaultDE: "friendly",
			TargetAudience: []string{catalog.AudienceIntermediate},
			ReleaseModel:   catalog.ReleaseFixed,
			MinRAM:         8, MinStorage: 40,
			SecureBootSupport: catalog.SecureBootPartial,
		},
		{
			ID: "vault", Name: "Vault Linux",
			BeginnerFriendly: 3, Stability: 7, CuttingEdge: 4, Customizability: 3,
			Performance: 5, GamingSupport: 1, HardwareSupport: 5, CommunitySupport: 6,
			ProfessionalUse: 4, PrivacyFocus: 10,
			AvailableDEs: []string{"lean"}, DefaultDE: "lean",
			TargetAudience: []string{catalog.AudiencePrivacy},
			ReleaseModel:   catalog.ReleaseFixed,
			MinRAM:         4, MinStorage: 16,
			SecureBootSupport: catalog.SecureBootNone,
			MaxPrivacy:        true,
		},
	}

	des := []catalog.DesktopEnvironment{
		{
			ID: "friendly", Name: "Friendly",
			WindowsLike: 9, MacLike: 2, ModernLook: 6, ResourceUsage: 6,
			BeginnerFriendly: 9, GamingFriendly: 7, Customizability: 7,
			IdleRAM: 800,
		},
		{
			ID: "lean", Name: "Lean",
			WindowsLike: 6, MacLike: 1, ModernLook: 3, ResourceUsage: 2,
			BeginnerFriendly: 6, GamingFriendly: 6, Customizability: 8,
			IdleRAM: 300,
		},
		{
			ID: "tiles", Name: "Tiles",
			WindowsLike: 0, MacLike: 0, ModernLook: 5, ResourceUsage: 1,
			BeginnerFriendly: 2, GamingFriendly: 5, Customizability: 10,
			TilingSupport: true, IdleRAM: 150,
		},
	}

	games := []catalog.Game{
		{ID: "blocked", Name: "Blocked Game", Status: catalog.StatusAntiCheat, AntiCheatType: catalog.AntiCheatKernelLevel},
		{ID: "fine", Name: "Fine Game", Status: catalog.StatusNative, AntiCheatType: catalog.AntiCheatNone},
	}

	return catalog.New(distros, des, games)
}

func TestScoreDistroRange(t *testing.T) {
	e := NewEngine(testCatalog(t))

	answers := []quiz.Answers{
		{},
		{Experience: quiz.ExperienceNone, PrimaryUse: quiz.UseDaily},
		{Experience: quiz.ExperienceExpert, PrimaryUse: quiz.UseGaming, GPU: quiz.GPUNvidia},
		{RAM: quiz.RAM2GB, ComputerAge: quiz.AgeVintage, SecureBoot: quiz.SecureBootRequired},
		{PrimaryUse: quiz.UsePrivacy, PrivacyLevel: quiz.PrivacyParanoid},
	}

	for i, a := range answers {
		p := e.BuildProfile(a)
		for j := range e.Catalog().Distros {
			d := &e.Catalog().Distros[j]
			got := e.ScoreDistro(p, d)
			if got < 0 || got > 100 {
				t.Errorf("answers[%d] distro %s: score %d out of [0,100]", i, d.ID, got)
			}
		}
	}
}

func TestScoreDistroRAMDisqualification(t *testing.T) {
	e := NewEngine(testCatalog(t))
	heavy := e.Catalog().DistroByID("heavy") // needs 8 GB

	// 2 GB machine: 8/2 = 4x -> disqualified to 0.
	p := e.BuildProfile(quiz.Answers{RAM: quiz.RAM2GB})
	if got := e.ScoreDistro(p, heavy); got != 0 {
		t.Errorf("score with 4x RAM shortfall = %d, want 0", got)
	}

	// 4 GB machine: 8/4 = 2x -> severe penalty but not zeroed by sentinel.
	p4 := e.BuildProfile(quiz.Answers{RAM: quiz.RAM4GB})
	p16 := e.BuildProfile(quiz.Answers{RAM: quiz.RAM16GB})
	if e.ScoreDistro(p4, heavy) >= e.ScoreDistro(p16, heavy) {
		t.Error("severe RAM shortfall should score below a machine with enough RAM")
	}

	// Unknown RAM: no gate at all.
	pUnknown := e.BuildProfile(quiz.Answers{})
	if pUnknown.RAMAmount != 0 {
		t.Fatal("expected unknown RAM")
	}
	if got := e.ScoreDistro(pUnknown, heavy); got == 0 {
		t.Error("unknown RAM should not trigger the disqualification gate")
	}
}

func TestScoreDistroNvidiaBonus(t *testing.T) {
	e := NewEngine(testCatalog(t))
	easy := e.Catalog().DistroByID("easy")

	p := profile.Profile{NeedsBeginnerFriendly: 5, HasNvidia: true}
	base := profile.Profile{NeedsBeginnerFriendly: 5}

	if e.ScoreDistro(p, easy) <= e.ScoreDistro(base, easy) {
		t.Error("NVIDIA profile should score an nvidia-friendly distro higher")
	}
}

func TestScoreDistroSecureBoot(t *testing.T) {
	e := NewEngine(testCatalog(t))
	full := e.Catalog().DistroByID("easy")    // full support
	none := e.Catalog().DistroByID("hacker") // no support

	required := e.BuildProfile(quiz.Answers{SecureBoot: quiz.SecureBootRequired})
	unset := e.BuildProfile(quiz.Answers{})

	if e.ScoreDistro(required, full) <= e.ScoreDistro(unset, full) {
		t.Error("required Secure Boot should reward a fully supporting distro")
	}
	if e.ScoreDistro(required, none) >= e.ScoreDistro(unset, none) {
		t.Error("required Secure Boot should penalize an unsupporting distro")
	}
}

func TestSelectDEPicksByStyle(t *testing.T) {
	e := NewEngine(testCatalog(t))
	easy := e.Catalog().DistroByID("easy")

	p := profile.Profile{PrefersWindowsLike: true, NeedsBeginnerFriendly: 5, ExperienceLevel: 2}
	if de := e.SelectDE(p, easy); de.ID != "friendly" {
		t.Errorf("windows-like preference selected %s, want friendly", de.ID)
	}
}

func TestSelectDETilingPreference(t *testing.T) {
	e := NewEngine(testCatalog(t))
	hacker := e.Catalog().DistroByID("hacker")

	p := profile.Profile{PrefersTiling: true, ExperienceLevel: 4}
	if de := e.SelectDE(p, hacker); de.ID != "tiles" {
		t.Errorf("tiling preference selected %s, want tiles", de.ID)
	}

	// A newcomer gets steered away from the unfriendly tiling WM.
	pNew := profile.Profile{PrefersTiling: true, ExperienceLevel: 0, NeedsBeginnerFriendly: 10}
	if de := e.SelectDE(pNew, hacker); de.ID == "tiles" {
		t.Error("newcomer should not land on an unfriendly tiling WM")
	}
}

func TestSelectDELimitedRAM(t *testing.T) {
	e := NewEngine(testCatalog(t))
	easy := e.Catalog().DistroByID("easy")

	p := profile.Profile{HasLimitedRAM: true, RAMAmount: 2, ExperienceLevel: 2}
	if de := e.SelectDE(p, easy); de.ID != "lean" {
		t.Errorf("limited RAM selected %s, want lean", de.ID)
	}
}

func TestSelectDEFallbacks(t *testing.T) {
	e := NewEngine(testCatalog(t))

	// Unknown DE ids fall back to the declared default.
	d := &catalog.Distro{AvailableDEs: []string{"nope"}, DefaultDE: "lean"}
	if de := e.SelectDE(profile.Profile{}, d); de.ID != "lean" {
		t.Errorf("fallback selected %s, want lean", de.ID)
	}

	// Unknown default too: first catalog entry.
	d = &catalog.Distro{AvailableDEs: []string{"nope"}, DefaultDE: "also-nope"}
	if de := e.SelectDE(profile.Profile{}, d); de.ID != "friendly" {
		t.Errorf("last-resort fallback selected %s, want friendly", de.ID)
	}
}

func TestSelectDETieKeepsFirst(t *testing.T) {
	e := NewEngine(testCatalog(t))

	// Empty profile scores every DE at zero, so the first candidate wins.
	d := &catalog.Distro{AvailableDEs: []string{"lean", "friendly"}, DefaultDE: "friendly"}
	if de := e.SelectDE(profile.Profile{}, d); de.ID != "lean" {
		t.Errorf("tie selected %s, want first candidate lean", de.ID)
	}
}

func TestReasonsNeverEmptyAndCapped(t *testing.T) {
	e := NewEngine(testCatalog(t))
	c := e.Catalog()

	// Profile firing many rules at once.
	p := profile.Profile{
		ExperienceLevel: 0, NeedsBeginnerFriendly: 10, NeedsStability: 10,
		NeedsGaming: 10, PrefersWindowsLike: true, NeedsGermanCommunity: true,
		HasNvidia: true, PrefersSecureBoot: true,
	}
	easy := c.DistroByID("easy")
	de := c.DEByID("friendly")

	reasons := e.Reasons(p, easy, de)
	if len(reasons) == 0 || len(reasons) > 4 {
		t.Fatalf("len(reasons) = %d, want 1..4", len(reasons))
	}
	if reasons[0].Rule != RuleBeginnerFit {
		t.Errorf("first reason = %s, want %s (priority order)", reasons[0].Rule, RuleBeginnerFit)
	}

	// Profile firing nothing: solid-choice fallback.
	blank := profile.Profile{NeedsBeginnerFriendly: 5}
	hacker := c.DistroByID("heavy")
	reasons = e.Reasons(blank, hacker, de)
	if len(reasons) != 1 || reasons[0].Rule != RuleSolidChoice {
		t.Errorf("fallback reasons = %v, want single solid-choice", reasons)
	}
}

func TestWarningsCapped(t *testing.T) {
	e := NewEngine(testCatalog(t))
	c := e.Catalog()

	// Fire lots of warnings: newcomer, little RAM, NVIDIA on an unfriendly
	// rolling distro, Secure Boot preferred but unsupported.
	p := profile.Profile{
		ExperienceLevel: 0, RAMAmount: 4, HasNvidia: true,
		NeedsStability: 10, PrefersSecureBoot: true, HasOldHardware: true,
	}
	hacker := c.DistroByID("hacker")
	de := c.DEByID("friendly")

	warnings := e.Warnings(p, hacker, de)
	if len(warnings) > 3 {
		t.Errorf("len(warnings) = %d, want <= 3", len(warnings))
	}
	if len(warnings) == 0 {
		t.Error("expected warnings for this pairing")
	}
	if warnings[0].Rule != WarnExperienceGap {
		t.Errorf("first warning = %s, want %s", warnings[0].Rule, WarnExperienceGap)
	}

	// A comfortable pairing may produce none.
	calm := profile.Profile{ExperienceLevel: 2, NeedsBeginnerFriendly: 5}
	easy := c.DistroByID("easy")
	if got := e.Warnings(calm, easy, c.DEByID("lean")); len(got) != 0 {
		t.Errorf("expected no warnings, got %v", got)
	}
}

func TestRankSortedAndEligible(t *testing.T) {
	e := NewEngine(testCatalog(t))

	// Newcomer without learning ambition.
	results := e.Rank(quiz.Answers{Experience: quiz.ExperienceNone, PrimaryUse: quiz.UseDaily})

	for i := 1; i < len(results); i++ {
		if results[i-1].Percentage < results[i].Percentage {
			t.Fatalf("results not sorted descending at %d", i)
		}
	}

	for _, m := range results {
		if m.Distro.ID == "hacker" {
			t.Error("demanding distro should be filtered for a newcomer without learning ambition")
		}
		if m.Distro.ID == "vault" {
			t.Error("max-privacy distro should be filtered without a privacy need")
		}
	}
}

func TestRankMaxPrivacyEligibility(t *testing.T) {
	e := NewEngine(testCatalog(t))

	results := e.Rank(quiz.Answers{
		Experience:   quiz.ExperienceAdvanced,
		PrimaryUse:   quiz.UsePrivacy,
		PrivacyLevel: quiz.PrivacyParanoid,
	})

	found := false
	for _, m := range results {
		if m.Distro.ID == "vault" {
			found = true
		}
	}
	if !found {
		t.Error("max-privacy distro should be eligible for a paranoid privacy profile")
	}
}

func TestRankLearningUnlocksDemandingDistros(t *testing.T) {
	e := NewEngine(testCatalog(t))

	results := e.Rank(quiz.Answers{
		Experience: quiz.ExperienceNone,
		PrimaryUse: quiz.UseLearning,
		Learning:   quiz.LearnDeep,
	})

	found := false
	for _, m := range results {
		if m.Distro.ID == "hacker" {
			found = true
		}
	}
	if !found {
		t.Error("learning ambition should unlock demanding distros for newcomers")
	}
}

func TestTopLimitsResults(t *testing.T) {
	e := NewEngine(testCatalog(t))

	a := quiz.Answers{Experience: quiz.ExperienceIntermediate, PrimaryUse: quiz.UseDaily}
	all := e.Rank(a)
	top := e.Top(a, 2)

	if len(top) != 2 {
		t.Fatalf("len(Top(2)) = %d, want 2", len(top))
	}
	if top[0].Distro.ID != all[0].Distro.ID || top[1].Distro.ID != all[1].Distro.ID {
		t.Error("Top should return the best ranked matches in order")
	}

	// n larger than the result set.
	if got := e.Top(a, 99); len(got) != len(all) {
		t.Errorf("len(Top(99)) = %d, want %d", len(got), len(all))
	}
}

func TestPreviewRequiresMinimumAnswers(t *testing.T) {
	e := NewEngine(testCatalog(t))

	if got := e.Preview(quiz.Answers{}); got != nil {
		t.Errorf("Preview with no answers = %v, want nil", got)
	}
	if got := e.Preview(quiz.Answers{Experience: quiz.ExperienceNone}); got != nil {
		t.Errorf("Preview without primary use = %v, want nil", got)
	}

	got := e.Preview(quiz.Answers{Experience: quiz.ExperienceNone, PrimaryUse: quiz.UseDaily})
	if len(got) == 0 || len(got) > 3 {
		t.Errorf("len(Preview) = %d, want 1..3", len(got))
	}
}

func TestRankWithBuiltInCatalog(t *testing.T) {
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("loading built-in catalog: %v", err)
	}
	e := NewEngine(c)

	// Windows switcher, newcomer, NVIDIA card.
	results := e.Rank(quiz.Answers{
		Experience:   quiz.ExperienceNone,
		PrimaryUse:   quiz.UseDaily,
		DesktopStyle: quiz.StyleWindows,
		GPU:          quiz.GPUNvidia,
		RAM:          quiz.RAM16GB,
	})

	if len(results) == 0 {
		t.Fatal("expected matches from the built-in catalog")
	}

	best := results[0]
	if best.Percentage < 50 {
		t.Errorf("best match %s at %d%%, expected a strong fit", best.Distro.ID, best.Percentage)
	}
	if best.Distro.BeginnerFriendly < 7 {
		t.Errorf("best match %s is not beginner friendly", best.Distro.ID)
	}
	if len(best.Reasons) == 0 || len(best.Reasons) > 4 {
		t.Errorf("len(Reasons) = %d, want 1..4", len(best.Reasons))
	}
	for _, m := range results {
		if m.Distro.ID == "arch" || m.Distro.ID == "gentoo" {
			t.Errorf("%s should be filtered for a newcomer without learning ambition", m.Distro.ID)
		}
	}
}
