// Package profile normalizes questionnaire answers into the numeric and
// boolean needs the scoring engine consumes.
package profile

import (
	"github.com/dotcommander/distromatch/internal/catalog"
	"github.com/dotcommander/distromatch/internal/quiz"
)

// Profile is the normalized view of a user's answers. Needs are on a 0-10
// scale. A Profile is fully determined by the answers (and the game catalog
// for the problematic-games flag) and is never mutated after Build returns.
type Profile struct {
	// 0-4: none, beginner, intermediate, advanced, expert
	ExperienceLevel int

	NeedsStability        int
	NeedsCuttingEdge      int
	NeedsGaming           int
	NeedsPrivacy          int
	NeedsCustomization    int
	NeedsBeginnerFriendly int
	NeedsPerformance      int
	NeedsProfessional     int

	HasLimitedRAM  bool
	RAMAmount      int // GB, 0 = unknown
	HasNvidia      bool
	HasIntelArc    bool
	HasIntelIGPU   bool
	HasOldHardware bool

	PrefersWindowsLike bool
	PrefersMacLike     bool
	PrefersModern      bool
	PrefersTiling      bool

	NeedsGermanCommunity bool
	WantsToLearn         bool
	HasProblematicGames  bool
	SelectedGames        []string

	NeedsProprietarySoftware bool
	NeedsSecureBoot          bool
	PrefersSecureBoot        bool
}

// Build derives a Profile from typed answers. Missing answers keep their
// documented defaults; the result is deterministic for identical input.
// The game catalog is only consulted for the problematic-games flag.
func Build(a quiz.Answers, games *catalog.Catalog) Profile {
	p := Profile{
		NeedsStability:        5,
		NeedsCuttingEdge:      5,
		NeedsGaming:           0,
		NeedsPrivacy:          3,
		NeedsCustomization:    5,
		NeedsBeginnerFriendly: 5,
		NeedsPerformance:      5,
		NeedsProfessional:     3,
	}

	switch a.Experience {
	case quiz.ExperienceNone:
		p.ExperienceLevel = 0
		p.NeedsBeginnerFriendly = 10
	case quiz.ExperienceBeginner:
		p.ExperienceLevel = 1
		p.NeedsBeginnerFriendly = 8
	case quiz.ExperienceIntermediate:
		p.ExperienceLevel = 2
		p.NeedsBeginnerFriendly = 5
	case quiz.ExperienceAdvanced:
		p.ExperienceLevel = 3
		p.NeedsBeginnerFriendly = 2
	case quiz.ExperienceExpert:
		p.ExperienceLevel = 4
		p.NeedsBeginnerFriendly = 0
	}

	switch a.PrimaryUse {
	case quiz.UseDaily:
		p.NeedsStability = 7
		p.NeedsBeginnerFriendly += 2
	case quiz.UseGaming:
		p.NeedsGaming = 10
		p.NeedsCuttingEdge = 7
	case quiz.UseDevelopment:
		p.NeedsProfessional = 8
		p.NeedsCuttingEdge = 6
		p.WantsToLearn = true
	case quiz.UseCreative:
		p.NeedsProfessional = 7
		p.NeedsPerformance = 7
	case quiz.UseServer:
		p.NeedsStability = 9
		p.NeedsBeginnerFriendly = max(0, p.NeedsBeginnerFriendly-3)
	case quiz.UseLearning:
		p.WantsToLearn = true
		p.NeedsCuttingEdge = 6
	case quiz.UsePrivacy:
		p.NeedsPrivacy = 10
	}

	// Secondary uses only ever raise needs; they are additive preferences.
	if a.HasSecondaryUse(quiz.SecondaryGamingCasual) {
		p.NeedsGaming = max(p.NeedsGaming, 5)
	}
	if a.HasSecondaryUse(quiz.SecondaryCoding) {
		p.NeedsProfessional = max(p.NeedsProfessional, 6)
	}
	if a.HasSecondaryUse(quiz.SecondaryVideoEditing) || a.HasSecondaryUse(quiz.SecondaryGraphics) {
		p.NeedsPerformance = max(p.NeedsPerformance, 7)
	}
	if a.HasSecondaryUse(quiz.SecondaryVirtualization) {
		p.NeedsPerformance = max(p.NeedsPerformance, 8)
	}

	if a.HasGamingType(quiz.GamingCompetitive) {
		p.NeedsGaming = 10
	}
	if a.HasGamingType(quiz.GamingAAA) {
		p.NeedsGaming = max(p.NeedsGaming, 9)
		p.NeedsPerformance = max(p.NeedsPerformance, 8)
	}

	if selection := a.GameSelection(); len(selection) > 0 {
		p.SelectedGames = selection
		if games != nil {
			p.HasProblematicGames = len(games.ProblematicGames(selection)) > 0
		}
	}

	switch a.ComputerAge {
	case quiz.AgeVintage:
		p.HasOldHardware = true
		p.HasLimitedRAM = true
		p.NeedsPerformance = 9
	case quiz.AgeOlder:
		p.HasOldHardware = true
		p.NeedsPerformance = 7
	case quiz.AgeRecent:
		p.NeedsPerformance = 5
	case quiz.AgeNew:
		p.NeedsPerformance = 3
		p.NeedsCuttingEdge = max(p.NeedsCuttingEdge, 6)
	}

	switch a.RAM {
	case quiz.RAM2GB:
		p.HasLimitedRAM = true
		p.RAMAmount = 2
		p.NeedsPerformance = 10
	case quiz.RAM4GB:
		p.HasLimitedRAM = true
		p.RAMAmount = 4
		p.NeedsPerformance = max(p.NeedsPerformance, 8)
	case quiz.RAM8GB:
		p.RAMAmount = 8
	case quiz.RAM16GB:
		p.RAMAmount = 16
	case quiz.RAM32GB:
		p.RAMAmount = 32
	}

	// Single-choice question, so at most one GPU flag is set.
	switch a.GPU {
	case quiz.GPUNvidia:
		p.HasNvidia = true
	case quiz.GPUIntelArc:
		p.HasIntelArc = true
	case quiz.GPUIntelIGPU:
		p.HasIntelIGPU = true
	}

	switch a.DesktopStyle {
	case quiz.StyleWindows:
		p.PrefersWindowsLike = true
	case quiz.StyleMacOS:
		p.PrefersMacLike = true
	case quiz.StyleModern:
		p.PrefersModern = true
	case quiz.StyleTiling:
		p.PrefersTiling = true
	}

	switch a.Customization {
	case quiz.CustomizeMinimal:
		p.NeedsCustomization = 2
	case quiz.CustomizeSome:
		p.NeedsCustomization = 4
	case quiz.CustomizeModerate:
		p.NeedsCustomization = 7
	case quiz.CustomizeFull:
		p.NeedsCustomization = 10
	}

	// Inverse pair: one answer sets both sides.
	switch a.Stability {
	case quiz.StabilityStable:
		p.NeedsStability = 10
		p.NeedsCuttingEdge = 2
	case quiz.StabilityBalanced:
		p.NeedsStability = 6
		p.NeedsCuttingEdge = 6
	case quiz.StabilityCuttingEdge:
		p.NeedsStability = 4
		p.NeedsCuttingEdge = 8
	case quiz.StabilityBleedingEdge:
		p.NeedsStability = 2
		p.NeedsCuttingEdge = 10
	}

	if selection := a.SoftwareSelection(); len(selection) > 0 {
		for _, s := range selection {
			switch s {
			case quiz.SoftwareMSOffice, quiz.SoftwareAdobe, quiz.SoftwareAutodesk,
				quiz.SoftwareITunes, quiz.SoftwareSpecificWindows:
				p.NeedsProprietarySoftware = true
			}
		}
	}

	switch a.Learning {
	case quiz.LearnNone:
		p.WantsToLearn = false
		p.NeedsBeginnerFriendly = min(10, p.NeedsBeginnerFriendly+2)
	case quiz.LearnMinimal:
		p.WantsToLearn = false
	case quiz.LearnModerate:
		p.WantsToLearn = true
	case quiz.LearnDeep:
		p.WantsToLearn = true
		p.NeedsBeginnerFriendly = max(0, p.NeedsBeginnerFriendly-3)
	}

	if a.Language == quiz.LanguageImportant {
		p.NeedsGermanCommunity = true
	}

	switch a.PrivacyLevel {
	case quiz.PrivacyCasual:
		p.NeedsPrivacy = 3
	case quiz.PrivacyImportant:
		p.NeedsPrivacy = 6
	case quiz.PrivacyCritical:
		p.NeedsPrivacy = 8
	case quiz.PrivacyParanoid:
		p.NeedsPrivacy = 10
	}

	switch a.SecureBoot {
	case quiz.SecureBootRequired:
		p.NeedsSecureBoot = true
		p.PrefersSecureBoot = true
	case quiz.SecureBootPreferred:
		p.PrefersSecureBoot = true
	}

	p.clamp()
	return p
}

// clamp defensively bounds every need to [0,10]. The derivation rules never
// leave the range on their own, but future rule edits should not be able to
// break the invariant.
func (p *Profile) clamp() {
	for _, n := range []*int{
		&p.NeedsStability, &p.NeedsCuttingEdge, &p.NeedsGaming, &p.NeedsPrivacy,
		&p.NeedsCustomization, &p.NeedsBeginnerFriendly, &p.NeedsPerformance,
		&p.NeedsProfessional,
	} {
		if *n < 0 {
			*n = 0
		}
		if *n > 10 {
			*n = 10
		}
	}
}
