// Package dealbreaker scans questionnaire answers for hard compatibility
// problems that no amount of distro ranking can fix: games that cannot run,
// software without a native port, hardware that needs special care, and
// Secure Boot constraints. Detection is independent of scoring and runs
// once per quiz submission.
package dealbreaker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dotcommander/distromatch/internal/catalog"
	"github.com/dotcommander/distromatch/internal/quiz"
)

// Warning categories.
const (
	CategoryGame     = "game"
	CategorySoftware = "software"
	CategoryHardware = "hardware"
	CategoryGeneral  = "general"
)

// Severity levels. A warning is manageable; a critical issue might prevent
// the switch entirely.
const (
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Link is a pointer to an external resource relevant to a warning.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Warning is one detected deal-breaker.
type Warning struct {
	Category      string   `json:"category"`
	Severity      string   `json:"severity"`
	Title         string   `json:"title"`
	Message       string   `json:"message"`
	Suggestion    string   `json:"suggestion"`
	AffectedItems []string `json:"affectedItems"`
	Links         []Link   `json:"links,omitempty"`
}

// Detector runs the individual checks against an injected game catalog.
type Detector struct {
	catalog *catalog.Catalog
}

// NewDetector creates a Detector over the given catalog.
func NewDetector(c *catalog.Catalog) *Detector {
	return &Detector{catalog: c}
}

// Detect runs every check and returns the fired warnings with critical
// severity first. The sort is stable: ties keep detection order.
func (dt *Detector) Detect(a quiz.Answers) []Warning {
	var warnings []Warning

	gameWarning := dt.checkGames(a.GameSelection())
	if gameWarning != nil {
		warnings = append(warnings, *gameWarning)
	}
	if w := checkSoftware(a.SoftwareSelection()); w != nil {
		warnings = append(warnings, *w)
	}
	if w := checkHardware(a); w != nil {
		warnings = append(warnings, *w)
	}
	// The competitive-gaming advisory would duplicate a specific game
	// warning, so it only fires when none did.
	if gameWarning == nil {
		if w := checkCompetitiveGaming(a); w != nil {
			warnings = append(warnings, *w)
		}
	}
	if w := checkSecureBoot(a); w != nil {
		warnings = append(warnings, *w)
	}

	sort.SliceStable(warnings, func(i, j int) bool {
		return warnings[i].Severity == SeverityCritical && warnings[j].Severity != SeverityCritical
	})
	return warnings
}

// HasCritical reports whether any critical deal-breaker exists.
func (dt *Detector) HasCritical(a quiz.Answers) bool {
	for _, w := range dt.Detect(a) {
		if w.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// Summary condenses the detected warnings for quick display.
type Summary struct {
	HasCritical   bool   `json:"hasCritical"`
	Count         int    `json:"count"`
	CriticalCount int    `json:"criticalCount"`
	MainIssue     string `json:"mainIssue,omitempty"`
}

// Summarize returns the aggregate view of all deal-breakers.
func (dt *Detector) Summarize(a quiz.Answers) Summary {
	warnings := dt.Detect(a)
	s := Summary{Count: len(warnings)}
	for _, w := range warnings {
		if w.Severity == SeverityCritical {
			s.CriticalCount++
		}
	}
	s.HasCritical = s.CriticalCount > 0
	// Critical entries sort first, so the lead warning is the main issue.
	if len(warnings) > 0 {
		s.MainIssue = warnings[0].Title
	}
	return s
}

func (dt *Detector) checkGames(selected []string) *Warning {
	if len(selected) == 0 {
		return nil
	}
	problematic := dt.catalog.ProblematicGames(selected)
	if len(problematic) == 0 {
		return nil
	}

	names := make([]string, len(problematic))
	blocked := false
	for i, g := range problematic {
		names[i] = g.Name
		if g.Status == catalog.StatusAntiCheat || g.Status == catalog.StatusBroken {
			blocked = true
		}
	}

	if blocked {
		return &Warning{
			Category:      CategoryGame,
			Severity:      SeverityCritical,
			Title:         "Attention: some games do not work on Linux",
			Message:       fmt.Sprintf("The following games use anti-cheat systems that do not work on Linux: %s. These games currently CANNOT be played on Linux.", strings.Join(names, ", ")),
			Suggestion:    "You have several options: 1) set up dual boot with Windows, 2) use cloud gaming (GeForce NOW, Xbox Cloud), or 3) give up these games.",
			AffectedItems: names,
			Links: []Link{
				{Text: "ProtonDB - check game compatibility", URL: "https://www.protondb.com"},
				{Text: "Are We Anti-Cheat Yet?", URL: "https://areweanticheatyet.com"},
			},
		}
	}
	return &Warning{
		Category:      CategoryGame,
		Severity:      SeverityWarning,
		Title:         "Some games have limited compatibility",
		Message:       fmt.Sprintf("The following games may have problems on Linux: %s.", strings.Join(names, ", ")),
		Suggestion:    "Check compatibility on ProtonDB before switching. With workarounds these games are often playable.",
		AffectedItems: names,
		Links: []Link{
			{Text: "ProtonDB", URL: "https://www.protondb.com"},
		},
	}
}

// softwareIssue maps a proprietary-software answer to its advisory.
type softwareIssue struct {
	name        string
	alternative string
	severity    string
}

var softwareIssues = map[quiz.Software]softwareIssue{
	quiz.SoftwareAdobe: {
		name:        "Adobe Creative Suite",
		alternative: "Alternatives: GIMP (Photoshop), Inkscape (Illustrator), Kdenlive/DaVinci Resolve (Premiere), Audacity (Audition). Adobe itself does not run natively.",
		severity:    SeverityCritical,
	},
	quiz.SoftwareMSOffice: {
		name:        "Microsoft Office",
		alternative: "Alternatives: LibreOffice (free), OnlyOffice, or Microsoft 365 in the browser. The desktop version does not run natively.",
		severity:    SeverityWarning,
	},
	quiz.SoftwareAutodesk: {
		name:        "AutoCAD / Autodesk",
		alternative: "Alternatives: FreeCAD, LibreCAD, Blender (for 3D). AutoCAD does not run on Linux.",
		severity:    SeverityCritical,
	},
	quiz.SoftwareITunes: {
		name:        "iTunes",
		alternative: "iTunes does not run on Linux. For iPhone sync use libimobiledevice. Music management: Rhythmbox, Strawberry.",
		severity:    SeverityWarning,
	},
	quiz.SoftwareSpecificWindows: {
		name:        "Specific Windows software",
		alternative: "Check whether the software runs under Wine/Proton (WineHQ AppDB). Many programs work, some do not.",
		severity:    SeverityWarning,
	},
}

func checkSoftware(selected []quiz.Software) *Warning {
	if len(selected) == 0 {
		return nil
	}

	var affected, suggestions []string
	maxSeverity := SeverityWarning
	for _, s := range selected {
		issue, ok := softwareIssues[s]
		if !ok {
			continue
		}
		affected = append(affected, issue.name)
		suggestions = append(suggestions, issue.alternative)
		if issue.severity == SeverityCritical {
			maxSeverity = SeverityCritical
		}
	}
	if len(affected) == 0 {
		return nil
	}

	title := "Note: software alternatives available"
	if maxSeverity == SeverityCritical {
		title = "Important: required software not available"
	}
	return &Warning{
		Category:      CategorySoftware,
		Severity:      maxSeverity,
		Title:         title,
		Message:       fmt.Sprintf("The following software does not run natively on Linux: %s.", strings.Join(affected, ", ")),
		Suggestion:    strings.Join(suggestions, " "),
		AffectedItems: affected,
		Links: []Link{
			{Text: "WineHQ AppDB - check compatibility", URL: "https://appdb.winehq.org"},
			{Text: "AlternativeTo - software alternatives", URL: "https://alternativeto.net"},
		},
	}
}

func checkHardware(a quiz.Answers) *Warning {
	var findings, suggestions []string

	if a.GPU == quiz.GPUNvidia {
		findings = append(findings, "NVIDIA graphics card detected")
		suggestions = append(suggestions, "NVIDIA drivers sometimes require manual installation. Distributions like Pop!_OS, Linux Mint or Nobara make this easier.")
	}
	if a.GPU == quiz.GPUIntelArc {
		findings = append(findings, "Intel Arc graphics card detected")
		suggestions = append(suggestions, "Intel Arc requires a fairly new kernel (6.2+ for the A series, 6.11+ for the B series) and recent Mesa drivers. Rolling-release distributions like Arch, Fedora or openSUSE Tumbleweed offer the best support.")
	}
	if a.ComputerAge == quiz.AgeVintage {
		findings = append(findings, "Very old computer (10+ years)")
		suggestions = append(suggestions, "Choose a lightweight distribution (MX Linux, antiX) with XFCE or LXQt. Avoid resource-hungry DEs like GNOME or KDE.")
	}
	if a.RAM == quiz.RAM2GB {
		findings = append(findings, "Only 2 GB RAM")
		suggestions = append(suggestions, "With 2 GB RAM you should definitely pick a light distribution and a minimal desktop like XFCE, LXQt or a tiling WM.")
	}

	if len(findings) == 0 {
		return nil
	}
	return &Warning{
		Category:      CategoryHardware,
		Severity:      SeverityWarning,
		Title:         "Hardware notes",
		Message:       strings.Join(findings, ". ") + ".",
		Suggestion:    strings.Join(suggestions, " "),
		AffectedItems: findings,
	}
}

func checkCompetitiveGaming(a quiz.Answers) *Warning {
	if !a.HasGamingType(quiz.GamingCompetitive) {
		return nil
	}
	return &Warning{
		Category:      CategoryGeneral,
		Severity:      SeverityWarning,
		Title:         "Note on competitive gaming",
		Message:       "Many competitive multiplayer games use anti-cheat software that does not work on Linux. This particularly affects games like Valorant, Fortnite, and some Call of Duty titles.",
		Suggestion:    "Before switching, check on areweanticheatyet.com whether your games are supported. For incompatible games you can set up dual boot.",
		AffectedItems: []string{"Competitive multiplayer games"},
		Links: []Link{
			{Text: "Are We Anti-Cheat Yet?", URL: "https://areweanticheatyet.com"},
		},
	}
}

func checkSecureBoot(a quiz.Answers) *Warning {
	if a.SecureBoot != quiz.SecureBootRequired && a.SecureBoot != quiz.SecureBootPreferred {
		return nil
	}

	if a.SecureBoot == quiz.SecureBootRequired {
		return &Warning{
			Category:      CategoryHardware,
			Severity:      SeverityCritical,
			Title:         "Important: Secure Boot is required",
			Message:       "You need Secure Boot support (e.g. for dual boot with Windows 11). Some distributions do not support Secure Boot, or only partially.",
			Suggestion:    "Distributions like Ubuntu, Fedora, openSUSE and Linux Mint support Secure Boot out of the box. On others, Secure Boot may have to be disabled.",
			AffectedItems: []string{"Secure Boot compatibility"},
		}
	}
	return &Warning{
		Category:      CategoryHardware,
		Severity:      SeverityWarning,
		Title:         "Note: Secure Boot preferred",
		Message:       "You would like to keep Secure Boot enabled. Not every distribution supports this fully.",
		Suggestion:    "Distributions like Ubuntu, Fedora, openSUSE and Linux Mint support Secure Boot out of the box. On others, Secure Boot may have to be disabled.",
		AffectedItems: []string{"Secure Boot compatibility"},
	}
}
