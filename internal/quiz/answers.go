// Package quiz defines the closed answer schema for the questionnaire.
// Each question is a typed field: single-choice questions are string-typed
// enums, multi-choice questions are slices. Invalid question/answer
// combinations are unrepresentable once parsed; unknown raw values are
// silently dropped so a partially answered or stale answers map never fails.
package quiz

// Question ids accepted in a raw answers map.
const (
	QExperience   = "experience"
	QPrimaryUse   = "primary-use"
	QSecondary    = "secondary-uses"
	QGamingType   = "gaming-type"
	QGames        = "specific-games"
	QComputerAge  = "computer-age"
	QRAM          = "ram"
	QGPU          = "gpu"
	QDesktopStyle = "desktop-style"
	QCustomize    = "customization"
	QStability    = "stability"
	QSoftware     = "software-requirements"
	QLearning     = "learning"
	QLanguage     = "language"
	QPrivacy      = "privacy-level"
	QSecureBoot   = "secure-boot"
)

// Experience is the self-reported Linux experience answer.
type Experience string

// Experience values.
const (
	ExperienceNone         Experience = "none"
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
	ExperienceExpert       Experience = "expert"
)

// PrimaryUse is the main intended use of the system.
type PrimaryUse string

// PrimaryUse values.
const (
	UseDaily       PrimaryUse = "daily"
	UseGaming      PrimaryUse = "gaming"
	UseDevelopment PrimaryUse = "development"
	UseCreative    PrimaryUse = "creative"
	UseServer      PrimaryUse = "server"
	UseLearning    PrimaryUse = "learning"
	UsePrivacy     PrimaryUse = "privacy"
)

// SecondaryUse is an additional, non-exclusive use (multi-choice).
type SecondaryUse string

// SecondaryUse values.
const (
	SecondaryGamingCasual   SecondaryUse = "gaming-casual"
	SecondaryCoding         SecondaryUse = "coding"
	SecondaryVideoEditing   SecondaryUse = "video-editing"
	SecondaryGraphics       SecondaryUse = "graphics"
	SecondaryVirtualization SecondaryUse = "virtualization"
)

// GamingType describes what kind of games the user plays (multi-choice).
type GamingType string

// GamingType values.
const (
	GamingCompetitive GamingType = "competitive"
	GamingAAA         GamingType = "aaa"
	GamingCasual      GamingType = "casual"
	GamingIndie       GamingType = "indie"
)

// ComputerAge is the age bracket of the user's machine.
type ComputerAge string

// ComputerAge values.
const (
	AgeVintage ComputerAge = "vintage"
	AgeOlder   ComputerAge = "older"
	AgeRecent  ComputerAge = "recent"
	AgeNew     ComputerAge = "new"
)

// RAMSize is the installed memory answer.
type RAMSize string

// RAMSize values.
const (
	RAM2GB  RAMSize = "2gb"
	RAM4GB  RAMSize = "4gb"
	RAM8GB  RAMSize = "8gb"
	RAM16GB RAMSize = "16gb"
	RAM32GB RAMSize = "32gb"
)

// GPU is the graphics hardware answer.
type GPU string

// GPU values.
const (
	GPUNvidia    GPU = "nvidia"
	GPUAMD       GPU = "amd"
	GPUIntelArc  GPU = "intel-arc"
	GPUIntelIGPU GPU = "intel-igpu"
)

// DesktopStyle is the preferred desktop look and feel.
type DesktopStyle string

// DesktopStyle values.
const (
	StyleWindows DesktopStyle = "windows"
	StyleMacOS   DesktopStyle = "macos"
	StyleModern  DesktopStyle = "modern"
	StyleTiling  DesktopStyle = "tiling"
)

// Customization is the desired degree of desktop customization.
type Customization string

// Customization values.
const (
	CustomizeMinimal  Customization = "minimal"
	CustomizeSome     Customization = "some"
	CustomizeModerate Customization = "moderate"
	CustomizeFull     Customization = "full"
)

// StabilityPref trades stability against package freshness.
type StabilityPref string

// StabilityPref values.
const (
	StabilityStable       StabilityPref = "stable"
	StabilityBalanced     StabilityPref = "balanced"
	StabilityCuttingEdge  StabilityPref = "cutting-edge"
	StabilityBleedingEdge StabilityPref = "bleeding-edge"
)

// Software is a proprietary-software requirement (multi-choice).
type Software string

// Software values.
const (
	SoftwareMSOffice        Software = "ms-office"
	SoftwareAdobe           Software = "adobe"
	SoftwareAutodesk        Software = "autodesk"
	SoftwareITunes          Software = "itunes"
	SoftwareSpecificWindows Software = "specific-windows"
)

// Learning is the willingness to invest time in learning the system.
type Learning string

// Learning values.
const (
	LearnNone     Learning = "none"
	LearnMinimal  Learning = "minimal"
	LearnModerate Learning = "moderate"
	LearnDeep     Learning = "deep"
)

// Language is the German-language community preference.
type Language string

// Language values.
const (
	LanguageImportant    Language = "important"
	LanguageNotImportant Language = "not-important"
)

// PrivacyLevel is the desired degree of privacy protection.
type PrivacyLevel string

// PrivacyLevel values.
const (
	PrivacyCasual    PrivacyLevel = "casual"
	PrivacyImportant PrivacyLevel = "important"
	PrivacyCritical  PrivacyLevel = "critical"
	PrivacyParanoid  PrivacyLevel = "paranoid"
)

// SecureBoot is the Secure Boot requirement answer.
type SecureBoot string

// SecureBoot values.
const (
	SecureBootRequired  SecureBoot = "required"
	SecureBootPreferred SecureBoot = "preferred"
	SecureBootNotNeeded SecureBoot = "not-needed"
	SecureBootUnknown   SecureBoot = "unknown"
)

// Answers is the complete, strongly-typed questionnaire response. Zero
// values mean "not answered"; every consumer has a documented default for
// that case.
type Answers struct {
	Experience    Experience     `yaml:"experience,omitempty" json:"experience,omitempty"`
	PrimaryUse    PrimaryUse     `yaml:"primary-use,omitempty" json:"primary-use,omitempty"`
	SecondaryUses []SecondaryUse `yaml:"secondary-uses,omitempty" json:"secondary-uses,omitempty"`
	GamingTypes   []GamingType   `yaml:"gaming-type,omitempty" json:"gaming-type,omitempty"`
	SpecificGames []string       `yaml:"specific-games,omitempty" json:"specific-games,omitempty"`
	ComputerAge   ComputerAge    `yaml:"computer-age,omitempty" json:"computer-age,omitempty"`
	RAM           RAMSize        `yaml:"ram,omitempty" json:"ram,omitempty"`
	GPU           GPU            `yaml:"gpu,omitempty" json:"gpu,omitempty"`
	DesktopStyle  DesktopStyle   `yaml:"desktop-style,omitempty" json:"desktop-style,omitempty"`
	Customization Customization  `yaml:"customization,omitempty" json:"customization,omitempty"`
	Stability     StabilityPref  `yaml:"stability,omitempty" json:"stability,omitempty"`
	Software      []Software     `yaml:"software-requirements,omitempty" json:"software-requirements,omitempty"`
	Learning      Learning       `yaml:"learning,omitempty" json:"learning,omitempty"`
	Language      Language       `yaml:"language,omitempty" json:"language,omitempty"`
	PrivacyLevel  PrivacyLevel   `yaml:"privacy-level,omitempty" json:"privacy-level,omitempty"`
	SecureBoot    SecureBoot     `yaml:"secure-boot,omitempty" json:"secure-boot,omitempty"`
}

// HasGamingType reports whether the given gaming type was selected.
func (a *Answers) HasGamingType(t GamingType) bool {
	for _, g := range a.GamingTypes {
		if g == t {
			return true
		}
	}
	return false
}

// HasSecondaryUse reports whether the given secondary use was selected.
func (a *Answers) HasSecondaryUse(u SecondaryUse) bool {
	for _, s := range a.SecondaryUses {
		if s == u {
			return true
		}
	}
	return false
}

// HasSoftware reports whether the given software requirement was selected.
func (a *Answers) HasSoftware(s Software) bool {
	for _, x := range a.Software {
		if x == s {
			return true
		}
	}
	return false
}

// GameSelection returns the selected game ids, treating a "none" entry as
// an empty selection.
func (a *Answers) GameSelection() []string {
	for _, g := range a.SpecificGames {
		if g == "none" {
			return nil
		}
	}
	return a.SpecificGames
}

// SoftwareSelection returns the software requirements, treating a "none"
// entry as an empty selection.
func (a *Answers) SoftwareSelection() []Software {
	for _, s := range a.Software {
		if s == "none" {
			return nil
		}
	}
	return a.Software
}
