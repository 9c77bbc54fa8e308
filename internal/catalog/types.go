// Package catalog provides the static reference data the recommendation
// engine operates on: Linux distributions, desktop environments, and game
// compatibility entries. Catalog values are read-only after loading; no
// scoring code mutates them.
package catalog

// Release model constants.
const (
	ReleaseFixed       = "fixed"
	ReleaseRolling     = "rolling"
	ReleaseSemiRolling = "semi-rolling"
	ReleaseImmutable   = "immutable"
)

// Secure Boot support levels.
const (
	SecureBootNone    = "none"
	SecureBootPartial = "partial"
	SecureBootFull    = "full"
)

// Target audience tags.
const (
	AudienceBeginner     = "beginner"
	AudienceIntermediate = "intermediate"
	AudienceAdvanced     = "advanced"
	AudienceDeveloper    = "developer"
	AudienceGamer        = "gamer"
	AudienceServer       = "server"
	AudiencePrivacy      = "privacy"
)

// Distro is a single Linux distribution catalog entry. All suitability
// scores are on a 0-10 scale.
type Distro struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Website     string `yaml:"website,omitempty" json:"website,omitempty"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
	BasedOn     string `yaml:"basedOn,omitempty" json:"basedOn,omitempty"`

	BeginnerFriendly int `yaml:"beginnerFriendly" json:"beginnerFriendly"`
	Stability        int `yaml:"stability" json:"stability"`
	CuttingEdge      int `yaml:"cuttingEdge" json:"cuttingEdge"`
	Customizability  int `yaml:"customizability" json:"customizability"`
	Performance      int `yaml:"performance" json:"performance"`
	GamingSupport    int `yaml:"gamingSupport" json:"gamingSupport"`
	HardwareSupport  int `yaml:"hardwareSupport" json:"hardwareSupport"`
	CommunitySupport int `yaml:"communitySupport" json:"communitySupport"`
	ProfessionalUse  int `yaml:"professionalUse" json:"professionalUse"`
	PrivacyFocus     int `yaml:"privacyFocus" json:"privacyFocus"`

	AvailableDEs []string `yaml:"availableDEs" json:"availableDEs"`
	DefaultDE    string   `yaml:"defaultDE" json:"defaultDE"`

	PackageManager string `yaml:"packageManager,omitempty" json:"packageManager,omitempty"`
	HasAUR         bool   `yaml:"hasAUR" json:"hasAUR"`
	HasFlatpak     bool   `yaml:"hasFlatpak" json:"hasFlatpak"`
	HasSnap        bool   `yaml:"hasSnap" json:"hasSnap"`

	TargetAudience []string `yaml:"targetAudience" json:"targetAudience"`
	ReleaseModel   string   `yaml:"releaseModel" json:"releaseModel"`

	MinRAM     float64 `yaml:"minRAM" json:"minRAM"`         // GB
	MinStorage int     `yaml:"minStorage" json:"minStorage"` // GB

	InstallDifficulty int      `yaml:"installDifficulty,omitempty" json:"installDifficulty,omitempty"`
	Features          []string `yaml:"features,omitempty" json:"features,omitempty"`

	SecureBootSupport string `yaml:"secureBootSupport" json:"secureBootSupport"`

	// Capability tags. These replace id allow-lists scattered across the
	// scorer and the reason generator; they are assigned at data-definition
	// time so both stay in sync.
	NvidiaFriendly        bool `yaml:"nvidiaFriendly" json:"nvidiaFriendly"`
	IntelArcFriendly      bool `yaml:"intelArcFriendly" json:"intelArcFriendly"`
	StrongGermanCommunity bool `yaml:"strongGermanCommunity" json:"strongGermanCommunity"`
	LearningOriented      bool `yaml:"learningOriented" json:"learningOriented"`
	MaxPrivacy            bool `yaml:"maxPrivacy" json:"maxPrivacy"`
}

// HasAudience reports whether the distro targets the given audience tag.
func (d *Distro) HasAudience(tag string) bool {
	for _, a := range d.TargetAudience {
		if a == tag {
			return true
		}
	}
	return false
}

// DesktopEnvironment is a graphical shell catalog entry. Style affinity
// scores are on a 0-10 scale.
type DesktopEnvironment struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`

	WindowsLike      int `yaml:"windowsLike" json:"windowsLike"`
	MacLike          int `yaml:"macLike" json:"macLike"`
	ModernLook       int `yaml:"modernLook" json:"modernLook"`
	ResourceUsage    int `yaml:"resourceUsage" json:"resourceUsage"`
	BeginnerFriendly int `yaml:"beginnerFriendly" json:"beginnerFriendly"`

	GamingFriendly  int  `yaml:"gamingFriendly" json:"gamingFriendly"`
	Customizability int  `yaml:"customizability" json:"customizability"`
	TilingSupport   bool `yaml:"tilingSupport" json:"tilingSupport"`

	IdleRAM int `yaml:"idleRAM" json:"idleRAM"` // MB
}

// Game compatibility status values.
const (
	StatusNative         = "native"
	StatusProtonPlatinum = "proton-platinum"
	StatusProtonGold     = "proton-gold"
	StatusProtonSilver   = "proton-silver"
	StatusProtonBronze   = "proton-bronze"
	StatusPartial        = "partial"
	StatusBroken         = "broken"
	StatusAntiCheat      = "anticheat"
)

// Anti-cheat classification values.
const (
	AntiCheatNone        = "none"
	AntiCheatServerSide  = "server-side"
	AntiCheatNonKernel   = "non-kernel"
	AntiCheatKernelLevel = "kernel-level"
)

// Game is a game compatibility catalog entry.
type Game struct {
	ID            string `yaml:"id" json:"id"`
	Name          string `yaml:"name" json:"name"`
	Status        string `yaml:"status" json:"status"`
	AntiCheat     string `yaml:"antiCheat,omitempty" json:"antiCheat,omitempty"`
	AntiCheatType string `yaml:"antiCheatType" json:"antiCheatType"`
	Category      string `yaml:"category,omitempty" json:"category,omitempty"`
	Popular       bool   `yaml:"popular" json:"popular"`
}

// Problematic reports whether the game cannot be played or needs workarounds.
func (g *Game) Problematic() bool {
	return g.Status == StatusAntiCheat || g.Status == StatusBroken || g.Status == StatusPartial
}

// Works reports whether the game runs on Linux in some form.
func (g *Game) Works() bool {
	switch g.Status {
	case StatusNative, StatusProtonPlatinum, StatusProtonGold, StatusPartial:
		return true
	}
	return false
}
