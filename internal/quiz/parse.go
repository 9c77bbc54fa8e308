package quiz

// RawAnswers is the loosely-typed wire form produced by the questionnaire
// frontend: question id to either a single answer id or a list of ids.
type RawAnswers map[string]any

// Parse converts a raw answers map into the typed schema. It never fails:
// unknown question ids are ignored, unrecognized answer values are dropped,
// and a scalar where a list is expected (or vice versa) is coerced.
func Parse(raw RawAnswers) Answers {
	var a Answers

	a.Experience = Experience(pickOne(raw[QExperience], validExperience))
	a.PrimaryUse = PrimaryUse(pickOne(raw[QPrimaryUse], validPrimaryUse))
	for _, v := range pickMany(raw[QSecondary], validSecondaryUse) {
		a.SecondaryUses = append(a.SecondaryUses, SecondaryUse(v))
	}
	for _, v := range pickMany(raw[QGamingType], validGamingType) {
		a.GamingTypes = append(a.GamingTypes, GamingType(v))
	}
	// Game ids validate against the game catalog downstream, not here; the
	// schema stays independent of catalog contents.
	a.SpecificGames = strList(raw[QGames])
	a.ComputerAge = ComputerAge(pickOne(raw[QComputerAge], validComputerAge))
	a.RAM = RAMSize(pickOne(raw[QRAM], validRAM))
	a.GPU = GPU(pickOne(raw[QGPU], validGPU))
	a.DesktopStyle = DesktopStyle(pickOne(raw[QDesktopStyle], validDesktopStyle))
	a.Customization = Customization(pickOne(raw[QCustomize], validCustomization))
	a.Stability = StabilityPref(pickOne(raw[QStability], validStability))
	for _, v := range pickMany(raw[QSoftware], validSoftware) {
		a.Software = append(a.Software, Software(v))
	}
	a.Learning = Learning(pickOne(raw[QLearning], validLearning))
	a.Language = Language(pickOne(raw[QLanguage], validLanguage))
	a.PrivacyLevel = PrivacyLevel(pickOne(raw[QPrivacy], validPrivacyLevel))
	a.SecureBoot = SecureBoot(pickOne(raw[QSecureBoot], validSecureBoot))

	return a
}

var (
	validExperience    = set("none", "beginner", "intermediate", "advanced", "expert")
	validPrimaryUse    = set("daily", "gaming", "development", "creative", "server", "learning", "privacy")
	validSecondaryUse  = set("gaming-casual", "coding", "video-editing", "graphics", "virtualization")
	validGamingType    = set("competitive", "aaa", "casual", "indie")
	validComputerAge   = set("vintage", "older", "recent", "new")
	validRAM           = set("2gb", "4gb", "8gb", "16gb", "32gb")
	validGPU           = set("nvidia", "amd", "intel-arc", "intel-igpu")
	validDesktopStyle  = set("windows", "macos", "modern", "tiling")
	validCustomization = set("minimal", "some", "moderate", "full")
	validStability     = set("stable", "balanced", "cutting-edge", "bleeding-edge")
	validSoftware      = set("ms-office", "adobe", "autodesk", "itunes", "specific-windows", "none")
	validLearning      = set("none", "minimal", "moderate", "deep")
	validLanguage      = set("important", "not-important")
	validPrivacyLevel  = set("casual", "important", "critical", "paranoid")
	validSecureBoot    = set("required", "preferred", "not-needed", "unknown")
)

func set(values ...string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

// strList normalizes a raw value to a string slice. Multi-select answers
// arrive as []any from JSON/YAML decoding, []string from Go callers, or a
// bare string when only one option was chosen.
func strList(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return []string{t}
	case []string:
		return t
	case []any:
		var out []string
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// pickOne returns the first valid value, so a list where a single choice is
// expected degrades to its first recognized entry.
func pickOne(v any, valid map[string]bool) string {
	for _, s := range strList(v) {
		if valid[s] {
			return s
		}
	}
	return ""
}

func pickMany(v any, valid map[string]bool) []string {
	var out []string
	for _, s := range strList(v) {
		if valid[s] {
			out = append(out, s)
		}
	}
	return out
}
