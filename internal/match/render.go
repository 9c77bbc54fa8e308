package match

import "fmt"

// Renderer turns a fired rule into user-facing prose. Detection and
// wording are deliberately separate so wording (or language) can change
// without touching the rules.
type Renderer interface {
	Render(r Reason) string
}

// EnglishRenderer is the default prose renderer.
type EnglishRenderer struct{}

// Render implements Renderer.
func (EnglishRenderer) Render(r Reason) string {
	distro := r.Params["distro"]
	de := r.Params["de"]

	switch r.Rule {
	case RuleBeginnerFit:
		return fmt.Sprintf("%s is especially beginner-friendly and easy to use.", distro)
	case RuleStability:
		return fmt.Sprintf("You value stability - %s is known for its reliability.", distro)
	case RuleCuttingEdge:
		return fmt.Sprintf("%s always gives you the latest software.", distro)
	case RuleGamingFit:
		return fmt.Sprintf("Great for gaming - %s has excellent game support.", distro)
	case RulePrivacyFocus:
		return fmt.Sprintf("%s puts particular emphasis on your privacy.", distro)
	case RuleLightweight:
		return fmt.Sprintf("%s is light on resources and runs well on older hardware.", distro)
	case RuleNvidiaSupport:
		return "Good NVIDIA support out of the box."
	case RuleIntelArcSupport:
		return "Excellent Intel Arc support thanks to recent kernels and Mesa drivers."
	case RuleWindowsLikeDE:
		return fmt.Sprintf("%s offers a Windows-like layout - ideal for switchers.", de)
	case RuleMacLikeDE:
		return fmt.Sprintf("%s has an elegant, macOS-like design.", de)
	case RuleTilingDE:
		return fmt.Sprintf("%s supports tiling for maximum productivity.", de)
	case RuleCustomizable:
		return fmt.Sprintf("%s can be tailored to your liking.", distro)
	case RuleGermanCommunity:
		return "Large German-speaking community for support and help."
	case RuleLearningDistro:
		return "Ideal for learning in depth - you will understand how everything works."
	case RuleAURAccess:
		return "Access to the AUR with thousands of additional packages."
	case RuleFlatpakSupport:
		return "Flatpak support for additional software."
	case RuleSecureBootFull:
		return fmt.Sprintf("%s fully supports Secure Boot - ideal for dual boot with Windows 11.", distro)
	case RuleSolidChoice:
		return fmt.Sprintf("%s with %s is a solid choice for your requirements.", distro, de)

	case WarnExperienceGap:
		return fmt.Sprintf("%s requires more Linux experience. As a newcomer you may run into challenges.", distro)
	case WarnHeavyDERAM:
		return fmt.Sprintf("%s needs a fair amount of RAM. With %s GB it could get tight.", de, r.Params["ram"])
	case WarnNvidiaManual:
		return fmt.Sprintf("Installing NVIDIA drivers on %s may require extra steps.", distro)
	case WarnIntelArcKernel:
		return fmt.Sprintf("Intel Arc requires a recent kernel (6.2+) and Mesa drivers. On %s extra steps may be needed.", distro)
	case WarnRollingUnstable:
		return fmt.Sprintf("%s is a rolling-release distribution. Updates can occasionally cause problems.", distro)
	case WarnSlowOnOldHardware:
		return fmt.Sprintf("%s could be slow on older hardware.", distro)
	case WarnTilingLearningCurve:
		return fmt.Sprintf("%s is a tiling window manager and takes getting used to.", de)
	case WarnPrivacyNoGaming:
		return fmt.Sprintf("%s is not suitable for gaming.", distro)
	case WarnPrivacyDailyUse:
		return fmt.Sprintf("%s has limitations for everyday use.", distro)
	case WarnSecureBootNone:
		return fmt.Sprintf("%s does not support Secure Boot. You will have to disable Secure Boot in the BIOS.", distro)
	case WarnSecureBootPartial:
		return fmt.Sprintf("Secure Boot on %s requires manual configuration (enrolling a MOK key).", distro)
	}
	return string(r.Rule)
}

// RenderAll renders a reason list with the given renderer.
func RenderAll(r Renderer, reasons []Reason) []string {
	out := make([]string, len(reasons))
	for i, re := range reasons {
		out[i] = r.Render(re)
	}
	return out
}
