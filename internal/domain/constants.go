package domain

// Affiliate platforms a click can be attributed to.
const (
	PlatformSkillbox     = "skillbox"
	PlatformSkillFactory = "skillfactory"
	PlatformGeekBrains   = "geekbrains"
)

// PartnerLinks maps a platform to its affiliate URL.
var PartnerLinks = map[string]string{
	PlatformSkillbox:     "https://l.skbx.pro/DQLFW6",
	PlatformSkillFactory: "https://go.redav.online/26e5202921d69dd1",
	PlatformGeekBrains:   "https://go.redav.online/17d53d9e858961e1",
}

// PlatformNames maps a platform to its display name.
var PlatformNames = map[string]string{
	PlatformSkillbox:     "Skillbox 🎓",
	PlatformSkillFactory: "SkillFactory 🚀",
	PlatformGeekBrains:   "GeekBrains 👨‍💻",
}

// Commissions maps a platform to its affiliate commission range.
var Commissions = map[string]string{
	PlatformSkillbox:     "20-40%",
	PlatformSkillFactory: "20-35%",
	PlatformGeekBrains:   "15-30%",
}

// ValidPlatform reports whether p is one of the known affiliate platforms.
func ValidPlatform(p string) bool {
	_, ok := PartnerLinks[p]
	return ok
}

// PlatformName returns the display name for p, falling back to p itself.
func PlatformName(p string) string {
	if name, ok := PlatformNames[p]; ok {
		return name
	}
	return p
}

// Catalog categories.
const (
	CategoryProgramming = "programming"
	CategoryDesign      = "design"
	CategoryMarketing   = "marketing"
	CategoryAnalytics   = "analytics"
)
