package render

import (
	"github.com/lixenwraith/yes-or-no/particle"
)

// Palette
var (
	RgbBackground   = RGB{26, 11, 22}    // Deep plum
	RgbTitle        = RGB{255, 182, 193} // Light pink
	RgbSubtitle     = RGB{200, 160, 180} // Muted pink
	RgbCounter      = RGB{180, 180, 180} // Gray
	RgbContainer    = RGB{70, 40, 60}    // Dim border
	RgbAcceptFg     = RGB{255, 255, 255} // White
	RgbAcceptBg     = RGB{220, 40, 90}   // Raspberry
	RgbDeclineFg    = RGB{40, 40, 40}    // Near black
	RgbDeclineBg    = RGB{200, 200, 210} // Pale gray
	RgbDeclineBurnt = RGB{90, 80, 80}    // Charred
	RgbDamage       = RGB{255, 0, 0}     // Error red
	RgbReveal       = RGB{255, 255, 255} // Flash white
	RgbAsh          = RGB{150, 150, 150} // Ash gray
	RgbBroken       = RGB{170, 60, 80}   // Dull red
	RgbHeart        = RGB{255, 40, 80}   // Bright red
	RgbSparkle      = RGB{255, 130, 200} // Hot pink
	RgbFloatHeart   = RGB{120, 40, 70}   // Faint background heart
	RgbFinal        = RGB{255, 90, 130}  // Final message
	RgbDebugFg      = RGB{0, 255, 255}   // Cyan
	RgbDebugBg      = RGB{0, 0, 0}       // Black
)

// variantColor returns the fully opaque color for a particle variant
func variantColor(v particle.Variant) RGB {
	switch v {
	case particle.VariantAsh:
		return RgbAsh
	case particle.VariantBroken:
		return RgbBroken
	case particle.VariantHeart:
		return RgbHeart
	case particle.VariantSparkle:
		return RgbSparkle
	default:
		return RgbTitle
	}
}

// GetDamageColor returns the border tint for a damage window at the given pulse phase
// phase is 0.0 to 1.0; the tint never fully fades so the border stays visible
func GetDamageColor(phase float64) RGB {
	if phase < 0 {
		phase = 0
	}
	if phase > 1 {
		phase = 1
	}
	return Blend(Scale(RgbDamage, 0.45), RgbDamage, phase)
}
