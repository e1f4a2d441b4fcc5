package render

import (
	"testing"

	"github.com/lixenwraith/yes-or-no/particle"
)

func TestBlend(t *testing.T) {
	black := RGB{0, 0, 0}
	white := RGB{255, 255, 255}

	tests := []struct {
		name  string
		alpha float64
		want  RGB
	}{
		{"Negative alpha", -0.5, black},
		{"Zero alpha", 0, black},
		{"Half alpha", 0.5, RGB{127, 127, 127}},
		{"Full alpha", 1, white},
		{"Over full alpha", 1.5, white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(black, white, tt.alpha); got != tt.want {
				t.Errorf("Blend(%f) = %v, want %v", tt.alpha, got, tt.want)
			}
		})
	}
}

func TestAddClamps(t *testing.T) {
	got := Add(RGB{200, 100, 0}, RGB{100, 100, 100}, 1)
	want := RGB{255, 200, 100}
	if got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
}

func TestScaleClamps(t *testing.T) {
	if got := Scale(RGB{200, 10, 0}, 2); got != (RGB{255, 20, 0}) {
		t.Errorf("Scale = %v", got)
	}
}

func TestGetDamageColorPulse(t *testing.T) {
	dim := GetDamageColor(0)
	bright := GetDamageColor(1)

	if dim.R == 0 {
		t.Error("Damage border should stay visible at the dim end of the pulse")
	}
	if bright != RgbDamage {
		t.Errorf("Bright end = %v, want %v", bright, RgbDamage)
	}
	if GetDamageColor(-1) != dim || GetDamageColor(2) != bright {
		t.Error("Phase should clamp to [0, 1]")
	}
}

func TestVariantColorsDistinct(t *testing.T) {
	seen := make(map[RGB]particle.Variant)
	for _, v := range []particle.Variant{particle.VariantAsh, particle.VariantBroken, particle.VariantHeart, particle.VariantSparkle} {
		c := variantColor(v)
		if prev, dup := seen[c]; dup {
			t.Errorf("%s and %s share color %v", prev, v, c)
		}
		seen[c] = v
	}
}
