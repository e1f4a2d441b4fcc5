package particle

import "math/rand/v2"

// VariantPolicy picks the variant of particle i in a burst of count
type VariantPolicy interface {
	Variant(i, count int, rng *rand.Rand) Variant
}

// SplitPolicy picks Primary with probability PrimaryChance, Secondary otherwise
type SplitPolicy struct {
	Primary       Variant
	Secondary     Variant
	PrimaryChance float64
}

func (p SplitPolicy) Variant(_, _ int, rng *rand.Rand) Variant {
	if rng.Float64() < p.PrimaryChance {
		return p.Primary
	}
	return p.Secondary
}

// LeadingPolicy makes the first Leading particles Special, independent of randomness
type LeadingPolicy struct {
	Special Variant
	Regular Variant
	Leading int
}

func (p LeadingPolicy) Variant(i, _ int, _ *rand.Rand) Variant {
	if i < p.Leading {
		return p.Special
	}
	return p.Regular
}

// FixedPolicy always returns one variant
type FixedPolicy Variant

func (p FixedPolicy) Variant(_, _ int, _ *rand.Rand) Variant {
	return Variant(p)
}
