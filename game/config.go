package game

import (
	"time"

	"github.com/lixenwraith/yes-or-no/constants"
	"github.com/lixenwraith/yes-or-no/evade"
	"github.com/lixenwraith/yes-or-no/particle"
)

// Volumes holds per-track playback volume, 0.0 - 1.0
type Volumes struct {
	Heartbeat float64
	Sad       float64
	Happy     float64
}

// Config is the controller's immutable tuning; a restart rebuilds the controller from it
type Config struct {
	MaxAttempts int

	DamageDuration time.Duration
	ShakeDuration  time.Duration
	DestroyDelay   time.Duration
	RemovalDelay   time.Duration
	AcceptSettle   time.Duration

	Volumes Volumes
	Solver  evade.Options

	// Burst templates, Origin is filled in at emission time
	Disintegration particle.Burst
	LightAsh       particle.Burst
	Explosion      particle.Burst
}

// AshTrajectory is the shared motion of both ash bursts
func AshTrajectory() particle.Trajectory {
	return particle.Trajectory{
		MinDistance: constants.AshMinDistance,
		MaxDistance: constants.AshMaxDistance,
		MinDuration: constants.AshMinDuration,
		MaxDuration: constants.AshMaxDuration,
		MinScale:    1,
		MaxScale:    1,
		Lift:        constants.AshLift,
		Overshoot:   constants.AshOvershoot,
		Fall:        constants.AshFall,
		PeakAt:      constants.ParticlePeakAt,
	}
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    constants.MaxAttempts,
		DamageDuration: constants.DamageDuration,
		ShakeDuration:  constants.ShakeDuration,
		DestroyDelay:   constants.DestroyDelay,
		RemovalDelay:   constants.RemovalDelay,
		AcceptSettle:   constants.AcceptSettle,
		Volumes: Volumes{
			Heartbeat: constants.HeartbeatVolume,
			Sad:       constants.SadVolume,
			Happy:     constants.HappyVolume,
		},
		Solver: evade.DefaultOptions(),
		Disintegration: particle.Burst{
			Count:      constants.AshCount,
			Variants:   particle.LeadingPolicy{Special: particle.VariantBroken, Regular: particle.VariantAsh, Leading: constants.AshBroken},
			Trajectory: AshTrajectory(),
			Stagger:    constants.AshStagger,
		},
		LightAsh: particle.Burst{
			Count:      constants.LightAshCount,
			Variants:   particle.LeadingPolicy{Special: particle.VariantBroken, Regular: particle.VariantAsh, Leading: constants.LightAshBroken},
			Trajectory: AshTrajectory(),
			Stagger:    constants.AshStagger,
		},
		Explosion: particle.Burst{
			Count:    constants.ExplosionCount,
			Variants: particle.SplitPolicy{Primary: particle.VariantHeart, Secondary: particle.VariantSparkle, PrimaryChance: constants.ExplosionHeartChance},
			Trajectory: particle.Trajectory{
				MinDistance: constants.ExplosionMinDistance,
				MaxDistance: constants.ExplosionMaxDistance,
				MinDuration: constants.ExplosionMinDuration,
				MaxDuration: constants.ExplosionMaxDuration,
				MinScale:    constants.ExplosionMinScale,
				MaxScale:    constants.ExplosionMaxScale,
				Overshoot:   constants.ExplosionOvershoot,
				PeakAt:      constants.ParticlePeakAt,
			},
			Stagger: constants.ExplosionStagger,
		},
	}
}
