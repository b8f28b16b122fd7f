package systems

import (
	"math/rand/v2"

	"github.com/decker502/blockdefense/pkg/components"
	"github.com/decker502/blockdefense/pkg/config"
)

// ParticleSystem manages the fixed-capacity pool of kill bursts.
//
// Bursts are never freed: a burst whose particles have all expired becomes
// inactive and is reused by the next SpawnBurst call.
type ParticleSystem struct {
	pool *components.BurstPool
	cfg  config.ParticleConfig
	rng  *rand.Rand
}

// NewParticleSystem creates a new ParticleSystem instance.
func NewParticleSystem(pool *components.BurstPool, cfg config.ParticleConfig, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		pool: pool,
		cfg:  cfg,
		rng:  rng,
	}
}

// SpawnBurst activates the first inactive burst at origin.
// Every particle gets a random lifetime, velocity and size within the configured ranges.
// Returns false (and does nothing) when every burst is in use.
func (ps *ParticleSystem) SpawnBurst(origin components.Point) bool {
	for i := range ps.pool.Bursts {
		burst := &ps.pool.Bursts[i]
		if burst.Active {
			continue
		}

		for j := range burst.Particles {
			burst.Particles[j] = components.Particle{
				Position: origin,
				Velocity: components.Point{
					X: ps.randRange(ps.cfg.VelocityMin, ps.cfg.VelocityMax),
					Y: ps.randRange(ps.cfg.VelocityMin, ps.cfg.VelocityMax),
				},
				Lifetime: ps.randRange(ps.cfg.LifetimeMin, ps.cfg.LifetimeMax),
				Size:     ps.randRange(ps.cfg.SizeMin, ps.cfg.SizeMax),
				Color:    ps.cfg.Color.RGBA(),
				Enabled:  true,
			}
		}
		burst.Active = true
		return true
	}
	return false
}

// Advance ages every enabled particle by dt.
// A particle whose lifetime drops below zero is disabled; otherwise its
// position is integrated by velocity * dt. A burst with no enabled particles
// left becomes inactive.
func (ps *ParticleSystem) Advance(dt float64) {
	for i := range ps.pool.Bursts {
		burst := &ps.pool.Bursts[i]
		if !burst.Active {
			continue
		}

		alive := 0
		for j := range burst.Particles {
			p := &burst.Particles[j]
			if !p.Enabled {
				continue
			}

			p.Lifetime -= dt
			if p.Lifetime < 0 {
				p.Enabled = false
				continue
			}

			p.Position = p.Position.Add(p.Velocity.Scale(dt))
			alive++
		}

		if alive == 0 {
			burst.Active = false
		}
	}
}

// ActiveCount returns the number of active bursts.
func (ps *ParticleSystem) ActiveCount() int {
	n := 0
	for i := range ps.pool.Bursts {
		if ps.pool.Bursts[i].Active {
			n++
		}
	}
	return n
}

// Reset deactivates every burst.
func (ps *ParticleSystem) Reset() {
	*ps.pool = components.BurstPool{}
}

// randRange returns a uniform value in [min, max).
func (ps *ParticleSystem) randRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + ps.rng.Float64()*(max-min)
}
