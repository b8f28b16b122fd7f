package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/blockdefense/pkg/components"
	"github.com/decker502/blockdefense/pkg/config"
)

func newTestParticleSystem() (*ParticleSystem, *components.BurstPool) {
	pool := &components.BurstPool{}
	return NewParticleSystem(pool, config.DefaultGameplayConfig().Particle, rand.New(rand.NewPCG(1, 2))), pool
}

func TestSpawnBurstInitializesAllParticles(t *testing.T) {
	ps, pool := newTestParticleSystem()
	cfg := config.DefaultGameplayConfig().Particle
	origin := components.Point{X: 300, Y: 200}

	require.True(t, ps.SpawnBurst(origin))

	burst := pool.Bursts[0]
	assert.True(t, burst.Active)
	require.Len(t, burst.Particles, config.MaxParticles)
	for _, p := range burst.Particles {
		assert.True(t, p.Enabled)
		assert.Equal(t, origin, p.Position)
		assert.Equal(t, cfg.Color.RGBA(), p.Color)
		assert.GreaterOrEqual(t, p.Lifetime, cfg.LifetimeMin)
		assert.Less(t, p.Lifetime, cfg.LifetimeMax)
		assert.GreaterOrEqual(t, p.Velocity.X, cfg.VelocityMin)
		assert.Less(t, p.Velocity.X, cfg.VelocityMax)
		assert.GreaterOrEqual(t, p.Velocity.Y, cfg.VelocityMin)
		assert.Less(t, p.Velocity.Y, cfg.VelocityMax)
		assert.GreaterOrEqual(t, p.Size, cfg.SizeMin)
		assert.Less(t, p.Size, cfg.SizeMax)
	}
}

func TestSpawnBurstUsesFirstInactiveSlot(t *testing.T) {
	ps, pool := newTestParticleSystem()

	require.True(t, ps.SpawnBurst(components.Point{}))
	require.True(t, ps.SpawnBurst(components.Point{}))
	assert.Equal(t, 2, ps.ActiveCount())

	pool.Bursts[0].Active = false
	require.True(t, ps.SpawnBurst(components.Point{X: 5}))
	assert.Equal(t, 5.0, pool.Bursts[0].Particles[0].Position.X)
	assert.False(t, pool.Bursts[2].Active)
}

func TestSpawnBurstPoolExhausted(t *testing.T) {
	ps, _ := newTestParticleSystem()

	for i := 0; i < config.MaxBursts; i++ {
		require.True(t, ps.SpawnBurst(components.Point{}))
	}
	assert.False(t, ps.SpawnBurst(components.Point{}))
	assert.Equal(t, config.MaxBursts, ps.ActiveCount())
}

func TestAdvanceIntegratesPosition(t *testing.T) {
	ps, pool := newTestParticleSystem()
	require.True(t, ps.SpawnBurst(components.Point{X: 100, Y: 100}))

	p := &pool.Bursts[0].Particles[0]
	p.Velocity = components.Point{X: 60, Y: -30}
	p.Lifetime = 1

	ps.Advance(0.5)

	assert.True(t, p.Enabled)
	assert.InDelta(t, 0.5, p.Lifetime, 1e-9)
	assert.InDelta(t, 130, p.Position.X, 1e-9)
	assert.InDelta(t, 85, p.Position.Y, 1e-9)
}

func TestAdvanceExpiresBurst(t *testing.T) {
	ps, pool := newTestParticleSystem()
	require.True(t, ps.SpawnBurst(components.Point{}))

	// dt 超过所有粒子的寿命
	ps.Advance(config.DefaultGameplayConfig().Particle.LifetimeMax + 0.1)

	assert.False(t, pool.Bursts[0].Active)
	for _, p := range pool.Bursts[0].Particles {
		assert.False(t, p.Enabled)
	}
	assert.Equal(t, 0, ps.ActiveCount())

	// 失效的槽位可以被复用
	require.True(t, ps.SpawnBurst(components.Point{}))
	assert.True(t, pool.Bursts[0].Active)
}

func TestAdvanceKeepsBurstWhileAnyParticleAlive(t *testing.T) {
	ps, pool := newTestParticleSystem()
	require.True(t, ps.SpawnBurst(components.Point{}))

	for j := range pool.Bursts[0].Particles {
		pool.Bursts[0].Particles[j].Lifetime = 0.1
	}
	pool.Bursts[0].Particles[3].Lifetime = 2

	ps.Advance(0.5)
	assert.True(t, pool.Bursts[0].Active)
	assert.True(t, pool.Bursts[0].Particles[3].Enabled)
	assert.False(t, pool.Bursts[0].Particles[0].Enabled)

	ps.Advance(2)
	assert.False(t, pool.Bursts[0].Active)
}
