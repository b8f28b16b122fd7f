package game

import (
	"log"
	"math/rand/v2"

	"github.com/decker502/blockdefense/pkg/components"
	"github.com/decker502/blockdefense/pkg/config"
	"github.com/decker502/blockdefense/pkg/systems"
)

// Simulation owns one round of the game: every pool, every system and the
// game-over latch. Nothing is shared through package-level state, so tests can
// run any number of simulations side by side.
//
// Tick order:
//  1. input state machine (select, place, rotate)
//  2. block spawn timer
//  3. grid decay
//  4. enemy spawn timer and movement
//  5. particle advance
type Simulation struct {
	Grid      components.GridComponent
	Enemies   components.EnemyPool
	Inventory components.InventoryComponent
	Bursts    components.BurstPool
	Input     components.InputStateComponent
	Score     components.ScoreComponent

	GridSystem     *systems.GridSystem
	EnemySystem    *systems.EnemySystem
	BlockSystem    *systems.BlockSystem
	ParticleSystem *systems.ParticleSystem
	InputSystem    *systems.InputSystem
	RenderSystem   *systems.RenderSystem

	gameOver bool
}

// NewSimulation wires all systems over freshly zeroed state.
//
// Parameters:
//   - cfg: validated gameplay configuration
//   - rng: source for spawns, block shapes and particles
func NewSimulation(cfg *config.GameplayConfig, rng *rand.Rand) *Simulation {
	s := &Simulation{}

	s.GridSystem = systems.NewGridSystem(&s.Grid)
	s.ParticleSystem = systems.NewParticleSystem(&s.Bursts, cfg.Particle, rng)
	s.EnemySystem = systems.NewEnemySystem(&s.Enemies, s.ParticleSystem,
		systems.NewDifficultyEngine(cfg.Enemy), cfg.Enemy, rng)
	s.BlockSystem = systems.NewBlockSystem(&s.Inventory, s.GridSystem, s.EnemySystem,
		&s.Score, cfg.Block, rng)
	s.InputSystem = systems.NewInputSystem(&s.Input, &s.Inventory, s.BlockSystem)
	s.RenderSystem = systems.NewRenderSystem(&s.Grid, &s.Enemies, &s.Inventory, &s.Input,
		&s.Bursts, &s.Score, s.BlockSystem, cfg.Render)

	s.EnemySystem.SetGoalReachedHandler(s.onGoalReached)
	return s
}

// Update advances the round by dt seconds. It does nothing once the game is over.
func (s *Simulation) Update(dt float64, in systems.FrameInput) {
	if s.gameOver {
		return
	}

	s.InputSystem.Update(in)
	s.BlockSystem.Update(dt)
	s.GridSystem.DecayAll()
	s.EnemySystem.Update(dt)
	s.ParticleSystem.Advance(dt)

	if !s.gameOver {
		s.Score.Survived += dt
	}
}

// Draw issues this frame's draw calls in layer order.
func (s *Simulation) Draw(canvas systems.Canvas) {
	s.RenderSystem.Draw(canvas, s.gameOver)
}

// IsGameOver reports whether an enemy has reached the goal cell.
func (s *Simulation) IsGameOver() bool {
	return s.gameOver
}

// Reset starts a new round with empty pools and the initial spawn cadence.
func (s *Simulation) Reset() {
	s.Grid = components.GridComponent{}
	s.Score = components.ScoreComponent{}
	s.EnemySystem.Reset()
	s.BlockSystem.Reset()
	s.ParticleSystem.Reset()
	s.InputSystem.Reset()
	s.gameOver = false
	log.Printf("[Simulation] round reset")
}

func (s *Simulation) onGoalReached(slot int) {
	s.gameOver = true
	log.Printf("[Simulation] game over: enemy %d reached the goal (kills=%d, blocks=%d, survived=%.1fs)",
		slot, s.Score.Kills, s.Score.BlocksPlaced, s.Score.Survived)
}
