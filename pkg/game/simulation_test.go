package game

import (
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/blockdefense/pkg/components"
	"github.com/decker502/blockdefense/pkg/config"
	"github.com/decker502/blockdefense/pkg/systems"
	"github.com/decker502/blockdefense/pkg/types"
	"github.com/decker502/blockdefense/pkg/utils"
)

const tick = 1.0 / config.TargetTPS

func newTestSimulation() *Simulation {
	return NewSimulation(config.DefaultGameplayConfig(), rand.New(rand.NewPCG(1, 2)))
}

// textCanvas only records DrawText calls
type textCanvas struct {
	texts []string
}

func (c *textCanvas) DrawTexture(types.TextureID, float64, float64, float64, float64, color.Color) {}

func (c *textCanvas) DrawRect(float64, float64, float64, float64, color.Color) {}

func (c *textCanvas) DrawRoundedRect(float64, float64, float64, float64, float64, int, color.Color) {}

func (c *textCanvas) DrawCircle(float64, float64, float64, color.Color) {}

func (c *textCanvas) DrawText(s string, _, _ float64, _ color.Color) {
	c.texts = append(c.texts, s)
}

func TestPlacementKillsEnemyAndSpawnsBurst(t *testing.T) {
	sim := newTestSimulation()
	require.True(t, sim.BlockSystem.AddBlock(systems.BlockCatalog[0]))

	target := components.Cell{X: 2, Y: 2}
	sim.Enemies.Enemies[0] = components.Enemy{
		Enabled:  true,
		State:    components.EnemyWaiting,
		Position: utils.GridToPosition(target),
		Target:   utils.GridToPosition(components.Cell{X: 3, Y: 2}),
		WaitTime: 10,
	}

	sim.Update(tick, systems.FrameInput{Gesture: types.GestureHold, Pointer: systems.InventorySlotCenter(0)})
	require.Equal(t, components.InputSelecting, sim.Input.Phase)

	sim.Update(tick, systems.FrameInput{Gesture: types.GestureNone, Pointer: utils.GridToPosition(target)})

	assert.True(t, sim.Input.LastPlaced)
	assert.False(t, sim.Enemies.Enemies[0].Enabled)
	assert.Equal(t, 1, sim.Score.Kills)
	assert.Equal(t, 1, sim.Score.BlocksPlaced)
	assert.Equal(t, 0, sim.Inventory.Count)
	assert.Equal(t, 1, sim.ParticleSystem.ActiveCount())

	for x := 1; x <= 3; x++ {
		assert.Positive(t, sim.GridSystem.CellAt(components.Cell{X: x, Y: 2}), "cell (%d,2)", x)
	}
	assert.False(t, sim.IsGameOver())
}

func TestEnemyAtGoalEndsGame(t *testing.T) {
	sim := newTestSimulation()
	goal := utils.GridToPosition(systems.GoalCell)
	sim.Enemies.Enemies[3] = components.Enemy{
		Enabled:  true,
		State:    components.EnemyMoving,
		Position: goal,
		Target:   goal,
	}

	sim.Update(tick, systems.FrameInput{})
	require.True(t, sim.IsGameOver())
	assert.False(t, sim.Enemies.Enemies[3].Enabled)

	survived := sim.Score.Survived
	sim.Update(tick, systems.FrameInput{})
	assert.Equal(t, survived, sim.Score.Survived, "update is a no-op after game over")

	canvas := &textCanvas{}
	sim.Draw(canvas)
	assert.Contains(t, canvas.texts, "GAME OVER - tap to restart")
}

func TestResetStartsNewRound(t *testing.T) {
	sim := newTestSimulation()
	goal := utils.GridToPosition(systems.GoalCell)
	sim.Enemies.Enemies[0] = components.Enemy{Enabled: true, State: components.EnemyMoving, Position: goal, Target: goal}
	sim.Grid.Cells[0][0] = 5
	sim.BlockSystem.AddBlock(systems.BlockCatalog[1])
	sim.Update(tick, systems.FrameInput{})
	require.True(t, sim.IsGameOver())

	sim.Reset()

	assert.False(t, sim.IsGameOver())
	assert.Zero(t, sim.GridSystem.BlockedCount())
	assert.Zero(t, sim.EnemySystem.ActiveCount())
	assert.Zero(t, sim.Inventory.Count)
	assert.Equal(t, components.NoSelection, sim.Inventory.Selected)
	assert.Equal(t, components.ScoreComponent{}, sim.Score)
	assert.Equal(t, config.DefaultGameplayConfig().Enemy.SpawnDelay, sim.EnemySystem.SpawnDelay())
}

func TestSpawnCadence(t *testing.T) {
	sim := newTestSimulation()
	cfg := config.DefaultGameplayConfig()

	// a little past the first enemy and first block timers
	for i := 0; i < int(cfg.Block.SpawnDelay*config.TargetTPS)+10; i++ {
		sim.Update(tick, systems.FrameInput{})
	}

	assert.Equal(t, 1, sim.EnemySystem.ActiveCount())
	assert.Equal(t, 1, sim.Inventory.Count)
	assert.InDelta(t, cfg.Enemy.SpawnDelay-cfg.Enemy.SpawnDecrement, sim.EnemySystem.SpawnDelay(), 1e-9)
	assert.False(t, sim.IsGameOver())
}
