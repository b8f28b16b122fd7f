package systems

import (
	"fmt"
	"image/color"

	"github.com/decker502/blockdefense/pkg/components"
	"github.com/decker502/blockdefense/pkg/config"
	"github.com/decker502/blockdefense/pkg/types"
	"github.com/decker502/blockdefense/pkg/utils"
)

// Canvas is the immediate-mode drawing service the render pass writes to.
// Calls are fire-and-forget; call order is z-order.
type Canvas interface {
	DrawTexture(id types.TextureID, x, y, w, h float64, tint color.Color)
	DrawRect(x, y, w, h float64, clr color.Color)
	DrawRoundedRect(x, y, w, h, roundness float64, segments int, clr color.Color)
	DrawCircle(cx, cy, r float64, clr color.Color)
	DrawText(s string, x, y float64, clr color.Color)
}

// Render colors
var (
	slotColor         = color.RGBA{R: 60, G: 60, B: 72, A: 200}
	slotSelectedColor = color.RGBA{R: 250, G: 220, B: 90, A: 220}
	blockColor        = color.RGBA{R: 80, G: 160, B: 230, A: 255}
	rotateButtonColor = color.RGBA{R: 90, G: 90, B: 110, A: 230}
	brokenTileColor   = color.RGBA{R: 30, G: 20, B: 10, A: 255}
	previewFitColor   = color.RGBA{R: 60, G: 200, B: 90, A: 140}
	previewBadColor   = color.RGBA{R: 220, G: 60, B: 60, A: 140}
	hudColor          = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	gameOverColor     = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	whiteTint         = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// RenderSystem draws the simulation state. It never mutates what it reads.
//
// Layer order:
//  1. folder back texture
//  2. enemies
//  3. folder front texture
//  4. main background overlay
//  5. inventory blocks and the rotate control
//  6. broken-tile overlay (disabled unless showBrokenTiles)
//  7. placement preview
//  8. particle bursts
//  9. HUD text
type RenderSystem struct {
	grid      *components.GridComponent
	enemies   *components.EnemyPool
	inventory *components.InventoryComponent
	input     *components.InputStateComponent
	bursts    *components.BurstPool
	score     *components.ScoreComponent
	blocks    *BlockSystem

	showBrokenTiles bool
}

// NewRenderSystem creates a RenderSystem over the given state.
func NewRenderSystem(grid *components.GridComponent, enemies *components.EnemyPool,
	inventory *components.InventoryComponent, input *components.InputStateComponent,
	bursts *components.BurstPool, score *components.ScoreComponent, blocks *BlockSystem,
	cfg config.RenderConfig) *RenderSystem {
	return &RenderSystem{
		grid:            grid,
		enemies:         enemies,
		inventory:       inventory,
		input:           input,
		bursts:          bursts,
		score:           score,
		blocks:          blocks,
		showBrokenTiles: cfg.ShowBrokenTiles,
	}
}

// Draw issues one frame of draw calls.
func (s *RenderSystem) Draw(canvas Canvas, gameOver bool) {
	gridW := float64(config.GridColumns) * config.CellWidth
	gridH := float64(config.GridRows) * config.CellHeight

	canvas.DrawTexture(types.TextureFolderBack, config.GridOffsetX-8, config.GridOffsetY-8, gridW+16, gridH+16, whiteTint)
	s.drawEnemies(canvas)
	canvas.DrawTexture(types.TextureFolderFront, config.GridOffsetX-8, config.GridEndY-16, gridW+16, 40, whiteTint)
	canvas.DrawTexture(types.TextureBackground, config.GridOffsetX, config.GridOffsetY, gridW, gridH, whiteTint)
	s.drawInventory(canvas)
	s.drawBrokenTiles(canvas)
	s.drawPreview(canvas)
	s.drawParticles(canvas)
	s.drawHUD(canvas, gameOver)
}

func (s *RenderSystem) drawEnemies(canvas Canvas) {
	half := config.EnemyDrawSize / 2
	for i := range s.enemies.Enemies {
		enemy := &s.enemies.Enemies[i]
		if !enemy.Enabled {
			continue
		}
		canvas.DrawTexture(types.TextureEnemy, enemy.Position.X-half, enemy.Position.Y-half,
			config.EnemyDrawSize, config.EnemyDrawSize, whiteTint)
	}
}

func (s *RenderSystem) drawInventory(canvas Canvas) {
	for slot := 0; slot < config.MaxHolding; slot++ {
		clr := slotColor
		if slot == s.inventory.Selected {
			clr = slotSelectedColor
		}
		canvas.DrawRoundedRect(
			config.InventoryX+float64(slot)*config.InventorySlotWidth+4, config.InventoryY+4,
			config.InventorySlotWidth-8, config.InventorySlotHeight-8,
			config.RoundedRectRoundness, config.RoundedRectSegments, clr)
	}

	for slot := 0; slot < s.inventory.Count; slot++ {
		block := &s.inventory.Blocks[slot]
		center := InventorySlotCenter(slot)
		for i := 0; i < block.Count; i++ {
			o := block.Offsets[i]
			canvas.DrawRoundedRect(
				center.X+float64(o.X)*config.InventoryCellSize-config.InventoryCellSize/2,
				center.Y+float64(o.Y)*config.InventoryCellSize-config.InventoryCellSize/2,
				config.InventoryCellSize-2, config.InventoryCellSize-2,
				config.RoundedRectRoundness, config.RoundedRectSegments, blockColor)
		}
	}

	canvas.DrawRoundedRect(config.RotateButtonX, config.RotateButtonY,
		config.RotateButtonWidth, config.RotateButtonHeight,
		config.RoundedRectRoundness, config.RoundedRectSegments, rotateButtonColor)
	canvas.DrawText("ROTATE", config.RotateButtonX+36, config.RotateButtonY+24, whiteTint)
}

// drawBrokenTiles is an optional hook; scorched cells fade out as their counter decays.
func (s *RenderSystem) drawBrokenTiles(canvas Canvas) {
	if !s.showBrokenTiles {
		return
	}
	for row := range s.grid.Cells {
		for col := range s.grid.Cells[row] {
			ticks := s.grid.Cells[row][col]
			if ticks <= 0 {
				continue
			}
			clr := brokenTileColor
			clr.A = uint8(40 + 160*ticks/config.BlockedTicks)
			tl := utils.CellTopLeft(components.Cell{X: col, Y: row})
			canvas.DrawRect(tl.X, tl.Y, config.CellWidth, config.CellHeight, clr)
		}
	}
}

// drawPreview highlights the cells the selected block would cover.
func (s *RenderSystem) drawPreview(canvas Canvas) {
	if s.input.Phase != components.InputSelecting || !s.input.PointerInGrid {
		return
	}
	slot := s.inventory.Selected
	if slot < 0 || slot >= s.inventory.Count {
		return
	}

	block := &s.inventory.Blocks[slot]
	anchor := utils.PositionToGrid(s.input.Pointer)
	clr := previewBadColor
	if s.blocks.Fits(block, anchor) {
		clr = previewFitColor
	}

	for i := 0; i < block.Count; i++ {
		cell := anchor.Translate(block.Offsets[i])
		if !utils.CellInBounds(cell) {
			continue
		}
		tl := utils.CellTopLeft(cell)
		canvas.DrawRect(tl.X, tl.Y, config.CellWidth, config.CellHeight, clr)
	}
}

func (s *RenderSystem) drawParticles(canvas Canvas) {
	for i := range s.bursts.Bursts {
		burst := &s.bursts.Bursts[i]
		if !burst.Active {
			continue
		}
		for j := range burst.Particles {
			p := &burst.Particles[j]
			if !p.Enabled {
				continue
			}
			canvas.DrawCircle(p.Position.X, p.Position.Y, p.Size, p.Color)
		}
	}
}

func (s *RenderSystem) drawHUD(canvas Canvas, gameOver bool) {
	canvas.DrawText(fmt.Sprintf("Kills: %d  Blocks: %d  Time: %.0fs",
		s.score.Kills, s.score.BlocksPlaced, s.score.Survived), 12, 12, hudColor)

	if gameOver {
		canvas.DrawText("GAME OVER - tap to restart", config.ScreenWidth/2-90, 20, gameOverColor)
	}
}
