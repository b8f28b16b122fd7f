package scenes

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/blockdefense/pkg/components"
	"github.com/decker502/blockdefense/pkg/game"
	"github.com/decker502/blockdefense/pkg/systems"
	"github.com/decker502/blockdefense/pkg/types"
)

// clearColor 每帧先填充的底色（纹理未覆盖的区域）
var clearColor = color.RGBA{R: 24, G: 24, B: 32, A: 255}

// GestureSource 每帧提供一个手势和指针位置（由 utils.GestureDetector 实现）
type GestureSource interface {
	Poll(dt float64) (types.GestureKind, float64, float64)
}

// GameScene 游戏主场景
// 把每帧的手势交给模拟；游戏结束后单击重新开始
type GameScene struct {
	sim      *game.Simulation
	gestures GestureSource
	canvas   *game.EbitenCanvas
}

// NewGameScene 创建游戏场景
// canvas 只在 Draw 中使用，无界面测试可以传 nil
func NewGameScene(sim *game.Simulation, gestures GestureSource, canvas *game.EbitenCanvas) *GameScene {
	return &GameScene{
		sim:      sim,
		gestures: gestures,
		canvas:   canvas,
	}
}

// Update 读取手势并推进模拟
func (s *GameScene) Update(deltaTime float64) {
	kind, x, y := s.gestures.Poll(deltaTime)

	if s.sim.IsGameOver() {
		if kind.IsTap() {
			log.Printf("[GameScene] restart requested")
			s.sim.Reset()
		}
		return
	}

	s.sim.Update(deltaTime, systems.FrameInput{
		Gesture: kind,
		Pointer: components.Point{X: x, Y: y},
	})
}

// Draw 绘制当前帧
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	s.canvas.Bind(screen)
	s.sim.Draw(s.canvas)
}

// Simulation 返回场景驱动的模拟
func (s *GameScene) Simulation() *game.Simulation {
	return s.sim
}
