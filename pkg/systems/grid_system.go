package systems

import (
	"github.com/decker502/blockdefense/pkg/components"
	"github.com/decker502/blockdefense/pkg/config"
	"github.com/decker502/blockdefense/pkg/utils"
)

// GridSystem 管理网格的占用计数
// 负责标记被方块烧焦的格子，并在每帧把所有正计数减一
type GridSystem struct {
	grid *components.GridComponent
}

// NewGridSystem 创建网格系统
func NewGridSystem(grid *components.GridComponent) *GridSystem {
	return &GridSystem{grid: grid}
}

// CellAt 返回格子的占用计数
// 越界的格子视为被阻挡，返回 config.BlockedTicks，防止放置
func (s *GridSystem) CellAt(cell components.Cell) int {
	if !utils.CellInBounds(cell) {
		return config.BlockedTicks
	}
	return s.grid.Cells[cell.Y][cell.X]
}

// IsFree 格子在网格内且计数为 0
func (s *GridSystem) IsFree(cell components.Cell) bool {
	return utils.CellInBounds(cell) && s.grid.Cells[cell.Y][cell.X] == 0
}

// MarkBlocked 将格子计数设为 config.BlockedTicks
// 越界的格子被忽略
func (s *GridSystem) MarkBlocked(cell components.Cell) {
	if !utils.CellInBounds(cell) {
		return
	}
	s.grid.Cells[cell.Y][cell.X] = config.BlockedTicks
}

// DecayAll 每帧调用一次，所有正计数减一，最低为 0
func (s *GridSystem) DecayAll() {
	for row := range s.grid.Cells {
		for col := range s.grid.Cells[row] {
			if s.grid.Cells[row][col] > 0 {
				s.grid.Cells[row][col]--
			}
		}
	}
}

// BlockedCount 返回当前被阻挡的格子数
func (s *GridSystem) BlockedCount() int {
	n := 0
	for row := range s.grid.Cells {
		for col := range s.grid.Cells[row] {
			if s.grid.Cells[row][col] > 0 {
				n++
			}
		}
	}
	return n
}

// Reset 清空所有格子
func (s *GridSystem) Reset() {
	*s.grid = components.GridComponent{}
}
