package utils

import (
	"math"

	"github.com/decker502/blockdefense/pkg/components"
	"github.com/decker502/blockdefense/pkg/config"
)

// PositionToGrid 将屏幕坐标转换为网格坐标
// 使用向下取整，网格外的点会得到越界的格子（如出生点的 -1 行）
//
// 参数:
//   - p: 屏幕坐标
//
// 返回:
//   - components.Cell: 列 X、行 Y
func PositionToGrid(p components.Point) components.Cell {
	return components.Cell{
		X: int(math.Floor((p.X - config.GridOffsetX) / config.CellWidth)),
		Y: int(math.Floor((p.Y - config.GridOffsetY) / config.CellHeight)),
	}
}

// GridToPosition 将网格坐标转换为格子中心的屏幕坐标
func GridToPosition(c components.Cell) components.Point {
	return components.Point{
		X: config.GridOffsetX + float64(c.X)*config.CellWidth + config.CellWidth/2,
		Y: config.GridOffsetY + float64(c.Y)*config.CellHeight + config.CellHeight/2,
	}
}

// CellTopLeft 返回格子左上角的屏幕坐标
func CellTopLeft(c components.Cell) components.Point {
	return components.Point{
		X: config.GridOffsetX + float64(c.X)*config.CellWidth,
		Y: config.GridOffsetY + float64(c.Y)*config.CellHeight,
	}
}

// IsWithinBounds 检查屏幕坐标是否落在网格占据的像素矩形内（右、下边界不含）
func IsWithinBounds(p components.Point) bool {
	return p.X >= config.GridOffsetX && p.X < config.GridEndX &&
		p.Y >= config.GridOffsetY && p.Y < config.GridEndY
}

// CellInBounds 检查网格坐标是否在 [0,GridColumns) x [0,GridRows) 内
func CellInBounds(c components.Cell) bool {
	return c.X >= 0 && c.X < config.GridColumns && c.Y >= 0 && c.Y < config.GridRows
}

// PointInRect 检查点是否在矩形内（右、下边界不含）
func PointInRect(p components.Point, x, y, w, h float64) bool {
	return p.X >= x && p.X < x+w && p.Y >= y && p.Y < y+h
}
