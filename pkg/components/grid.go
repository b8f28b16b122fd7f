package components

import "github.com/decker502/blockdefense/pkg/config"

// GridComponent 占用网格
//
// Cells[row][col] 是格子的占用计数：0 表示空闲，>0 表示被阻挡并逐帧衰减。
// 网格规格: config.GridRows 行 x config.GridColumns 列，启动时分配，永不改变尺寸。
type GridComponent struct {
	Cells [config.GridRows][config.GridColumns]int
}
