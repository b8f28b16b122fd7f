package components

import "github.com/decker502/blockdefense/pkg/config"

// NoSelection 背包未选中任何槽位
const NoSelection = -1

// InventoryComponent 玩家持有的方块
//
// 不变式：
//   - 已占用槽位从 0 开始连续排列（Blocks[0:Count]）
//   - Selected 为 NoSelection 或 [0, Count) 内的有效索引
type InventoryComponent struct {
	Blocks   [config.MaxHolding]Block
	Count    int
	Selected int
}
