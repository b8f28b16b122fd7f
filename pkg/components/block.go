package components

import "github.com/decker502/blockdefense/pkg/config"

// Block 方块形状
//
// Offsets 中只有前 Count 项有效，其余为填充，遍历时必须按 Count 截断。
// Width 仅用于背包中的布局。
type Block struct {
	Offsets [config.MaxBlockSize]Offset
	Count   int
	Width   int
}
