package systems

import (
	"log"
	"math/rand/v2"

	"github.com/decker502/blockdefense/pkg/components"
	"github.com/decker502/blockdefense/pkg/config"
)

// EnemyKiller 放置方块时击杀格子上的敌人（由 EnemySystem 实现）
type EnemyKiller interface {
	KillAt(cell components.Cell) int
}

// BlockCatalog 可生成的方块形状
var BlockCatalog = [...]components.Block{
	// I3: 横向三格
	{Offsets: [config.MaxBlockSize]components.Offset{{X: 1, Y: 0}, {X: 0, Y: 0}, {X: -1, Y: 0}}, Count: 3, Width: 3},
	// L3: 拐角三格
	{Offsets: [config.MaxBlockSize]components.Offset{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, Count: 3, Width: 2},
	// T4: T 形四格
	{Offsets: [config.MaxBlockSize]components.Offset{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, Count: 4, Width: 3},
}

// BlockSystem 管理背包中的方块：定时补充、整体旋转、放置检测和放置
//
// 放置的副作用：
//  1. 方块覆盖的每个格子被标记为长期阻挡
//  2. 位于这些格子上的敌人被击杀
//  3. 方块从背包移除，后续方块依次前移
type BlockSystem struct {
	inventory *components.InventoryComponent
	grid      *GridSystem
	enemies   EnemyKiller
	score     *components.ScoreComponent
	rng       *rand.Rand

	spawnTimer components.TimerComponent
}

// NewBlockSystem 创建方块系统
// enemies 和 score 可以为 nil
func NewBlockSystem(inventory *components.InventoryComponent, grid *GridSystem, enemies EnemyKiller,
	score *components.ScoreComponent, cfg config.BlockConfig, rng *rand.Rand) *BlockSystem {
	inventory.Selected = components.NoSelection
	return &BlockSystem{
		inventory:  inventory,
		grid:       grid,
		enemies:    enemies,
		score:      score,
		rng:        rng,
		spawnTimer: newTimer("block_spawn", cfg.SpawnDelay),
	}
}

// Update 推进方块补充计时器
func (s *BlockSystem) Update(dt float64) {
	if !tickTimer(&s.spawnTimer, dt) {
		return
	}
	if !s.AddBlock(s.CreateBlock()) {
		log.Printf("[BlockSystem] inventory full, dropped new block")
	}
}

// CreateBlock 从形状目录中等概率随机返回一个方块
func (s *BlockSystem) CreateBlock() components.Block {
	return BlockCatalog[s.rng.IntN(len(BlockCatalog))]
}

// AddBlock 将方块追加到背包末尾
// 返回 false 表示背包已满（静默丢弃）
func (s *BlockSystem) AddBlock(block components.Block) bool {
	if s.inventory.Count >= config.MaxHolding {
		return false
	}
	s.inventory.Blocks[s.inventory.Count] = block
	s.inventory.Count++
	return true
}

// RotateAll 将背包中所有方块旋转 90°：(x, y) -> (-y, x)
func (s *BlockSystem) RotateAll() {
	for i := 0; i < s.inventory.Count; i++ {
		RotateBlock(&s.inventory.Blocks[i])
	}
	log.Printf("[BlockSystem] rotated %d blocks", s.inventory.Count)
}

// RotateBlock 原地旋转单个方块的前 Count 个偏移
func RotateBlock(block *components.Block) {
	for i := 0; i < block.Count; i++ {
		o := block.Offsets[i]
		block.Offsets[i] = components.Offset{X: -o.Y, Y: o.X}
	}
}

// Fits 检查方块以 anchor 为锚点时每个格子都在网格内且空闲
func (s *BlockSystem) Fits(block *components.Block, anchor components.Cell) bool {
	for i := 0; i < block.Count; i++ {
		if !s.grid.IsFree(anchor.Translate(block.Offsets[i])) {
			return false
		}
	}
	return true
}

// Place 将背包 slot 处的方块放置在 anchor
//
// 先重新执行 Fits 检查，不满足时不做任何修改并返回 false。
// 成功时标记格子、击杀格子上的敌人并从背包移除方块。
func (s *BlockSystem) Place(slot int, anchor components.Cell) bool {
	if slot < 0 || slot >= s.inventory.Count {
		return false
	}

	block := s.inventory.Blocks[slot]
	if !s.Fits(&block, anchor) {
		log.Printf("[BlockSystem] block %d does not fit at (%d,%d)", slot, anchor.X, anchor.Y)
		return false
	}

	killed := 0
	for i := 0; i < block.Count; i++ {
		cell := anchor.Translate(block.Offsets[i])
		s.grid.MarkBlocked(cell)
		if s.enemies != nil {
			killed += s.enemies.KillAt(cell)
		}
	}

	s.RemoveBlock(slot)

	if s.score != nil {
		s.score.Kills += killed
		s.score.BlocksPlaced++
	}
	log.Printf("[BlockSystem] placed block at (%d,%d), killed %d", anchor.X, anchor.Y, killed)
	return true
}

// RemoveBlock 移除 slot 处的方块，后续方块依次前移，保持相对顺序
func (s *BlockSystem) RemoveBlock(slot int) {
	if slot < 0 || slot >= s.inventory.Count {
		return
	}
	copy(s.inventory.Blocks[slot:s.inventory.Count-1], s.inventory.Blocks[slot+1:s.inventory.Count])
	s.inventory.Count--
	s.inventory.Blocks[s.inventory.Count] = components.Block{}
}

// Reset 清空背包并重置补充计时器
func (s *BlockSystem) Reset() {
	*s.inventory = components.InventoryComponent{Selected: components.NoSelection}
	s.spawnTimer.CurrentTime = 0
	s.spawnTimer.IsReady = false
}
