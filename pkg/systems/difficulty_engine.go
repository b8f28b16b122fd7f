package systems

import "github.com/decker502/blockdefense/pkg/config"

// DifficultyEngine 难度引擎
// 负责敌人生成间隔的线性递减（先减后夹到下限）
type DifficultyEngine struct {
	enemy config.EnemyConfig
}

// NewDifficultyEngine 创建新的难度引擎实例
func NewDifficultyEngine(enemy config.EnemyConfig) *DifficultyEngine {
	return &DifficultyEngine{enemy: enemy}
}

// InitialSpawnDelay 返回开局的生成间隔
func (d *DifficultyEngine) InitialSpawnDelay() float64 {
	return d.enemy.SpawnDelay
}

// NextSpawnDelay 计算下一次生成间隔
// 公式: max(current - SpawnDecrement, SpawnMinDelay)
func (d *DifficultyEngine) NextSpawnDelay(current float64) float64 {
	next := current - d.enemy.SpawnDecrement
	if next < d.enemy.SpawnMinDelay {
		return d.enemy.SpawnMinDelay
	}
	return next
}
