package components

import "github.com/decker502/blockdefense/pkg/config"

// EnemyState 敌人移动状态机的状态
type EnemyState int

const (
	EnemyInactive EnemyState = iota // 槽位空闲，可重新生成
	EnemyMoving                     // 正在走向 Target
	EnemyWaiting                    // 停在路点，等待 WaitTime 归零
)

func (s EnemyState) String() string {
	switch s {
	case EnemyMoving:
		return "moving"
	case EnemyWaiting:
		return "waiting"
	default:
		return "inactive"
	}
}

// Enemy 敌人池中的一个槽位
// Enabled 为 false 时 Position/Target 无意义
type Enemy struct {
	Enabled  bool
	State    EnemyState
	Position Point   // 当前位置（像素）
	Target   Point   // 下一个路点（格子中心）
	WaitTime float64 // 路点停顿剩余时间（秒）
}

// EnemyPool 固定容量的敌人池，按槽位索引
type EnemyPool struct {
	Enemies [config.MaxEnemies]Enemy
}
