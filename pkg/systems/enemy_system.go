package systems

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/decker502/blockdefense/pkg/components"
	"github.com/decker502/blockdefense/pkg/config"
	"github.com/decker502/blockdefense/pkg/utils"
)

// BurstSpawner 击杀特效的生成方（由 ParticleSystem 实现）
type BurstSpawner interface {
	SpawnBurst(origin components.Point) bool
}

// GoalReachedHandler 敌人到达目标格子时的回调，触发游戏结束
type GoalReachedHandler func(slot int)

// Edge 网格的四条边
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	default:
		return "left"
	}
}

// GoalCell 敌人的目标格子
var GoalCell = components.Cell{X: config.GoalColumn, Y: config.GoalRow}

// EnemySystem 管理敌人池：定时生成、路点移动状态机、击杀和到达目标
//
// 每帧的处理顺序：
//  1. 推进生成计时器，到期时按难度引擎缩短间隔并生成一个敌人
//  2. 推进每个启用敌人的 Moving/Waiting 状态
type EnemySystem struct {
	pool       *components.EnemyPool
	bursts     BurstSpawner
	difficulty *DifficultyEngine
	cfg        config.EnemyConfig
	rng        *rand.Rand

	spawnTimer components.TimerComponent
	spawnDelay float64

	onGoalReached GoalReachedHandler
}

// NewEnemySystem 创建敌人系统
// bursts 可以为 nil（击杀时不产生特效）
func NewEnemySystem(pool *components.EnemyPool, bursts BurstSpawner, difficulty *DifficultyEngine,
	cfg config.EnemyConfig, rng *rand.Rand) *EnemySystem {
	s := &EnemySystem{
		pool:       pool,
		bursts:     bursts,
		difficulty: difficulty,
		cfg:        cfg,
		rng:        rng,
	}
	s.resetSpawnTimer()
	return s
}

// SetGoalReachedHandler 设置到达目标的回调
func (s *EnemySystem) SetGoalReachedHandler(handler GoalReachedHandler) {
	s.onGoalReached = handler
}

// SpawnDelay 当前生成间隔（秒）
func (s *EnemySystem) SpawnDelay() float64 {
	return s.spawnDelay
}

// Update 推进生成计时器和所有敌人的状态
func (s *EnemySystem) Update(dt float64) {
	s.updateSpawnTimer(dt)

	for slot := range s.pool.Enemies {
		enemy := &s.pool.Enemies[slot]
		if !enemy.Enabled {
			continue
		}

		switch enemy.State {
		case components.EnemyMoving:
			s.updateMoving(slot, enemy, dt)
		case components.EnemyWaiting:
			enemy.WaitTime -= dt
			if enemy.WaitTime <= 0 {
				enemy.State = components.EnemyMoving
			}
		}
	}
}

// updateSpawnTimer 计时器到期时先缩短间隔（难度递增），再生成一个敌人
func (s *EnemySystem) updateSpawnTimer(dt float64) {
	if !tickTimer(&s.spawnTimer, dt) {
		return
	}

	s.spawnDelay = s.difficulty.NextSpawnDelay(s.spawnDelay)
	s.spawnTimer.TargetTime = s.spawnDelay
	s.Spawn()
}

// updateMoving 沿当前方向前进一步；若这一步会到达或越过路点则吸附到路点并进入等待
func (s *EnemySystem) updateMoving(slot int, enemy *components.Enemy, dt float64) {
	remaining := enemy.Target.Sub(enemy.Position)
	distSq := remaining.LengthSquared()
	step := s.cfg.Speed * dt

	if step*step >= distSq {
		enemy.Position = enemy.Target
		enemy.WaitTime = s.cfg.HideTime

		next, reached := s.NextMoveTile(utils.PositionToGrid(enemy.Position))
		if reached {
			s.reachGoal(slot, enemy)
			return
		}

		enemy.Target = utils.GridToPosition(next)
		enemy.State = components.EnemyWaiting
		return
	}

	enemy.Position = enemy.Position.Add(remaining.Scale(step / math.Sqrt(distSq)))
}

// NextMoveTile 计算从 from 出发朝目标格子前进一格后的格子
//
// 随机选择 X 或 Y 轴，但不会选择已经与目标对齐的轴。
// 返回:
//   - components.Cell: 下一个格子
//   - bool: from 已经是目标格子
func (s *EnemySystem) NextMoveTile(from components.Cell) (components.Cell, bool) {
	dx := GoalCell.X - from.X
	dy := GoalCell.Y - from.Y
	if dx == 0 && dy == 0 {
		return from, true
	}

	var moveX bool
	switch {
	case dx == 0:
		moveX = false
	case dy == 0:
		moveX = true
	default:
		moveX = s.rng.IntN(2) == 0
	}

	next := from
	if moveX {
		next.X += sign(dx)
	} else {
		next.Y += sign(dy)
	}
	return next, false
}

// reachGoal 敌人到达目标：禁用并通知游戏结束
func (s *EnemySystem) reachGoal(slot int, enemy *components.Enemy) {
	enemy.Enabled = false
	enemy.State = components.EnemyInactive
	log.Printf("[EnemySystem] enemy %d reached goal cell (%d,%d)", slot, GoalCell.X, GoalCell.Y)

	if s.onGoalReached != nil {
		s.onGoalReached(slot)
	}
}

// Spawn 在第一个空闲槽位生成一个敌人
// 随机选择一条边和该边上的一条通道，敌人从边外一格出发，以边上的入口格为第一个路点
//
// 返回:
//   - int: 槽位索引
//   - bool: false 表示敌人池已满（静默跳过）
func (s *EnemySystem) Spawn() (int, bool) {
	slot := -1
	for i := range s.pool.Enemies {
		if !s.pool.Enemies[i].Enabled {
			slot = i
			break
		}
	}
	if slot < 0 {
		return -1, false
	}

	edge := Edge(s.rng.IntN(4))
	var outside, entry components.Cell
	switch edge {
	case EdgeTop:
		lane := s.rng.IntN(config.GridColumns)
		outside, entry = components.Cell{X: lane, Y: -1}, components.Cell{X: lane, Y: 0}
	case EdgeRight:
		lane := s.rng.IntN(config.GridRows)
		outside, entry = components.Cell{X: config.GridColumns, Y: lane}, components.Cell{X: config.GridColumns - 1, Y: lane}
	case EdgeBottom:
		lane := s.rng.IntN(config.GridColumns)
		outside, entry = components.Cell{X: lane, Y: config.GridRows}, components.Cell{X: lane, Y: config.GridRows - 1}
	default:
		lane := s.rng.IntN(config.GridRows)
		outside, entry = components.Cell{X: -1, Y: lane}, components.Cell{X: 0, Y: lane}
	}

	s.pool.Enemies[slot] = components.Enemy{
		Enabled:  true,
		State:    components.EnemyMoving,
		Position: utils.GridToPosition(outside),
		Target:   utils.GridToPosition(entry),
	}
	log.Printf("[EnemySystem] spawned enemy %d at %s edge, entry (%d,%d)", slot, edge, entry.X, entry.Y)
	return slot, true
}

// Kill 禁用敌人并在其最后位置请求一个粒子爆发
func (s *EnemySystem) Kill(slot int) {
	if slot < 0 || slot >= len(s.pool.Enemies) {
		return
	}
	enemy := &s.pool.Enemies[slot]
	if !enemy.Enabled {
		return
	}

	enemy.Enabled = false
	enemy.State = components.EnemyInactive
	if s.bursts != nil && !s.bursts.SpawnBurst(enemy.Position) {
		log.Printf("[EnemySystem] burst pool exhausted, enemy %d killed without effect", slot)
	}
}

// KillAt 击杀所有当前位于 cell 的敌人
// 返回击杀数量
func (s *EnemySystem) KillAt(cell components.Cell) int {
	killed := 0
	for slot := range s.pool.Enemies {
		enemy := &s.pool.Enemies[slot]
		if enemy.Enabled && utils.PositionToGrid(enemy.Position) == cell {
			s.Kill(slot)
			killed++
		}
	}
	return killed
}

// ActiveCount 返回启用的敌人数
func (s *EnemySystem) ActiveCount() int {
	n := 0
	for i := range s.pool.Enemies {
		if s.pool.Enemies[i].Enabled {
			n++
		}
	}
	return n
}

// Reset 清空敌人池并恢复初始生成间隔
func (s *EnemySystem) Reset() {
	*s.pool = components.EnemyPool{}
	s.resetSpawnTimer()
}

func (s *EnemySystem) resetSpawnTimer() {
	s.spawnDelay = s.difficulty.InitialSpawnDelay()
	s.spawnTimer = newTimer("enemy_spawn", s.spawnDelay)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
