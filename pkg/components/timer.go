package components

// TimerComponent 通用倒计时器
// 用于处理周期性行为（如敌人生成、方块补充）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "enemy_spawn"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 本帧计时器是否到期
}
