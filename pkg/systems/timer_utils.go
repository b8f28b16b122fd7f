package systems

import "github.com/decker502/blockdefense/pkg/components"

// newTimer 创建一个以 target 秒为周期的计时器
func newTimer(name string, target float64) components.TimerComponent {
	return components.TimerComponent{Name: name, TargetTime: target}
}

// tickTimer 推进计时器，到期时重置并返回 true
// 每次调用最多触发一次，未消耗的时间被丢弃
func tickTimer(timer *components.TimerComponent, dt float64) bool {
	timer.CurrentTime += dt
	timer.IsReady = timer.CurrentTime >= timer.TargetTime
	if timer.IsReady {
		timer.CurrentTime = 0
	}
	return timer.IsReady
}
