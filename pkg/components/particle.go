package components

import (
	"image/color"

	"github.com/decker502/blockdefense/pkg/config"
)

// Particle 爆发效果中的单个粒子
type Particle struct {
	Position Point      // 位置（像素）
	Velocity Point      // 速度（像素/秒）
	Lifetime float64    // 剩余寿命（秒）
	Size     float64    // 半径（像素）
	Color    color.RGBA // 颜色
	Enabled  bool
}

// Burst 一次击杀触发的粒子爆发
// Active 当且仅当至少一个粒子 Enabled
type Burst struct {
	Active    bool
	Particles [config.MaxParticles]Particle
}

// BurstPool 固定容量的爆发效果池，失效的槽位被复用而不是释放
type BurstPool struct {
	Bursts [config.MaxBursts]Burst
}
