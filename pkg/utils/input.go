// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/blockdefense/pkg/types"
)

// 手势识别阈值
const (
	// DoubleTapWindow 两次按下被识别为双击的最大间隔（秒）
	DoubleTapWindow = 0.3
	// TapRadius 双击两次按下的最大距离（像素）
	TapRadius = 16.0
	// DragThreshold 按住时移动超过该距离（像素）识别为拖动
	DragThreshold = 8.0
)

// GetPointerState 获取指针的完整状态
// 优先返回第一个触摸点，没有触摸时返回鼠标
// 返回：是否按下、X坐标、Y坐标、是否为触摸输入
func GetPointerState() (pressed bool, x, y int, touch bool) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y, true
	}

	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y, false
}

// GestureDetector 将鼠标/触摸的按压状态归类为每帧一个手势
//
// 识别规则：
//   - 按下的第一帧为 Tap；若与上次按下间隔不超过 DoubleTapWindow 且距离不超过 TapRadius，为 DoubleTap
//   - 之后持续按住为 Hold，离开按下点超过 DragThreshold 为 Drag
//   - 未按下为 None
type GestureDetector struct {
	clock    float64 // 累计时间（秒）
	pressed  bool
	startX   float64
	startY   float64
	lastTap  float64
	tapX     float64
	tapY     float64
	hasTap   bool
	lastX    float64 // 最后一次已知指针位置（触摸释放后沿用）
	lastY    float64
	lastKind types.GestureKind

	touchInput bool // 最近一次按压是否来自触摸
}

// NewGestureDetector 创建手势识别器
func NewGestureDetector() *GestureDetector {
	return &GestureDetector{}
}

// Poll 读取 ebiten 输入并返回本帧手势和指针位置
// 应该在每帧更新时调用一次
func (d *GestureDetector) Poll(dt float64) (types.GestureKind, float64, float64) {
	pressed, x, y, touch := GetPointerState()
	if !pressed && !d.touchInput {
		// 鼠标释放后光标位置仍然有效；触摸释放后沿用最后的触摸位置
		d.lastX, d.lastY = float64(x), float64(y)
	}
	kind := d.Classify(pressed, float64(x), float64(y), touch, dt)
	return kind, d.lastX, d.lastY
}

// Classify 根据本帧的按压状态更新识别器并返回手势
// 不访问 ebiten，便于测试
func (d *GestureDetector) Classify(pressed bool, x, y float64, touch bool, dt float64) types.GestureKind {
	d.clock += dt

	if !pressed {
		d.pressed = false
		d.lastKind = types.GestureNone
		return d.lastKind
	}

	d.lastX, d.lastY = x, y
	d.touchInput = touch

	if !d.pressed {
		d.pressed = true
		d.startX, d.startY = x, y

		if d.hasTap && d.clock-d.lastTap <= DoubleTapWindow &&
			distanceSquared(x, y, d.tapX, d.tapY) <= TapRadius*TapRadius {
			d.hasTap = false
			d.lastKind = types.GestureDoubleTap
			return d.lastKind
		}

		d.hasTap = true
		d.lastTap = d.clock
		d.tapX, d.tapY = x, y
		d.lastKind = types.GestureTap
		return d.lastKind
	}

	if d.lastKind == types.GestureDrag ||
		distanceSquared(x, y, d.startX, d.startY) > DragThreshold*DragThreshold {
		d.lastKind = types.GestureDrag
		return d.lastKind
	}

	d.lastKind = types.GestureHold
	return d.lastKind
}

// LastPointer 返回最后一次已知指针位置
func (d *GestureDetector) LastPointer() (float64, float64) {
	return d.lastX, d.lastY
}

func distanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}
