// Package types 定义共享的基础类型
package types

// GestureKind 单帧输入手势分类
// 每帧由输入层轮询一次，驱动选择/放置状态机
type GestureKind int

const (
	GestureNone      GestureKind = iota // 无输入
	GestureTap                          // 单击（按下的第一帧）
	GestureDoubleTap                    // 双击
	GestureHold                         // 按住不动
	GestureDrag                         // 按住并拖动
)

var gestureNames = [...]string{
	GestureNone:      "none",
	GestureTap:       "tap",
	GestureDoubleTap: "double_tap",
	GestureHold:      "hold",
	GestureDrag:      "drag",
}

func (g GestureKind) String() string {
	if g < 0 || int(g) >= len(gestureNames) {
		return "unknown"
	}
	return gestureNames[g]
}

// IsPress 是否为持续按压类手势（按住或拖动），用于选中背包中的方块
func (g GestureKind) IsPress() bool {
	return g == GestureHold || g == GestureDrag
}

// IsTap 是否为点击类手势（单击或双击），用于触发旋转按钮
func (g GestureKind) IsTap() bool {
	return g == GestureTap || g == GestureDoubleTap
}
