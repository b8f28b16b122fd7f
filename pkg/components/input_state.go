package components

// InputPhase 选择/放置状态机的阶段
type InputPhase int

const (
	// InputIdle 未选中方块，可以选择或旋转
	InputIdle InputPhase = iota
	// InputSelecting 已选中背包槽位，预览跟随指针
	InputSelecting
	// InputPlacing 释放后的一帧，放置已结算，下一帧回到 Idle
	InputPlacing
)

func (p InputPhase) String() string {
	switch p {
	case InputSelecting:
		return "selecting"
	case InputPlacing:
		return "placing"
	default:
		return "idle"
	}
}

// InputStateComponent 输入状态机的状态
//
// 选中的槽位保存在 InventoryComponent.Selected 中，
// 仅由输入系统的状态转换函数修改：Phase == InputSelecting 当且仅当 Selected != NoSelection。
type InputStateComponent struct {
	Phase         InputPhase
	Pointer       Point // 本帧指针位置
	PointerInGrid bool  // 指针是否在网格范围内
	LastPlaced    bool  // 最近一次放置是否成功
}
