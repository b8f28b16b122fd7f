package systems

import (
	"log"

	"github.com/decker502/blockdefense/pkg/components"
	"github.com/decker502/blockdefense/pkg/config"
	"github.com/decker502/blockdefense/pkg/types"
	"github.com/decker502/blockdefense/pkg/utils"
)

// FrameInput 单帧输入：手势分类和指针位置
type FrameInput struct {
	Gesture types.GestureKind
	Pointer components.Point
}

// BlockPlacer 输入状态机驱动的方块操作（由 BlockSystem 实现）
type BlockPlacer interface {
	Place(slot int, anchor components.Cell) bool
	RotateAll()
}

// InputSystem 选择/放置状态机
//
// 状态转换：
//   - Idle      + 按住/拖动 背包中已占用的槽位 -> Selecting（记录选中槽位）
//   - Idle      + 单击/双击 旋转按钮           -> Idle（旋转所有方块）
//   - Selecting + 无手势                     -> Placing（指针在网格内时尝试放置，无论成败都清除选中）
//   - Selecting + 其他手势                   -> Selecting（预览跟随指针）
//   - Placing                                -> Idle（同一帧按 Idle 处理本帧输入）
type InputSystem struct {
	state     *components.InputStateComponent
	inventory *components.InventoryComponent
	placer    BlockPlacer
}

// NewInputSystem 创建输入系统
func NewInputSystem(state *components.InputStateComponent, inventory *components.InventoryComponent,
	placer BlockPlacer) *InputSystem {
	return &InputSystem{
		state:     state,
		inventory: inventory,
		placer:    placer,
	}
}

// Update 处理本帧输入
func (s *InputSystem) Update(in FrameInput) {
	s.state.Pointer = in.Pointer
	s.state.PointerInGrid = utils.IsWithinBounds(in.Pointer)

	switch s.state.Phase {
	case components.InputIdle:
		s.updateIdle(in)
	case components.InputSelecting:
		s.updateSelecting(in)
	case components.InputPlacing:
		s.state.Phase = components.InputIdle
		s.updateIdle(in)
	}
}

// updateIdle 在空闲状态下处理选择和旋转
func (s *InputSystem) updateIdle(in FrameInput) {
	switch {
	case in.Gesture.IsPress():
		slot := InventorySlotAt(in.Pointer)
		if slot >= 0 && slot < s.inventory.Count {
			s.selectSlot(slot)
		}
	case in.Gesture.IsTap():
		if InRotateButton(in.Pointer) {
			s.placer.RotateAll()
		}
	}
}

// updateSelecting 手势消失时结算放置
func (s *InputSystem) updateSelecting(in FrameInput) {
	if in.Gesture != types.GestureNone {
		return
	}

	slot := s.inventory.Selected
	s.state.Phase = components.InputPlacing
	s.state.LastPlaced = false
	if s.state.PointerInGrid {
		s.state.LastPlaced = s.placer.Place(slot, utils.PositionToGrid(in.Pointer))
	}
	s.inventory.Selected = components.NoSelection
}

func (s *InputSystem) selectSlot(slot int) {
	s.inventory.Selected = slot
	s.state.Phase = components.InputSelecting
	log.Printf("[InputSystem] selected inventory slot %d", slot)
}

// Reset 回到空闲状态
func (s *InputSystem) Reset() {
	*s.state = components.InputStateComponent{}
	s.inventory.Selected = components.NoSelection
}

// InventorySlotAt 返回指针下的背包槽位索引，不在背包区域时返回 -1
func InventorySlotAt(p components.Point) int {
	width := float64(config.MaxHolding) * config.InventorySlotWidth
	if !utils.PointInRect(p, config.InventoryX, config.InventoryY, width, config.InventorySlotHeight) {
		return -1
	}
	return int((p.X - config.InventoryX) / config.InventorySlotWidth)
}

// InventorySlotCenter 返回背包槽位中心
func InventorySlotCenter(slot int) components.Point {
	return components.Point{
		X: config.InventoryX + (float64(slot)+0.5)*config.InventorySlotWidth,
		Y: config.InventoryY + config.InventorySlotHeight/2,
	}
}

// InRotateButton 指针是否在旋转按钮上
func InRotateButton(p components.Point) bool {
	return utils.PointInRect(p, config.RotateButtonX, config.RotateButtonY,
		config.RotateButtonWidth, config.RotateButtonHeight)
}
