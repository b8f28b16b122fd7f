package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/blockdefense/pkg/components"
	"github.com/decker502/blockdefense/pkg/config"
	"github.com/decker502/blockdefense/pkg/types"
	"github.com/decker502/blockdefense/pkg/utils"
)

// fakePlacer 记录放置和旋转请求
type fakePlacer struct {
	placed  []components.Cell
	slots   []int
	rotates int
	accept  bool
}

func (p *fakePlacer) Place(slot int, anchor components.Cell) bool {
	p.slots = append(p.slots, slot)
	p.placed = append(p.placed, anchor)
	return p.accept
}

func (p *fakePlacer) RotateAll() {
	p.rotates++
}

func newTestInputSystem(held int) (*InputSystem, *components.InputStateComponent, *components.InventoryComponent, *fakePlacer) {
	state := &components.InputStateComponent{}
	inventory := &components.InventoryComponent{Count: held, Selected: components.NoSelection}
	placer := &fakePlacer{accept: true}
	return NewInputSystem(state, inventory, placer), state, inventory, placer
}

func rotateButtonCenter() components.Point {
	return components.Point{
		X: config.RotateButtonX + config.RotateButtonWidth/2,
		Y: config.RotateButtonY + config.RotateButtonHeight/2,
	}
}

func TestHoldOverInventorySelectsSlot(t *testing.T) {
	system, state, inventory, _ := newTestInputSystem(3)

	system.Update(FrameInput{Gesture: types.GestureHold, Pointer: InventorySlotCenter(1)})

	assert.Equal(t, components.InputSelecting, state.Phase)
	assert.Equal(t, 1, inventory.Selected)
}

func TestDragOverEmptySlotSelectsNothing(t *testing.T) {
	system, state, inventory, _ := newTestInputSystem(2)

	system.Update(FrameInput{Gesture: types.GestureDrag, Pointer: InventorySlotCenter(3)})

	assert.Equal(t, components.InputIdle, state.Phase)
	assert.Equal(t, components.NoSelection, inventory.Selected)
}

func TestTapDoesNotSelect(t *testing.T) {
	system, state, inventory, _ := newTestInputSystem(2)

	system.Update(FrameInput{Gesture: types.GestureTap, Pointer: InventorySlotCenter(0)})

	assert.Equal(t, components.InputIdle, state.Phase)
	assert.Equal(t, components.NoSelection, inventory.Selected)
}

func TestSelectionIsNotReplacedWhileSelecting(t *testing.T) {
	system, _, inventory, _ := newTestInputSystem(3)

	system.Update(FrameInput{Gesture: types.GestureHold, Pointer: InventorySlotCenter(0)})
	system.Update(FrameInput{Gesture: types.GestureDrag, Pointer: InventorySlotCenter(2)})

	assert.Equal(t, 0, inventory.Selected)
}

func TestReleaseInsideGridPlaces(t *testing.T) {
	system, state, inventory, placer := newTestInputSystem(3)
	target := utils.GridToPosition(components.Cell{X: 4, Y: 3})

	system.Update(FrameInput{Gesture: types.GestureHold, Pointer: InventorySlotCenter(2)})
	system.Update(FrameInput{Gesture: types.GestureDrag, Pointer: target})
	assert.True(t, state.PointerInGrid)

	system.Update(FrameInput{Gesture: types.GestureNone, Pointer: target})

	assert.Equal(t, components.InputPlacing, state.Phase)
	assert.Equal(t, components.NoSelection, inventory.Selected)
	assert.True(t, state.LastPlaced)
	require.Len(t, placer.placed, 1)
	assert.Equal(t, components.Cell{X: 4, Y: 3}, placer.placed[0])
	assert.Equal(t, 2, placer.slots[0])

	system.Update(FrameInput{Gesture: types.GestureNone, Pointer: target})
	assert.Equal(t, components.InputIdle, state.Phase)
}

func TestReleaseOutsideGridClearsSelection(t *testing.T) {
	system, state, inventory, placer := newTestInputSystem(3)

	system.Update(FrameInput{Gesture: types.GestureHold, Pointer: InventorySlotCenter(0)})
	system.Update(FrameInput{Gesture: types.GestureNone, Pointer: InventorySlotCenter(0)})

	assert.Empty(t, placer.placed)
	assert.False(t, state.LastPlaced)
	assert.Equal(t, components.NoSelection, inventory.Selected)
	assert.Equal(t, components.InputPlacing, state.Phase)
}

func TestRejectedPlacementClearsSelection(t *testing.T) {
	system, state, inventory, placer := newTestInputSystem(1)
	placer.accept = false
	target := utils.GridToPosition(components.Cell{X: 0, Y: 3})

	system.Update(FrameInput{Gesture: types.GestureHold, Pointer: InventorySlotCenter(0)})
	system.Update(FrameInput{Gesture: types.GestureNone, Pointer: target})

	assert.Len(t, placer.placed, 1)
	assert.False(t, state.LastPlaced)
	assert.Equal(t, components.NoSelection, inventory.Selected)
}

func TestTapOnRotateButtonRotates(t *testing.T) {
	system, _, _, placer := newTestInputSystem(2)

	system.Update(FrameInput{Gesture: types.GestureTap, Pointer: rotateButtonCenter()})
	system.Update(FrameInput{Gesture: types.GestureNone, Pointer: rotateButtonCenter()})
	system.Update(FrameInput{Gesture: types.GestureDoubleTap, Pointer: rotateButtonCenter()})

	assert.Equal(t, 2, placer.rotates)
}

func TestRotateIgnoredWhileSelecting(t *testing.T) {
	system, _, _, placer := newTestInputSystem(2)

	system.Update(FrameInput{Gesture: types.GestureHold, Pointer: InventorySlotCenter(0)})
	system.Update(FrameInput{Gesture: types.GestureTap, Pointer: rotateButtonCenter()})

	assert.Equal(t, 0, placer.rotates)
}

func TestPlacingHandlesIdleInputSameTick(t *testing.T) {
	system, state, inventory, _ := newTestInputSystem(3)

	system.Update(FrameInput{Gesture: types.GestureHold, Pointer: InventorySlotCenter(0)})
	system.Update(FrameInput{Gesture: types.GestureNone, Pointer: InventorySlotCenter(0)})
	require.Equal(t, components.InputPlacing, state.Phase)

	system.Update(FrameInput{Gesture: types.GestureHold, Pointer: InventorySlotCenter(1)})
	assert.Equal(t, components.InputSelecting, state.Phase)
	assert.Equal(t, 1, inventory.Selected)
}

func TestInventorySlotAt(t *testing.T) {
	for slot := 0; slot < config.MaxHolding; slot++ {
		assert.Equal(t, slot, InventorySlotAt(InventorySlotCenter(slot)))
	}
	assert.Equal(t, -1, InventorySlotAt(components.Point{X: config.InventoryX - 1, Y: config.InventoryY + 10}))
	assert.Equal(t, -1, InventorySlotAt(utils.GridToPosition(components.Cell{X: 0, Y: 0})))
}

func TestInputReset(t *testing.T) {
	system, state, inventory, _ := newTestInputSystem(2)

	system.Update(FrameInput{Gesture: types.GestureHold, Pointer: InventorySlotCenter(0)})
	system.Reset()

	assert.Equal(t, components.InputIdle, state.Phase)
	assert.Equal(t, components.NoSelection, inventory.Selected)
}
