package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

// mockScene records calls made by the SceneManager.
type mockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

func (m *mockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	assert.NotNil(t, sm)
	assert.Nil(t, sm.GetCurrentScene())
}

func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	scene := &mockScene{}

	sm.SwitchTo(scene)

	assert.Same(t, scene, sm.GetCurrentScene())
}

func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	scene := &mockScene{}
	sm.SwitchTo(scene)

	sm.Update(0.016)

	assert.True(t, scene.updateCalled)
	assert.Equal(t, 0.016, scene.deltaTime)
}

func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	scene := &mockScene{}
	sm.SwitchTo(scene)

	sm.Draw(nil)

	assert.True(t, scene.drawCalled)
}

func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	assert.NotPanics(t, func() {
		sm.Update(0.016)
		sm.Draw(nil)
	})
}
