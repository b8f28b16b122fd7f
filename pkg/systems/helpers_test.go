package systems

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/decker502/blockdefense/pkg/components"
	"github.com/decker502/blockdefense/pkg/types"
)

// newTestRand 返回固定种子的随机数生成器，保证测试可重复
func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 7))
}

// recordingCanvas 记录绘制调用的 Canvas，用于校验绘制顺序
type recordingCanvas struct {
	calls []string
}

func (c *recordingCanvas) DrawTexture(id types.TextureID, x, y, w, h float64, tint color.Color) {
	c.calls = append(c.calls, "texture:"+id.String())
}

func (c *recordingCanvas) DrawRect(x, y, w, h float64, clr color.Color) {
	c.calls = append(c.calls, "rect:"+formatXY(x, y))
}

func formatXY(x, y float64) string {
	return fmt.Sprintf("%.0f,%.0f", x, y)
}

func (c *recordingCanvas) DrawRoundedRect(x, y, w, h, roundness float64, segments int, clr color.Color) {
	c.calls = append(c.calls, fmt.Sprintf("rounded:%.1f/%d", roundness, segments))
}

func (c *recordingCanvas) DrawCircle(cx, cy, r float64, clr color.Color) {
	c.calls = append(c.calls, "circle")
}

func (c *recordingCanvas) DrawText(s string, x, y float64, clr color.Color) {
	c.calls = append(c.calls, "text:"+s)
}

// burstRecorder 记录爆发请求的 BurstSpawner
type burstRecorder struct {
	origins []components.Point
	full    bool
}

func (b *burstRecorder) SpawnBurst(origin components.Point) bool {
	if b.full {
		return false
	}
	b.origins = append(b.origins, origin)
	return true
}
