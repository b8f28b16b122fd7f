package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/blockdefense/pkg/types"
	"github.com/decker502/blockdefense/pkg/utils"
)

// EbitenCanvas draws onto an ebiten screen image.
// Bind must be called with the frame's screen before any draw call.
type EbitenCanvas struct {
	screen    *ebiten.Image
	resources *ResourceManager
	face      text.Face
}

// NewEbitenCanvas creates a canvas that resolves textures through rm.
func NewEbitenCanvas(rm *ResourceManager) *EbitenCanvas {
	return &EbitenCanvas{
		resources: rm,
		face:      text.NewGoXFace(basicfont.Face7x13),
	}
}

// Bind sets the target image for this frame.
func (c *EbitenCanvas) Bind(screen *ebiten.Image) {
	c.screen = screen
}

// DrawTexture draws a texture stretched to the destination rectangle.
func (c *EbitenCanvas) DrawTexture(id types.TextureID, x, y, w, h float64, tint color.Color) {
	img := c.resources.Texture(id)
	if img == nil {
		return
	}

	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(tint)
	c.screen.DrawImage(img, op)
}

// DrawRect fills an axis-aligned rectangle.
func (c *EbitenCanvas) DrawRect(x, y, w, h float64, clr color.Color) {
	vector.FillRect(c.screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// DrawRoundedRect fills a rectangle whose corner radius is roundness × half the shorter side.
// Each corner is approximated by segments line pieces and the outline is filled in a single pass.
func (c *EbitenCanvas) DrawRoundedRect(x, y, w, h, roundness float64, segments int, clr color.Color) {
	outline := utils.RoundedRectOutline(x, y, w, h, roundness, segments)

	var path vector.Path
	path.MoveTo(float32(outline[0].X), float32(outline[0].Y))
	for _, p := range outline[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	vector.FillPath(c.screen, &path, nil, op)
}

// DrawCircle fills a circle.
func (c *EbitenCanvas) DrawCircle(cx, cy, r float64, clr color.Color) {
	vector.FillCircle(c.screen, float32(cx), float32(cy), float32(r), clr, true)
}

// DrawText draws s with its top-left corner at (x, y).
func (c *EbitenCanvas) DrawText(s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.screen, s, c.face, op)
}
