package game

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io/fs"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/blockdefense/pkg/types"
)

// ResourceManager loads and caches the textures named in the resource config.
//
// A texture whose file cannot be loaded is replaced by a solid placeholder of
// the configured size and color, so the game always runs without assets.
//
// Usage:
//
//	rm := NewResourceManager(cfg, os.DirFS(".."))
//	rm.LoadTextures()
//	img := rm.Texture(types.TextureEnemy)
type ResourceManager struct {
	config   *ResourceConfig
	assets   fs.FS
	textures map[types.TextureID]*ebiten.Image
}

// NewResourceManager creates a ResourceManager.
//
// Parameters:
//   - cfg: parsed resource configuration
//   - assets: file system whose root contains cfg.BasePath
func NewResourceManager(cfg *ResourceConfig, assets fs.FS) *ResourceManager {
	return &ResourceManager{
		config:   cfg,
		assets:   assets,
		textures: make(map[types.TextureID]*ebiten.Image),
	}
}

// LoadTextures loads every texture, falling back to placeholders.
// Returns the number of textures decoded from the asset file system.
func (rm *ResourceManager) LoadTextures() int {
	loaded := 0
	for _, id := range types.TextureIDs {
		res := rm.config.Textures[id.Key()]

		var img *ebiten.Image
		src, err := decodeTexture(rm.assets, rm.texturePath(res))
		if err != nil {
			log.Printf("[ResourceManager] texture %s: %v, using placeholder", id, err)
			img = ebiten.NewImage(res.Width, res.Height)
			img.Fill(res.Color.RGBA())
		} else {
			img = ebiten.NewImageFromImage(src)
			loaded++
		}
		rm.textures[id] = img
	}
	log.Printf("[ResourceManager] loaded %d/%d textures", loaded, len(types.TextureIDs))
	return loaded
}

// Texture returns a loaded texture, or nil if LoadTextures has not run.
func (rm *ResourceManager) Texture(id types.TextureID) *ebiten.Image {
	return rm.textures[id]
}

// texturePath resolves a texture file inside the asset file system.
// fs.FS paths are always slash-separated.
func (rm *ResourceManager) texturePath(res TextureResource) string {
	return path.Join(rm.config.BasePath, res.Path)
}

// decodeTexture reads and decodes one image file from fsys.
func decodeTexture(fsys fs.FS, name string) (image.Image, error) {
	if fsys == nil {
		return nil, fmt.Errorf("no asset file system")
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}
