package scenes

import (
	"github.com/decker502/blockdefense/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene
