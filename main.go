package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/blockdefense/pkg/app"
	"github.com/decker502/blockdefense/pkg/config"
	"github.com/decker502/blockdefense/pkg/embedded"
	"github.com/decker502/blockdefense/pkg/utils"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag  = flag.String("config", "", "Load gameplay config from this YAML file instead of the embedded one")
	assetsFlag  = flag.String("assets", utils.DefaultAssetRoot(), "Directory containing the resources/ folder")
	seedFlag    = flag.Uint64("seed", 0, "Random seed (0 picks one at startup)")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		AssetRoot:  *assetsFlag,
		Seed:       *seedFlag,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Block Defense")
	ebiten.SetTPS(config.TargetTPS)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
