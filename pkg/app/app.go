// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：加载配置和纹理，
// 组装模拟和场景，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/blockdefense/pkg/config"
	"github.com/decker502/blockdefense/pkg/embedded"
	"github.com/decker502/blockdefense/pkg/game"
	"github.com/decker502/blockdefense/pkg/scenes"
	"github.com/decker502/blockdefense/pkg/utils"
)

// 嵌入数据文件路径
const (
	GameplayConfigPath = "data/gameplay.yaml"
	ResourceConfigPath = "data/resources.yaml"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的玩法配置文件，为空时使用嵌入的 data/gameplay.yaml
	ConfigPath string
	// AssetRoot 包含 resources/ 目录的根目录
	AssetRoot string
	// Seed 随机种子，0 表示随机
	Seed uint64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameplay, err := loadGameplayConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("玩法配置加载失败: %w", err)
	}

	resourceData, err := embedded.ReadFile(ResourceConfigPath)
	if err != nil {
		return nil, fmt.Errorf("资源配置读取失败: %w", err)
	}
	resourceConfig, err := game.ParseResourceConfig(resourceData)
	if err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	resourceManager := game.NewResourceManager(resourceConfig, os.DirFS(cfg.AssetRoot))
	resourceManager.LoadTextures()

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Printf("[App] random seed: %d", seed)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	sim := game.NewSimulation(gameplay, rng)
	scene := scenes.NewGameScene(sim, utils.NewGestureDetector(), game.NewEbitenCanvas(resourceManager))

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager: sceneManager,
	}, nil
}

// loadGameplayConfig 从磁盘（指定路径时）或嵌入数据加载玩法配置
func loadGameplayConfig(path string) (*config.GameplayConfig, error) {
	if path != "" {
		log.Printf("[Config] loading gameplay config from %s", path)
		return config.LoadGameplayConfig(path)
	}

	data, err := embedded.ReadFile(GameplayConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseGameplayConfig(data)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 config.TargetTPS 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / config.TargetTPS)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色，并使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
