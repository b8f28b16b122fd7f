package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// GameplayConfig 玩法参数配置
//
// 包含敌人、方块、粒子和渲染开关等可调参数。
// 布局和容量是编译期常量（见 layout_config.go），只有数值调参放在 YAML 中。
//
// 配置文件位置: data/gameplay.yaml
type GameplayConfig struct {
	Enemy    EnemyConfig    `yaml:"enemy"`
	Block    BlockConfig    `yaml:"block"`
	Particle ParticleConfig `yaml:"particle"`
	Render   RenderConfig   `yaml:"render"`
}

// EnemyConfig 敌人移动与生成节奏
type EnemyConfig struct {
	// Speed 移动速度（像素/秒）
	Speed float64 `yaml:"speed"`

	// HideTime 到达路点后的停顿时间（秒）
	HideTime float64 `yaml:"hideTime"`

	// SpawnDelay 初始生成间隔（秒）
	SpawnDelay float64 `yaml:"spawnDelay"`

	// SpawnDecrement 每次生成后间隔缩短的量（秒）
	SpawnDecrement float64 `yaml:"spawnDecrement"`

	// SpawnMinDelay 生成间隔下限（秒）
	SpawnMinDelay float64 `yaml:"spawnMinDelay"`
}

// BlockConfig 方块生成节奏
type BlockConfig struct {
	// SpawnDelay 向背包补充方块的间隔（秒）
	SpawnDelay float64 `yaml:"spawnDelay"`
}

// ParticleConfig 击杀爆发效果的随机范围
type ParticleConfig struct {
	LifetimeMin float64     `yaml:"lifetimeMin"`
	LifetimeMax float64     `yaml:"lifetimeMax"`
	VelocityMin float64     `yaml:"velocityMin"`
	VelocityMax float64     `yaml:"velocityMax"`
	SizeMin     float64     `yaml:"sizeMin"`
	SizeMax     float64     `yaml:"sizeMax"`
	Color       ColorConfig `yaml:"color"`
}

// RenderConfig 渲染开关
type RenderConfig struct {
	// ShowBrokenTiles 是否绘制被烧焦格子的叠加层（默认关闭）
	ShowBrokenTiles bool `yaml:"showBrokenTiles"`
}

// ColorConfig YAML 中的 RGBA 颜色
type ColorConfig struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// RGBA 转换为 image/color 颜色
func (c ColorConfig) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// DefaultGameplayConfig 返回与 data/gameplay.yaml 一致的默认配置
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		Enemy: EnemyConfig{
			Speed:          60,
			HideTime:       0.5,
			SpawnDelay:     3.0,
			SpawnDecrement: 0.1,
			SpawnMinDelay:  0.75,
		},
		Block: BlockConfig{
			SpawnDelay: 4.0,
		},
		Particle: ParticleConfig{
			LifetimeMin: 0.3,
			LifetimeMax: 0.8,
			VelocityMin: -120,
			VelocityMax: 120,
			SizeMin:     2,
			SizeMax:     5,
			Color:       ColorConfig{R: 255, G: 161, B: 0, A: 255},
		},
	}
}

// LoadGameplayConfig 从磁盘加载玩法配置
//
// 参数:
//   - path: 配置文件路径（如 "data/gameplay.yaml"）
//
// 返回:
//   - *GameplayConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameplayConfig(path string) (*GameplayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config: %w", err)
	}
	return ParseGameplayConfig(data)
}

// ParseGameplayConfig 解析 YAML 数据
// 未出现在 YAML 中的字段保留默认值
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	config := DefaultGameplayConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 速度、停顿时间、生成间隔为正数
//   - 生成间隔下限不大于初始间隔
//   - 所有随机范围 Min <= Max，粒子寿命为正
func (c *GameplayConfig) Validate() error {
	if c.Enemy.Speed <= 0 {
		return fmt.Errorf("enemy speed must be positive, got %.2f", c.Enemy.Speed)
	}
	if c.Enemy.HideTime < 0 {
		return fmt.Errorf("enemy hideTime must not be negative, got %.2f", c.Enemy.HideTime)
	}
	if c.Enemy.SpawnDelay <= 0 {
		return fmt.Errorf("enemy spawnDelay must be positive, got %.2f", c.Enemy.SpawnDelay)
	}
	if c.Enemy.SpawnDecrement < 0 {
		return fmt.Errorf("enemy spawnDecrement must not be negative, got %.2f", c.Enemy.SpawnDecrement)
	}
	if c.Enemy.SpawnMinDelay <= 0 || c.Enemy.SpawnMinDelay > c.Enemy.SpawnDelay {
		return fmt.Errorf("enemy spawnMinDelay must be in (0, %.2f], got %.2f",
			c.Enemy.SpawnDelay, c.Enemy.SpawnMinDelay)
	}

	if c.Block.SpawnDelay <= 0 {
		return fmt.Errorf("block spawnDelay must be positive, got %.2f", c.Block.SpawnDelay)
	}

	p := c.Particle
	if p.LifetimeMin <= 0 || p.LifetimeMin > p.LifetimeMax {
		return fmt.Errorf("particle lifetime range invalid: min(%.2f) max(%.2f)", p.LifetimeMin, p.LifetimeMax)
	}
	if p.VelocityMin > p.VelocityMax {
		return fmt.Errorf("particle velocity range invalid: min(%.2f) > max(%.2f)", p.VelocityMin, p.VelocityMax)
	}
	if p.SizeMin <= 0 || p.SizeMin > p.SizeMax {
		return fmt.Errorf("particle size range invalid: min(%.2f) max(%.2f)", p.SizeMin, p.SizeMax)
	}

	return nil
}
