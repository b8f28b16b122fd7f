package config

// 布局配置常量
// 本文件定义了屏幕、网格、背包和旋转按钮的布局参数
// 所有坐标均为屏幕像素坐标，原点在左上角

// Screen Configuration (屏幕配置)
const (
	// ScreenWidth 逻辑屏幕宽度
	ScreenWidth = 948

	// ScreenHeight 逻辑屏幕高度
	ScreenHeight = 533

	// TargetTPS 桌面端目标逻辑帧率
	TargetTPS = 60
)

// Grid Configuration (网格配置)
const (
	// GridColumns 网格列数
	GridColumns = 9

	// GridRows 网格行数
	GridRows = 7

	// CellWidth 每个格子的宽度（像素）
	CellWidth = 56.0

	// CellHeight 每个格子的高度（像素）
	CellHeight = 48.0

	// GridOffsetX 网格左上角X坐标
	GridOffsetX = 222.0

	// GridOffsetY 网格左上角Y坐标
	GridOffsetY = 40.0

	// GridEndX 网格右边界X坐标（不含）
	GridEndX = GridOffsetX + float64(GridColumns)*CellWidth

	// GridEndY 网格下边界Y坐标（不含）
	GridEndY = GridOffsetY + float64(GridRows)*CellHeight

	// GoalColumn, GoalRow 敌人的目标格子（网格中心）
	GoalColumn = 4
	GoalRow    = 3

	// BlockedTicks 放置方块后格子被"烧焦"的持续帧数
	// 每帧衰减 1，远大于任何实际的衰减周期
	BlockedTicks = 1000
)

// Pool Capacities (固定容量)
const (
	MaxEnemies    = 10 // 敌人池容量
	MaxBlockSize  = 4  // 单个方块的最大格子数
	MaxHolding    = 5  // 背包容量
	MaxParticles  = 10 // 每个爆发效果的粒子数
	MaxBursts     = 20 // 爆发效果池容量
	EnemyDrawSize = 32.0
)

// Inventory Configuration (背包布局)
const (
	// InventoryX, InventoryY 背包第一个槽位左上角
	InventoryX = 222.0
	InventoryY = 400.0

	// InventorySlotWidth, InventorySlotHeight 每个槽位尺寸
	InventorySlotWidth  = 100.0
	InventorySlotHeight = 110.0

	// InventoryCellSize 槽位内方块单格的绘制尺寸
	InventoryCellSize = 20.0
)

// Rotate Control (旋转按钮)
const (
	RotateButtonX      = 760.0
	RotateButtonY      = 420.0
	RotateButtonWidth  = 120.0
	RotateButtonHeight = 60.0
)

// Rounded rectangle style shared by every rounded draw call
const (
	RoundedRectRoundness = 0.5
	RoundedRectSegments  = 10
)
