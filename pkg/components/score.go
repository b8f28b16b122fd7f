package components

// ScoreComponent 本局统计
type ScoreComponent struct {
	Kills        int     // 被方块击杀的敌人数
	BlocksPlaced int     // 成功放置的方块数
	Survived     float64 // 存活时间（秒）
}
