package utils

import (
	"math"

	"github.com/decker502/blockdefense/pkg/components"
)

// RoundedRectOutline 返回圆角矩形的轮廓点（顺时针，起点为左上角圆弧的左端）
// 圆角半径为 roundness × 短边的一半，每个角用 segments 段折线逼近，共 segments+1 个点
// 半径或 segments 不为正时退化为矩形的四个角点
func RoundedRectOutline(x, y, w, h, roundness float64, segments int) []components.Point {
	r := math.Min(w, h) * math.Max(0, math.Min(roundness, 1)) / 2
	if r <= 0 || segments <= 0 {
		return []components.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}
	}

	corners := [4]struct{ cx, cy, start float64 }{
		{x + r, y + r, math.Pi},           // 左上
		{x + w - r, y + r, 1.5 * math.Pi}, // 右上
		{x + w - r, y + h - r, 0},         // 右下
		{x + r, y + h - r, 0.5 * math.Pi}, // 左下
	}

	points := make([]components.Point, 0, 4*(segments+1))
	step := (math.Pi / 2) / float64(segments)
	for _, c := range corners {
		for i := 0; i <= segments; i++ {
			a := c.start + float64(i)*step
			points = append(points, components.Point{
				X: c.cx + r*math.Cos(a),
				Y: c.cy + r*math.Sin(a),
			})
		}
	}
	return points
}
