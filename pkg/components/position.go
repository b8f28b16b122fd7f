package components

import "math"

// Point 屏幕空间中的连续坐标（像素）
type Point struct {
	X, Y float64
}

// Add 返回 p + o
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub 返回 p - o
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale 返回 p * k
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// LengthSquared 向量长度的平方
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Length 向量长度
func (p Point) Length() float64 {
	return math.Sqrt(p.LengthSquared())
}

// Cell 网格坐标（列 X，行 Y）
// 可以位于网格之外（如敌人出生点）
type Cell struct {
	X, Y int
}

// Offset 方块格子相对锚点的偏移
type Offset struct {
	X, Y int
}

// Translate 返回锚点 c 加上偏移 o 后的格子
func (c Cell) Translate(o Offset) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y}
}
