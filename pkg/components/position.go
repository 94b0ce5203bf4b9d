package components

import "math"

// PositionComponent 实体在屏幕上的像素坐标（中心点）
type PositionComponent struct {
	X float64
	Y float64
}

// DistanceTo 返回两个位置之间的欧氏距离
func (p *PositionComponent) DistanceTo(other *PositionComponent) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}
