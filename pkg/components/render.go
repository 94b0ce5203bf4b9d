package components

import "image/color"

// RenderComponent 以纯色圆形绘制实体
type RenderComponent struct {
	Color  color.Color
	Radius float64
}
