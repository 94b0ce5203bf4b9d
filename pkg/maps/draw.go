package maps

import (
	"image/color"

	"github.com/decker502/minion-td/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	gridLineColor  = color.NRGBA{R: 200, G: 200, B: 200, A: 100}
	buildableColor = color.NRGBA{R: 0, G: 255, B: 0, A: 50}
	pathColor      = color.NRGBA{R: 255, G: 0, B: 0, A: 50}
)

// Draw 绘制地图
// 背景缩放到地图区域；showGrid 为 true 时叠加网格线和路径/可建造区域
// 只读操作，不修改地图状态
func (m *Map) Draw(screen *ebiten.Image, showGrid bool) {
	if m.background != nil {
		bounds := m.background.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(
			float64(config.PlayAreaWidth)/float64(bounds.Dx()),
			float64(config.ScreenHeight)/float64(bounds.Dy()),
		)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(m.background, op)
	}

	if !showGrid {
		return
	}

	size := m.dims.CellSize
	width := float32(config.PlayAreaWidth)
	height := float32(config.ScreenHeight)

	for x := 0; x < config.PlayAreaWidth; x += size {
		vector.StrokeLine(screen, float32(x), 0, float32(x), height, 1, gridLineColor, false)
	}
	for y := 0; y < config.ScreenHeight; y += size {
		vector.StrokeLine(screen, 0, float32(y), width, float32(y), 1, gridLineColor, false)
	}

	for _, p := range m.buildableCells {
		m.fillCell(screen, p, buildableColor)
	}
	for _, p := range m.pathCells {
		m.fillCell(screen, p, pathColor)
	}
}

func (m *Map) fillCell(screen *ebiten.Image, p GridPos, clr color.Color) {
	size := float32(m.dims.CellSize)
	vector.DrawFilledRect(screen, float32(p.Col)*size, float32(p.Row)*size, size, size, clr, false)
}
