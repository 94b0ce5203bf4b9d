package main

import (
	"github.com/decker502/minion-td/pkg/maps"
)

// 格子字符
const (
	cellPath      = '#'
	cellBuildable = '.'
	cellBlocked   = ' '
	cellSpawn     = 'S'
	cellEnd       = 'E'
)

// renderGrid 把地图的格子分类转换为字符网格，按 [row][col] 索引
// 起点和终点只在网格范围内时标出
func renderGrid(m *maps.Map) [][]rune {
	rows := make([][]rune, m.GridHeight())
	for row := range rows {
		rows[row] = make([]rune, m.GridWidth())
		for col := range rows[row] {
			switch {
			case m.IsPath(col, row):
				rows[row][col] = cellPath
			case m.IsBuildable(col, row):
				rows[row][col] = cellBuildable
			default:
				rows[row][col] = cellBlocked
			}
		}
	}

	mark := func(p maps.PathPoint, r rune) {
		cell := m.PixelToGrid(p.X, p.Y)
		if m.Dimensions().InBounds(cell) {
			rows[cell.Row][cell.Col] = r
		}
	}
	mark(m.SpawnPoint(), cellSpawn)
	mark(m.EndPoint(), cellEnd)
	return rows
}

// countCells 统计各类格子数量
func countCells(grid [][]rune) map[rune]int {
	counts := make(map[rune]int)
	for _, row := range grid {
		for _, r := range row {
			counts[r]++
		}
	}
	return counts
}
