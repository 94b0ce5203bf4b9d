package maps

import "sort"

// GridPos 网格坐标（列、行）
type GridPos struct {
	Col int
	Row int
}

// PathPoint 像素坐标下的路径拐点
type PathPoint struct {
	X int
	Y int
}

// CellSet 网格坐标集合
type CellSet map[GridPos]struct{}

// Add 加入一个格子
func (s CellSet) Add(p GridPos) {
	s[p] = struct{}{}
}

// Has 判断格子是否在集合中
func (s CellSet) Has(p GridPos) bool {
	_, ok := s[p]
	return ok
}

// Sorted 按 (行, 列) 顺序返回集合内容
func (s CellSet) Sorted() []GridPos {
	cells := make([]GridPos, 0, len(s))
	for p := range s {
		cells = append(cells, p)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}

// Dimensions 地图网格尺寸
type Dimensions struct {
	Width    int // 列数
	Height   int // 行数
	CellSize int // 格子边长（像素）
}

// InBounds 判断格子是否位于地图可见区域内
func (d Dimensions) InBounds(p GridPos) bool {
	return p.Col >= 0 && p.Col < d.Width && p.Row >= 0 && p.Row < d.Height
}

// GridLayout 是 Layout 对网格的分类结果
type GridLayout struct {
	Waypoints      []GridPos // 路径拐点（网格坐标），第一个为出生点，最后一个为终点
	PathCells      CellSet   // 路径占用的格子
	BuildableCells CellSet   // 可以建塔的格子
}

// Layout 描述一张具体地图的布局
//
// 每张地图提供自己的实现，Map 在构造时调用一次 InitializeGrid，
// 之后不再修改分类结果
type Layout interface {
	ID() string
	Name() string
	// Background 返回背景图片文件名（相对 assets/images/maps/）
	Background() string
	// InitializeGrid 根据网格尺寸计算路径与可建造区域
	InitializeGrid(dims Dimensions) (*GridLayout, error)
}

// FillPathCells 沿拐点逐格填充路径
//
// 相邻拐点之间先沿 X 方向再沿 Y 方向行走，两端拐点都计入路径
func FillPathCells(waypoints []GridPos) CellSet {
	cells := make(CellSet)
	if len(waypoints) == 1 {
		cells.Add(waypoints[0])
	}

	for i := 0; i+1 < len(waypoints); i++ {
		start, end := waypoints[i], waypoints[i+1]
		dx := sign(end.Col - start.Col)
		dy := sign(end.Row - start.Row)

		current := start
		for current != end {
			cells.Add(current)
			if current.Col != end.Col {
				current.Col += dx
			} else {
				current.Row += dy
			}
		}
		cells.Add(end)
	}
	return cells
}

// BuildableAround 返回地图区域内既不在路径上、也不在路径 buffer 格范围内的所有格子
// buffer 为切比雪夫距离，1 表示路径周围一圈（含对角）不可建造
func BuildableAround(dims Dimensions, path CellSet, buffer int) CellSet {
	buildable := make(CellSet)
	for col := 0; col < dims.Width; col++ {
		for row := 0; row < dims.Height; row++ {
			p := GridPos{Col: col, Row: row}
			if !nearPath(p, path, buffer) {
				buildable.Add(p)
			}
		}
	}
	return buildable
}

// nearPath 判断格子与路径的切比雪夫距离是否不超过 buffer
func nearPath(p GridPos, path CellSet, buffer int) bool {
	for dc := -buffer; dc <= buffer; dc++ {
		for dr := -buffer; dr <= buffer; dr++ {
			if path.Has(GridPos{Col: p.Col + dc, Row: p.Row + dr}) {
				return true
			}
		}
	}
	return false
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
