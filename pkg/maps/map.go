// Package maps 实现塔防地图：背景图片上的静态网格
//
// 地图把网格划分为路径格子与可建造格子，提供像素坐标与网格坐标的互相转换，
// 并给出敌人行进的拐点序列。地图在构造后不可变，可以在整局游戏中直接共享。
package maps

import (
	"errors"
	"fmt"
	"path"

	"github.com/decker502/minion-td/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// BackgroundDir 地图背景图片所在目录
const BackgroundDir = "assets/images/maps"

var (
	// ErrEmptyPath 表示布局没有提供任何路径拐点
	ErrEmptyPath = errors.New("map path is empty")
	// ErrOverlappingCells 表示同一个格子既是路径又可建造
	ErrOverlappingCells = errors.New("path and buildable cells overlap")
	// ErrInvalidCellSize 表示格子尺寸不是正数
	ErrInvalidCellSize = errors.New("cell size must be positive")
)

// ImageLoader 加载背景图片
type ImageLoader interface {
	LoadImage(path string) (*ebiten.Image, error)
}

// Map 一张已初始化的地图
type Map struct {
	id         string
	name       string
	background *ebiten.Image
	dims       Dimensions

	pathGrid      CellSet
	buildableGrid CellSet
	path          []PathPoint

	// 绘制用的有序格子列表，构造时计算一次
	pathCells      []GridPos
	buildableCells []GridPos
}

// Load 加载布局对应的背景图片并创建地图
// 背景缺失时立即返回错误（错误链中包含 fs.ErrNotExist）
func Load(loader ImageLoader, layout Layout, cellSize int) (*Map, error) {
	bgPath := path.Join(BackgroundDir, layout.Background())
	background, err := loader.LoadImage(bgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load background for map %s: %w", layout.ID(), err)
	}
	return New(layout, background, cellSize)
}

// New 使用给定背景创建地图
//
// 网格尺寸由画面尺寸减去侧边栏得到。布局的 InitializeGrid 只调用一次，
// 拐点被转换为格子中心的像素坐标。路径为空或两类格子重叠时返回错误。
// background 可以为 nil（不绘制背景）
func New(layout Layout, background *ebiten.Image, cellSize int) (*Map, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("map %s: %w (got %d)", layout.ID(), ErrInvalidCellSize, cellSize)
	}

	dims := Dimensions{
		Width:    config.PlayAreaGridWidth(cellSize),
		Height:   config.PlayAreaGridHeight(cellSize),
		CellSize: cellSize,
	}

	grid, err := layout.InitializeGrid(dims)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize grid for map %s: %w", layout.ID(), err)
	}
	if grid == nil || len(grid.Waypoints) == 0 {
		return nil, fmt.Errorf("map %s: %w", layout.ID(), ErrEmptyPath)
	}

	m := &Map{
		id:            layout.ID(),
		name:          layout.Name(),
		background:    background,
		dims:          dims,
		pathGrid:      make(CellSet, len(grid.PathCells)),
		buildableGrid: make(CellSet, len(grid.BuildableCells)),
	}

	for p := range grid.PathCells {
		m.pathGrid.Add(p)
	}
	for p := range grid.BuildableCells {
		if m.pathGrid.Has(p) {
			return nil, fmt.Errorf("map %s: %w at (%d, %d)", layout.ID(), ErrOverlappingCells, p.Col, p.Row)
		}
		m.buildableGrid.Add(p)
	}

	m.path = make([]PathPoint, len(grid.Waypoints))
	for i, wp := range grid.Waypoints {
		m.path[i] = m.GridToPixel(wp)
	}

	m.pathCells = m.pathGrid.Sorted()
	m.buildableCells = m.buildableGrid.Sorted()

	return m, nil
}

// ID 返回地图ID
func (m *Map) ID() string { return m.id }

// Name 返回地图名称
func (m *Map) Name() string { return m.name }

// CellSize 返回格子边长（像素）
func (m *Map) CellSize() int { return m.dims.CellSize }

// GridWidth 返回地图区域列数
func (m *Map) GridWidth() int { return m.dims.Width }

// GridHeight 返回地图区域行数
func (m *Map) GridHeight() int { return m.dims.Height }

// Dimensions 返回网格尺寸
func (m *Map) Dimensions() Dimensions { return m.dims }

// IsBuildable 判断格子是否可以建塔，越界格子返回 false
func (m *Map) IsBuildable(col, row int) bool {
	return m.buildableGrid.Has(GridPos{Col: col, Row: row})
}

// IsPath 判断格子是否属于敌人路径
func (m *Map) IsPath(col, row int) bool {
	return m.pathGrid.Has(GridPos{Col: col, Row: row})
}

// Path 返回完整的路径拐点（像素坐标），第一个为出生点，最后一个为终点
// 返回的是副本，调用方修改不会影响地图
func (m *Map) Path() []PathPoint {
	p := make([]PathPoint, len(m.path))
	copy(p, m.path)
	return p
}

// SpawnPoint 返回敌人出生点
// 构造时已保证路径非空
func (m *Map) SpawnPoint() PathPoint {
	return m.path[0]
}

// EndPoint 返回路径终点
func (m *Map) EndPoint() PathPoint {
	return m.path[len(m.path)-1]
}

// PathCells 按 (行, 列) 顺序返回路径格子
func (m *Map) PathCells() []GridPos {
	cells := make([]GridPos, len(m.pathCells))
	copy(cells, m.pathCells)
	return cells
}

// BuildableCells 按 (行, 列) 顺序返回可建造格子
func (m *Map) BuildableCells() []GridPos {
	cells := make([]GridPos, len(m.buildableCells))
	copy(cells, m.buildableCells)
	return cells
}

// PixelToGrid 把像素坐标转换为所在格子
// 使用向下取整除法，负坐标落在负编号的格子里
func (m *Map) PixelToGrid(x, y int) GridPos {
	return GridPos{
		Col: floorDiv(x, m.dims.CellSize),
		Row: floorDiv(y, m.dims.CellSize),
	}
}

// GridToPixel 返回格子中心的像素坐标
func (m *Map) GridToPixel(p GridPos) PathPoint {
	size := m.dims.CellSize
	return PathPoint{
		X: p.Col*size + size/2,
		Y: p.Row*size + size/2,
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
