// mapview 在终端中查看地图的格子分类
//
// 需要在项目根目录运行（从磁盘读取 data/maps）：
//
//	go run ./cmd/mapview --map twin_bridges
//
// Tab 切换地图，q / Esc 退出。
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/minion-td/pkg/config"
	"github.com/decker502/minion-td/pkg/maps"
	"github.com/gdamore/tcell/v2"
)

var (
	mapFlag  = flag.String("map", maps.DefaultMapID, "Map to show")
	cellFlag = flag.Int("cell", config.GridSize, "Grid cell size in pixels")
)

var (
	pathStyle      = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	buildableStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	markerStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	textStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// viewer 终端地图查看器
type viewer struct {
	screen   tcell.Screen
	registry *maps.Registry
	cellSize int
	ids      []string
	index    int
	current  *maps.Map
}

func main() {
	flag.Parse()

	configs, err := config.LoadMapConfigDir("data/maps")
	if err != nil {
		log.Fatalf("加载地图配置失败: %v", err)
	}
	registry, err := maps.NewDefaultRegistry(configs)
	if err != nil {
		log.Fatalf("注册地图失败: %v", err)
	}

	v := &viewer{registry: registry, cellSize: *cellFlag, ids: registry.IDs()}
	v.index = -1
	for i, id := range v.ids {
		if id == *mapFlag {
			v.index = i
		}
	}
	if v.index < 0 {
		fmt.Fprintf(os.Stderr, "unknown map %q, available: %v\n", *mapFlag, v.ids)
		os.Exit(1)
	}
	if err := v.load(); err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("创建终端屏幕失败: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("初始化终端屏幕失败: %v", err)
	}
	v.screen = screen
	defer screen.Fini()

	v.run()
}

// load 构建当前索引对应的地图（不需要背景图片）
func (v *viewer) load() error {
	layout, _ := v.registry.Get(v.ids[v.index])
	m, err := maps.New(layout, nil, v.cellSize)
	if err != nil {
		return fmt.Errorf("failed to build map %s: %w", v.ids[v.index], err)
	}
	v.current = m
	return nil
}

func (v *viewer) run() {
	v.draw("")
	for {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return
			case ev.Key() == tcell.KeyTab:
				prev := v.index
				v.index = (v.index + 1) % len(v.ids)
				if err := v.load(); err != nil {
					v.index = prev
					v.draw(err.Error())
					continue
				}
				v.draw("")
			}
		case *tcell.EventResize:
			v.screen.Sync()
			v.draw("")
		}
	}
}

func (v *viewer) draw(status string) {
	v.screen.Clear()
	m := v.current
	grid := renderGrid(m)

	// 每个格子占两列，使比例接近正方形
	for row, cells := range grid {
		for col, r := range cells {
			style := textStyle
			switch r {
			case cellPath:
				style = pathStyle
			case cellBuildable:
				style = buildableStyle
			case cellSpawn, cellEnd:
				style = markerStyle
			}
			v.screen.SetContent(col*2, row, r, nil, style)
			v.screen.SetContent(col*2+1, row, ' ', nil, style)
		}
	}

	counts := countCells(grid)
	spawn, end := m.SpawnPoint(), m.EndPoint()
	lines := []string{
		fmt.Sprintf("%s (%s)  %dx%d cells of %dpx", m.Name(), m.ID(), m.GridWidth(), m.GridHeight(), m.CellSize()),
		fmt.Sprintf("path %d  buildable %d  waypoints %d", len(m.PathCells()), len(m.BuildableCells()), len(m.Path())),
		fmt.Sprintf("spawn (%d,%d)  end (%d,%d)  blocked %d", spawn.X, spawn.Y, end.X, end.Y, counts[cellBlocked]),
		"# path  . buildable  S/E spawn/end   Tab next map  q quit",
		status,
	}
	y := m.GridHeight() + 1
	for _, line := range lines {
		for x, r := range []rune(line) {
			v.screen.SetContent(x, y, r, nil, textStyle)
		}
		y++
	}
	v.screen.Show()
}
