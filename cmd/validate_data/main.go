// validate_data 检查 data/ 下的游戏数据是否能被加载，并构建每一张地图
//
// 在项目根目录运行：
//
//	go run ./cmd/validate_data
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/decker502/minion-td/pkg/config"
	"github.com/decker502/minion-td/pkg/maps"
)

var rootFlag = flag.String("root", ".", "Project root containing data/ and assets/")

func main() {
	flag.Parse()
	if failures := validate(*rootFlag, os.Stdout); failures > 0 {
		fmt.Printf("❌ 共 %d 项检查失败\n", failures)
		os.Exit(1)
	}
	fmt.Printf("✅ 所有数据检查通过\n")
}

// validate 依次加载配置并输出结果，返回失败的检查数
func validate(root string, w io.Writer) int {
	failures := 0
	fail := func(format string, args ...any) {
		fmt.Fprintf(w, "❌ "+format+"\n", args...)
		failures++
	}
	ok := func(format string, args ...any) {
		fmt.Fprintf(w, "✅ "+format+"\n", args...)
	}

	towers, err := config.LoadTowerConfig(path.Join(root, "data/towers.yaml"))
	if err != nil {
		fail("%v", err)
	} else {
		ok("塔类型数量: %d", len(towers.Towers))
	}

	enemies, err := config.LoadEnemyConfig(path.Join(root, "data/enemies.yaml"))
	if err != nil {
		fail("%v", err)
	} else {
		ok("敌人类型数量: %d", len(enemies.Enemies))
	}

	waves, err := config.LoadWaveConfig(path.Join(root, "data/waves.yaml"))
	switch {
	case err != nil:
		fail("%v", err)
	case enemies != nil:
		if err := waves.ValidateAgainst(enemies); err != nil {
			fail("waves: %v", err)
		} else {
			ok("波次规则: %d 类敌人, 共 %d 波", len(waves.Composition), waves.TotalWaves)
		}
	}

	configs, err := config.LoadMapConfigDir(path.Join(root, "data/maps"))
	if err != nil {
		fail("%v", err)
		return failures
	}
	registry, err := maps.NewDefaultRegistry(configs)
	if err != nil {
		fail("%v", err)
		return failures
	}

	for _, id := range registry.IDs() {
		layout, _ := registry.Get(id)
		m, err := maps.New(layout, nil, config.GridSize)
		if err != nil {
			fail("地图 %s: %v", id, err)
			continue
		}
		bg := path.Join(root, maps.BackgroundDir, layout.Background())
		if _, err := os.Stat(bg); err != nil {
			fail("地图 %s: 背景图片缺失: %v", id, err)
			continue
		}
		ok("地图 %s: 路径 %d 格, 可建造 %d 格, %d 个拐点", id, len(m.PathCells()), len(m.BuildableCells()), len(m.Path()))
	}
	return failures
}
