package main

import (
	"flag"
	"log"

	"github.com/decker502/minion-td/pkg/app"
	"github.com/decker502/minion-td/pkg/config"
	"github.com/decker502/minion-td/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	mapFlag     = flag.String("map", "", "Map to start on (default: last played map or minion_valley)")
	gridFlag    = flag.Bool("grid", false, "Show the grid overlay on start")
)

func main() {
	flag.Parse()

	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:  *verboseFlag,
		MapID:    *mapFlag,
		ShowGrid: *gridFlag,
	})
	if err != nil {
		log.SetOutput(flag.CommandLine.Output())
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TargetFPS)
	// 关闭窗口时由 App.Update 保存记录后再退出
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
