// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/decker502/minion-td/pkg/config"
	"github.com/decker502/minion-td/pkg/embedded"
	"github.com/decker502/minion-td/pkg/game"
	"github.com/decker502/minion-td/pkg/maps"
	"github.com/decker502/minion-td/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// 数据文件路径（相对项目根目录，运行时从嵌入资源读取）
const (
	AppName = "minion_td"

	resourceConfigPath = "data/resources.yaml"
	towerConfigPath    = "data/towers.yaml"
	enemyConfigPath    = "data/enemies.yaml"
	waveConfigPath     = "data/waves.yaml"
	mapConfigDir       = "data/maps"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// MapID 指定要加载的地图，为空则使用上次的地图或默认地图
	MapID string
	// ShowGrid 本次启动显示网格（不修改已保存的设置）
	ShowGrid bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	registry     *maps.Registry
	currentMapID string
	verbose      bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	resourceManager := game.NewResourceManager(embedded.FS())
	if err := resourceManager.LoadResourceConfig(resourceConfigPath); err != nil {
		return nil, fmt.Errorf("failed to load resource config: %w", err)
	}
	if err := resourceManager.LoadResourceGroup("maps"); err != nil {
		return nil, fmt.Errorf("failed to load map images: %w", err)
	}

	towers, err := config.LoadTowerConfig(towerConfigPath)
	if err != nil {
		return nil, err
	}
	enemies, err := config.LoadEnemyConfig(enemyConfigPath)
	if err != nil {
		return nil, err
	}
	waves, err := config.LoadWaveConfig(waveConfigPath)
	if err != nil {
		return nil, err
	}
	mapConfigs, err := config.LoadMapConfigDir(mapConfigDir)
	if err != nil {
		return nil, err
	}
	registry, err := maps.NewDefaultRegistry(mapConfigs)
	if err != nil {
		return nil, fmt.Errorf("failed to register maps: %w", err)
	}
	log.Printf("[App] 已注册地图: %s", strings.Join(registry.IDs(), ", "))

	// 存储不可用时设置与记录只保存在内存中
	storage, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] 警告: 持久化存储不可用，设置与记录仅保存在内存中: %v", err)
		storage = nil
	}
	// 构造时即从存储加载
	settings := game.NewSettingsManager(storage)
	records := game.NewRecordManager(storage)

	mapID, err := resolveMapID(registry, cfg.MapID, settings.GetSettings().LastMapID)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(id string) (game.Scene, error) {
		layout, ok := registry.Get(id)
		if !ok {
			return nil, fmt.Errorf("unknown map %q", id)
		}
		gameMap, err := maps.Load(resourceManager, layout, config.GridSize)
		if err != nil {
			return nil, err
		}
		return scenes.NewGameScene(scenes.GameSceneConfig{
			Map:      gameMap,
			Towers:   towers,
			Enemies:  enemies,
			Waves:    waves,
			Settings: settings,
			Records:  records,
			Rand:     rng,
			// 仅本次启动生效，不写入设置
			ForceGrid: cfg.ShowGrid,
		})
	})

	// 首个场景失败时直接返回错误，而不是显示空白画面
	if !sceneManager.LoadMap(mapID) {
		return nil, fmt.Errorf("failed to load map %q", mapID)
	}
	log.Printf("[App] 启动地图: %s", mapID)

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		registry:     registry,
		currentMapID: mapID,
		verbose:      cfg.Verbose,
	}, nil
}

// resolveMapID 按 命令行 > 上次地图 > 默认地图 的顺序选择地图
// 命令行指定的地图不存在时返回错误，上次的地图不存在时静默回退
func resolveMapID(registry *maps.Registry, requested, last string) (string, error) {
	if requested != "" {
		if _, ok := registry.Get(requested); !ok {
			return "", fmt.Errorf("unknown map %q (available: %s)", requested, strings.Join(registry.IDs(), ", "))
		}
		return requested, nil
	}
	if last != "" {
		if _, ok := registry.Get(last); ok {
			return last, nil
		}
	}
	if _, ok := registry.Get(maps.DefaultMapID); ok {
		return maps.DefaultMapID, nil
	}
	ids := registry.IDs()
	if len(ids) == 0 {
		return "", errors.New("no maps registered")
	}
	return ids[0], nil
}

// nextMapID 返回注册顺序中的下一张地图
func nextMapID(registry *maps.Registry, current string) string {
	ids := registry.IDs()
	for i, id := range ids {
		if id == current {
			return ids[(i+1)%len(ids)]
		}
	}
	return ids[0]
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.saveOnExit()
		return ebiten.Termination
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// Tab 切换到下一张地图
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		a.switchMap(nextMapID(a.registry, a.currentMapID))
	}

	deltaTime := 1.0 / float64(config.TargetFPS)
	a.sceneManager.Update(deltaTime)
	return nil
}

// switchMap 保存当前场景后切换地图
func (a *App) switchMap(mapID string) {
	if mapID == a.currentMapID {
		return
	}
	a.saveOnExit()
	if a.sceneManager.LoadMap(mapID) {
		a.currentMapID = mapID
	}
}

// saveOnExit 让当前场景保存记录与设置
func (a *App) saveOnExit() {
	if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Printf("[App] 警告: 退出时保存失败")
		}
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// CurrentMapID 返回当前地图 ID
func (a *App) CurrentMapID() string {
	return a.currentMapID
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
