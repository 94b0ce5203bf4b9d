package scenes

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/minion-td/pkg/components"
	"github.com/decker502/minion-td/pkg/config"
	"github.com/decker502/minion-td/pkg/ecs"
	"github.com/decker502/minion-td/pkg/game"
	"github.com/decker502/minion-td/pkg/maps"
	"github.com/decker502/minion-td/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameSceneConfig 创建游戏场景所需的依赖
type GameSceneConfig struct {
	Map     *maps.Map
	Towers  *config.TowerConfig
	Enemies *config.EnemyConfig
	Waves   *config.WaveConfig

	// 可选：为 nil 时不持久化
	Settings *game.SettingsManager
	Records  *game.RecordManager

	// 可选：为 nil 时使用随机种子
	Rand *rand.Rand

	// ForceGrid 强制显示网格，与设置中的开关取或，不写回设置
	ForceGrid bool
}

// GameScene 一局塔防游戏
//
// 持有地图、实体管理器和全部系统。每帧按固定顺序推进：
// 状态效果 → 移动 → 索敌 → 子弹 → 结算 → 清理实体 → 波次。
type GameScene struct {
	cfg GameSceneConfig

	gameMap       *maps.Map
	entityManager *ecs.EntityManager
	gameState     *game.GameState

	statusEffectSystem  *systems.StatusEffectSystem
	pathFollowingSystem *systems.PathFollowingSystem
	targetingSystem     *systems.TargetingSystem
	projectileSystem    *systems.ProjectileSystem
	lifecycleSystem     *systems.LifecycleSystem
	waveSystem          *systems.WaveSystem
	towerSystem         *systems.TowerSystem
	renderSystem        *systems.RenderSystem

	// 鼠标悬停的格子，用于放置预览
	hoverCell  maps.GridPos
	hoverValid bool

	message      string  // 侧边栏底部的提示信息
	messageTimer float64 // 提示剩余显示时间（秒）

	recordSaved bool
}

// NewGameScene 创建游戏场景
func NewGameScene(cfg GameSceneConfig) (*GameScene, error) {
	if cfg.Map == nil {
		return nil, errors.New("game scene requires a map")
	}
	if cfg.Towers == nil || cfg.Enemies == nil || cfg.Waves == nil {
		return nil, errors.New("game scene requires tower, enemy and wave configs")
	}
	if err := cfg.Waves.ValidateAgainst(cfg.Enemies); err != nil {
		return nil, fmt.Errorf("invalid wave config: %w", err)
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(rand.Int63()))
	}

	s := &GameScene{
		cfg:     cfg,
		gameMap: cfg.Map,
	}
	s.initSession()

	log.Printf("[GameScene] 创建地图场景 %s（%dx%d 格）", s.gameMap.Name(), s.gameMap.GridWidth(), s.gameMap.GridHeight())
	return s, nil
}

// Update 处理输入并推进一帧
func (s *GameScene) Update(deltaTime float64) {
	s.handleInput()
	s.step(deltaTime)
}

// step 推进游戏逻辑（不含输入）
func (s *GameScene) step(deltaTime float64) {
	if s.messageTimer > 0 {
		s.messageTimer -= deltaTime
	}

	dt := s.gameState.Advance(deltaTime)
	if dt == 0 {
		s.saveRecordIfFinished()
		return
	}

	s.statusEffectSystem.Update(dt)
	s.pathFollowingSystem.Update(dt)
	s.targetingSystem.Update(dt)
	s.projectileSystem.Update(dt)
	s.lifecycleSystem.Update()
	s.entityManager.RemoveMarkedEntities()
	s.waveSystem.Update(dt)

	s.saveRecordIfFinished()
}

// Draw 绘制地图、实体与侧边栏
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.gameMap.Draw(screen, s.gameState.ShowGrid)
	s.drawPlacementPreview(screen)
	s.renderSystem.Draw(screen)
	s.drawSidebar(screen)
	s.drawOverlay(screen)
}

// SaveOnExit 退出时保存最好成绩与设置
func (s *GameScene) SaveOnExit() bool {
	ok := true
	if s.cfg.Records != nil {
		s.cfg.Records.Submit(s.gameMap.ID(), s.waveSystem.CurrentWave(), s.gameState.GameWon)
		if err := s.cfg.Records.Save(); err != nil {
			log.Printf("[GameScene] 保存记录失败: %v", err)
			ok = false
		}
	}
	if s.cfg.Settings != nil {
		s.cfg.Settings.SetLastMapID(s.gameMap.ID())
		if err := s.cfg.Settings.Save(); err != nil {
			log.Printf("[GameScene] 保存设置失败: %v", err)
			ok = false
		}
	}
	return ok
}

// saveRecordIfFinished 游戏结束或胜利时保存一次成绩
func (s *GameScene) saveRecordIfFinished() {
	if s.recordSaved || s.cfg.Records == nil {
		return
	}
	if !s.gameState.GameOver && !s.gameState.GameWon {
		return
	}
	s.recordSaved = true
	if s.cfg.Records.Submit(s.gameMap.ID(), s.waveSystem.CurrentWave(), s.gameState.GameWon) {
		if err := s.cfg.Records.Save(); err != nil {
			log.Printf("[GameScene] 保存记录失败: %v", err)
		}
	}
}

// GameState 返回本局状态
func (s *GameScene) GameState() *game.GameState {
	return s.gameState
}

// EntityManager 返回本局实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// WaveSystem 返回波次系统
func (s *GameScene) WaveSystem() *systems.WaveSystem {
	return s.waveSystem
}

// TowerSystem 返回塔系统
func (s *GameScene) TowerSystem() *systems.TowerSystem {
	return s.towerSystem
}

// showMessage 在侧边栏显示提示
func (s *GameScene) showMessage(format string, args ...any) {
	s.message = fmt.Sprintf(format, args...)
	s.messageTimer = messageDuration
}

// defaultStrategy 从设置中读取新建塔的目标策略
func (s *GameScene) defaultStrategy() components.TargetingStrategy {
	if s.cfg.Settings == nil {
		return components.TargetClosest
	}
	strategy := components.TargetingStrategy(s.cfg.Settings.GetSettings().DefaultTargeting)
	for _, known := range components.TargetingStrategies {
		if strategy == known {
			return strategy
		}
	}
	return components.TargetClosest
}
