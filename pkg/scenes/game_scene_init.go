package scenes

import (
	"log"

	"github.com/decker502/minion-td/pkg/ecs"
	"github.com/decker502/minion-td/pkg/game"
	"github.com/decker502/minion-td/pkg/systems"
)

// initSession 创建新的实体管理器、游戏状态与系统
// 重新开始时同样调用，地图保持不变
func (s *GameScene) initSession() {
	s.entityManager = ecs.NewEntityManager()
	s.gameState = game.NewDefaultGameState()
	if s.cfg.Settings != nil {
		s.gameState.ShowGrid = s.cfg.Settings.GetSettings().ShowGrid
	}
	if s.cfg.ForceGrid {
		s.gameState.ShowGrid = true
	}
	if len(s.cfg.Towers.Order) > 0 {
		s.gameState.SelectedTowerType = s.cfg.Towers.Order[0]
	}

	em, gs := s.entityManager, s.gameState
	s.statusEffectSystem = systems.NewStatusEffectSystem(em)
	s.pathFollowingSystem = systems.NewPathFollowingSystem(em)
	s.targetingSystem = systems.NewTargetingSystem(em, gs, s.cfg.Rand)
	s.projectileSystem = systems.NewProjectileSystem(em)
	s.lifecycleSystem = systems.NewLifecycleSystem(em, gs)
	s.waveSystem = systems.NewWaveSystem(em, gs, s.cfg.Waves, s.cfg.Enemies, s.gameMap.Path(), s.cfg.Rand)
	s.towerSystem = systems.NewTowerSystem(em, gs, s.gameMap, s.cfg.Towers)
	s.towerSystem.SetDefaultStrategy(s.defaultStrategy())
	s.renderSystem = systems.NewRenderSystem(em)

	s.message = ""
	s.messageTimer = 0
	s.recordSaved = false
}

// restart 结束后重新开始本地图
func (s *GameScene) restart() {
	log.Printf("[GameScene] 重新开始地图 %s", s.gameMap.ID())
	s.initSession()
}
