package systems

import (
	"fmt"
	"log"

	"github.com/decker502/minion-td/pkg/components"
	"github.com/decker502/minion-td/pkg/config"
	"github.com/decker502/minion-td/pkg/ecs"
	"github.com/decker502/minion-td/pkg/entities"
	"github.com/decker502/minion-td/pkg/game"
	"github.com/decker502/minion-td/pkg/maps"
)

// TowerSystem 塔的放置、选择、升级与出售
type TowerSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	gameMap       *maps.Map
	towerConfig   *config.TowerConfig

	selected        ecs.EntityID
	defaultStrategy components.TargetingStrategy
}

// NewTowerSystem 创建塔系统
func NewTowerSystem(em *ecs.EntityManager, gs *game.GameState, m *maps.Map, towers *config.TowerConfig) *TowerSystem {
	return &TowerSystem{
		entityManager:   em,
		gameState:       gs,
		gameMap:         m,
		towerConfig:     towers,
		defaultStrategy: components.TargetClosest,
	}
}

// SetDefaultStrategy 设置新建塔的目标策略
func (s *TowerSystem) SetDefaultStrategy(strategy components.TargetingStrategy) {
	s.defaultStrategy = strategy
}

// TowerAt 返回格子上的塔
func (s *TowerSystem) TowerAt(cell maps.GridPos) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.TowerComponent](s.entityManager) {
		tower, _ := ecs.GetComponent[*components.TowerComponent](s.entityManager, id)
		if tower.Cell == cell {
			return id, true
		}
	}
	return 0, false
}

// CanPlace 格子是否可以放塔：可建造且没有塔
func (s *TowerSystem) CanPlace(cell maps.GridPos) error {
	if !s.gameMap.IsBuildable(cell.Col, cell.Row) {
		return ErrNotBuildable
	}
	if _, occupied := s.TowerAt(cell); occupied {
		return ErrCellOccupied
	}
	return nil
}

// PlaceTower 在格子中心放置一座塔并扣除金币
func (s *TowerSystem) PlaceTower(towerType string, cell maps.GridPos) (ecs.EntityID, error) {
	stats, ok := s.towerConfig.Get(towerType)
	if !ok {
		return 0, fmt.Errorf("place %q: %w", towerType, ErrUnknownTowerType)
	}
	if err := s.CanPlace(cell); err != nil {
		return 0, fmt.Errorf("place %s at (%d,%d): %w", towerType, cell.Col, cell.Row, err)
	}
	if !s.gameState.SpendCoins(stats.Cost) {
		return 0, fmt.Errorf("place %s costs %d, have %d: %w", towerType, stats.Cost, s.gameState.Coins, ErrInsufficientCoins)
	}

	id, err := entities.NewTower(s.entityManager, towerType, stats, cell, s.gameMap.GridToPixel(cell), s.defaultStrategy)
	if err != nil {
		s.gameState.AddCoins(stats.Cost)
		return 0, fmt.Errorf("place %s: %w", towerType, err)
	}

	log.Printf("[TowerSystem] 在 (%d,%d) 放置 %s，剩余金币: %d", cell.Col, cell.Row, towerType, s.gameState.Coins)
	return id, nil
}

// SelectAt 选择距离像素坐标最近的塔（选择半径 40 像素），没有时取消选择
func (s *TowerSystem) SelectAt(x, y float64) (ecs.EntityID, bool) {
	s.Deselect()

	point := &components.PositionComponent{X: x, Y: y}
	var closest ecs.EntityID
	closestDistance := config.TowerSelectRadius

	for _, id := range ecs.GetEntitiesWith2[*components.TowerComponent, *components.PositionComponent](s.entityManager) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if d := point.DistanceTo(pos); d < closestDistance {
			closest = id
			closestDistance = d
		}
	}

	if closest == 0 {
		return 0, false
	}
	s.selected = closest
	if tower, ok := ecs.GetComponent[*components.TowerComponent](s.entityManager, closest); ok {
		tower.Selected = true
	}
	return closest, true
}

// Deselect 取消选择
func (s *TowerSystem) Deselect() {
	if tower, ok := s.selectedTower(); ok {
		tower.Selected = false
	}
	s.selected = 0
}

// Selected 返回当前选中的塔
func (s *TowerSystem) Selected() (ecs.EntityID, *components.TowerComponent, bool) {
	tower, ok := s.selectedTower()
	if !ok {
		return 0, nil, false
	}
	return s.selected, tower, true
}

func (s *TowerSystem) selectedTower() (*components.TowerComponent, bool) {
	if s.selected == 0 {
		return nil, false
	}
	tower, ok := ecs.GetComponent[*components.TowerComponent](s.entityManager, s.selected)
	if !ok {
		s.selected = 0
		return nil, false
	}
	return tower, true
}

// UpgradeSelected 沿指定路径升级选中的塔
func (s *TowerSystem) UpgradeSelected(path string) error {
	tower, ok := s.selectedTower()
	if !ok {
		return ErrNoSelection
	}

	tier, ok := tower.NextUpgrade(path)
	if !ok {
		return fmt.Errorf("upgrade %s %s: %w", tower.Type, path, ErrUpgradeUnavailable)
	}
	if !s.gameState.SpendCoins(tier.Cost) {
		return fmt.Errorf("upgrade %s costs %d: %w", tier.Name, tier.Cost, ErrInsufficientCoins)
	}
	tower.ApplyUpgrade(path)

	log.Printf("[TowerSystem] %s 的 %s 升级到第 %d 级（%s）", tower.Type, path, tower.Upgrades[path], tier.Name)
	return nil
}

// SellSelected 出售选中的塔，返还基础造价的一半
func (s *TowerSystem) SellSelected() (int, error) {
	tower, ok := s.selectedTower()
	if !ok {
		return 0, ErrNoSelection
	}

	refund := tower.BaseCost / config.SellRefundDivisor
	s.gameState.AddCoins(refund)
	// 立即移除塔组件，格子在实体清理前就可以重新建造
	ecs.RemoveComponent[*components.TowerComponent](s.entityManager, s.selected)
	s.entityManager.DestroyEntity(s.selected)
	log.Printf("[TowerSystem] 出售 %s (%d,%d)，返还 %d", tower.Type, tower.Cell.Col, tower.Cell.Row, refund)

	s.selected = 0
	return refund, nil
}

// CycleTargeting 切换选中塔的目标策略
func (s *TowerSystem) CycleTargeting() (components.TargetingStrategy, error) {
	tower, ok := s.selectedTower()
	if !ok {
		return "", ErrNoSelection
	}
	s.setStrategy(tower, tower.Strategy.Next())
	return tower.Strategy, nil
}

// SetTargeting 设置选中塔的目标策略
func (s *TowerSystem) SetTargeting(strategy components.TargetingStrategy) error {
	tower, ok := s.selectedTower()
	if !ok {
		return ErrNoSelection
	}
	s.setStrategy(tower, strategy)
	return nil
}

func (s *TowerSystem) setStrategy(tower *components.TowerComponent, strategy components.TargetingStrategy) {
	tower.Strategy = strategy
	// 立即按新策略重新索敌
	tower.Target = 0
}
