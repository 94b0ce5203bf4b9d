package entities

import (
	"fmt"

	"github.com/decker502/minion-td/pkg/components"
	"github.com/decker502/minion-td/pkg/config"
	"github.com/decker502/minion-td/pkg/ecs"
	"github.com/decker502/minion-td/pkg/maps"
)

// towerRadius 塔的绘制半径（像素）
const towerRadius = 20

// NewTower 在格子中心创建一座塔
//
// 升级路径会被深拷贝，锁定路径只影响这座塔
func NewTower(em *ecs.EntityManager, towerType string, stats config.TowerStats, cell maps.GridPos, center maps.PathPoint, strategy components.TargetingStrategy) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if strategy == "" {
		strategy = components.TargetClosest
	}

	paths := make(map[string][]config.UpgradeTier, len(stats.UpgradePaths))
	for name, tiers := range stats.UpgradePaths {
		cp := make([]config.UpgradeTier, len(tiers))
		copy(cp, tiers)
		paths[name] = cp
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		X: float64(center.X),
		Y: float64(center.Y),
	})
	em.AddComponent(id, &components.TowerComponent{
		Type:                    towerType,
		Name:                    stats.Name,
		Cell:                    cell,
		BaseCost:                stats.Cost,
		Damage:                  stats.Damage,
		Range:                   stats.Range,
		Cooldown:                stats.Cooldown,
		SplashRadius:            stats.SplashRadius,
		BuffMultiplier:          stats.BuffMultiplier,
		ReceivedBuff:            1.0,
		BurningDamageMultiplier: 1.0,
		CriticalChance:          config.DefaultCriticalChance,
		UpgradePaths:            paths,
		Upgrades:                map[string]int{config.UpgradePath1: 0, config.UpgradePath2: 0},
		Strategy:                strategy,
		// 首次攻击不受冷却限制
		LastShotTime: -stats.Cooldown,
	})
	em.AddComponent(id, &components.RenderComponent{
		Color:  stats.Color.RGBA(),
		Radius: towerRadius,
	})

	return id, nil
}
