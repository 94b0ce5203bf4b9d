package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/minion-td/pkg/components"
	"github.com/decker502/minion-td/pkg/config"
	"github.com/decker502/minion-td/pkg/ecs"
)

// 子弹绘制参数
const (
	projectileRadius         = 4
	criticalProjectileRadius = 6
)

var criticalColor = color.RGBA{R: 255, G: 60, B: 60, A: 255}

// NewProjectile 从塔的位置发射一颗追踪 target 的子弹
//
// damage 为已计算增益与暴击后的最终伤害
func NewProjectile(em *ecs.EntityManager, tower *components.TowerComponent, from *components.PositionComponent, target ecs.EntityID, damage float64, critical bool, tint color.Color) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if tower == nil || from == nil {
		return 0, fmt.Errorf("tower and position are required")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: from.X, Y: from.Y})
	em.AddComponent(id, &components.ProjectileComponent{
		Target:                  target,
		Damage:                  damage,
		Speed:                   config.ProjectileSpeed,
		SplashRadius:            tower.SplashRadius,
		TowerType:               tower.Type,
		Critical:                critical,
		AddsBurning:             tower.AddsBurning,
		BurningDamageMultiplier: tower.BurningDamageMultiplier,
	})

	radius := float64(projectileRadius)
	if critical {
		radius = criticalProjectileRadius
		tint = criticalColor
	}
	em.AddComponent(id, &components.RenderComponent{Color: tint, Radius: radius})

	return id, nil
}
