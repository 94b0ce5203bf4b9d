package systems

import (
	"github.com/decker502/minion-td/pkg/components"
	"github.com/decker502/minion-td/pkg/ecs"
)

// StatusEffectSystem 结算燃烧伤害并处理效果过期
type StatusEffectSystem struct {
	entityManager *ecs.EntityManager
}

// NewStatusEffectSystem 创建状态效果系统
func NewStatusEffectSystem(em *ecs.EntityManager) *StatusEffectSystem {
	return &StatusEffectSystem{entityManager: em}
}

// Update 推进所有敌人的状态效果
func (s *StatusEffectSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith1[*components.StatusEffectComponent](s.entityManager)
	for _, id := range ids {
		if !isAlive(s.entityManager, id) {
			continue
		}
		status, _ := ecs.GetComponent[*components.StatusEffectComponent](s.entityManager, id)

		if status.Burning {
			damageEnemy(s.entityManager, id, status.BurningDPS*deltaTime)
			status.BurningDuration -= deltaTime
			if status.BurningDuration <= 0 {
				status.Burning = false
				status.BurningDPS = 0
				status.BurningDuration = 0
			}
		}

		if status.Slowed {
			status.SlowDuration -= deltaTime
			if status.SlowDuration <= 0 {
				status.Slowed = false
				status.SlowFactor = 1.0
				status.SlowDuration = 0
			}
		}
	}
}
