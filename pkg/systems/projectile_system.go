package systems

import (
	"math"

	"github.com/decker502/minion-td/pkg/components"
	"github.com/decker502/minion-td/pkg/config"
	"github.com/decker502/minion-td/pkg/ecs"
)

// ProjectileSystem 移动追踪子弹并结算命中
//
// 目标消失时子弹随之消失；与目标距离小于命中半径即命中。
// 溅射子弹对目标周围半径内所有存活敌人造成衰减伤害：1 - d/r*0.5
type ProjectileSystem struct {
	entityManager *ecs.EntityManager
}

// NewProjectileSystem 创建子弹系统
func NewProjectileSystem(em *ecs.EntityManager) *ProjectileSystem {
	return &ProjectileSystem{entityManager: em}
}

// Update 推进所有子弹
func (s *ProjectileSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		projectile, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if !isAlive(s.entityManager, projectile.Target) {
			s.entityManager.DestroyEntity(id)
			continue
		}
		targetPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, projectile.Target)
		if !ok {
			s.entityManager.DestroyEntity(id)
			continue
		}

		angle := math.Atan2(targetPos.Y-pos.Y, targetPos.X-pos.X)
		moveDistance := projectile.Speed * deltaTime * config.MovementScale
		pos.X += math.Cos(angle) * moveDistance
		pos.Y += math.Sin(angle) * moveDistance

		if pos.DistanceTo(targetPos) < config.ProjectileHitRadius {
			s.hit(projectile, targetPos)
			s.entityManager.DestroyEntity(id)
		}
	}
}

// hit 结算一次命中，返回受到伤害的敌人
func (s *ProjectileSystem) hit(projectile *components.ProjectileComponent, targetPos *components.PositionComponent) []ecs.EntityID {
	var hits []ecs.EntityID

	if projectile.SplashRadius > 0 {
		// 以命中前存活的敌人为准
		for _, e := range liveEnemies(s.entityManager) {
			d := targetPos.DistanceTo(e.pos)
			if d > projectile.SplashRadius {
				continue
			}
			factor := 1.0 - d/projectile.SplashRadius*config.SplashFalloff
			damageEnemy(s.entityManager, e.id, projectile.Damage*factor)
			hits = append(hits, e.id)
		}
	} else {
		damageEnemy(s.entityManager, projectile.Target, projectile.Damage)
		hits = append(hits, projectile.Target)
	}

	if projectile.AddsBurning {
		dps := config.BurningBaseDPS * projectile.BurningDamageMultiplier
		for _, id := range hits {
			if status, ok := ecs.GetComponent[*components.StatusEffectComponent](s.entityManager, id); ok {
				status.ApplyBurning(dps, config.BurningDuration)
			}
		}
	}
	return hits
}
