package systems

import (
	"log"

	"github.com/decker502/minion-td/pkg/components"
	"github.com/decker502/minion-td/pkg/ecs"
	"github.com/decker502/minion-td/pkg/game"
)

// LifecycleStats 一次结算的结果
type LifecycleStats struct {
	Killed  int // 被击杀的敌人
	Escaped int // 到达终点的敌人
	Reward  int // 获得的金币
	Damage  int // 损失的生命
}

// LifecycleSystem 结算死亡与到达终点的敌人
//
// 击杀奖励金币；到达终点扣除生命且没有奖励。结算后的实体被标记删除。
type LifecycleSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewLifecycleSystem 创建结算系统
func NewLifecycleSystem(em *ecs.EntityManager, gs *game.GameState) *LifecycleSystem {
	return &LifecycleSystem{entityManager: em, gameState: gs}
}

// Update 结算本帧结束的敌人
func (s *LifecycleSystem) Update() LifecycleStats {
	var stats LifecycleStats

	ids := ecs.GetEntitiesWith2[*components.EnemyComponent, *components.HealthComponent](s.entityManager)
	for _, id := range ids {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		follower, _ := ecs.GetComponent[*components.PathFollowerComponent](s.entityManager, id)

		switch {
		case follower != nil && follower.ReachedEnd:
			s.gameState.LoseLives(enemy.Damage)
			stats.Escaped++
			stats.Damage += enemy.Damage
		case enemy.Killed || health.IsDead():
			s.gameState.AddCoins(enemy.Reward)
			stats.Killed++
			stats.Reward += enemy.Reward
		default:
			continue
		}
		s.entityManager.DestroyEntity(id)
	}

	if stats.Escaped > 0 {
		log.Printf("[LifecycleSystem] %d 个敌人到达终点，剩余生命: %d", stats.Escaped, s.gameState.Lives)
	}
	return stats
}
