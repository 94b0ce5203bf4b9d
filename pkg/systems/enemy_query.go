package systems

import (
	"github.com/decker502/minion-td/pkg/components"
	"github.com/decker502/minion-td/pkg/ecs"
)

// enemyRef 一个仍在场上的敌人及其常用组件
type enemyRef struct {
	id       ecs.EntityID
	pos      *components.PositionComponent
	health   *components.HealthComponent
	follower *components.PathFollowerComponent
	status   *components.StatusEffectComponent
}

// isAlive 敌人是否仍可被攻击：未死亡且未到达终点
func isAlive(em *ecs.EntityManager, id ecs.EntityID) bool {
	if !em.Exists(id) {
		return false
	}
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
	if !ok || enemy.Killed {
		return false
	}
	if health, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok && health.IsDead() {
		return false
	}
	if follower, ok := ecs.GetComponent[*components.PathFollowerComponent](em, id); ok && follower.ReachedEnd {
		return false
	}
	return true
}

// liveEnemies 按实体 ID 升序返回所有存活敌人
func liveEnemies(em *ecs.EntityManager) []enemyRef {
	ids := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.HealthComponent](em)
	result := make([]enemyRef, 0, len(ids))
	for _, id := range ids {
		if !isAlive(em, id) {
			continue
		}
		ref := enemyRef{id: id}
		ref.pos, _ = ecs.GetComponent[*components.PositionComponent](em, id)
		ref.health, _ = ecs.GetComponent[*components.HealthComponent](em, id)
		ref.follower, _ = ecs.GetComponent[*components.PathFollowerComponent](em, id)
		ref.status, _ = ecs.GetComponent[*components.StatusEffectComponent](em, id)
		result = append(result, ref)
	}
	return result
}

// damageEnemy 扣除生命，死亡时打上击杀标记等待结算
func damageEnemy(em *ecs.EntityManager, id ecs.EntityID, amount float64) {
	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok {
		return
	}
	if health.TakeDamage(amount) {
		if enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id); ok {
			enemy.Killed = true
		}
	}
}
