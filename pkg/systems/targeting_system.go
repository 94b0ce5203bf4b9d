package systems

import (
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/decker502/minion-td/pkg/components"
	"github.com/decker502/minion-td/pkg/config"
	"github.com/decker502/minion-td/pkg/ecs"
	"github.com/decker502/minion-td/pkg/entities"
	"github.com/decker502/minion-td/pkg/game"
)

// TargetingSystem 塔的索敌与开火
//
// 每次更新:
//  1. 重新计算辅助塔增益（范围内取最高值），带特殊能力的辅助塔减速范围内敌人
//  2. 攻击塔在目标死亡或离开射程时按策略重新索敌
//  3. 冷却结束后发射子弹，开启暴击时按 CriticalChance 造成双倍伤害
type TargetingSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	rng           *rand.Rand
}

// NewTargetingSystem 创建索敌系统，rng 为 nil 时使用随机种子
func NewTargetingSystem(em *ecs.EntityManager, gs *game.GameState, rng *rand.Rand) *TargetingSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &TargetingSystem{
		entityManager: em,
		gameState:     gs,
		rng:           rng,
	}
}

// towerRef 一座塔及其位置
type towerRef struct {
	id    ecs.EntityID
	tower *components.TowerComponent
	pos   *components.PositionComponent
}

func (s *TargetingSystem) towers() []towerRef {
	ids := ecs.GetEntitiesWith2[*components.TowerComponent, *components.PositionComponent](s.entityManager)
	result := make([]towerRef, 0, len(ids))
	for _, id := range ids {
		tower, _ := ecs.GetComponent[*components.TowerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		result = append(result, towerRef{id: id, tower: tower, pos: pos})
	}
	return result
}

// Update 处理所有塔
func (s *TargetingSystem) Update(deltaTime float64) {
	towers := s.towers()
	enemies := liveEnemies(s.entityManager)

	s.applySupport(towers, enemies)

	for _, t := range towers {
		if t.tower.IsSupport() || t.tower.Damage <= 0 {
			continue
		}
		s.updateTower(t, enemies)
	}
}

// applySupport 计算辅助塔效果
func (s *TargetingSystem) applySupport(towers []towerRef, enemies []enemyRef) {
	for _, t := range towers {
		t.tower.ReceivedBuff = 1.0
	}

	for _, support := range towers {
		if !support.tower.IsSupport() {
			continue
		}
		for _, other := range towers {
			if other.id == support.id || other.tower.IsSupport() {
				continue
			}
			if support.pos.DistanceTo(other.pos) <= support.tower.Range {
				other.tower.ReceivedBuff = max(other.tower.ReceivedBuff, support.tower.BuffMultiplier)
			}
		}

		if !support.tower.AddsSpecialAbility {
			continue
		}
		for _, e := range enemies {
			if e.status != nil && support.pos.DistanceTo(e.pos) <= support.tower.Range {
				e.status.ApplySlow(config.SupportSlowFactor, config.SupportSlowDuration)
			}
		}
	}
}

func (s *TargetingSystem) updateTower(t towerRef, enemies []enemyRef) {
	if !s.targetValid(t) {
		t.tower.Target = s.findTarget(t, enemies)
	}
	if t.tower.Target == 0 {
		return
	}

	now := s.gameState.GameTime
	if now-t.tower.LastShotTime < t.tower.Cooldown {
		return
	}
	t.tower.LastShotTime = now
	s.fire(t)
}

// targetValid 当前目标仍存活且在射程内
func (s *TargetingSystem) targetValid(t towerRef) bool {
	if t.tower.Target == 0 || !isAlive(s.entityManager, t.tower.Target) {
		return false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, t.tower.Target)
	if !ok {
		return false
	}
	return t.pos.DistanceTo(pos) <= t.tower.Range
}

// findTarget 在射程内按策略选择目标，没有时返回 0
func (s *TargetingSystem) findTarget(t towerRef, enemies []enemyRef) ecs.EntityID {
	inRange := make([]enemyRef, 0, len(enemies))
	distances := make([]float64, 0, len(enemies))
	for _, e := range enemies {
		d := t.pos.DistanceTo(e.pos)
		if d <= t.tower.Range {
			inRange = append(inRange, e)
			distances = append(distances, d)
		}
	}
	if len(inRange) == 0 {
		return 0
	}

	best := 0
	switch t.tower.Strategy {
	case components.TargetFirst:
		for i := 1; i < len(inRange); i++ {
			if progress(inRange[i]) > progress(inRange[best]) {
				best = i
			}
		}
	case components.TargetLast:
		for i := 1; i < len(inRange); i++ {
			if progress(inRange[i]) < progress(inRange[best]) {
				best = i
			}
		}
	case components.TargetRandom:
		best = s.rng.Intn(len(inRange))
	default:
		// closest，也是未知策略的回退
		for i := 1; i < len(inRange); i++ {
			if distances[i] < distances[best] {
				best = i
			}
		}
	}
	return inRange[best].id
}

// progress 敌人沿路径的前进程度：路点下标为主，同一段内离下一个路点越近越靠前
func progress(e enemyRef) float64 {
	if e.follower == nil {
		return 0
	}
	target, ok := e.follower.Target()
	if !ok {
		return float64(e.follower.Index)
	}
	remaining := math.Hypot(float64(target.X)-e.pos.X, float64(target.Y)-e.pos.Y)
	return float64(e.follower.Index) - remaining/(remaining+1)
}

func (s *TargetingSystem) fire(t towerRef) {
	damage := t.tower.EffectiveDamage()
	critical := false
	if t.tower.AddsCritical && s.rng.Float64() < t.tower.CriticalChance {
		damage *= config.CriticalMultiplier
		critical = true
	}

	var tint color.Color = color.White
	if r, ok := ecs.GetComponent[*components.RenderComponent](s.entityManager, t.id); ok && r.Color != nil {
		tint = r.Color
	}

	if _, err := entities.NewProjectile(s.entityManager, t.tower, t.pos, t.tower.Target, damage, critical, tint); err != nil {
		log.Printf("[TargetingSystem] 创建子弹失败: %v", err)
	}
}
