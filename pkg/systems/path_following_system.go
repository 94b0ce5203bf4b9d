package systems

import (
	"math"

	"github.com/decker502/minion-td/pkg/components"
	"github.com/decker502/minion-td/pkg/config"
	"github.com/decker502/minion-td/pkg/ecs"
)

// PathFollowingSystem 让敌人沿路径移动
//
// 每次更新最多到达一个路点：距离不足一步时吸附到路点并转向下一个，
// 走完最后一个路点后标记 ReachedEnd。
type PathFollowingSystem struct {
	entityManager *ecs.EntityManager
}

// NewPathFollowingSystem 创建路径移动系统
func NewPathFollowingSystem(em *ecs.EntityManager) *PathFollowingSystem {
	return &PathFollowingSystem{entityManager: em}
}

// Update 移动所有存活敌人
func (s *PathFollowingSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.PathFollowerComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		if !isAlive(s.entityManager, id) {
			continue
		}
		follower, _ := ecs.GetComponent[*components.PathFollowerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		factor := 1.0
		if status, ok := ecs.GetComponent[*components.StatusEffectComponent](s.entityManager, id); ok {
			factor = status.SpeedFactor()
		}
		step(follower, pos, follower.Speed*factor*deltaTime*config.MovementScale)
	}
}

// step 沿路径前进 moveDistance 像素
func step(follower *components.PathFollowerComponent, pos *components.PositionComponent, moveDistance float64) {
	target, ok := follower.Target()
	if !ok {
		follower.ReachedEnd = true
		return
	}

	dx := float64(target.X) - pos.X
	dy := float64(target.Y) - pos.Y
	distance := math.Hypot(dx, dy)

	if distance <= moveDistance {
		pos.X = float64(target.X)
		pos.Y = float64(target.Y)
		follower.Index++
		if follower.Index >= len(follower.Path) {
			follower.ReachedEnd = true
		}
		return
	}

	pos.X += dx / distance * moveDistance
	pos.Y += dy / distance * moveDistance
}
