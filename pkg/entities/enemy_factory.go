package entities

import (
	"fmt"

	"github.com/decker502/minion-td/pkg/components"
	"github.com/decker502/minion-td/pkg/config"
	"github.com/decker502/minion-td/pkg/ecs"
	"github.com/decker502/minion-td/pkg/maps"
)

// NewEnemy 在路径起点创建一个敌人实体
//
// 参数:
//   - em: 实体管理器
//   - enemyType: 敌人类型（如 "basic_minion"）
//   - stats: 该类型的属性配置
//   - path: 地图像素路径，敌人从 path[0] 出发前往 path[1]
func NewEnemy(em *ecs.EntityManager, enemyType string, stats config.EnemyStats, path []maps.PathPoint) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if len(path) == 0 {
		return 0, fmt.Errorf("cannot spawn %s: %w", enemyType, maps.ErrEmptyPath)
	}

	route := make([]maps.PathPoint, len(path))
	copy(route, path)

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		X: float64(route[0].X),
		Y: float64(route[0].Y),
	})
	em.AddComponent(id, &components.PathFollowerComponent{
		Path:  route,
		Index: 1,
		Speed: stats.Speed,
		// 单点路径：出生即到达终点
		ReachedEnd: len(route) == 1,
	})
	em.AddComponent(id, &components.EnemyComponent{
		Type:   enemyType,
		Reward: stats.Reward,
		Damage: stats.Damage,
	})
	em.AddComponent(id, &components.HealthComponent{
		Current: stats.Health,
		Max:     stats.Health,
	})
	em.AddComponent(id, components.NewStatusEffectComponent())
	em.AddComponent(id, &components.RenderComponent{
		Color:  stats.Color.RGBA(),
		Radius: stats.Radius,
	})

	return id, nil
}
