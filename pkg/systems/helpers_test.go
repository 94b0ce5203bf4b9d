package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/minion-td/pkg/components"
	"github.com/decker502/minion-td/pkg/config"
	"github.com/decker502/minion-td/pkg/ecs"
	"github.com/decker502/minion-td/pkg/entities"
	"github.com/decker502/minion-td/pkg/game"
	"github.com/decker502/minion-td/pkg/maps"
)

// fixedRand 固定种子的随机数，保证测试可复现
func fixedRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func loadTestTowerConfig(t *testing.T) *config.TowerConfig {
	t.Helper()
	cfg, err := config.LoadTowerConfig("../../data/towers.yaml")
	if err != nil {
		t.Fatalf("LoadTowerConfig failed: %v", err)
	}
	return cfg
}

func loadTestEnemyConfig(t *testing.T) *config.EnemyConfig {
	t.Helper()
	cfg, err := config.LoadEnemyConfig("../../data/enemies.yaml")
	if err != nil {
		t.Fatalf("LoadEnemyConfig failed: %v", err)
	}
	return cfg
}

func newTestMap(t *testing.T) *maps.Map {
	t.Helper()
	m, err := maps.New(maps.MinionValley{}, nil, config.GridSize)
	if err != nil {
		t.Fatalf("maps.New failed: %v", err)
	}
	return m
}

// spawnEnemyAt 在指定位置创建敌人，path 决定其路径进度
func spawnEnemyAt(t *testing.T, em *ecs.EntityManager, x, y float64, health float64, path []maps.PathPoint, index int) ecs.EntityID {
	t.Helper()
	if path == nil {
		path = []maps.PathPoint{{X: int(x), Y: int(y)}, {X: int(x) + 1000, Y: int(y)}}
	}
	stats := config.EnemyStats{Health: health, Speed: 1, Reward: 10, Damage: 2, Radius: 12}
	id, err := entities.NewEnemy(em, "basic_minion", stats, path)
	if err != nil {
		t.Fatalf("NewEnemy failed: %v", err)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	pos.X, pos.Y = x, y
	follower, _ := ecs.GetComponent[*components.PathFollowerComponent](em, id)
	follower.Index = index
	return id
}

// placeTowerAt 在像素坐标放置一座指定类型的塔（不经过格子检查）
func placeTowerAt(t *testing.T, em *ecs.EntityManager, towerType string, x, y int) (ecs.EntityID, *components.TowerComponent) {
	t.Helper()
	stats, ok := loadTestTowerConfig(t).Get(towerType)
	if !ok {
		t.Fatalf("unknown tower type %s", towerType)
	}
	id, err := entities.NewTower(em, towerType, stats, maps.GridPos{}, maps.PathPoint{X: x, Y: y}, components.TargetClosest)
	if err != nil {
		t.Fatalf("NewTower failed: %v", err)
	}
	tower, _ := ecs.GetComponent[*components.TowerComponent](em, id)
	return id, tower
}

func projectiles(em *ecs.EntityManager) []*components.ProjectileComponent {
	var result []*components.ProjectileComponent
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](em) {
		p, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		result = append(result, p)
	}
	return result
}

func newTestState() *game.GameState {
	return game.NewDefaultGameState()
}
