package systems

import (
	"math"
	"testing"

	"github.com/decker502/minion-td/pkg/components"
	"github.com/decker502/minion-td/pkg/config"
	"github.com/decker502/minion-td/pkg/ecs"
	"github.com/decker502/minion-td/pkg/entities"
	"github.com/decker502/minion-td/pkg/maps"
)

func newFollower(t *testing.T, em *ecs.EntityManager, speed float64, path []maps.PathPoint) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemy(em, "basic_minion", config.EnemyStats{Health: 10, Speed: speed}, path)
	if err != nil {
		t.Fatalf("NewEnemy failed: %v", err)
	}
	return id
}

func TestPathFollowingMovesTowardWaypoint(t *testing.T) {
	em := ecs.NewEntityManager()
	path := []maps.PathPoint{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}}
	id := newFollower(t, em, 2, path)
	sys := NewPathFollowingSystem(em)

	sys.Update(1.0 / 60)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if math.Abs(pos.X-2) > 1e-9 || pos.Y != 0 {
		t.Errorf("after one frame: got (%v,%v), want (2,0)", pos.X, pos.Y)
	}
}

func TestPathFollowingSnapsAndReachesEnd(t *testing.T) {
	em := ecs.NewEntityManager()
	path := []maps.PathPoint{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}}
	id := newFollower(t, em, 1, path)
	sys := NewPathFollowingSystem(em)
	follower, _ := ecs.GetComponent[*components.PathFollowerComponent](em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

	// 一步 120 像素，超过到下一个路点的距离：吸附并转向下一个路点
	sys.Update(2)
	if pos.X != 100 || pos.Y != 0 || follower.Index != 2 {
		t.Fatalf("expected snap to (100,0) index 2, got (%v,%v) index %d", pos.X, pos.Y, follower.Index)
	}

	sys.Update(2)
	if !follower.ReachedEnd || pos.X != 100 || pos.Y != 100 {
		t.Fatalf("expected end reached at (100,100), got (%v,%v) reached=%v", pos.X, pos.Y, follower.ReachedEnd)
	}

	// 到达终点后不再移动
	sys.Update(2)
	if pos.X != 100 || pos.Y != 100 {
		t.Error("enemy moved after reaching the end")
	}
}

func TestPathFollowingRespectsSlow(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newFollower(t, em, 2, []maps.PathPoint{{X: 0, Y: 0}, {X: 1000, Y: 0}})
	status, _ := ecs.GetComponent[*components.StatusEffectComponent](em, id)
	status.ApplySlow(0.5, 10)

	NewPathFollowingSystem(em).Update(1)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if math.Abs(pos.X-60) > 1e-9 {
		t.Errorf("slowed movement: got %v, want 60", pos.X)
	}
}

func TestPathFollowingSingleWaypoint(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newFollower(t, em, 1, []maps.PathPoint{{X: 5, Y: 5}})

	follower, _ := ecs.GetComponent[*components.PathFollowerComponent](em, id)
	if !follower.ReachedEnd {
		t.Error("single-point path should be finished on spawn")
	}
}
