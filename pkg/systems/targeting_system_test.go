package systems

import (
	"math"
	"testing"

	"github.com/decker502/minion-td/pkg/components"
	"github.com/decker502/minion-td/pkg/ecs"
)

func TestTargetingStrategies(t *testing.T) {
	tests := []struct {
		name     string
		strategy components.TargetingStrategy
		want     int // 期望的敌人下标
	}{
		{"最近", components.TargetClosest, 0},
		{"最前", components.TargetFirst, 2},
		{"最后", components.TargetLast, 1},
		{"未知策略回退到最近", "sideways", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			gs := newTestState()
			_, tower := placeTowerAt(t, em, "basic", 0, 0)
			tower.Strategy = tt.strategy

			enemies := []ecs.EntityID{
				spawnEnemyAt(t, em, 30, 0, 100, nil, 2),  // 最近
				spawnEnemyAt(t, em, 100, 0, 100, nil, 1), // 路径进度最小
				spawnEnemyAt(t, em, 120, 0, 100, nil, 5), // 路径进度最大
			}
			spawnEnemyAt(t, em, 400, 0, 100, nil, 9) // 射程外

			NewTargetingSystem(em, gs, fixedRand()).Update(1.0 / 60)

			if tower.Target != enemies[tt.want] {
				t.Errorf("target: got %d, want %d", tower.Target, enemies[tt.want])
			}
		})
	}
}

func TestTargetingRandomStaysInRange(t *testing.T) {
	em := ecs.NewEntityManager()
	_, tower := placeTowerAt(t, em, "basic", 0, 0)
	tower.Strategy = components.TargetRandom

	inRange := map[ecs.EntityID]bool{
		spawnEnemyAt(t, em, 50, 0, 100, nil, 1): true,
		spawnEnemyAt(t, em, 0, 50, 100, nil, 1): true,
	}
	spawnEnemyAt(t, em, 500, 0, 100, nil, 1)

	NewTargetingSystem(em, newTestState(), fixedRand()).Update(1.0 / 60)
	if !inRange[tower.Target] {
		t.Errorf("random target %d is not an in-range enemy", tower.Target)
	}
}

func TestTargetingNoEnemiesInRange(t *testing.T) {
	em := ecs.NewEntityManager()
	_, tower := placeTowerAt(t, em, "basic", 0, 0)
	spawnEnemyAt(t, em, 500, 0, 100, nil, 1)

	NewTargetingSystem(em, newTestState(), fixedRand()).Update(1.0 / 60)

	if tower.Target != 0 {
		t.Errorf("no target expected, got %d", tower.Target)
	}
	if len(projectiles(em)) != 0 {
		t.Error("no projectile expected")
	}
}

func TestTargetingReacquiresWhenTargetLeaves(t *testing.T) {
	em := ecs.NewEntityManager()
	_, tower := placeTowerAt(t, em, "basic", 0, 0)
	first := spawnEnemyAt(t, em, 30, 0, 100, nil, 1)
	second := spawnEnemyAt(t, em, 60, 0, 100, nil, 1)
	sys := NewTargetingSystem(em, newTestState(), fixedRand())

	sys.Update(1.0 / 60)
	if tower.Target != first {
		t.Fatalf("initial target: got %d, want %d", tower.Target, first)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, first)
	pos.X = 1000
	sys.Update(1.0 / 60)
	if tower.Target != second {
		t.Errorf("target after leaving range: got %d, want %d", tower.Target, second)
	}
}

func TestTargetingCooldown(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := newTestState()
	_, tower := placeTowerAt(t, em, "basic", 0, 0)
	spawnEnemyAt(t, em, 30, 0, 1000, nil, 1)
	sys := NewTargetingSystem(em, gs, fixedRand())

	sys.Update(1.0 / 60)
	if len(projectiles(em)) != 1 {
		t.Fatalf("first shot should fire immediately, got %d projectiles", len(projectiles(em)))
	}

	gs.GameTime = tower.Cooldown / 2
	sys.Update(1.0 / 60)
	if len(projectiles(em)) != 1 {
		t.Fatal("tower fired during cooldown")
	}

	gs.GameTime = tower.Cooldown
	sys.Update(1.0 / 60)
	if len(projectiles(em)) != 2 {
		t.Errorf("tower should fire after cooldown, got %d projectiles", len(projectiles(em)))
	}
}

func TestTargetingCriticalHit(t *testing.T) {
	em := ecs.NewEntityManager()
	_, tower := placeTowerAt(t, em, "sniper", 0, 0)
	tower.AddsCritical = true
	tower.CriticalChance = 1.0
	spawnEnemyAt(t, em, 30, 0, 1000, nil, 1)

	NewTargetingSystem(em, newTestState(), fixedRand()).Update(1.0 / 60)

	ps := projectiles(em)
	if len(ps) != 1 {
		t.Fatalf("expected 1 projectile, got %d", len(ps))
	}
	if !ps[0].Critical || ps[0].Damage != 100 {
		t.Errorf("critical projectile: got damage %v critical %v", ps[0].Damage, ps[0].Critical)
	}
}

func TestSupportTowerBuff(t *testing.T) {
	em := ecs.NewEntityManager()
	_, basic := placeTowerAt(t, em, "basic", 0, 0)
	_, support := placeTowerAt(t, em, "support", 100, 0)
	_, far := placeTowerAt(t, em, "basic", 1000, 0)
	spawnEnemyAt(t, em, 30, 0, 1000, nil, 1)

	NewTargetingSystem(em, newTestState(), fixedRand()).Update(1.0 / 60)

	if math.Abs(basic.ReceivedBuff-1.2) > 1e-9 {
		t.Errorf("buff in range: got %v, want 1.2", basic.ReceivedBuff)
	}
	if far.ReceivedBuff != 1.0 {
		t.Errorf("buff out of range: got %v, want 1.0", far.ReceivedBuff)
	}
	if support.Target != 0 {
		t.Error("support towers do not target enemies")
	}

	ps := projectiles(em)
	if len(ps) != 1 || math.Abs(ps[0].Damage-12) > 1e-9 {
		t.Errorf("buffed projectile damage: %+v", ps)
	}
}

func TestSupportSpecialAbilitySlows(t *testing.T) {
	em := ecs.NewEntityManager()
	_, support := placeTowerAt(t, em, "support", 0, 0)
	support.AddsSpecialAbility = true
	near := spawnEnemyAt(t, em, 50, 0, 100, nil, 1)
	far := spawnEnemyAt(t, em, 900, 0, 100, nil, 1)

	NewTargetingSystem(em, newTestState(), fixedRand()).Update(1.0 / 60)

	nearStatus, _ := ecs.GetComponent[*components.StatusEffectComponent](em, near)
	farStatus, _ := ecs.GetComponent[*components.StatusEffectComponent](em, far)
	if nearStatus.SpeedFactor() != 0.7 {
		t.Errorf("near enemy factor: got %v, want 0.7", nearStatus.SpeedFactor())
	}
	if farStatus.Slowed {
		t.Error("enemy out of range must not be slowed")
	}
}
