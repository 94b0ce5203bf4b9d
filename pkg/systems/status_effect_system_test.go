package systems

import (
	"testing"

	"github.com/decker502/minion-td/pkg/components"
	"github.com/decker502/minion-td/pkg/ecs"
)

func TestBurningDamageAndExpiry(t *testing.T) {
	em := ecs.NewEntityManager()
	id := spawnEnemyAt(t, em, 0, 0, 50, nil, 1)
	status, _ := ecs.GetComponent[*components.StatusEffectComponent](em, id)
	health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	status.ApplyBurning(5, 3)

	sys := NewStatusEffectSystem(em)
	sys.Update(1)
	if health.Current != 45 || status.BurningDuration != 2 {
		t.Fatalf("after 1s: health=%v duration=%v", health.Current, status.BurningDuration)
	}

	sys.Update(2)
	if status.Burning {
		t.Error("burning should expire after its duration")
	}
	if health.Current != 35 {
		t.Errorf("health after 3s: got %v, want 35", health.Current)
	}

	sys.Update(1)
	if health.Current != 35 {
		t.Error("expired burning must not deal damage")
	}
}

func TestBurningKillMarksEnemy(t *testing.T) {
	em := ecs.NewEntityManager()
	id := spawnEnemyAt(t, em, 0, 0, 4, nil, 1)
	status, _ := ecs.GetComponent[*components.StatusEffectComponent](em, id)
	status.ApplyBurning(5, 3)

	NewStatusEffectSystem(em).Update(1)

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	if !enemy.Killed {
		t.Error("enemy killed by burning should be marked")
	}
}

func TestSlowExpiry(t *testing.T) {
	em := ecs.NewEntityManager()
	id := spawnEnemyAt(t, em, 0, 0, 50, nil, 1)
	status, _ := ecs.GetComponent[*components.StatusEffectComponent](em, id)
	status.ApplySlow(0.7, 0.5)

	sys := NewStatusEffectSystem(em)
	sys.Update(0.25)
	if status.SpeedFactor() != 0.7 {
		t.Fatalf("slow should still be active, factor %v", status.SpeedFactor())
	}
	sys.Update(0.25)
	if status.Slowed || status.SpeedFactor() != 1.0 {
		t.Errorf("slow should expire and reset factor, got %+v", status)
	}
}
