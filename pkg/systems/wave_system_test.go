package systems

import (
	"errors"
	"math"
	"testing"

	"github.com/decker502/minion-td/pkg/components"
	"github.com/decker502/minion-td/pkg/config"
	"github.com/decker502/minion-td/pkg/ecs"
	"github.com/decker502/minion-td/pkg/game"
)

func newTestWaveSystem(t *testing.T, waves *config.WaveConfig) (*WaveSystem, *ecs.EntityManager, *game.GameState) {
	t.Helper()
	em := ecs.NewEntityManager()
	gs := newTestState()
	if waves == nil {
		waves = config.DefaultWaveConfig()
	}
	sys := NewWaveSystem(em, gs, waves, loadTestEnemyConfig(t), newTestMap(t).Path(), fixedRand())
	return sys, em, gs
}

func countTypes(types []string) map[string]int {
	counts := make(map[string]int)
	for _, typ := range types {
		counts[typ]++
	}
	return counts
}

func TestWaveComposition(t *testing.T) {
	sys, _, _ := newTestWaveSystem(t, nil)

	tests := []struct {
		wave                    int
		basic, fast, tank, boss int
	}{
		{1, 7, 0, 0, 0},
		{3, 11, 2, 0, 0},
		{5, 15, 6, 1, 1},
		{10, 25, 16, 6, 1},
	}
	for _, tt := range tests {
		counts := countTypes(sys.Composition(tt.wave))
		if counts["basic_minion"] != tt.basic || counts["fast_minion"] != tt.fast ||
			counts["tank_minion"] != tt.tank || counts["boss_minion"] != tt.boss {
			t.Errorf("wave %d: got %v", tt.wave, counts)
		}
	}
}

func TestStartWave(t *testing.T) {
	sys, _, _ := newTestWaveSystem(t, nil)

	if !sys.CanStartNextWave() {
		t.Fatal("first wave should be startable immediately")
	}
	if err := sys.StartWave(); err != nil {
		t.Fatalf("StartWave failed: %v", err)
	}
	if sys.CurrentWave() != 1 || !sys.InProgress() || sys.Pending() != 7 {
		t.Errorf("wave state: wave=%d inProgress=%v pending=%d", sys.CurrentWave(), sys.InProgress(), sys.Pending())
	}
	if err := sys.StartWave(); !errors.Is(err, ErrWaveInProgress) {
		t.Errorf("expected ErrWaveInProgress, got %v", err)
	}
}

func TestWaveSpawnInterval(t *testing.T) {
	sys, em, gs := newTestWaveSystem(t, nil)
	if err := sys.StartWave(); err != nil {
		t.Fatalf("StartWave failed: %v", err)
	}
	enemyCount := func() int { return len(ecs.GetEntitiesWith1[*components.EnemyComponent](em)) }

	sys.Update(0)
	if enemyCount() != 1 {
		t.Fatalf("first enemy should spawn immediately, got %d", enemyCount())
	}

	// 第 1 波间隔 0.95 秒
	gs.GameTime = 0.9
	sys.Update(0.9)
	if enemyCount() != 1 {
		t.Fatal("spawned before the interval elapsed")
	}
	gs.GameTime = 1.0
	sys.Update(0.1)
	if enemyCount() != 2 {
		t.Errorf("second enemy should spawn after the interval, got %d", enemyCount())
	}

	// 新敌人出生在路径起点
	ids := ecs.GetEntitiesWith1[*components.EnemyComponent](em)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, ids[len(ids)-1])
	if pos.X != 32 || pos.Y != 352 {
		t.Errorf("spawn position: got (%v,%v), want (32,352)", pos.X, pos.Y)
	}
}

func TestSpawnIntervalRule(t *testing.T) {
	rule := config.DefaultWaveConfig().SpawnInterval
	tests := []struct {
		wave int
		want float64
	}{
		{1, 0.95},
		{5, 0.75},
		{10, 0.5},
		{20, 0.5},
	}
	for _, tt := range tests {
		if got := rule.Interval(tt.wave); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Interval(%d): got %v, want %v", tt.wave, got, tt.want)
		}
	}
}

func TestWaveCompletionAndCooldown(t *testing.T) {
	waves := &config.WaveConfig{
		Cooldown:      10,
		SpawnInterval: config.SpawnIntervalRule{Base: 1, Min: 1},
		Composition:   []config.WaveComposition{{Type: "basic_minion", Base: 1}},
	}
	sys, em, gs := newTestWaveSystem(t, waves)

	if err := sys.StartWave(); err != nil {
		t.Fatalf("StartWave failed: %v", err)
	}
	if sys.Update(0) {
		t.Fatal("wave cannot complete while an enemy is alive")
	}

	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		em.DestroyEntity(id)
	}
	em.RemoveMarkedEntities()

	gs.GameTime = 5
	if !sys.Update(0) {
		t.Fatal("wave should complete once the queue and field are empty")
	}
	if sys.InProgress() {
		t.Error("wave should no longer be in progress")
	}

	gs.GameTime = 10
	if err := sys.StartWave(); !errors.Is(err, ErrWaveCooldown) {
		t.Errorf("expected ErrWaveCooldown, got %v", err)
	}
	if got := sys.CooldownRemaining(); got != 5 {
		t.Errorf("CooldownRemaining: got %v, want 5", got)
	}

	gs.GameTime = 15
	if err := sys.StartWave(); err != nil {
		t.Errorf("wave should start after cooldown: %v", err)
	}
}

func TestWaveVictory(t *testing.T) {
	waves := &config.WaveConfig{
		TotalWaves:    1,
		SpawnInterval: config.SpawnIntervalRule{Base: 1, Min: 1},
		Composition:   []config.WaveComposition{{Type: "basic_minion", Base: 1}},
	}
	sys, em, gs := newTestWaveSystem(t, waves)

	if err := sys.StartWave(); err != nil {
		t.Fatalf("StartWave failed: %v", err)
	}
	sys.Update(0)
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		em.DestroyEntity(id)
	}
	em.RemoveMarkedEntities()
	sys.Update(0)

	if !gs.GameWon {
		t.Error("completing the final wave should win the game")
	}
	if err := sys.StartWave(); !errors.Is(err, ErrAllWavesDone) {
		t.Errorf("expected ErrAllWavesDone, got %v", err)
	}
}
