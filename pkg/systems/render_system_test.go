package systems

import (
	"testing"

	"github.com/decker502/minion-td/pkg/components"
	"github.com/decker502/minion-td/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestRenderSystemDraw(t *testing.T) {
	em := ecs.NewEntityManager()
	_, tower := placeTowerAt(t, em, "area", 100, 100)
	tower.Selected = true
	tower.Upgrades["path1"] = 2
	enemy := spawnEnemyAt(t, em, 120, 100, 50, nil, 1)
	status, _ := ecs.GetComponent[*components.StatusEffectComponent](em, enemy)
	status.ApplyBurning(5, 3)
	status.ApplySlow(0.5, 1)

	NewTargetingSystem(em, newTestState(), fixedRand()).Update(1.0 / 60)
	if len(projectiles(em)) != 1 {
		t.Fatal("expected a projectile to draw")
	}

	screen := ebiten.NewImage(1024, 768)
	NewRenderSystem(em).Draw(screen)
}
