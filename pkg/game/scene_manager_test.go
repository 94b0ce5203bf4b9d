package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type mockScene struct {
	updates int
	draws   int
}

func (m *mockScene) Update(float64)     { m.updates++ }
func (m *mockScene) Draw(*ebiten.Image) { m.draws++ }

func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(ebiten.NewImage(1, 1))
	if sm.GetCurrentScene() != nil {
		t.Error("new manager should have no scene")
	}
}

func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	first, second := &mockScene{}, &mockScene{}

	sm.SwitchTo(first)
	sm.Update(0.016)
	sm.SwitchTo(second)
	sm.Update(0.016)
	sm.Draw(ebiten.NewImage(1, 1))

	if first.updates != 1 || first.draws != 0 {
		t.Errorf("first scene: %+v", first)
	}
	if second.updates != 1 || second.draws != 1 {
		t.Errorf("second scene: %+v", second)
	}
}

func TestSceneManagerLoadMap(t *testing.T) {
	sm := NewSceneManager()
	if sm.LoadMap("minion_valley") {
		t.Error("LoadMap without a factory should fail")
	}

	current := &mockScene{}
	sm.SwitchTo(current)
	sm.SetSceneFactory(func(mapID string) (Scene, error) {
		if mapID == "bad" {
			return nil, errors.New("unknown map")
		}
		return &mockScene{}, nil
	})

	if sm.LoadMap("bad") {
		t.Error("factory error should be reported")
	}
	if sm.GetCurrentScene() != current {
		t.Error("failed load must keep the current scene")
	}
	if !sm.LoadMap("minion_valley") || sm.GetCurrentScene() == current {
		t.Error("successful load should switch scenes")
	}
}
