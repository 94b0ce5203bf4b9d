package components

import "testing"

func TestApplyBurning(t *testing.T) {
	s := NewStatusEffectComponent()
	s.ApplyBurning(5, 3)
	s.ApplyBurning(2, 4)

	if !s.Burning || s.BurningDPS != 5 || s.BurningDuration != 4 {
		t.Errorf("burning should keep the stronger dps and longer duration, got %+v", s)
	}
}

func TestApplySlow(t *testing.T) {
	s := NewStatusEffectComponent()
	if s.SpeedFactor() != 1.0 {
		t.Fatalf("unslowed factor: got %v", s.SpeedFactor())
	}

	s.ApplySlow(0.7, 0.5)
	s.ApplySlow(0.9, 1.0)
	if s.SpeedFactor() != 0.7 || s.SlowDuration != 1.0 {
		t.Errorf("slow should keep the lower factor and longer duration, got %+v", s)
	}
}

func TestHealthComponent(t *testing.T) {
	h := &HealthComponent{Current: 50, Max: 50}
	if h.TakeDamage(20) {
		t.Error("should still be alive")
	}
	if h.Ratio() != 0.6 {
		t.Errorf("Ratio: got %v, want 0.6", h.Ratio())
	}
	if !h.TakeDamage(40) {
		t.Error("should be dead")
	}
	if h.Ratio() != 0 {
		t.Errorf("dead ratio: got %v", h.Ratio())
	}
}
