package components

// StatusEffectComponent 敌人身上的持续效果
//
// 燃烧：每秒扣除 BurningDPS 点生命，持续 BurningDuration 秒
// 减速：移动速度乘以 SlowFactor，持续 SlowDuration 秒
type StatusEffectComponent struct {
	Burning         bool
	BurningDPS      float64
	BurningDuration float64

	Slowed       bool
	SlowFactor   float64
	SlowDuration float64
}

// NewStatusEffectComponent 创建无任何效果的组件
func NewStatusEffectComponent() *StatusEffectComponent {
	return &StatusEffectComponent{SlowFactor: 1.0}
}

// ApplyBurning 施加燃烧；已在燃烧时取更高的伤害与更长的剩余时间
func (s *StatusEffectComponent) ApplyBurning(dps, duration float64) {
	if s.Burning {
		s.BurningDPS = max(s.BurningDPS, dps)
		s.BurningDuration = max(s.BurningDuration, duration)
		return
	}
	s.Burning = true
	s.BurningDPS = dps
	s.BurningDuration = duration
}

// ApplySlow 施加减速；已减速时取更低的速度倍率与更长的剩余时间
func (s *StatusEffectComponent) ApplySlow(factor, duration float64) {
	if s.Slowed {
		s.SlowFactor = min(s.SlowFactor, factor)
		s.SlowDuration = max(s.SlowDuration, duration)
		return
	}
	s.Slowed = true
	s.SlowFactor = factor
	s.SlowDuration = duration
}

// SpeedFactor 返回当前移动速度倍率
func (s *StatusEffectComponent) SpeedFactor() float64 {
	if !s.Slowed {
		return 1.0
	}
	return s.SlowFactor
}
