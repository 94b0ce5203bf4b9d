package components

// HealthComponent 存储实体的生命值信息
// 用于敌人等可被攻击的实体
type HealthComponent struct {
	Current float64 // 当前生命值
	Max     float64 // 最大生命值
}

// IsDead 生命值是否已耗尽
func (h *HealthComponent) IsDead() bool {
	return h.Current <= 0
}

// Ratio 返回剩余生命比例 [0, 1]，用于绘制血条
func (h *HealthComponent) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	r := h.Current / h.Max
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// TakeDamage 扣除生命值，返回扣除后是否死亡
func (h *HealthComponent) TakeDamage(amount float64) bool {
	h.Current -= amount
	return h.IsDead()
}
