package components

// EnemyComponent 敌人类型与结算数据
type EnemyComponent struct {
	Type   string // 敌人类型，如 "basic_minion"
	Reward int    // 击杀奖励金币
	Damage int    // 到达终点扣除的生命值
	Killed bool   // 已被击杀，等待结算
}
