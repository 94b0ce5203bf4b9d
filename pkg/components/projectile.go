package components

import "github.com/decker502/minion-td/pkg/ecs"

// ProjectileComponent 追踪型子弹
type ProjectileComponent struct {
	Target       ecs.EntityID // 追踪的敌人
	Damage       float64      // 命中伤害（已计算暴击）
	Speed        float64      // 每 1/60 秒移动的像素
	SplashRadius float64      // 溅射半径，0 表示单体伤害
	TowerType    string       // 发射塔类型，决定绘制颜色
	Critical     bool         // 是否暴击

	// 燃烧效果（区域塔升级后）
	AddsBurning             bool
	BurningDamageMultiplier float64
}
