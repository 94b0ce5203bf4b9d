package components

import (
	"github.com/decker502/minion-td/pkg/config"
	"github.com/decker502/minion-td/pkg/ecs"
	"github.com/decker502/minion-td/pkg/maps"
)

// TargetingStrategy 塔选择攻击目标的规则
type TargetingStrategy string

const (
	// TargetClosest 距离塔最近的敌人（默认）
	TargetClosest TargetingStrategy = "closest"
	// TargetFirst 沿路径走得最远的敌人
	TargetFirst TargetingStrategy = "first"
	// TargetLast 最接近起点的敌人
	TargetLast TargetingStrategy = "last"
	// TargetRandom 范围内随机敌人
	TargetRandom TargetingStrategy = "random"
)

// TargetingStrategies 按切换顺序列出全部策略
var TargetingStrategies = []TargetingStrategy{TargetClosest, TargetFirst, TargetLast, TargetRandom}

// Next 返回切换顺序中的下一个策略；未知策略回到 TargetClosest
func (s TargetingStrategy) Next() TargetingStrategy {
	for i, candidate := range TargetingStrategies {
		if candidate == s {
			return TargetingStrategies[(i+1)%len(TargetingStrategies)]
		}
	}
	return TargetClosest
}

// TowerComponent 塔的当前属性与状态
//
// Damage/Range/Cooldown 等字段在升级时原地修改，BaseCost 用于出售退款
type TowerComponent struct {
	Type     string
	Name     string
	Cell     maps.GridPos
	BaseCost int

	Damage       float64
	Range        float64
	Cooldown     float64
	SplashRadius float64

	// 辅助塔：对范围内其他塔的伤害增益
	BuffMultiplier float64
	// 被辅助塔施加的增益（取范围内最高值），每帧重新计算
	ReceivedBuff float64

	AddsBurning             bool
	BurningDamageMultiplier float64
	AddsCritical            bool
	CriticalChance          float64
	AddsSpecialAbility      bool

	UpgradePaths map[string][]config.UpgradeTier // 可用升级路径，被锁定的路径会被移除
	Upgrades     map[string]int                  // 每条路径已升级的层数

	Strategy     TargetingStrategy
	Target       ecs.EntityID // 0 表示无目标
	LastShotTime float64
	Selected     bool
}

// IsSupport 是否为辅助塔（不发射子弹）
func (t *TowerComponent) IsSupport() bool {
	return t.Damage <= 0 && t.BuffMultiplier > 1.0
}

// EffectiveDamage 返回计入辅助增益后的伤害
func (t *TowerComponent) EffectiveDamage() float64 {
	if t.ReceivedBuff > 1.0 {
		return t.Damage * t.ReceivedBuff
	}
	return t.Damage
}

// NextUpgrade 返回指定路径的下一个升级；路径不存在、已锁定或已满级时返回 false
func (t *TowerComponent) NextUpgrade(path string) (config.UpgradeTier, bool) {
	tiers, ok := t.UpgradePaths[path]
	if !ok {
		return config.UpgradeTier{}, false
	}
	level := t.Upgrades[path]
	if level >= len(tiers) {
		return config.UpgradeTier{}, false
	}
	return tiers[level], true
}

// UpgradeCost 返回下一次升级的花费，不可升级时返回 0
func (t *TowerComponent) UpgradeCost(path string) int {
	tier, ok := t.NextUpgrade(path)
	if !ok {
		return 0
	}
	return tier.Cost
}

// IsPathLocked 指定路径是否已因另一条路径满级而锁定
func (t *TowerComponent) IsPathLocked(path string) bool {
	_, ok := t.UpgradePaths[path]
	return !ok
}

// ApplyUpgrade 应用指定路径的下一个升级
//
// 倍率字段为 0 表示不影响对应属性；BuffMultiplier 直接替换。
// 某条路径升到第 3 级且另一条路径从未升级时，另一条路径被锁定。
func (t *TowerComponent) ApplyUpgrade(path string) bool {
	tier, ok := t.NextUpgrade(path)
	if !ok {
		return false
	}

	if tier.DamageMultiplier > 0 {
		t.Damage *= tier.DamageMultiplier
	}
	if tier.RangeMultiplier > 0 {
		t.Range *= tier.RangeMultiplier
	}
	if tier.CooldownMultiplier > 0 {
		t.Cooldown *= tier.CooldownMultiplier
	}
	if tier.SplashRadiusMultiplier > 0 {
		t.SplashRadius *= tier.SplashRadiusMultiplier
	}
	if tier.BuffMultiplier > 0 {
		t.BuffMultiplier = tier.BuffMultiplier
	}
	if tier.AddsBurning {
		t.AddsBurning = true
	}
	if tier.BurningDamageMultiplier > 0 {
		t.BurningDamageMultiplier *= tier.BurningDamageMultiplier
	}
	if tier.AddsCritical {
		t.AddsCritical = true
	}
	if tier.CriticalChance > 0 {
		t.CriticalChance = tier.CriticalChance
	}
	if tier.AddsSpecialAbility {
		t.AddsSpecialAbility = true
	}

	t.Upgrades[path]++

	if t.Upgrades[path] == config.MaxUpgradeTier {
		other := config.UpgradePath2
		if path == config.UpgradePath2 {
			other = config.UpgradePath1
		}
		if t.Upgrades[other] == 0 {
			delete(t.UpgradePaths, other)
		}
	}
	return true
}
