package config

import (
	"fmt"
	"image/color"

	"github.com/decker502/minion-td/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// 升级路径名称
const (
	UpgradePath1 = "path1"
	UpgradePath2 = "path2"

	// MaxUpgradeTier 每条升级路径的最大层数
	MaxUpgradeTier = 3
)

// RGB 以 [r, g, b] 形式在 YAML 中描述颜色
type RGB [3]uint8

// RGBA 转换为 color.RGBA（不透明）
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

// UpgradeTier 升级路径中的单个升级
//
// 倍率字段为 0 表示该升级不影响对应属性
type UpgradeTier struct {
	Name        string `yaml:"name"`
	Cost        int    `yaml:"cost"`
	Description string `yaml:"description"`

	DamageMultiplier        float64 `yaml:"damageMultiplier"`
	RangeMultiplier         float64 `yaml:"rangeMultiplier"`
	CooldownMultiplier      float64 `yaml:"cooldownMultiplier"`
	SplashRadiusMultiplier  float64 `yaml:"splashRadiusMultiplier"`
	BurningDamageMultiplier float64 `yaml:"burningDamageMultiplier"`
	BuffMultiplier          float64 `yaml:"buffMultiplier"` // 直接替换当前增益倍率，而不是相乘
	CriticalChance          float64 `yaml:"criticalChance"`

	AddsBurning        bool `yaml:"addsBurning"`
	AddsCritical       bool `yaml:"addsCritical"`
	AddsSpecialAbility bool `yaml:"addsSpecialAbility"`
}

// TowerStats 单个塔类型的属性配置
type TowerStats struct {
	Name           string                   `yaml:"name"`
	Cost           int                      `yaml:"cost"`
	Damage         float64                  `yaml:"damage"`
	Range          float64                  `yaml:"range"`
	Cooldown       float64                  `yaml:"cooldown"`       // 攻击间隔（秒），0 表示不攻击（辅助塔）
	SplashRadius   float64                  `yaml:"splashRadius"`   // 溅射半径，0 表示单体伤害
	BuffMultiplier float64                  `yaml:"buffMultiplier"` // 辅助塔对范围内其他塔的伤害增益，默认 1.0
	Color          RGB                      `yaml:"color"`
	UpgradePaths   map[string][]UpgradeTier `yaml:"upgradePaths"`
}

// TowerConfig 塔配置文件结构
type TowerConfig struct {
	Order  []string              `yaml:"order"` // 侧边栏与快捷键顺序
	Towers map[string]TowerStats `yaml:"towers"`
}

// Get 返回指定类型的塔属性
func (c *TowerConfig) Get(towerType string) (TowerStats, bool) {
	stats, ok := c.Towers[towerType]
	return stats, ok
}

// LoadTowerConfig 从 YAML 文件加载塔配置
// 参数：
//
//	filepath - 配置文件路径（如 "data/towers.yaml"）
//
// 返回：
//
//	*TowerConfig - 解析后的配置对象
//	error - 如果文件读取、解析或验证失败，返回错误信息
func LoadTowerConfig(filepath string) (*TowerConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tower config file %s: %w", filepath, err)
	}

	var config TowerConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse tower config YAML from %s: %w", filepath, err)
	}

	applyTowerDefaults(&config)

	if err := validateTowerConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid tower config in %s: %w", filepath, err)
	}

	return &config, nil
}

// applyTowerDefaults 为缺失的可选字段设置默认值
func applyTowerDefaults(config *TowerConfig) {
	for towerType, stats := range config.Towers {
		if stats.BuffMultiplier == 0 {
			stats.BuffMultiplier = 1.0
		}
		if stats.Name == "" {
			stats.Name = towerType
		}
		config.Towers[towerType] = stats
	}
}

// validateTowerConfig 验证塔配置的完整性和合法性
func validateTowerConfig(config *TowerConfig) error {
	if len(config.Towers) == 0 {
		return fmt.Errorf("at least one tower type is required")
	}

	for towerType, stats := range config.Towers {
		if stats.Cost < 0 {
			return fmt.Errorf("tower %s: cost cannot be negative, got %d", towerType, stats.Cost)
		}
		if stats.Damage < 0 {
			return fmt.Errorf("tower %s: damage cannot be negative, got %v", towerType, stats.Damage)
		}
		if stats.Range <= 0 {
			return fmt.Errorf("tower %s: range must be positive, got %v", towerType, stats.Range)
		}
		if stats.Cooldown < 0 {
			return fmt.Errorf("tower %s: cooldown cannot be negative, got %v", towerType, stats.Cooldown)
		}
		if stats.SplashRadius < 0 {
			return fmt.Errorf("tower %s: splashRadius cannot be negative, got %v", towerType, stats.SplashRadius)
		}

		for path, tiers := range stats.UpgradePaths {
			if path != UpgradePath1 && path != UpgradePath2 {
				return fmt.Errorf("tower %s: unknown upgrade path %q (must be %s or %s)", towerType, path, UpgradePath1, UpgradePath2)
			}
			if len(tiers) > MaxUpgradeTier {
				return fmt.Errorf("tower %s: upgrade path %s has %d tiers, max is %d", towerType, path, len(tiers), MaxUpgradeTier)
			}
			for i, tier := range tiers {
				if tier.Cost <= 0 {
					return fmt.Errorf("tower %s: %s tier %d: cost must be positive, got %d", towerType, path, i+1, tier.Cost)
				}
				if tier.CriticalChance < 0 || tier.CriticalChance > 1 {
					return fmt.Errorf("tower %s: %s tier %d: criticalChance must be within [0, 1], got %v", towerType, path, i+1, tier.CriticalChance)
				}
			}
		}
	}

	seen := make(map[string]bool, len(config.Order))
	for i, towerType := range config.Order {
		if _, ok := config.Towers[towerType]; !ok {
			return fmt.Errorf("order[%d]: unknown tower type %q", i, towerType)
		}
		if seen[towerType] {
			return fmt.Errorf("order[%d]: duplicate tower type %q", i, towerType)
		}
		seen[towerType] = true
	}

	return nil
}
