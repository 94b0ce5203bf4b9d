package config

import (
	"fmt"

	"github.com/decker502/minion-td/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// EnemyStats 单个敌人类型的属性配置
type EnemyStats struct {
	Health float64 `yaml:"health"`
	Speed  float64 `yaml:"speed"`  // 每 1/60 秒移动的像素
	Reward int     `yaml:"reward"` // 击杀奖励金币
	Damage int     `yaml:"damage"` // 到达终点扣除的生命值
	Radius float64 `yaml:"radius"` // 绘制半径，默认 12
	Color  RGB     `yaml:"color"`
}

// EnemyConfig 敌人配置文件结构
type EnemyConfig struct {
	Enemies map[string]EnemyStats `yaml:"enemies"`
}

// Get 返回指定类型的敌人属性
func (c *EnemyConfig) Get(enemyType string) (EnemyStats, bool) {
	stats, ok := c.Enemies[enemyType]
	return stats, ok
}

// LoadEnemyConfig 从 YAML 文件加载敌人配置
func LoadEnemyConfig(filepath string) (*EnemyConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy config file %s: %w", filepath, err)
	}

	var config EnemyConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse enemy config YAML from %s: %w", filepath, err)
	}

	for enemyType, stats := range config.Enemies {
		if stats.Radius == 0 {
			stats.Radius = 12
		}
		config.Enemies[enemyType] = stats
	}

	if err := validateEnemyConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid enemy config in %s: %w", filepath, err)
	}

	return &config, nil
}

// validateEnemyConfig 验证敌人配置的完整性和合法性
func validateEnemyConfig(config *EnemyConfig) error {
	if len(config.Enemies) == 0 {
		return fmt.Errorf("at least one enemy type is required")
	}

	for enemyType, stats := range config.Enemies {
		if stats.Health <= 0 {
			return fmt.Errorf("enemy %s: health must be positive, got %v", enemyType, stats.Health)
		}
		if stats.Speed <= 0 {
			return fmt.Errorf("enemy %s: speed must be positive, got %v", enemyType, stats.Speed)
		}
		if stats.Reward < 0 {
			return fmt.Errorf("enemy %s: reward cannot be negative, got %d", enemyType, stats.Reward)
		}
		if stats.Damage < 0 {
			return fmt.Errorf("enemy %s: damage cannot be negative, got %d", enemyType, stats.Damage)
		}
	}

	return nil
}
