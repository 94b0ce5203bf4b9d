package config

import (
	"fmt"

	"github.com/decker502/minion-td/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// WaveComposition 一类敌人在第 n 波中的数量规则
//
// 数量 = max(0, Base + PerWave*(n - FromWave))
// 当 Every > 0 时，仅在 n%Every == 0 的波次出现，数量固定为 Base
type WaveComposition struct {
	Type     string `yaml:"type"`
	Base     int    `yaml:"base"`
	PerWave  int    `yaml:"perWave"`
	FromWave int    `yaml:"fromWave"`
	Every    int    `yaml:"every"`
}

// Count 返回第 wave 波（从 1 开始）中该类敌人的数量
func (c WaveComposition) Count(wave int) int {
	if c.Every > 0 {
		if wave > 0 && wave%c.Every == 0 {
			return c.Base
		}
		return 0
	}
	n := c.Base + c.PerWave*(wave-c.FromWave)
	if n < 0 {
		return 0
	}
	return n
}

// SpawnIntervalRule 出怪间隔随波次缩短的规则
// 间隔 = max(Min, Base - PerWave*n)
type SpawnIntervalRule struct {
	Base    float64 `yaml:"base"`
	PerWave float64 `yaml:"perWave"`
	Min     float64 `yaml:"min"`
}

// Interval 返回第 wave 波的出怪间隔（秒）
func (r SpawnIntervalRule) Interval(wave int) float64 {
	interval := r.Base - r.PerWave*float64(wave)
	if interval < r.Min {
		return r.Min
	}
	return interval
}

// WaveConfig 波次生成规则
type WaveConfig struct {
	Cooldown      float64           `yaml:"cooldown"`   // 两波之间的最短间隔（秒）
	TotalWaves    int               `yaml:"totalWaves"` // 完成该波次后胜利，0 表示无尽模式
	SpawnInterval SpawnIntervalRule `yaml:"spawnInterval"`
	Composition   []WaveComposition `yaml:"composition"`
}

// LoadWaveConfig 从 YAML 文件加载波次规则
func LoadWaveConfig(filepath string) (*WaveConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave config file %s: %w", filepath, err)
	}

	var config WaveConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse wave config YAML from %s: %w", filepath, err)
	}

	applyWaveDefaults(&config)

	if err := validateWaveConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid wave config in %s: %w", filepath, err)
	}

	return &config, nil
}

// DefaultWaveConfig 返回与 data/waves.yaml 一致的默认规则
func DefaultWaveConfig() *WaveConfig {
	return &WaveConfig{
		Cooldown:   10,
		TotalWaves: 20,
		SpawnInterval: SpawnIntervalRule{
			Base:    1.0,
			PerWave: 0.05,
			Min:     0.5,
		},
		Composition: []WaveComposition{
			{Type: "basic_minion", Base: 5, PerWave: 2},
			{Type: "fast_minion", PerWave: 2, FromWave: 2},
			{Type: "tank_minion", PerWave: 1, FromWave: 4},
			{Type: "boss_minion", Base: 1, Every: 5},
		},
	}
}

// applyWaveDefaults 为缺失的可选字段设置默认值
func applyWaveDefaults(config *WaveConfig) {
	if config.SpawnInterval.Base == 0 {
		config.SpawnInterval.Base = 1.0
	}
	if config.SpawnInterval.Min == 0 {
		config.SpawnInterval.Min = config.SpawnInterval.Base
	}
}

// validateWaveConfig 验证波次规则
func validateWaveConfig(config *WaveConfig) error {
	if config.Cooldown < 0 {
		return fmt.Errorf("cooldown cannot be negative, got %v", config.Cooldown)
	}
	if config.TotalWaves < 0 {
		return fmt.Errorf("totalWaves cannot be negative, got %d", config.TotalWaves)
	}
	if config.SpawnInterval.Min <= 0 {
		return fmt.Errorf("spawnInterval.min must be positive, got %v", config.SpawnInterval.Min)
	}
	if len(config.Composition) == 0 {
		return fmt.Errorf("at least one composition entry is required")
	}
	for i, c := range config.Composition {
		if c.Type == "" {
			return fmt.Errorf("composition[%d]: type is required", i)
		}
		if c.Every < 0 {
			return fmt.Errorf("composition[%d]: every cannot be negative, got %d", i, c.Every)
		}
	}
	return nil
}

// ValidateAgainst 检查波次规则引用的敌人类型都已在敌人配置中定义
func (c *WaveConfig) ValidateAgainst(enemies *EnemyConfig) error {
	for i, comp := range c.Composition {
		if _, ok := enemies.Get(comp.Type); !ok {
			return fmt.Errorf("composition[%d]: unknown enemy type %q", i, comp.Type)
		}
	}
	return nil
}
