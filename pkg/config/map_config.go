package config

import (
	"fmt"
	"path"
	"sort"

	"github.com/decker502/minion-td/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// GridPoint 网格坐标（列、行）
type GridPoint struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// DefaultBorderBuffer 未配置 borderBuffer 时路径两侧不可建造的格子数
const DefaultBorderBuffer = 1

// MapConfig 数据驱动的地图布局配置
type MapConfig struct {
	ID           string      `yaml:"id"`           // 地图ID，如 "twin_bridges"
	Name         string      `yaml:"name"`         // 显示名称
	Background   string      `yaml:"background"`   // 背景图片文件名（相对 assets/images/maps/）
	BorderBuffer int         `yaml:"borderBuffer"` // 路径两侧不可建造的格子数，默认 1
	Waypoints    []GridPoint `yaml:"waypoints"`    // 路径拐点（网格坐标），第一个为出生点，最后一个为终点
}

// LoadMapConfig 从 YAML 文件加载地图配置
func LoadMapConfig(filepath string) (*MapConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map config file %s: %w", filepath, err)
	}

	// 缺省值先写入结构体，yaml 只覆盖文件中出现的字段（显式的 borderBuffer: 0 会保留）
	config := MapConfig{BorderBuffer: DefaultBorderBuffer}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse map config YAML from %s: %w", filepath, err)
	}

	if err := validateMapConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid map config in %s: %w", filepath, err)
	}

	return &config, nil
}

// LoadMapConfigDir 加载目录下所有 *.yaml 地图配置，按 ID 排序返回
func LoadMapConfigDir(dir string) ([]*MapConfig, error) {
	files, err := embedded.Glob(path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list map configs in %s: %w", dir, err)
	}

	configs := make([]*MapConfig, 0, len(files))
	seen := make(map[string]string, len(files))
	for _, file := range files {
		cfg, err := LoadMapConfig(file)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[cfg.ID]; dup {
			return nil, fmt.Errorf("duplicate map id %q in %s and %s", cfg.ID, prev, file)
		}
		seen[cfg.ID] = file
		configs = append(configs, cfg)
	}

	sort.Slice(configs, func(i, j int) bool { return configs[i].ID < configs[j].ID })
	return configs, nil
}

// validateMapConfig 验证地图配置
func validateMapConfig(config *MapConfig) error {
	if config.ID == "" {
		return fmt.Errorf("map id is required")
	}
	if config.Name == "" {
		return fmt.Errorf("map name is required")
	}
	if config.Background == "" {
		return fmt.Errorf("map background is required")
	}
	if config.BorderBuffer < 0 {
		return fmt.Errorf("borderBuffer cannot be negative, got %d", config.BorderBuffer)
	}
	if len(config.Waypoints) < 2 {
		return fmt.Errorf("at least two waypoints are required, got %d", len(config.Waypoints))
	}

	for i := 1; i < len(config.Waypoints); i++ {
		prev, cur := config.Waypoints[i-1], config.Waypoints[i]
		if prev == cur {
			return fmt.Errorf("waypoints[%d]: duplicates previous waypoint (%d, %d)", i, cur.Col, cur.Row)
		}
		// 路径只能沿水平或垂直方向延伸
		if prev.Col != cur.Col && prev.Row != cur.Row {
			return fmt.Errorf("waypoints[%d]: segment (%d, %d) -> (%d, %d) is not axis-aligned",
				i, prev.Col, prev.Row, cur.Col, cur.Row)
		}
	}

	return nil
}
