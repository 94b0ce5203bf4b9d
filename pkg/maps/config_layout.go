package maps

import (
	"fmt"

	"github.com/decker502/minion-td/pkg/config"
)

// ConfigLayout 由 data/maps/*.yaml 驱动的地图布局
type ConfigLayout struct {
	cfg *config.MapConfig
}

// NewConfigLayout 基于地图配置创建布局
func NewConfigLayout(cfg *config.MapConfig) *ConfigLayout {
	return &ConfigLayout{cfg: cfg}
}

func (l *ConfigLayout) ID() string         { return l.cfg.ID }
func (l *ConfigLayout) Name() string       { return l.cfg.Name }
func (l *ConfigLayout) Background() string { return l.cfg.Background }

// InitializeGrid 按配置的拐点填充路径，并按 BorderBuffer 计算可建造区域
func (l *ConfigLayout) InitializeGrid(dims Dimensions) (*GridLayout, error) {
	if len(l.cfg.Waypoints) == 0 {
		return nil, fmt.Errorf("map %s: %w", l.cfg.ID, ErrEmptyPath)
	}

	waypoints := make([]GridPos, len(l.cfg.Waypoints))
	for i, wp := range l.cfg.Waypoints {
		waypoints[i] = GridPos{Col: wp.Col, Row: wp.Row}
	}

	path := FillPathCells(waypoints)
	return &GridLayout{
		Waypoints:      waypoints,
		PathCells:      path,
		BuildableCells: BuildableAround(dims, path, l.cfg.BorderBuffer),
	}, nil
}
