package maps

import (
	"fmt"

	"github.com/decker502/minion-td/pkg/config"
)

// DefaultMapID 未指定地图时使用的地图
const DefaultMapID = "minion_valley"

// Registry 按 ID 索引所有可用地图布局
type Registry struct {
	layouts map[string]Layout
	order   []string
}

// NewRegistry 创建布局注册表，ID 重复时返回错误
func NewRegistry(layouts ...Layout) (*Registry, error) {
	r := &Registry{layouts: make(map[string]Layout, len(layouts))}
	for _, l := range layouts {
		if _, dup := r.layouts[l.ID()]; dup {
			return nil, fmt.Errorf("duplicate map id %q", l.ID())
		}
		r.layouts[l.ID()] = l
		r.order = append(r.order, l.ID())
	}
	return r, nil
}

// NewDefaultRegistry 注册内置地图以及配置文件中的地图
func NewDefaultRegistry(configs []*config.MapConfig) (*Registry, error) {
	layouts := []Layout{MinionValley{}}
	for _, cfg := range configs {
		layouts = append(layouts, NewConfigLayout(cfg))
	}
	return NewRegistry(layouts...)
}

// Get 返回指定 ID 的布局
func (r *Registry) Get(id string) (Layout, bool) {
	l, ok := r.layouts[id]
	return l, ok
}

// IDs 按注册顺序返回所有地图 ID
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}
