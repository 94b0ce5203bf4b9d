package components

import "github.com/decker502/minion-td/pkg/maps"

// PathFollowerComponent 让敌人沿地图路径移动
type PathFollowerComponent struct {
	Path       []maps.PathPoint // 像素路径（地图路径的副本）
	Index      int              // 正在前往的路点下标
	Speed      float64          // 每 1/60 秒移动的像素
	ReachedEnd bool             // 是否已走完全部路径
}

// Target 返回当前前往的路点
func (p *PathFollowerComponent) Target() (maps.PathPoint, bool) {
	if p.Index < 0 || p.Index >= len(p.Path) {
		return maps.PathPoint{}, false
	}
	return p.Path[p.Index], true
}
