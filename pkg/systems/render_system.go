package systems

import (
	"image/color"
	"math"

	"github.com/decker502/minion-td/pkg/components"
	"github.com/decker502/minion-td/pkg/config"
	"github.com/decker502/minion-td/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 渲染参数
const (
	rangeCircleSegments = 16 // 虚线圆的分段数，隔段绘制
	healthBarWidth      = 30
	healthBarHeight     = 4
	statusDotRadius     = 3
)

var (
	rangeCircleColor  = color.RGBA{G: 255, A: 255}
	healthBarBgColor  = color.RGBA{R: 200, A: 255}
	healthBarFgColor  = color.RGBA{G: 200, A: 255}
	selectedRimColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	burningDotColor   = color.RGBA{R: 255, G: 120, A: 255}
	slowedDotColor    = color.RGBA{R: 80, G: 160, B: 255, A: 255}
	towerUpgradeColor = color.RGBA{R: 255, G: 215, A: 255}
)

// RenderSystem 绘制游戏世界中的实体
//
// 绘制顺序：塔（选中塔带虚线射程圈）→ 敌人（血条与状态点）→ 子弹。
// 地图背景与网格由 maps.Map.Draw 负责。
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// Draw 绘制所有实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawTowers(screen)
	s.drawEnemies(screen)
	s.drawProjectiles(screen)
}

func (s *RenderSystem) drawTowers(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith3[*components.TowerComponent, *components.PositionComponent, *components.RenderComponent](s.entityManager)
	for _, id := range ids {
		tower, _ := ecs.GetComponent[*components.TowerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		r, _ := ecs.GetComponent[*components.RenderComponent](s.entityManager, id)

		x, y := float32(pos.X), float32(pos.Y)
		if tower.Selected {
			drawDashedCircle(screen, x, y, float32(tower.Range))
			vector.StrokeCircle(screen, x, y, float32(r.Radius)+2, 2, selectedRimColor, true)
		}
		vector.DrawFilledCircle(screen, x, y, float32(r.Radius), r.Color, true)

		// 每级升级一个小点：path1 在左侧，path2 在右侧
		for i := 0; i < tower.Upgrades[config.UpgradePath1]; i++ {
			vector.DrawFilledCircle(screen, x-float32(r.Radius)+4, y-6+float32(i)*6, 2, towerUpgradeColor, true)
		}
		for i := 0; i < tower.Upgrades[config.UpgradePath2]; i++ {
			vector.DrawFilledCircle(screen, x+float32(r.Radius)-4, y-6+float32(i)*6, 2, towerUpgradeColor, true)
		}
	}
}

func (s *RenderSystem) drawEnemies(screen *ebiten.Image) {
	for _, e := range liveEnemies(s.entityManager) {
		r, ok := ecs.GetComponent[*components.RenderComponent](s.entityManager, e.id)
		if !ok {
			continue
		}
		x, y := float32(e.pos.X), float32(e.pos.Y)
		radius := float32(r.Radius)
		vector.DrawFilledCircle(screen, x, y, radius, r.Color, true)

		barX := x - healthBarWidth/2
		barY := y - radius - healthBarHeight - 3
		vector.DrawFilledRect(screen, barX, barY, healthBarWidth, healthBarHeight, healthBarBgColor, false)
		vector.DrawFilledRect(screen, barX, barY, healthBarWidth*float32(e.health.Ratio()), healthBarHeight, healthBarFgColor, false)

		if e.status == nil {
			continue
		}
		dotX := x + radius
		if e.status.Burning {
			vector.DrawFilledCircle(screen, dotX, y-radius, statusDotRadius, burningDotColor, true)
			dotX -= statusDotRadius * 3
		}
		if e.status.Slowed {
			vector.DrawFilledCircle(screen, dotX, y-radius, statusDotRadius, slowedDotColor, true)
		}
	}
}

func (s *RenderSystem) drawProjectiles(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith3[*components.ProjectileComponent, *components.PositionComponent, *components.RenderComponent](s.entityManager)
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		r, _ := ecs.GetComponent[*components.RenderComponent](s.entityManager, id)
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(r.Radius), r.Color, true)
	}
}

// drawDashedCircle 以隔段直线绘制虚线圆
func drawDashedCircle(screen *ebiten.Image, cx, cy, radius float32) {
	segment := 2 * math.Pi / rangeCircleSegments
	for i := 0; i < rangeCircleSegments; i += 2 {
		a0 := float64(i) * segment
		a1 := float64(i+1) * segment
		x0 := cx + radius*float32(math.Cos(a0))
		y0 := cy + radius*float32(math.Sin(a0))
		x1 := cx + radius*float32(math.Cos(a1))
		y1 := cy + radius*float32(math.Sin(a1))
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, rangeCircleColor, true)
	}
}
