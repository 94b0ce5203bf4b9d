package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/minion-td/pkg/components"
	"github.com/decker502/minion-td/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 侧边栏布局
const (
	sidebarPadding    = 10
	sidebarLineHeight = 16

	// messageDuration 提示信息显示时间（秒）
	messageDuration = 2.5
)

var (
	sidebarBgColor      = color.RGBA{R: 30, G: 30, B: 40, A: 255}
	sidebarDividerColor = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	previewValidColor   = color.RGBA{G: 255, A: 80}
	previewInvalidColor = color.RGBA{R: 255, A: 80}
	overlayColor        = color.RGBA{A: 160}
)

// sidebarWriter 按行向侧边栏输出调试文字
type sidebarWriter struct {
	screen *ebiten.Image
	x, y   int
}

func (w *sidebarWriter) line(format string, args ...any) {
	ebitenutil.DebugPrintAt(w.screen, fmt.Sprintf(format, args...), w.x, w.y)
	w.y += sidebarLineHeight
}

func (w *sidebarWriter) gap() {
	w.y += sidebarLineHeight / 2
}

// drawSidebar 绘制右侧信息栏
func (s *GameScene) drawSidebar(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, config.PlayAreaWidth, 0, config.SidebarWidth, config.ScreenHeight, sidebarBgColor, false)
	vector.StrokeLine(screen, config.PlayAreaWidth, 0, config.PlayAreaWidth, config.ScreenHeight, 2, sidebarDividerColor, false)

	lines, _ := s.sidebarLines()
	w := &sidebarWriter{screen: screen, x: config.PlayAreaWidth + sidebarPadding, y: sidebarPadding}
	for _, text := range lines {
		if text == "" {
			w.gap()
			continue
		}
		w.line("%s", text)
	}
}

// sidebarLineY 计算每行文本的 y 坐标，与 drawSidebar 的排版一致
func sidebarLineY(lines []string) []int {
	ys := make([]int, len(lines))
	y := sidebarPadding
	for i, text := range lines {
		ys[i] = y
		if text == "" {
			y += sidebarLineHeight / 2
			continue
		}
		y += sidebarLineHeight
	}
	return ys
}

// sidebarLines 生成侧边栏文本，空字符串表示分隔
// towerRows 将行号映射到塔类型在 Order 中的下标
func (s *GameScene) sidebarLines() (lines []string, towerRows map[int]int) {
	gs := s.gameState
	ws := s.waveSystem

	lines = []string{
		s.gameMap.Name(),
		fmt.Sprintf("Coins: %d", gs.Coins),
		fmt.Sprintf("Lives: %d", gs.Lives),
	}
	if s.cfg.Waves.TotalWaves > 0 {
		lines = append(lines, fmt.Sprintf("Wave: %d/%d", ws.CurrentWave(), s.cfg.Waves.TotalWaves))
	} else {
		lines = append(lines, fmt.Sprintf("Wave: %d", ws.CurrentWave()))
	}
	switch {
	case ws.InProgress():
		lines = append(lines, fmt.Sprintf("Enemies: %d", ws.EnemiesRemaining()))
	case ws.CanStartNextWave():
		lines = append(lines, "SPACE: next wave")
	case ws.CooldownRemaining() > 0:
		lines = append(lines, fmt.Sprintf("Next wave in %.1fs", ws.CooldownRemaining()))
	}

	towerRows = make(map[int]int)
	lines = append(lines, "", "Towers:")
	for i, towerType := range s.cfg.Towers.Order {
		stats, ok := s.cfg.Towers.Get(towerType)
		if !ok {
			continue
		}
		marker := " "
		if towerType == gs.SelectedTowerType {
			marker = ">"
		}
		towerRows[len(lines)] = i
		lines = append(lines, fmt.Sprintf("%s%d %s $%d", marker, i+1, stats.Name, stats.Cost))
	}

	if _, tower, ok := s.towerSystem.Selected(); ok {
		lines = append(lines, "")
		lines = append(lines, selectedTowerLines(tower)...)
	}

	lines = append(lines, "", "G grid  P pause")
	if s.messageTimer > 0 && s.message != "" {
		lines = append(lines, "", s.message)
	}
	return lines, towerRows
}

// selectedTowerLines 选中塔的属性与升级信息
func selectedTowerLines(tower *components.TowerComponent) []string {
	lines := []string{fmt.Sprintf("[%s]", tower.Name)}
	if tower.IsSupport() {
		lines = append(lines, fmt.Sprintf("Buff: x%.2f", tower.BuffMultiplier))
	} else {
		lines = append(lines,
			fmt.Sprintf("Damage: %.1f", tower.EffectiveDamage()),
			fmt.Sprintf("Cooldown: %.2fs", tower.Cooldown),
		)
	}
	lines = append(lines, fmt.Sprintf("Range: %.0f", tower.Range))
	if tower.SplashRadius > 0 {
		lines = append(lines, fmt.Sprintf("Splash: %.0f", tower.SplashRadius))
	}
	if !tower.IsSupport() {
		lines = append(lines, fmt.Sprintf("T target: %s", tower.Strategy))
	}

	for _, p := range []struct {
		key  string
		path string
	}{{"Q", config.UpgradePath1}, {"E", config.UpgradePath2}} {
		level := tower.Upgrades[p.path]
		if tower.IsPathLocked(p.path) {
			lines = append(lines, fmt.Sprintf("%s %s: locked", p.key, p.path))
			continue
		}
		next, ok := tower.NextUpgrade(p.path)
		if !ok {
			lines = append(lines, fmt.Sprintf("%s %s: %d/%d max", p.key, p.path, level, config.MaxUpgradeTier))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s %d/%d $%d", p.key, next.Name, level, config.MaxUpgradeTier, next.Cost))
	}
	lines = append(lines, fmt.Sprintf("S sell +$%d", tower.BaseCost/config.SellRefundDivisor))
	return lines
}

// drawPlacementPreview 在鼠标所在格子显示能否放置
func (s *GameScene) drawPlacementPreview(screen *ebiten.Image) {
	if !s.hoverValid || s.gameState.SelectedTowerType == "" || !s.gameState.IsRunning() {
		return
	}
	clr := previewInvalidColor
	if s.towerSystem.CanPlace(s.hoverCell) == nil {
		clr = previewValidColor
	}
	size := float32(s.gameMap.CellSize())
	vector.DrawFilledRect(screen, float32(s.hoverCell.Col)*size, float32(s.hoverCell.Row)*size, size, size, clr, false)
}

// drawOverlay 暂停、失败与胜利提示
func (s *GameScene) drawOverlay(screen *ebiten.Image) {
	var text string
	switch {
	case s.gameState.GameOver:
		text = fmt.Sprintf("GAME OVER - reached wave %d\nR: restart", s.waveSystem.CurrentWave())
	case s.gameState.GameWon:
		text = "VICTORY!\nR: restart"
	case s.gameState.Paused:
		text = "PAUSED\nP: resume"
	default:
		return
	}
	vector.DrawFilledRect(screen, 0, 0, config.PlayAreaWidth, config.ScreenHeight, overlayColor, false)
	ebitenutil.DebugPrintAt(screen, text, config.PlayAreaWidth/2-80, config.ScreenHeight/2-16)
}
