package scenes

import (
	"errors"
	"log"

	"github.com/decker502/minion-td/pkg/config"
	"github.com/decker502/minion-td/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// towerTypeKeys 数字键对应侧边栏中的塔类型顺序
var towerTypeKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// handleInput 读取本帧的键盘与鼠标输入
func (s *GameScene) handleInput() {
	mx, my := ebiten.CursorPosition()
	s.updateHover(mx, my)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.handleRestart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.gameState.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		s.toggleGrid()
	}
	if !s.gameState.IsRunning() {
		return
	}

	for i, key := range towerTypeKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.selectTowerType(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.startWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.upgradeSelected(config.UpgradePath1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		s.upgradeSelected(config.UpgradePath2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.sellSelected()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		s.cycleTargeting()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.towerSystem.Deselect()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.handleClick(mx, my)
	}
}

// updateHover 记录鼠标所在的地图格子
func (s *GameScene) updateHover(x, y int) {
	if x < 0 || y < 0 || x >= config.PlayAreaWidth || y >= config.ScreenHeight {
		s.hoverValid = false
		return
	}
	s.hoverCell = s.gameMap.PixelToGrid(x, y)
	s.hoverValid = s.gameMap.Dimensions().InBounds(s.hoverCell)
}

// handleClick 处理左键点击
//
// 侧边栏区域按行选择塔类型；地图区域优先选择已有的塔，否则放置当前塔类型。
func (s *GameScene) handleClick(x, y int) {
	if !s.gameState.IsRunning() {
		return
	}
	if x >= config.PlayAreaWidth {
		s.handleSidebarClick(y)
		return
	}

	if _, ok := s.towerSystem.SelectAt(float64(x), float64(y)); ok {
		return
	}
	if s.gameState.SelectedTowerType == "" {
		return
	}

	cell := s.gameMap.PixelToGrid(x, y)
	if _, err := s.towerSystem.PlaceTower(s.gameState.SelectedTowerType, cell); err != nil {
		switch {
		case errors.Is(err, systems.ErrInsufficientCoins):
			s.showMessage("Not enough coins")
		case errors.Is(err, systems.ErrCellOccupied):
			s.showMessage("Cell occupied")
		case errors.Is(err, systems.ErrNotBuildable):
			s.showMessage("Cannot build here")
		default:
			log.Printf("[GameScene] 放置塔失败: %v", err)
		}
	}
}

// handleSidebarClick 点击侧边栏塔列表中的一行时选择该塔类型
func (s *GameScene) handleSidebarClick(y int) {
	lines, towerRows := s.sidebarLines()
	for row, lineY := range sidebarLineY(lines) {
		if lines[row] == "" || y < lineY || y >= lineY+sidebarLineHeight {
			continue
		}
		if index, ok := towerRows[row]; ok {
			s.selectTowerType(index)
		}
		return
	}
}

// selectTowerType 按侧边栏顺序选择要放置的塔类型
func (s *GameScene) selectTowerType(index int) {
	if index < 0 || index >= len(s.cfg.Towers.Order) {
		return
	}
	s.gameState.SelectedTowerType = s.cfg.Towers.Order[index]
	s.towerSystem.Deselect()
}

// startWave 开始下一波
func (s *GameScene) startWave() {
	if err := s.waveSystem.StartWave(); err != nil {
		switch {
		case errors.Is(err, systems.ErrWaveInProgress):
			s.showMessage("Wave in progress")
		case errors.Is(err, systems.ErrWaveCooldown):
			s.showMessage("Wait %.1fs", s.waveSystem.CooldownRemaining())
		case errors.Is(err, systems.ErrAllWavesDone):
			s.showMessage("All waves done")
		}
	}
}

// upgradeSelected 升级选中的塔
func (s *GameScene) upgradeSelected(path string) {
	err := s.towerSystem.UpgradeSelected(path)
	switch {
	case err == nil:
	case errors.Is(err, systems.ErrInsufficientCoins):
		s.showMessage("Not enough coins")
	case errors.Is(err, systems.ErrUpgradeUnavailable):
		s.showMessage("Upgrade unavailable")
	}
}

// sellSelected 出售选中的塔
func (s *GameScene) sellSelected() {
	refund, err := s.towerSystem.SellSelected()
	if err != nil {
		return
	}
	s.showMessage("Sold for $%d", refund)
}

// cycleTargeting 切换选中塔的目标策略，并记为新建塔的默认策略
func (s *GameScene) cycleTargeting() {
	strategy, err := s.towerSystem.CycleTargeting()
	if err != nil {
		return
	}
	s.towerSystem.SetDefaultStrategy(strategy)
	if s.cfg.Settings != nil {
		s.cfg.Settings.SetDefaultTargeting(string(strategy))
	}
	s.showMessage("Targeting: %s", strategy)
}

// toggleGrid 切换网格显示并写入设置
func (s *GameScene) toggleGrid() {
	s.gameState.ToggleGrid()
	if s.cfg.Settings == nil {
		return
	}
	s.cfg.Settings.SetShowGrid(s.gameState.ShowGrid)
	if err := s.cfg.Settings.Save(); err != nil {
		log.Printf("[GameScene] 保存设置失败: %v", err)
	}
}

// handleRestart 仅在结束后允许重新开始
func (s *GameScene) handleRestart() {
	if s.gameState.GameOver || s.gameState.GameWon {
		s.restart()
	}
}
