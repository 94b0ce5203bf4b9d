package game

import (
	"log"

	"github.com/decker502/minion-td/pkg/config"
)

// GameState 一局游戏的全局状态
// 由场景持有，系统通过指针共享同一份状态
type GameState struct {
	Coins int // 当前金币
	Lives int // 剩余生命

	GameTime float64 // 游戏时间（秒），暂停和结束后不再增加

	Paused   bool
	GameOver bool
	GameWon  bool

	SelectedTowerType string // 当前放置的塔类型
	ShowGrid          bool   // 是否绘制网格叠加层
}

// NewGameState 创建一局新游戏的状态
func NewGameState(coins, lives int) *GameState {
	return &GameState{
		Coins: coins,
		Lives: lives,
	}
}

// NewDefaultGameState 使用默认初始金币与生命创建状态
func NewDefaultGameState() *GameState {
	return NewGameState(config.StartingCoins, config.StartingLives)
}

// AddCoins 增加金币
func (gs *GameState) AddCoins(amount int) {
	gs.Coins += amount
}

// SpendCoins 扣除金币，如果金币不足返回 false
// 只有当金币充足时才会扣除
func (gs *GameState) SpendCoins(amount int) bool {
	if gs.Coins < amount {
		return false
	}
	gs.Coins -= amount
	return true
}

// LoseLives 扣除生命，生命归零时游戏结束
func (gs *GameState) LoseLives(amount int) {
	gs.Lives -= amount
	if gs.Lives <= 0 && !gs.GameOver {
		gs.GameOver = true
		log.Printf("[GameState] 游戏结束")
	}
}

// Win 标记胜利
func (gs *GameState) Win() {
	if gs.GameWon || gs.GameOver {
		return
	}
	gs.GameWon = true
	log.Printf("[GameState] 游戏胜利，剩余生命 %d", gs.Lives)
}

// IsRunning 游戏逻辑是否应该推进
func (gs *GameState) IsRunning() bool {
	return !gs.Paused && !gs.GameOver && !gs.GameWon
}

// Advance 推进游戏时间，返回本帧实际推进的秒数
func (gs *GameState) Advance(deltaTime float64) float64 {
	if !gs.IsRunning() {
		return 0
	}
	gs.GameTime += deltaTime
	return deltaTime
}

// TogglePause 切换暂停
func (gs *GameState) TogglePause() {
	gs.Paused = !gs.Paused
}

// ToggleGrid 切换网格叠加层
func (gs *GameState) ToggleGrid() {
	gs.ShowGrid = !gs.ShowGrid
}
