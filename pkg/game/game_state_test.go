package game

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestNewDefaultGameState(t *testing.T) {
	gs := NewDefaultGameState()
	if gs.Coins != 500 || gs.Lives != 100 {
		t.Errorf("got coins=%d lives=%d, want 500/100", gs.Coins, gs.Lives)
	}
	if !gs.IsRunning() {
		t.Error("new game should be running")
	}
}

func TestSpendCoins(t *testing.T) {
	gs := NewGameState(100, 10)

	if !gs.SpendCoins(100) {
		t.Fatal("spending exactly the balance should succeed")
	}
	if gs.Coins != 0 {
		t.Errorf("Coins: got %d, want 0", gs.Coins)
	}
	if gs.SpendCoins(1) {
		t.Error("spending more than the balance must fail")
	}
	if gs.Coins != 0 {
		t.Error("failed spend must not change coins")
	}

	gs.AddCoins(25)
	if gs.Coins != 25 {
		t.Errorf("AddCoins: got %d", gs.Coins)
	}
}

func TestLoseLives(t *testing.T) {
	gs := NewGameState(0, 3)

	gs.LoseLives(2)
	if gs.GameOver {
		t.Fatal("game should not be over with 1 life left")
	}
	gs.LoseLives(10)
	if !gs.GameOver || gs.Lives != -9 {
		t.Errorf("expected game over, got lives=%d over=%v", gs.Lives, gs.GameOver)
	}

	gs.Win()
	if gs.GameWon {
		t.Error("cannot win after losing")
	}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name  string
		setup func(gs *GameState)
		want  float64
	}{
		{"运行中", func(gs *GameState) {}, 0.5},
		{"暂停", func(gs *GameState) { gs.TogglePause() }, 0},
		{"失败", func(gs *GameState) { gs.LoseLives(100) }, 0},
		{"胜利", func(gs *GameState) { gs.Win() }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState(0, 100)
			tt.setup(gs)
			if got := gs.Advance(0.5); got != tt.want {
				t.Errorf("Advance: got %v, want %v", got, tt.want)
			}
			if gs.GameTime != tt.want {
				t.Errorf("GameTime: got %v, want %v", gs.GameTime, tt.want)
			}
		})
	}
}

func TestToggleGrid(t *testing.T) {
	gs := NewDefaultGameState()
	gs.ToggleGrid()
	if !gs.ShowGrid {
		t.Error("grid should be shown")
	}
	gs.ToggleGrid()
	if gs.ShowGrid {
		t.Error("grid should be hidden")
	}
}

// TestStateTransitionLogs 状态切换日志使用统一的 [GameState] 前缀和中文描述
func TestStateTransitionLogs(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	gs := NewGameState(0, 1)
	gs.LoseLives(1)
	if !strings.Contains(buf.String(), "[GameState] 游戏结束") {
		t.Errorf("game over log missing: %q", buf.String())
	}

	buf.Reset()
	won := NewGameState(0, 5)
	won.Win()
	if !strings.Contains(buf.String(), "[GameState] 游戏胜利，剩余生命 5") {
		t.Errorf("game won log missing: %q", buf.String())
	}
}
