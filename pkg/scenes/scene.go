package scenes

import (
	"github.com/decker502/minion-td/pkg/game"
)

// Scene 是 game.Scene 的别名
type Scene = game.Scene

// 编译期检查
var (
	_ game.Scene    = (*GameScene)(nil)
	_ game.Saveable = (*GameScene)(nil)
)
