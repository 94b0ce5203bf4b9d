package config

// 布局配置常量
// 本文件定义了游戏窗口、地图网格和侧边栏的布局参数

// Screen Configuration (窗口配置)
const (
	// ScreenWidth 是游戏逻辑画面宽度（像素）
	ScreenWidth = 1024

	// ScreenHeight 是游戏逻辑画面高度（像素）
	ScreenHeight = 768

	// SidebarWidth 是右侧侧边栏宽度（像素）
	// 地图只占用 ScreenWidth - SidebarWidth 的区域
	SidebarWidth = 200

	// PlayAreaWidth 是地图可见区域宽度（像素）
	PlayAreaWidth = ScreenWidth - SidebarWidth

	// GridSize 是每个网格格子的边长（像素）
	GridSize = 64

	// TargetFPS 是游戏目标帧率
	TargetFPS = 60

	// WindowTitle 是窗口标题
	WindowTitle = "Minion Tower Defense"
)

// Economy Configuration (经济配置)
const (
	// StartingCoins 是每局开始时的金币
	StartingCoins = 500

	// StartingLives 是每局开始时的生命值
	StartingLives = 100

	// SellRefundDivisor 出售塔时返还 cost / SellRefundDivisor
	SellRefundDivisor = 2
)

// Combat Configuration (战斗配置)
const (
	// MovementScale 速度缩放系数
	// 配置中的速度单位是"每 1/60 秒移动的像素"，乘以 dt*MovementScale 后与帧率无关
	MovementScale = 60.0

	// ProjectileSpeed 是子弹的默认速度
	ProjectileSpeed = 10.0

	// ProjectileHitRadius 子弹与目标距离小于该值即视为命中（像素）
	ProjectileHitRadius = 20.0

	// SplashFalloff 溅射伤害在半径边缘衰减的比例
	// 伤害系数 = 1 - (distance / radius) * SplashFalloff
	SplashFalloff = 0.5

	// CriticalMultiplier 暴击伤害倍率
	CriticalMultiplier = 2.0

	// DefaultCriticalChance 获得暴击能力后默认的暴击概率
	DefaultCriticalChance = 0.1

	// BurningBaseDPS 燃烧效果每秒基础伤害（再乘以塔的燃烧倍率）
	BurningBaseDPS = 5.0

	// BurningDuration 燃烧持续时间（秒）
	BurningDuration = 3.0

	// SupportSlowFactor 辅助塔特殊能力对范围内敌人施加的减速系数
	SupportSlowFactor = 0.7

	// SupportSlowDuration 辅助塔减速持续时间（秒），每次更新都会刷新
	SupportSlowDuration = 0.5

	// TowerSelectRadius 点击选择塔的最大距离（像素）
	TowerSelectRadius = 40.0
)

// PlayAreaGridWidth 返回地图区域的列数
func PlayAreaGridWidth(cellSize int) int {
	return PlayAreaWidth / cellSize
}

// PlayAreaGridHeight 返回地图区域的行数
func PlayAreaGridHeight(cellSize int) int {
	return ScreenHeight / cellSize
}
