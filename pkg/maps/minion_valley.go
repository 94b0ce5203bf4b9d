package maps

// MinionValley 第一张地图：一条从左到右的 S 形路径
type MinionValley struct{}

// minionValleyWaypoints 路径拐点（网格坐标）
// 终点位于侧边栏下方，敌人走出可见区域后才算到达终点
var minionValleyWaypoints = []GridPos{
	{Col: 0, Row: 5}, // 从左侧出发
	{Col: 3, Row: 5},
	{Col: 3, Row: 2},
	{Col: 8, Row: 2},
	{Col: 8, Row: 8},
	{Col: 12, Row: 8},
	{Col: 12, Row: 4},
	{Col: 15, Row: 4}, // 右侧终点
}

func (MinionValley) ID() string         { return "minion_valley" }
func (MinionValley) Name() string       { return "Minion Valley" }
func (MinionValley) Background() string { return "minion_valley.png" }

// InitializeGrid 填充路径格子，路径及其周围一圈以外的格子均可建造
func (MinionValley) InitializeGrid(dims Dimensions) (*GridLayout, error) {
	waypoints := make([]GridPos, len(minionValleyWaypoints))
	copy(waypoints, minionValleyWaypoints)

	path := FillPathCells(waypoints)
	return &GridLayout{
		Waypoints:      waypoints,
		PathCells:      path,
		BuildableCells: BuildableAround(dims, path, 1),
	}, nil
}
