package components

// PositionComponent 实体位置（包围盒左上角，像素）
//
// 地形与障碍物的 Y 在创建后不再变化，只有车辆、木头和玩家会改变 X，
// 玩家可以同时改变 X 和 Y。
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 水平速度（像素/逻辑帧，正值向右）
// 静态地形为 0
type VelocityComponent struct {
	VX float64
}
