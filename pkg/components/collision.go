package components

// CollisionComponent 定义实体的碰撞检测边界框
// 尺寸在实体创建后固定；与 PositionComponent（左上角）一起构成包围盒
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}
