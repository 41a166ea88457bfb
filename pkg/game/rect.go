package game

import (
	"github.com/decker502/frogger/pkg/components"
	"github.com/decker502/frogger/pkg/ecs"
)

// Rect 轴对齐包围盒（左上角 + 尺寸）
type Rect struct {
	X, Y, W, H float64
}

// Right 右边缘
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom 下边缘
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX 水平中心
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Intersects AABB 重叠检测
//
// 边缘恰好相接不算重叠：相邻车道、相邻格子之间不会互相命中。
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// RectOf 从实体的位置和碰撞组件构造包围盒
func RectOf(em *ecs.EntityManager, id ecs.EntityID) (Rect, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return Rect{}, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return Rect{}, false
	}
	return Rect{X: pos.X, Y: pos.Y, W: col.Width, H: col.Height}, true
}
