package systems

import (
	"github.com/decker502/frogger/pkg/components"
	"github.com/decker502/frogger/pkg/ecs"
	"github.com/decker502/frogger/pkg/game"
)

// ObstacleSystem 移动车辆和木头，并在驶出右边界后从左侧重新出现
type ObstacleSystem struct {
	world *game.World
}

// NewObstacleSystem 创建障碍物移动系统
func NewObstacleSystem(w *game.World) *ObstacleSystem {
	return &ObstacleSystem{world: w}
}

// Update 推进所有障碍物一个逻辑帧
//
// 参数:
//   - deltaTime: 本系统暂不使用（速度单位是 像素/逻辑帧）
func (s *ObstacleSystem) Update(deltaTime float64) {
	em := s.world.EntityManager
	width := s.world.Config.Map.Width
	wrapX := s.world.Config.Placement.WrapX

	for _, id := range ecs.GetEntitiesWith2[*components.ActorComponent, *components.VelocityComponent](em) {
		actor, _ := ecs.GetComponent[*components.ActorComponent](em, id)
		if !actor.Kind.IsObstacle() {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)

		pos.X += vel.VX
		if pos.X >= width {
			pos.X = wrapX
		}
	}
}
