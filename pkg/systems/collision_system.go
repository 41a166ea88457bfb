package systems

import (
	"github.com/rs/zerolog"

	"github.com/decker502/frogger/pkg/components"
	"github.com/decker502/frogger/pkg/ecs"
	"github.com/decker502/frogger/pkg/game"
)

// CollisionSystem 处理青蛙与地形、障碍物之间的判定
//
// 每帧按固定顺序执行：落水/乘木 -> 随木头漂移 -> 车辆 -> 荷叶 -> 出界。
// 本局结果先到先得，后续判定不会覆盖。
type CollisionSystem struct {
	world  *game.World
	logger zerolog.Logger
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(w *game.World, logger zerolog.Logger) *CollisionSystem {
	return &CollisionSystem{
		world:  w,
		logger: logger,
	}
}

// firstIntersecting 返回某种类中第一个（按生成顺序）与 r 重叠的实体
func (s *CollisionSystem) firstIntersecting(kind components.ActorKind, r game.Rect) (ecs.EntityID, bool) {
	for _, id := range s.world.OfKind(kind) {
		other, ok := game.RectOf(s.world.EntityManager, id)
		if ok && r.Intersects(other) {
			return id, true
		}
	}
	return ecs.InvalidEntity, false
}

func (s *CollisionSystem) lose(reason string) {
	if s.world.State.Finish(game.RoundLost) {
		s.logger.Info().Str("reason", reason).Int("score", s.world.State.Score).Msg("round lost")
	}
}

// Support 检查河道上的承载关系
//
// 青蛙与任一河水格子重叠时，必须同时与某根木头重叠，否则落水。
// Riding 每帧重新计算。
func (s *CollisionSystem) Support() {
	pc := s.world.PlayerComponent()
	if pc == nil {
		return
	}
	pc.Riding = ecs.InvalidEntity

	player := s.world.PlayerRect()
	if _, overWater := s.firstIntersecting(components.KindWater, player); !overWater {
		return
	}
	if log, ok := s.firstIntersecting(components.KindLog, player); ok {
		pc.Riding = log
		return
	}
	s.lose("drowned")
}

// Ride 青蛙随承载它的木头水平移动
func (s *CollisionSystem) Ride() {
	pc := s.world.PlayerComponent()
	if pc == nil || pc.Riding == ecs.InvalidEntity {
		return
	}
	em := s.world.EntityManager
	vel, ok := ecs.GetComponent[*components.VelocityComponent](em, pc.Riding)
	if !ok {
		return
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, s.world.Player); ok {
		pos.X += vel.VX
	}
}

// Lethal 与任一车辆重叠即失败
func (s *CollisionSystem) Lethal() {
	if _, hit := s.firstIntersecting(components.KindVehicle, s.world.PlayerRect()); hit {
		s.lose("hit by vehicle")
	}
}

// Goal 触碰荷叶即胜利，奖励分数只在本局首次胜利时加一次
func (s *CollisionSystem) Goal() {
	state := s.world.State
	if state.IsTerminal() {
		return
	}
	if _, ok := s.firstIntersecting(components.KindGoal, s.world.PlayerRect()); !ok {
		return
	}
	state.AddScore(s.world.Config.Score.GoalBonus)
	state.Finish(game.RoundWon)
	s.logger.Info().Int("score", state.Score).Msg("round won")
}

// Boundary 青蛙水平中心越过左右边缘，或整体离开上下边缘即失败
func (s *CollisionSystem) Boundary() {
	r := s.world.PlayerRect()
	m := s.world.Config.Map
	if cx := r.CenterX(); cx <= 0 || cx >= m.Width || r.Y >= m.Height || r.Bottom() <= 0 {
		s.lose("out of bounds")
	}
}

// Update 按顺序执行全部判定
//
// 参数:
//   - deltaTime: 本系统暂不使用
func (s *CollisionSystem) Update(deltaTime float64) {
	s.Support()
	s.Ride()
	s.Lethal()
	s.Goal()
	s.Boundary()
}
