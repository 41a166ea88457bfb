package systems

import (
	"github.com/rs/zerolog"

	"github.com/decker502/frogger/pkg/components"
	"github.com/decker502/frogger/pkg/ecs"
	"github.com/decker502/frogger/pkg/game"
)

// InputSystem 把一帧输入应用到青蛙身上
//
// 按住的方向按 上、下、左、右 的顺序各移动一格，朝向取最后一个生效的方向；
// 新按下的方向负责计分（上 +10、下 -10）并触发跳跃动画。
// 左右只改变朝向和位置，从不影响分数。
type InputSystem struct {
	world     *game.World
	animation *AnimationSystem
	logger    zerolog.Logger
}

// NewInputSystem 创建输入系统
func NewInputSystem(w *game.World, animation *AnimationSystem, logger zerolog.Logger) *InputSystem {
	return &InputSystem{
		world:     w,
		animation: animation,
		logger:    logger,
	}
}

// Apply 处理一帧输入
func (s *InputSystem) Apply(in game.InputFrame) {
	if in.Empty() {
		return
	}
	w := s.world
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.EntityManager, w.Player)
	if !ok {
		return
	}
	pc := w.PlayerComponent()
	step := w.Config.Player.MoveDistance

	for _, d := range game.Directions {
		if !in.Held[d] {
			continue
		}
		switch d {
		case game.DirUp:
			pos.Y -= step
		case game.DirDown:
			pos.Y += step
		case game.DirLeft:
			pos.X -= step
		case game.DirRight:
			pos.X += step
		}
		if pc != nil {
			pc.Orientation = d.Orientation()
		}
	}

	for _, d := range game.Directions {
		if !in.Pressed[d] {
			continue
		}
		switch d {
		case game.DirUp:
			w.State.AddScore(w.Config.Score.UpDelta)
		case game.DirDown:
			w.State.AddScore(w.Config.Score.DownDelta)
		}
		s.animation.Trigger(w.Player)
		s.logger.Debug().
			Stringer("dir", d).
			Int("score", w.State.Score).
			Float64("x", pos.X).
			Float64("y", pos.Y).
			Msg("hop")
	}
}
