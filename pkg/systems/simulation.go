package systems

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/decker502/frogger/pkg/config"
	"github.com/decker502/frogger/pkg/entities"
	"github.com/decker502/frogger/pkg/game"
)

// Simulation 驱动一局游戏的逻辑帧
//
// 与渲染无关：Ebitengine 场景和终端前端都只调用 Step 并读取 World。
type Simulation struct {
	world *game.World

	animation *AnimationSystem
	input     *InputSystem
	obstacles *ObstacleSystem
	collision *CollisionSystem

	logger zerolog.Logger
	steps  int
}

// NewSimulation 生成地图并在出生点放置青蛙
//
// 参数:
//   - cfg: 已校验的游戏配置
//   - rng: 地图生成用的随机数源
//   - logger: 日志
//
// 返回:
//   - error: 地图生成失败（ErrPlacementExhausted）时返回
func NewSimulation(cfg *config.GameConfig, rng *rand.Rand, logger zerolog.Logger) (*Simulation, error) {
	w := game.NewWorld(cfg)
	if err := NewLaneGenerator(w, rng, logger).Generate(); err != nil {
		return nil, fmt.Errorf("failed to generate map: %w", err)
	}
	entities.NewPlayer(w)
	return NewSimulationForWorld(w, logger), nil
}

// NewSimulationForWorld 在已搭好的世界上运行模拟（测试中手工布置场景）
// w.Player 必须已经创建
func NewSimulationForWorld(w *game.World, logger zerolog.Logger) *Simulation {
	animation := NewAnimationSystem(w.EntityManager)
	return &Simulation{
		world:     w,
		animation: animation,
		input:     NewInputSystem(w, animation, logger),
		obstacles: NewObstacleSystem(w),
		collision: NewCollisionSystem(w, logger),
		logger:    logger,
	}
}

// World 当前世界
func (s *Simulation) World() *game.World {
	return s.world
}

// State 分数与胜负
func (s *Simulation) State() *game.GameState {
	return s.world.State
}

// Steps 已执行的逻辑帧数
func (s *Simulation) Steps() int {
	return s.steps
}

// Step 执行一个逻辑帧
//
// 顺序: 动画步数 -> 输入 -> 障碍物移动 -> 碰撞判定 -> 动画换帧。
// 本局已结束时不做任何事。
//
// 参数:
//   - in: 本帧输入
//   - deltaTime: 距上一帧的时间（秒）
//
// 返回:
//   - game.RoundOutcome: 本帧之后的结果
func (s *Simulation) Step(in game.InputFrame, deltaTime float64) game.RoundOutcome {
	state := s.world.State
	if state.IsTerminal() {
		return state.Outcome
	}
	s.steps++

	s.animation.BeginStep()
	s.input.Apply(in)
	s.obstacles.Update(deltaTime)
	s.collision.Update(deltaTime)

	if state.Lost() {
		if pc := s.world.PlayerComponent(); pc != nil {
			pc.Dead = true
		}
	}

	s.animation.Update(deltaTime)

	if state.IsTerminal() {
		s.logger.Debug().
			Stringer("outcome", state.Outcome).
			Int("score", state.Score).
			Int("steps", s.steps).
			Msg("round finished")
	}
	return state.Outcome
}
