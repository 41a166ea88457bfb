package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/decker502/frogger/pkg/game"
)

// GameScene 游戏进行中的场景
//
// 每个 tick 从 InputSource 取一帧输入推进模拟；本局分出胜负后切换到 EndScene。
type GameScene struct {
	ctx    *Context
	input  game.InputSource
	render *RenderSystem
}

// NewGameScene 创建游戏场景
//
// 参数:
//   - ctx: 共享依赖，ctx.Simulation 必须已经生成地图
//   - input: 输入来源（桌面端为 KeyboardInput）
func NewGameScene(ctx *Context, input game.InputSource) *GameScene {
	return &GameScene{
		ctx:    ctx,
		input:  input,
		render: NewRenderSystem(ctx.Simulation.World(), ctx.Sprites, ctx.Resources),
	}
}

// Name 场景名称
func (s *GameScene) Name() string { return "game" }

// Update 推进一个逻辑帧
func (s *GameScene) Update(deltaTime float64) {
	in := s.input.Poll()
	if in.Quit {
		s.ctx.Scenes.RequestQuit()
		return
	}

	outcome := s.ctx.Simulation.Step(in, deltaTime)
	if outcome != game.RoundPlaying {
		s.ctx.Scenes.SwitchTo(NewEndScene(s.ctx, s.render, outcome))
	}
}

// Draw 绘制地图、实体和分数
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	s.render.Draw(screen)
	s.render.DrawHUD(screen)
}
