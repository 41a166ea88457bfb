package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"

	"github.com/decker502/frogger/pkg/game"
)

// EndScene 一局结束后的画面
//
// 失败：死亡青蛙停留 LoseDelay 秒，然后黑屏显示 "You Lose!" 和最终分数；
// 胜利：在地图上叠加 "You Win!" 和最终分数。
// 横幅停留 BannerHold 秒后退出程序。
type EndScene struct {
	ctx    *Context
	render *RenderSystem
	seq    *game.EndSequence

	// quitPressed 检测提前退出按键
	quitPressed func() bool
}

// NewEndScene 创建结束画面
func NewEndScene(ctx *Context, render *RenderSystem, outcome game.RoundOutcome) *EndScene {
	ctx.Logger.Info().
		Stringer("outcome", outcome).
		Int("score", ctx.Simulation.State().Score).
		Msg("round over")
	return &EndScene{
		ctx:    ctx,
		render: render,
		seq:    game.NewEndSequence(outcome, ctx.Config.EndScreen),
		quitPressed: func() bool {
			return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
		},
	}
}

// Name 场景名称
func (s *EndScene) Name() string { return "end" }

// Phase 当前阶段
func (s *EndScene) Phase() game.EndPhase {
	return s.seq.Phase()
}

// Update 计时，播放完毕后请求退出
func (s *EndScene) Update(deltaTime float64) {
	if s.quitPressed() {
		s.ctx.Scenes.RequestQuit()
		return
	}
	if s.seq.Advance(deltaTime) == game.EndPhaseDone {
		s.ctx.Scenes.RequestQuit()
	}
}

// Draw 按阶段绘制
func (s *EndScene) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	// 失败横幅使用纯黑背景，其余阶段保留地图
	won := s.seq.Outcome() == game.RoundWon
	if won || s.Phase() == game.EndPhaseDeadFrog {
		s.render.Draw(screen)
		s.render.DrawHUD(screen)
	}
	if s.Phase() == game.EndPhaseDeadFrog {
		return
	}

	clr := colornames.Red
	if won {
		clr = colornames.Gold
	}

	font := s.ctx.Resources.Font()
	cx := s.ctx.Config.Map.Width / 2
	cy := s.ctx.Config.Map.Height / 2
	DrawText(screen, font, s.seq.Title(), cx, cy-40, 6, clr, text.AlignCenter, text.AlignCenter)
	DrawText(screen, font, fmt.Sprintf("Your final score is %d", s.ctx.Simulation.State().Score),
		cx, cy+40, 3, colornames.White, text.AlignCenter, text.AlignCenter)
}
