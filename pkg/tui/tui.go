// Package tui 基于 tcell 的终端前端
//
// 与 Ebitengine 前端共用同一个 Simulation：每个 tick 排空事件通道、推进一步、重绘。
// 每个格子画成两列一行的字符，底部一行显示分数。
package tui

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/colornames"

	"github.com/decker502/frogger/pkg/config"
	"github.com/decker502/frogger/pkg/game"
	"github.com/decker502/frogger/pkg/systems"
)

// Frontend 终端前端
type Frontend struct {
	screen tcell.Screen
	sim    *systems.Simulation
	cfg    *config.GameConfig
	input  *KeyInput
	logger zerolog.Logger
}

// New 创建终端前端，screen 由调用方 Init 和 Fini
func New(screen tcell.Screen, sim *systems.Simulation, cfg *config.GameConfig, logger zerolog.Logger) *Frontend {
	return &Frontend{
		screen: screen,
		sim:    sim,
		cfg:    cfg,
		input:  &KeyInput{},
		logger: logger,
	}
}

// pump 把 PollEvent 读到的事件转发到 events，done 关闭后不再阻塞发送
func (f *Frontend) pump(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			// Fini 之后 PollEvent 返回 nil
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Run 运行到本局结束画面播放完毕、收到退出键或 ctx 取消
//
// 用户主动退出时返回 game.ErrQuit。
func (f *Frontend) Run(ctx context.Context) error {
	f.screen.HideCursor()
	f.screen.Clear()

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go f.pump(events, done)

	tick := time.NewTicker(time.Second / config.TicksPerSecond)
	defer tick.Stop()

	deltaTime := 1.0 / float64(config.TicksPerSecond)
	var end *game.EndSequence

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
		}

		f.drain(events)
		in := f.input.Poll()
		if in.Quit {
			f.logger.Info().Msg("quit requested")
			return game.ErrQuit
		}

		if end == nil {
			if outcome := f.sim.Step(in, deltaTime); outcome != game.RoundPlaying {
				f.logger.Info().
					Stringer("outcome", outcome).
					Int("score", f.sim.State().Score).
					Int("steps", f.sim.Steps()).
					Msg("round over")
				end = game.NewEndSequence(outcome, f.cfg.EndScreen)
			}
		} else if end.Advance(deltaTime) == game.EndPhaseDone {
			return nil
		}

		f.Draw(end)
	}
}

// drain 非阻塞地取出通道里所有事件
func (f *Frontend) drain(events <-chan tcell.Event) {
	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventKey:
				f.input.Feed(e)
			case *tcell.EventResize:
				f.screen.Sync()
			}
		default:
			return
		}
	}
}

// Draw 绘制一帧，end 为 nil 表示本局仍在进行
func (f *Frontend) Draw(end *game.EndSequence) {
	f.screen.Clear()
	grid := Compose(f.sim.World())

	showMap := end == nil || end.Outcome() == game.RoundWon || end.Phase() == game.EndPhaseDeadFrog
	if showMap {
		for y := 0; y < grid.Height; y++ {
			for x := 0; x < grid.Width; x++ {
				c := grid.At(x, y)
				f.screen.SetContent(x, y, c.Rune, nil, tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg))
			}
		}
	}

	status := tcell.StyleDefault.Foreground(colorText)
	drawText(f.screen, 0, grid.Height, fmt.Sprintf("Score  %d", f.sim.State().Score), status)

	if end != nil && end.Phase() != game.EndPhaseDeadFrog {
		title := tcell.StyleDefault.Foreground(tcell.FromImageColor(bannerColor(end.Outcome()))).Bold(true)
		cx, cy := grid.Width/2, grid.Height/2
		drawCentered(f.screen, cx, cy-1, end.Title(), title)
		drawCentered(f.screen, cx, cy+1, fmt.Sprintf("Your final score is %d", f.sim.State().Score), status)
	}
	f.screen.Show()
}

func bannerColor(outcome game.RoundOutcome) color.Color {
	if outcome == game.RoundWon {
		return colornames.Gold
	}
	return colornames.Red
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

func drawCentered(s tcell.Screen, cx, cy int, text string, st tcell.Style) {
	x := cx - len([]rune(text))/2
	drawText(s, x, cy, text, st)
}
