package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/decker502/frogger/pkg/game"
)

// KeyInput 把两个 tick 之间收到的 tcell 按键事件合并成一帧输入
//
// 终端没有"按住"的概念，每个方向键事件算一次按下，移动一格。
type KeyInput struct {
	pending game.InputFrame
}

// Feed 记录一个按键事件
func (k *KeyInput) Feed(ev *tcell.EventKey) {
	if isQuitKey(ev) {
		k.pending.Quit = true
		return
	}
	if d, ok := directionOf(ev.Key()); ok {
		k.pending.Press(d)
	}
}

// Poll 取出累积的输入并清空
func (k *KeyInput) Poll() game.InputFrame {
	f := k.pending
	k.pending = game.InputFrame{}
	return f
}

func directionOf(key tcell.Key) (game.Direction, bool) {
	switch key {
	case tcell.KeyUp:
		return game.DirUp, true
	case tcell.KeyDown:
		return game.DirDown, true
	case tcell.KeyLeft:
		return game.DirLeft, true
	case tcell.KeyRight:
		return game.DirRight, true
	}
	return 0, false
}

// isQuitKey Esc、Ctrl-C 或 q
func isQuitKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}
	r := ev.Rune()
	return r == 'q' || r == 'Q'
}
