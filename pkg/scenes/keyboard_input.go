package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/frogger/pkg/game"
)

var arrowKeys = [...]ebiten.Key{
	game.DirUp:    ebiten.KeyArrowUp,
	game.DirDown:  ebiten.KeyArrowDown,
	game.DirLeft:  ebiten.KeyArrowLeft,
	game.DirRight: ebiten.KeyArrowRight,
}

// KeyboardInput 从 Ebitengine 读取方向键
type KeyboardInput struct{}

// Poll 实现 game.InputSource
func (KeyboardInput) Poll() game.InputFrame {
	var justPressed, held [4]bool
	for _, d := range game.Directions {
		justPressed[d] = inpututil.IsKeyJustPressed(arrowKeys[d])
		held[d] = ebiten.IsKeyPressed(arrowKeys[d])
	}
	return frameFromKeys(justPressed, held, inpututil.IsKeyJustPressed(ebiten.KeyEscape))
}

// frameFromKeys 只有本帧出现新按键时才上报按住的方向，
// 因此一次按键只移动一格，长按不会连续移动。
func frameFromKeys(justPressed, held [4]bool, quit bool) game.InputFrame {
	f := game.InputFrame{Quit: quit}

	edge := false
	for _, d := range game.Directions {
		if justPressed[d] {
			f.Press(d)
			edge = true
		}
	}
	if !edge {
		return f
	}
	for _, d := range game.Directions {
		if held[d] {
			f.Hold(d)
		}
	}
	return f
}
