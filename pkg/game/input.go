package game

import (
	"errors"

	"github.com/decker502/frogger/pkg/components"
)

// ErrQuit 用户请求退出（关闭窗口、Esc、结束画面播放完毕）
// 前端把它映射为各自的正常退出方式，例如 ebiten.Termination
var ErrQuit = errors.New("quit requested")

// Direction 方向键
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions 按处理顺序列出四个方向：上、下、左、右
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Orientation 方向键对应的青蛙朝向
func (d Direction) Orientation() components.Orientation {
	switch d {
	case DirDown:
		return components.FacingDown
	case DirLeft:
		return components.FacingLeft
	case DirRight:
		return components.FacingRight
	}
	return components.FacingUp
}

func (d Direction) String() string {
	return d.Orientation().String()
}

// InputFrame 一个逻辑帧内的输入
type InputFrame struct {
	// Held 本帧按住的方向，每个方向移动一格（可叠加）
	Held [4]bool
	// Pressed 本帧新按下的方向（边沿），用于计分和触发动画
	Pressed [4]bool
	// Quit 退出请求
	Quit bool
}

// Hold 标记某方向按住
func (f *InputFrame) Hold(d Direction) { f.Held[d] = true }

// Press 标记某方向按下（同时视为按住）
func (f *InputFrame) Press(d Direction) {
	f.Pressed[d] = true
	f.Held[d] = true
}

// Empty 没有任何方向输入
func (f InputFrame) Empty() bool {
	for _, d := range Directions {
		if f.Held[d] || f.Pressed[d] {
			return false
		}
	}
	return true
}

// InputSource 每帧非阻塞地提供一次输入
type InputSource interface {
	Poll() InputFrame
}
