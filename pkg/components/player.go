package components

import "github.com/decker502/frogger/pkg/ecs"

// Orientation 青蛙朝向
type Orientation int

const (
	FacingUp Orientation = iota
	FacingDown
	FacingLeft
	FacingRight
)

func (o Orientation) String() string {
	switch o {
	case FacingUp:
		return "up"
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	}
	return "unknown"
}

// PlayerComponent 玩家专属状态
type PlayerComponent struct {
	Orientation Orientation
	// Riding 本帧承载玩家的木头；每帧重新计算，ecs.InvalidEntity 表示不在木头上
	Riding ecs.EntityID
	// Dead 失败后切换为死亡图片
	Dead bool
}
