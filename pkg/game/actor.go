package game

import (
	"github.com/decker502/frogger/pkg/components"
	"github.com/decker502/frogger/pkg/ecs"
)

// ActorView 交给渲染端的实体快照
//
// 渲染端（ebiten 或终端）只读这个结构，不接触 ECS 组件。
type ActorView struct {
	ID    ecs.EntityID
	Kind  components.ActorKind
	Lane  int
	Rect  Rect
	Speed float64

	Group       components.SpriteGroup
	Variant     int
	Frame       int
	Orientation components.Orientation
}
