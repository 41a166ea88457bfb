package game

import (
	"github.com/decker502/frogger/pkg/components"
	"github.com/decker502/frogger/pkg/config"
	"github.com/decker502/frogger/pkg/ecs"
)

// renderOrder 绘制顺序（自底向上）
var renderOrder = []components.ActorKind{
	components.KindGrass,
	components.KindWater,
	components.KindRoad,
	components.KindVehicle,
	components.KindLog,
	components.KindBrush,
	components.KindGoal,
	components.KindPlayer,
}

// World 一局游戏的全部状态（应用上下文）
//
// 由模拟层独占：地图、所有实体、分数和胜负都挂在这里，
// 没有任何包级全局变量。World 不持有图像资源，渲染端按 SpriteComponent 查表。
type World struct {
	Config        *config.GameConfig
	EntityManager *ecs.EntityManager
	Map           Map
	State         *GameState
	Player        ecs.EntityID

	byKind map[components.ActorKind][]ecs.EntityID
}

// NewWorld 创建空世界，地图和玩家由生成器填充
func NewWorld(cfg *config.GameConfig) *World {
	return &World{
		Config:        cfg,
		EntityManager: ecs.NewEntityManager(),
		State:         NewGameState(cfg.Score.Initial),
		byKind:        make(map[components.ActorKind][]ecs.EntityID),
	}
}

// Track 按种类登记实体
func (w *World) Track(kind components.ActorKind, id ecs.EntityID) {
	w.byKind[kind] = append(w.byKind[kind], id)
}

// OfKind 返回某种类的全部实体（按生成顺序）
func (w *World) OfKind(kind components.ActorKind) []ecs.EntityID {
	return w.byKind[kind]
}

// PlayerRect 玩家包围盒
func (w *World) PlayerRect() Rect {
	r, _ := RectOf(w.EntityManager, w.Player)
	return r
}

// PlayerComponent 玩家专属组件
func (w *World) PlayerComponent() *components.PlayerComponent {
	pc, _ := ecs.GetComponent[*components.PlayerComponent](w.EntityManager, w.Player)
	return pc
}

// Actors 按绘制顺序返回所有实体的快照
func (w *World) Actors() []ActorView {
	views := make([]ActorView, 0, w.EntityManager.Count())
	for _, kind := range renderOrder {
		for _, id := range w.byKind[kind] {
			if v, ok := w.View(id); ok {
				views = append(views, v)
			}
		}
	}
	return views
}

// View 构造单个实体的快照
func (w *World) View(id ecs.EntityID) (ActorView, bool) {
	em := w.EntityManager
	actor, ok := ecs.GetComponent[*components.ActorComponent](em, id)
	if !ok {
		return ActorView{}, false
	}
	r, ok := RectOf(em, id)
	if !ok {
		return ActorView{}, false
	}

	v := ActorView{ID: id, Kind: actor.Kind, Lane: actor.Lane, Rect: r}
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id); ok {
		v.Speed = vel.VX
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
		v.Group = sprite.Group
		v.Variant = sprite.Variant
	}
	if anim, ok := ecs.GetComponent[*components.AnimationComponent](em, id); ok {
		v.Frame = anim.CurrentFrame
	}
	if pc, ok := ecs.GetComponent[*components.PlayerComponent](em, id); ok {
		v.Orientation = pc.Orientation
		if pc.Dead {
			v.Group = components.SpriteDeadFrog
			v.Variant = 0
			v.Frame = 0
		}
	}
	return v, true
}
