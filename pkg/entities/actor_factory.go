package entities

import (
	"github.com/decker502/frogger/pkg/components"
	"github.com/decker502/frogger/pkg/config"
	"github.com/decker502/frogger/pkg/ecs"
	"github.com/decker502/frogger/pkg/game"
)

// newActor 创建带公共组件的实体并登记到 World
func newActor(w *game.World, kind components.ActorKind, lane int, r game.Rect, speed float64,
	group components.SpriteGroup, variant int) ecs.EntityID {
	em := w.EntityManager
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.ActorComponent{Kind: kind, Lane: lane})
	ecs.AddComponent(em, id, &components.PositionComponent{X: r.X, Y: r.Y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: r.W, Height: r.H})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: speed})
	ecs.AddComponent(em, id, &components.SpriteComponent{Group: group, Variant: variant})

	w.Track(kind, id)
	return id
}

var terrainSprites = map[components.ActorKind]components.SpriteGroup{
	components.KindGrass: components.SpriteGrass,
	components.KindRoad:  components.SpriteRoad,
	components.KindWater: components.SpriteWater,
}

// NewTerrainTile 创建草地/公路/河水背景格子
//
// 参数:
//   - w: 所属世界
//   - kind: KindGrass / KindRoad / KindWater
//   - lane: 车道下标
//   - x, y: 左上角坐标
//
// 返回: 创建的实体ID
func NewTerrainTile(w *game.World, kind components.ActorKind, lane int, x, y float64) ecs.EntityID {
	size := w.Config.Map.TileSize
	return newActor(w, kind, lane, game.Rect{X: x, Y: y, W: size, H: size}, 0, terrainSprites[kind], 0)
}

// NewBrushTile 创建终点行的灌木或荷叶格子
// 荷叶变体（config 中 goal: true）的实体种类为 KindGoal
func NewBrushTile(w *game.World, lane, variant int, x, y float64) ecs.EntityID {
	kind := components.KindBrush
	if w.Config.Sprites.Brush[variant].Goal {
		kind = components.KindGoal
	}
	size := w.Config.Map.TileSize
	return newActor(w, kind, lane, game.Rect{X: x, Y: y, W: size, H: size}, 0, components.SpriteBrush, variant)
}

// ObstacleRect 计算障碍物包围盒
//
// centerX 为水平中心；障碍物在车道内垂直居中。
func ObstacleRect(cfg *config.GameConfig, laneY, centerX, width, height float64) game.Rect {
	return game.Rect{
		X: centerX - width/2,
		Y: laneY + (cfg.Map.TileSize-height)/2,
		W: width,
		H: height,
	}
}

// NewVehicle 创建车辆
func NewVehicle(w *game.World, lane, variant int, r game.Rect, speed float64) ecs.EntityID {
	return newActor(w, components.KindVehicle, lane, r, speed, components.SpriteVehicle, variant)
}

// NewLog 创建木头
func NewLog(w *game.World, lane, variant int, r game.Rect, speed float64) ecs.EntityID {
	return newActor(w, components.KindLog, lane, r, speed, components.SpriteLog, variant)
}

// NewPlayer 在出生点创建青蛙并设为 World.Player
func NewPlayer(w *game.World) ecs.EntityID {
	cfg := w.Config
	size := cfg.Player.Size
	x, y := cfg.Spawn()
	r := game.Rect{
		X: x - size/2,
		Y: y - size/2,
		W: size,
		H: size,
	}
	id := newActor(w, components.KindPlayer, -1, r, 0, components.SpriteFrog, 0)

	em := w.EntityManager
	ecs.AddComponent(em, id, &components.PlayerComponent{
		Orientation: components.FacingUp,
		Riding:      ecs.InvalidEntity,
	})
	ecs.AddComponent(em, id, &components.AnimationComponent{
		FrameCount: len(cfg.Sprites.Frog),
		FrameSpeed: cfg.Animation.FrameInterval,
		CycleSteps: cfg.Animation.CycleSteps,
	})

	w.Player = id
	return id
}
