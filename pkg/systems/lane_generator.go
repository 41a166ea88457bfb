package systems

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/decker502/frogger/pkg/components"
	"github.com/decker502/frogger/pkg/ecs"
	"github.com/decker502/frogger/pkg/entities"
	"github.com/decker502/frogger/pkg/game"
)

// ErrPlacementExhausted 障碍物在重试上限内找不到不重叠的位置
var ErrPlacementExhausted = errors.New("obstacle placement retries exhausted")

var terrainKinds = map[game.TerrainKind]components.ActorKind{
	game.TerrainGrass: components.KindGrass,
	game.TerrainRoad:  components.KindRoad,
	game.TerrainWater: components.KindWater,
}

// LaneGenerator 自底向上生成地图的所有车道
//
// 车道规则:
//   - 第 0 条车道固定为草地（出生点）
//   - 最后一条车道为终点行（灌木 + 荷叶）
//   - 下方 1/3 的车道在草地和公路之间随机，其余在草地和河道之间随机
//
// 所有随机数都取自注入的 *rand.Rand，相同种子生成相同地图。
type LaneGenerator struct {
	world  *game.World
	rng    *rand.Rand
	logger zerolog.Logger

	retries int // 本次生成累计的放置重试次数
}

// NewLaneGenerator 创建车道生成器
//
// 参数:
//   - w: 待填充的世界（Map 应为空）
//   - rng: 随机数源
//   - logger: 日志
func NewLaneGenerator(w *game.World, rng *rand.Rand, logger zerolog.Logger) *LaneGenerator {
	return &LaneGenerator{
		world:  w,
		rng:    rng,
		logger: logger,
	}
}

// roadBand 下方可以出现公路的车道上界（不含），即 ceil(count/3)
func roadBand(count int) int {
	return (count + 2) / 3
}

// PickTerrain 为第 n 条车道选择地形
func (g *LaneGenerator) PickTerrain(n, count int) game.TerrainKind {
	switch {
	case n == count-1:
		return game.TerrainGoal
	case n == 0:
		return game.TerrainGrass
	case n < roadBand(count):
		if g.rng.Intn(2) == 0 {
			return game.TerrainGrass
		}
		return game.TerrainRoad
	default:
		if g.rng.Intn(2) == 0 {
			return game.TerrainGrass
		}
		return game.TerrainWater
	}
}

// Generate 生成整张地图
//
// 返回:
//   - error: 某条车道的障碍物放置超过重试上限时返回 ErrPlacementExhausted
func (g *LaneGenerator) Generate() error {
	cfg := g.world.Config
	count := cfg.LaneCount()
	g.world.Map.Lanes = make([]game.Lane, 0, count)
	g.retries = 0

	for n := 0; n < count; n++ {
		lane := game.Lane{
			Index:   n,
			Y:       cfg.LaneTop(n),
			Terrain: g.PickTerrain(n, count),
		}

		var err error
		switch lane.Terrain {
		case game.TerrainGoal:
			g.fillGoalRow(&lane)
		case game.TerrainRoad:
			g.fillTiles(&lane)
			err = g.placeVehicles(&lane)
		case game.TerrainWater:
			g.fillTiles(&lane)
			err = g.placeLogs(&lane)
		default:
			g.fillTiles(&lane)
		}
		if err != nil {
			return fmt.Errorf("lane %d (%s): %w", n, lane.Terrain, err)
		}

		g.world.Map.Lanes = append(g.world.Map.Lanes, lane)
	}

	g.logger.Debug().
		Int("lanes", count).
		Int("road", g.world.Map.CountTerrain(game.TerrainRoad)).
		Int("water", g.world.Map.CountTerrain(game.TerrainWater)).
		Int("goals", len(g.world.OfKind(components.KindGoal))).
		Int("retries", g.retries).
		Msg("map generated")
	return nil
}

// fillTiles 铺满整行背景格子
func (g *LaneGenerator) fillTiles(lane *game.Lane) {
	cfg := g.world.Config
	kind := terrainKinds[lane.Terrain]
	for col := 0; col < cfg.Columns(); col++ {
		x := float64(col) * cfg.Map.TileSize
		lane.Tiles = append(lane.Tiles, entities.NewTerrainTile(g.world, kind, lane.Index, x, lane.Y))
	}
}

// fillGoalRow 终点行：每格在灌木变体中均匀随机
func (g *LaneGenerator) fillGoalRow(lane *game.Lane) {
	cfg := g.world.Config
	variants := make([]int, cfg.Columns())
	for col := range variants {
		variants[col] = g.rng.Intn(len(cfg.Sprites.Brush))
	}
	if cfg.Placement.EnsureGoal {
		g.ensureGoal(variants)
	}

	for col, v := range variants {
		x := float64(col) * cfg.Map.TileSize
		lane.Tiles = append(lane.Tiles, entities.NewBrushTile(g.world, lane.Index, v, x, lane.Y))
	}
}

// ensureGoal 整行没有荷叶时随机挑一列改为荷叶
func (g *LaneGenerator) ensureGoal(variants []int) {
	brush := g.world.Config.Sprites.Brush
	for _, v := range variants {
		if brush[v].Goal {
			return
		}
	}
	if len(variants) == 0 {
		return
	}
	col := g.rng.Intn(len(variants))
	variants[col] = g.world.Config.GoalVariant()
	g.logger.Debug().Int("column", col).Msg("goal row rolled no lily pad, forcing one")
}

// candidate 一次放置尝试
type candidate struct {
	variant int
	rect    game.Rect
	speed   float64
}

// placeVehicles 在公路上放置车辆，同一车道速度相同
func (g *LaneGenerator) placeVehicles(lane *game.Lane) error {
	cfg := g.world.Config
	return g.place(lane, cfg.Vehicles.PerLane, func(int) candidate {
		variant := g.rng.Intn(len(cfg.Sprites.Vehicles))
		width := cfg.Sprites.Vehicles[variant].Width
		return candidate{
			variant: variant,
			rect:    entities.ObstacleRect(cfg, lane.Y, g.randomCenterX(), width, cfg.Vehicles.Height),
			speed:   cfg.Vehicles.Speed,
		}
	}, entities.NewVehicle)
}

// placeLogs 在河道上放置木头
// 第一根木头使用固定速度，其余在 [SpeedMin, SpeedMax] 内取整数
func (g *LaneGenerator) placeLogs(lane *game.Lane) error {
	cfg := g.world.Config
	return g.place(lane, cfg.Logs.PerLane, func(i int) candidate {
		variant := g.rng.Intn(len(cfg.Sprites.Logs))
		width := cfg.Sprites.Logs[variant].Width
		speed := cfg.Logs.Speed
		if i > 0 {
			speed = float64(cfg.Logs.SpeedMin + g.rng.Intn(cfg.Logs.SpeedMax-cfg.Logs.SpeedMin+1))
		}
		return candidate{
			variant: variant,
			rect:    entities.ObstacleRect(cfg, lane.Y, g.randomCenterX(), width, cfg.Logs.Height),
			speed:   speed,
		}
	}, entities.NewLog)
}

// randomCenterX 水平中心在 [0, 地图宽度] 内均匀取整
func (g *LaneGenerator) randomCenterX() float64 {
	return float64(g.rng.Intn(int(g.world.Config.Map.Width) + 1))
}

type obstacleFactory func(w *game.World, lane, variant int, r game.Rect, speed float64) ecs.EntityID

// place 拒绝采样：候选与本车道已接受的障碍物重叠则重抽
func (g *LaneGenerator) place(lane *game.Lane, count int, next func(i int) candidate, create obstacleFactory) error {
	maxRetries := g.world.Config.Placement.MaxRetries
	accepted := make([]game.Rect, 0, count)

	for i := 0; i < count; i++ {
		placed := false
		for attempt := 0; attempt <= maxRetries; attempt++ {
			c := next(i)
			if overlapsAny(c.rect, accepted) {
				g.retries++
				continue
			}
			accepted = append(accepted, c.rect)
			lane.Obstacles = append(lane.Obstacles, create(g.world, lane.Index, c.variant, c.rect, c.speed))
			placed = true
			break
		}
		if !placed {
			g.logger.Warn().
				Int("lane", lane.Index).
				Int("placed", i).
				Int("wanted", count).
				Msg("obstacle placement gave up")
			return fmt.Errorf("%w: placed %d of %d after %d retries", ErrPlacementExhausted, i, count, maxRetries)
		}
	}
	return nil
}

func overlapsAny(r game.Rect, others []game.Rect) bool {
	for _, o := range others {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}
