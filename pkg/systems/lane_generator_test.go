package systems

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/frogger/pkg/components"
	"github.com/decker502/frogger/pkg/config"
	"github.com/decker502/frogger/pkg/ecs"
	"github.com/decker502/frogger/pkg/game"
)

func generateTestMap(t *testing.T, seed int64) *game.World {
	t.Helper()
	w := game.NewWorld(config.Default())
	err := NewLaneGenerator(w, rand.New(rand.NewSource(seed)), zerolog.Nop()).Generate()
	require.NoError(t, err)
	return w
}

func TestRoadBand(t *testing.T) {
	assert.Equal(t, 10, roadBand(30))
	assert.Equal(t, 4, roadBand(10))
	assert.Equal(t, 1, roadBand(2))
	assert.Equal(t, 3, roadBand(7))
}

// 地形规则在多个种子下都成立
func TestGenerateLaneLayout(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		w := generateTestMap(t, seed)
		cfg := w.Config
		count := cfg.LaneCount()
		require.Equal(t, count, w.Map.LaneCount())

		assert.Equal(t, game.TerrainGrass, w.Map.Lane(0).Terrain, "seed %d: bottom lane must be grass", seed)
		assert.Equal(t, game.TerrainGoal, w.Map.Lane(count-1).Terrain, "seed %d: top lane must be the goal row", seed)

		for n := 1; n < count-1; n++ {
			lane := w.Map.Lane(n)
			assert.Equal(t, n, lane.Index)
			assert.Equal(t, cfg.LaneTop(n), lane.Y)
			assert.Len(t, lane.Tiles, cfg.Columns())

			if n < roadBand(count) {
				assert.NotEqual(t, game.TerrainWater, lane.Terrain, "seed %d lane %d: water below the road band", seed, n)
			} else {
				assert.NotEqual(t, game.TerrainRoad, lane.Terrain, "seed %d lane %d: road above the road band", seed, n)
			}
			assert.NotEqual(t, game.TerrainGoal, lane.Terrain)
		}
	}
}

// 底部草地、顶部终点行、公路带的规则与地图尺寸无关
func TestGenerateLaneLayoutGeometries(t *testing.T) {
	tests := []struct {
		name   string
		height float64
		tile   float64
		lanes  int
	}{
		{"600/30", 600, 30, 20},
		{"95/30", 95, 30, 3},
		{"900/45", 900, 45, 20},
		{"两条车道", 60, 30, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(1); seed <= 10; seed++ {
				cfg := config.Default()
				cfg.Map.Height, cfg.Map.TileSize = tt.height, tt.tile
				require.NoError(t, cfg.Validate())

				w := game.NewWorld(cfg)
				require.NoError(t, NewLaneGenerator(w, rand.New(rand.NewSource(seed)), zerolog.Nop()).Generate())

				count := w.Map.LaneCount()
				require.Equal(t, tt.lanes, count)
				assert.Equal(t, game.TerrainGrass, w.Map.Lane(0).Terrain, "seed %d", seed)
				assert.Equal(t, game.TerrainGoal, w.Map.Lane(count-1).Terrain, "seed %d", seed)
				assert.Equal(t, cfg.LaneTop(count-1), w.Map.Lane(count-1).Y)

				for n := 1; n < count-1; n++ {
					lane := w.Map.Lane(n)
					assert.Len(t, lane.Tiles, cfg.Columns())
					if n < roadBand(count) {
						assert.NotEqual(t, game.TerrainWater, lane.Terrain, "seed %d lane %d", seed, n)
					} else {
						assert.NotEqual(t, game.TerrainRoad, lane.Terrain, "seed %d lane %d", seed, n)
					}
				}
			}
		})
	}
}

func TestGenerateTilesCoverLanes(t *testing.T) {
	w := generateTestMap(t, 7)
	em := w.EntityManager
	tile := w.Config.Map.TileSize

	for _, lane := range w.Map.Lanes {
		for col, id := range lane.Tiles {
			r, ok := game.RectOf(em, id)
			require.True(t, ok)
			assert.Equal(t, float64(col)*tile, r.X)
			assert.Equal(t, lane.Y, r.Y)
			assert.Equal(t, tile, r.W)

			actor, _ := ecs.GetComponent[*components.ActorComponent](em, id)
			assert.Equal(t, lane.Index, actor.Lane)
		}
	}
}

func TestGenerateObstacles(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		w := generateTestMap(t, seed)
		cfg := w.Config
		em := w.EntityManager

		for _, lane := range w.Map.Lanes {
			switch lane.Terrain {
			case game.TerrainRoad:
				assert.Len(t, lane.Obstacles, cfg.Vehicles.PerLane)
			case game.TerrainWater:
				assert.Len(t, lane.Obstacles, cfg.Logs.PerLane)
			default:
				assert.Empty(t, lane.Obstacles, "seed %d lane %d (%s) should have no obstacles", seed, lane.Index, lane.Terrain)
			}

			rects := make([]game.Rect, 0, len(lane.Obstacles))
			for i, id := range lane.Obstacles {
				r, ok := game.RectOf(em, id)
				require.True(t, ok)
				// 垂直居中：30 像素车道里 28 像素高的障碍物
				assert.Equal(t, lane.Y+1, r.Y)
				cx := r.CenterX()
				assert.True(t, cx >= 0 && cx <= cfg.Map.Width, "centre %v out of range", cx)

				vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
				if lane.Terrain == game.TerrainRoad {
					assert.Equal(t, cfg.Vehicles.Speed, vel.VX)
				} else if i == 0 {
					assert.Equal(t, cfg.Logs.Speed, vel.VX)
				} else {
					assert.Contains(t, []float64{2, 3}, vel.VX)
				}
				rects = append(rects, r)
			}

			// 同一车道的障碍物互不重叠
			for i := range rects {
				for j := i + 1; j < len(rects); j++ {
					assert.False(t, rects[i].Intersects(rects[j]),
						"seed %d lane %d: obstacles %d and %d overlap", seed, lane.Index, i, j)
				}
			}
		}
	}
}

func TestGenerateGoalRow(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		w := generateTestMap(t, seed)
		top := w.Map.Lane(w.Map.LaneCount() - 1)

		goals := 0
		for _, id := range top.Tiles {
			actor, _ := ecs.GetComponent[*components.ActorComponent](w.EntityManager, id)
			require.Contains(t, []components.ActorKind{components.KindBrush, components.KindGoal}, actor.Kind)
			if actor.Kind == components.KindGoal {
				goals++
			}
		}
		assert.GreaterOrEqual(t, goals, 1, "seed %d: goal row without lily pad", seed)
		assert.Len(t, w.OfKind(components.KindGoal), goals)
	}
}

func TestEnsureGoal(t *testing.T) {
	w := game.NewWorld(config.Default())
	g := NewLaneGenerator(w, rand.New(rand.NewSource(1)), zerolog.Nop())
	brush := w.Config.Sprites.Brush

	t.Run("全是灌木时补一个荷叶", func(t *testing.T) {
		variants := []int{1, 2, 3, 1, 2, 3}
		g.ensureGoal(variants)

		goals := 0
		for _, v := range variants {
			if brush[v].Goal {
				goals++
			}
		}
		assert.Equal(t, 1, goals)
	})

	t.Run("已有荷叶时不改动", func(t *testing.T) {
		variants := []int{1, 0, 3}
		g.ensureGoal(variants)
		assert.Equal(t, []int{1, 0, 3}, variants)
	})
}

func TestGenerateDeterministic(t *testing.T) {
	a := generateTestMap(t, 99)
	b := generateTestMap(t, 99)
	assert.Equal(t, a.Actors(), b.Actors())

	c := generateTestMap(t, 100)
	assert.NotEqual(t, a.Actors(), c.Actors())
}

func TestPlacementExhausted(t *testing.T) {
	cfg := config.Default()
	// 20 辆 56 像素宽的车放不进 900 像素宽的车道
	cfg.Vehicles.PerLane = 20
	cfg.Placement.MaxRetries = 50

	w := game.NewWorld(cfg)
	g := NewLaneGenerator(w, rand.New(rand.NewSource(3)), zerolog.Nop())
	lane := game.Lane{Index: 1, Y: cfg.LaneTop(1), Terrain: game.TerrainRoad}

	err := g.placeVehicles(&lane)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPlacementExhausted))
	assert.Less(t, len(lane.Obstacles), 20)
}
