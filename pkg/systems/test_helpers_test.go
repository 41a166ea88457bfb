package systems

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/decker502/frogger/pkg/components"
	"github.com/decker502/frogger/pkg/config"
	"github.com/decker502/frogger/pkg/ecs"
	"github.com/decker502/frogger/pkg/entities"
	"github.com/decker502/frogger/pkg/game"
)

// testDeltaTime 60 Hz 下的一帧
const testDeltaTime = 1.0 / config.TicksPerSecond

// newTestWorld 创建没有任何地形的空世界，测试按需布置车道
func newTestWorld(t *testing.T) *game.World {
	t.Helper()
	return game.NewWorld(config.Default())
}

// fillTestLane 用一种地形铺满第 n 条车道
func fillTestLane(w *game.World, n int, kind components.ActorKind) {
	y := w.Config.LaneTop(n)
	for col := 0; col < w.Config.Columns(); col++ {
		entities.NewTerrainTile(w, kind, n, float64(col)*w.Config.Map.TileSize, y)
	}
}

// addTestLog 在第 n 条车道放一根木头，x 为左边缘
func addTestLog(w *game.World, n int, x, width, speed float64) ecs.EntityID {
	r := game.Rect{X: x, Y: w.Config.LaneTop(n) + 1, W: width, H: w.Config.Logs.Height}
	return entities.NewLog(w, n, 0, r, speed)
}

// addTestVehicle 在第 n 条车道放一辆车，x 为左边缘
func addTestVehicle(w *game.World, n int, x, width, speed float64) ecs.EntityID {
	r := game.Rect{X: x, Y: w.Config.LaneTop(n) + 1, W: width, H: w.Config.Vehicles.Height}
	return entities.NewVehicle(w, n, 0, r, speed)
}

// newTestSimulation 放置青蛙并创建模拟
func newTestSimulation(t *testing.T, w *game.World) *Simulation {
	t.Helper()
	entities.NewPlayer(w)
	return NewSimulationForWorld(w, zerolog.Nop())
}

func pressed(dirs ...game.Direction) game.InputFrame {
	var f game.InputFrame
	for _, d := range dirs {
		f.Press(d)
	}
	return f
}

func playerPos(t *testing.T, w *game.World) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.EntityManager, w.Player)
	if !ok {
		t.Fatal("player has no position")
	}
	return pos
}
