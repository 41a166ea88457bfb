package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/frogger/pkg/components"
	"github.com/decker502/frogger/pkg/config"
	"github.com/decker502/frogger/pkg/entities"
	"github.com/decker502/frogger/pkg/game"
)

func newTestWorld(t *testing.T) *game.World {
	t.Helper()
	w := game.NewWorld(config.Default())
	entities.NewPlayer(w)
	return w
}

func TestComposeSize(t *testing.T) {
	g := Compose(newTestWorld(t))
	assert.Equal(t, 60, g.Width)
	assert.Equal(t, 30, g.Height)
	assert.Nil(t, g.At(60, 0))
	assert.Nil(t, g.At(0, -1))
}

func TestComposePlayer(t *testing.T) {
	w := newTestWorld(t)

	g := Compose(w)
	c := g.At(30, 29)
	require.NotNil(t, c)
	assert.Equal(t, '@', c.Rune)

	w.PlayerComponent().Dead = true
	assert.Equal(t, 'X', Compose(w).At(30, 29).Rune)
}

func TestComposeTerrainAndObstacles(t *testing.T) {
	w := newTestWorld(t)
	cfg := w.Config

	entities.NewTerrainTile(w, components.KindGrass, 0, 0, cfg.LaneTop(0))
	entities.NewTerrainTile(w, components.KindWater, 3, 0, cfg.LaneTop(3))
	entities.NewLog(w, 3, 0, game.Rect{X: 0, Y: cfg.LaneTop(3) + 1, W: 45, H: 28}, 2)
	entities.NewVehicle(w, 1, 0, game.Rect{X: 300, Y: cfg.LaneTop(1) + 1, W: 30, H: 28}, 4)

	g := Compose(w)

	grass := g.At(1, 29)
	assert.Equal(t, colorGrass, grass.Bg)
	assert.Equal(t, ' ', grass.Rune)

	// 木头占 45 像素，即 3 个字符格
	for x := 0; x < 3; x++ {
		assert.Equal(t, '=', g.At(x, 26).Rune, "log cell %d", x)
		assert.Equal(t, colorLog, g.At(x, 26).Bg)
	}
	assert.Equal(t, ' ', g.At(3, 26).Rune)

	car := g.At(20, 28)
	assert.Equal(t, '#', car.Rune)
	assert.Equal(t, colorVehicle, car.Fg)
	assert.Equal(t, '#', g.At(21, 28).Rune)
	assert.Equal(t, ' ', g.At(22, 28).Rune)
}

func TestComposeClipsOffscreenObstacle(t *testing.T) {
	w := newTestWorld(t)
	entities.NewVehicle(w, 1, 0, game.Rect{X: -112, Y: w.Config.LaneTop(1) + 1, W: 112, H: 28}, 4)

	g := Compose(w)
	assert.Equal(t, ' ', g.At(0, 28).Rune)
	assert.Equal(t, tcell.ColorBlack, g.At(0, 28).Bg)
}
