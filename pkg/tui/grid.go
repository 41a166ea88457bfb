package tui

import (
	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/colornames"

	"github.com/decker502/frogger/pkg/components"
	"github.com/decker502/frogger/pkg/game"
	"github.com/decker502/frogger/pkg/utils"
)

// cellsPerTile 每个格子占两列终端字符，一行高
const cellsPerTile = 2

// Cell 一个终端字符格
type Cell struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
}

// Grid 地图的字符画，第 0 行在屏幕顶端
type Grid struct {
	Width  int
	Height int
	Cells  []Cell
}

var (
	colorGrass   = tcell.FromImageColor(colornames.Forestgreen)
	colorRoad    = tcell.FromImageColor(colornames.Dimgray)
	colorWater   = tcell.FromImageColor(colornames.Royalblue)
	colorLog     = tcell.FromImageColor(colornames.Saddlebrown)
	colorVehicle = tcell.FromImageColor(colornames.Red)
	colorBrush   = tcell.FromImageColor(colornames.Darkolivegreen)
	colorGoal    = tcell.FromImageColor(colornames.Limegreen)
	colorFrog    = tcell.FromImageColor(colornames.Yellow)
	colorText    = tcell.FromImageColor(colornames.White)
)

// NewGrid 创建空白字符画
func NewGrid(width, height int) *Grid {
	g := &Grid{Width: width, Height: height, Cells: make([]Cell, width*height)}
	for i := range g.Cells {
		g.Cells[i] = Cell{Rune: ' ', Fg: colorText, Bg: tcell.ColorBlack}
	}
	return g
}

// At 返回 (x, y) 处的字符格，越界时返回 nil
func (g *Grid) At(x, y int) *Cell {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return nil
	}
	return &g.Cells[y*g.Width+x]
}

// fill 用 fn 修改 [x0, x1) 范围的字符格
func (g *Grid) fill(x0, x1, y int, fn func(c *Cell)) {
	for x := x0; x < x1; x++ {
		if c := g.At(x, y); c != nil {
			fn(c)
		}
	}
}

// Compose 把世界按绘制顺序画成字符画
func Compose(w *game.World) *Grid {
	tile := w.Config.Map.TileSize
	cellWidth := tile / cellsPerTile
	g := NewGrid(w.Config.Columns()*cellsPerTile, w.Config.LaneCount())

	for _, v := range w.Actors() {
		r := v.Rect
		_, row := utils.CellOf(r.X, r.Y+r.H/2, cellWidth, tile)
		x0, x1 := utils.CellSpan(r.X, r.Right(), cellWidth)

		switch v.Kind {
		case components.KindGrass:
			g.fill(x0, x1, row, background(colorGrass))
		case components.KindRoad:
			g.fill(x0, x1, row, background(colorRoad))
		case components.KindWater:
			g.fill(x0, x1, row, background(colorWater))
		case components.KindVehicle:
			g.fill(x0, x1, row, glyph('#', colorVehicle))
		case components.KindLog:
			g.fill(x0, x1, row, func(c *Cell) {
				c.Rune, c.Fg, c.Bg = '=', colorText, colorLog
			})
		case components.KindBrush:
			g.fill(x0, x1, row, func(c *Cell) {
				c.Rune, c.Fg, c.Bg = '*', colorGoal, colorBrush
			})
		case components.KindGoal:
			g.fill(x0, x1, row, func(c *Cell) {
				c.Rune, c.Fg, c.Bg = 'O', tcell.ColorBlack, colorGoal
			})
		case components.KindPlayer:
			ch := '@'
			if v.Group == components.SpriteDeadFrog {
				ch = 'X'
			}
			x, _ := utils.CellOf(r.CenterX(), 0, cellWidth, tile)
			g.fill(x, x+1, row, glyph(ch, colorFrog))
		}
	}
	return g
}

func background(bg tcell.Color) func(c *Cell) {
	return func(c *Cell) { c.Bg = bg }
}

// glyph 保留底色，只替换字符
func glyph(ch rune, fg tcell.Color) func(c *Cell) {
	return func(c *Cell) { c.Rune, c.Fg = ch, fg }
}
