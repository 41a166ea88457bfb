package utils

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/colornames"

	"github.com/decker502/frogger/pkg/config"
)

var (
	placeholderVehicleColors = []color.RGBA{colornames.Red, colornames.Orange, colornames.Gold, colornames.Purple, colornames.Deeppink}
	placeholderLogColors     = []color.RGBA{colornames.Saddlebrown, colornames.Sienna, colornames.Peru}
)

// PlaceholderSheet 按坐标表生成一张占位图集
//
// 背景为黑色（精灵切片时的透明色），每个矩形填充一种颜色并留 1 像素黑边，
// 没有原版美术资源时也能运行游戏。
func PlaceholderSheet(table config.SpriteTable) *image.NRGBA {
	bounds := image.Rectangle{}
	each := func(fn func(r config.SpriteRect, c color.Color)) {
		for _, r := range table.Frog {
			fn(r, colornames.Limegreen)
		}
		fn(table.DeadFrog, colornames.Crimson)
		fn(table.Grass, colornames.Forestgreen)
		fn(table.Water, colornames.Royalblue)
		fn(table.Road, colornames.Dimgray)
		for i, v := range table.Vehicles {
			fn(v.Rect, placeholderVehicleColors[i%len(placeholderVehicleColors)])
		}
		for i, v := range table.Logs {
			fn(v.Rect, placeholderLogColors[i%len(placeholderLogColors)])
		}
		for _, v := range table.Brush {
			c := colornames.Darkolivegreen
			if v.Goal {
				c = colornames.Lightgreen
			}
			fn(v.Rect, c)
		}
	}

	each(func(r config.SpriteRect, _ color.Color) {
		bounds = bounds.Union(spriteRect(r))
	})

	img := image.NewNRGBA(image.Rect(0, 0, bounds.Max.X, bounds.Max.Y))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, xdraw.Src)
	each(func(r config.SpriteRect, c color.Color) {
		inner := spriteRect(r).Inset(1)
		xdraw.Draw(img, inner, image.NewUniform(c), image.Point{}, xdraw.Src)
	})
	return img
}

func spriteRect(r config.SpriteRect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}
