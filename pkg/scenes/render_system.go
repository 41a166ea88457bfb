package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"

	"github.com/decker502/frogger/pkg/game"
)

// RenderSystem 把 World 的实体快照绘制到屏幕
//
// 绘制顺序由 World.Actors 决定（自底向上）：
// 地形 -> 车辆 -> 木头 -> 灌木/荷叶 -> 青蛙。
// 图片来自 SpriteLibrary，首次使用时由 ResourceManager 转换为 ebiten.Image。
type RenderSystem struct {
	world     *game.World
	library   *game.SpriteLibrary
	resources *ResourceManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(w *game.World, lib *game.SpriteLibrary, rm *ResourceManager) *RenderSystem {
	return &RenderSystem{
		world:     w,
		library:   lib,
		resources: rm,
	}
}

// Draw 绘制所有实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, v := range s.world.Actors() {
		img := s.resources.Image(s.library.For(v))
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(v.Rect.X, v.Rect.Y)
		screen.DrawImage(img, op)
	}
}

// DrawHUD 在左下角绘制分数
func (s *RenderSystem) DrawHUD(screen *ebiten.Image) {
	label := fmt.Sprintf("Score  %d", s.world.State.Score)
	DrawText(screen, s.resources.Font(), label, 10, s.world.Config.Map.Height-10, 2, colornames.White, text.AlignStart, text.AlignEnd)
}

// DrawText 绘制带阴影的文字
//
// 参数:
//   - face: 字体
//   - x, y: 锚点（屏幕坐标）
//   - scale: 位图字体的放大倍数
//   - primary, secondary: 水平、垂直对齐方式
func DrawText(screen *ebiten.Image, face text.Face, str string, x, y, scale float64, clr color.Color, primary, secondary text.Align) {
	draw := func(dx, dy float64, c color.Color) {
		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = primary
		op.LayoutOptions.SecondaryAlign = secondary
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x+dx, y+dy)
		op.ColorScale.ScaleWithColor(c)
		text.Draw(screen, str, face, op)
	}

	draw(scale, scale, color.RGBA{0, 0, 0, 180}) // 半透明黑色阴影
	draw(0, 0, clr)
}
