package scenes

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/decker502/frogger/pkg/utils"
)

const (
	menuButtonWidth  = 300
	menuButtonHeight = 60
)

// MenuScene 开始菜单：标题和 START GAME 按钮
// 点击按钮或按回车开始游戏，Esc 退出
type MenuScene struct {
	ctx    *Context
	button image.Rectangle
}

// NewMenuScene 创建开始菜单
func NewMenuScene(ctx *Context) *MenuScene {
	return &MenuScene{
		ctx:    ctx,
		button: menuButtonRect(int(ctx.Config.Map.Width), int(ctx.Config.Map.Height)),
	}
}

// menuButtonRect 按钮水平居中，位于画面 2/3 高度处
func menuButtonRect(w, h int) image.Rectangle {
	x := (w - menuButtonWidth) / 2
	y := h*2/3 - menuButtonHeight/2
	return image.Rect(x, y, x+menuButtonWidth, y+menuButtonHeight)
}

// Name 场景名称
func (m *MenuScene) Name() string { return "menu" }

// Update 处理点击和按键
func (m *MenuScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.ctx.Scenes.RequestQuit()
		return
	}

	clicked, x, y := isJustTouchedOrClicked()
	if (clicked && utils.PointInRect(x, y, m.button)) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.ctx.Logger.Info().Msg("start game")
		m.ctx.Scenes.SwitchTo(NewGameScene(m.ctx, KeyboardInput{}))
	}
}

// Draw 绘制菜单
func (m *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	font := m.ctx.Resources.Font()
	w := m.ctx.Config.Map.Width
	h := m.ctx.Config.Map.Height

	if icon := m.ctx.Resources.Image(m.ctx.Sprites.Icon()); icon != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(3, 3)
		op.GeoM.Translate(w/2-float64(icon.Bounds().Dx())*1.5, h/3-120)
		screen.DrawImage(icon, op)
	}
	DrawText(screen, font, "FROGGER", w/2, h/3, 6, colornames.Limegreen, text.AlignCenter, text.AlignCenter)

	// 鼠标悬停时高亮按钮
	fill := colornames.Darkgreen
	if px, py := pointerPosition(); utils.PointInRect(px, py, m.button) {
		fill = colornames.Forestgreen
	}
	b := m.button
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), fill, false)
	vector.StrokeRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), 2, colornames.White, false)

	cx := float64(b.Min.X+b.Max.X) / 2
	cy := float64(b.Min.Y+b.Max.Y) / 2
	DrawText(screen, font, "START GAME", cx, cy, 3, colornames.White, text.AlignCenter, text.AlignCenter)
}
