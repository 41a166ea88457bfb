package utils

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/decker502/frogger/pkg/components"
)

type colorKeyMode int

const (
	colorKeyNone colorKeyMode = iota
	colorKeyTopLeft
	colorKeyFixed
)

// ColorKey 切片时视为透明的颜色
type ColorKey struct {
	mode colorKeyMode
	c    color.NRGBA
}

var (
	// NoColorKey 不做透明处理
	NoColorKey = ColorKey{}
	// TopLeftColorKey 以切片左上角像素为透明色（每个切片各自取色）
	TopLeftColorKey = ColorKey{mode: colorKeyTopLeft}
)

// FixedColorKey 以固定颜色为透明色
func FixedColorKey(c color.Color) ColorKey {
	return ColorKey{mode: colorKeyFixed, c: color.NRGBAModel.Convert(c).(color.NRGBA)}
}

// SliceImage 从图集中截取 r 区域，返回以 (0,0) 为原点的新图像
//
// 越界矩形属于调用方的前置条件（坐标表是可信数据），这里不做检查。
//
// 参数:
//   - src: 图集
//   - r: 图集中的矩形区域
//   - key: 透明色规则
//
// 返回:
//   - *image.NRGBA: 新图像，与 src 不共享像素
func SliceImage(src image.Image, r image.Rectangle, key ColorKey) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, r.Min, xdraw.Src)

	var transparent color.NRGBA
	switch key.mode {
	case colorKeyNone:
		return dst
	case colorKeyTopLeft:
		if r.Empty() {
			return dst
		}
		transparent = dst.NRGBAAt(0, 0)
	case colorKeyFixed:
		transparent = key.c
	}

	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if dst.NRGBAAt(x, y) == transparent {
				dst.SetNRGBA(x, y, color.NRGBA{})
			}
		}
	}
	return dst
}

// FlipVertical 上下翻转
func FlipVertical(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(x, b.Dy()-1-y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// Rotate90 逆时针旋转 90°
func Rotate90(src image.Image) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(y, w-1-x, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// Rotate270 逆时针旋转 270°（即顺时针 90°）
func Rotate270(src image.Image) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.Set(h-1-y, x, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// ScaleImage 最近邻缩放到 w×h（像素风精灵不做插值）
func ScaleImage(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// OrientImage 根据朝向从基础帧（朝上）推导显示帧
//
// 朝上保持原样，朝下上下翻转，朝左逆时针 90°，朝右逆时针 270°。
// 纯函数：不修改 src，也不缓存结果。
func OrientImage(src image.Image, o components.Orientation) image.Image {
	switch o {
	case components.FacingDown:
		return FlipVertical(src)
	case components.FacingLeft:
		return Rotate90(src)
	case components.FacingRight:
		return Rotate270(src)
	default:
		return src
	}
}
