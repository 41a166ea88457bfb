package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/decker502/frogger/pkg/components"
	"github.com/decker502/frogger/pkg/config"
	"github.com/decker502/frogger/pkg/utils"
)

// ErrSpriteOutOfBounds 坐标表中的矩形超出了图集范围
var ErrSpriteOutOfBounds = errors.New("sprite rectangle outside sheet")

// spriteKey 纯黑像素视为透明
var spriteKey = utils.FixedColorKey(color.Black)

type frameKey struct {
	frame       int
	orientation components.Orientation
}

// SpriteLibrary 按坐标表切好的全部精灵
//
// 所有图片都已缩放到游戏内尺寸：地形、灌木为一格，青蛙为玩家尺寸，
// 车辆和木头为各自变体的宽度 × 障碍物高度。青蛙帧为朝上的基础帧，
// 其他朝向由 FrogFrame 按需推导并缓存。
type SpriteLibrary struct {
	frog     []image.Image
	deadFrog image.Image
	groups   map[components.SpriteGroup][]image.Image

	oriented map[frameKey]image.Image
}

func toRect(r config.SpriteRect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// NewSpriteLibrary 从图集切出全部精灵
//
// 参数:
//   - sheet: 解码后的图集
//   - cfg: 提供坐标表和游戏内尺寸
//
// 返回:
//   - error: 任一矩形超出图集时返回 ErrSpriteOutOfBounds
func NewSpriteLibrary(sheet image.Image, cfg *config.GameConfig) (*SpriteLibrary, error) {
	table := cfg.Sprites
	bounds := sheet.Bounds()
	tile := int(cfg.Map.TileSize)
	player := int(cfg.Player.Size)

	var firstErr error
	slice := func(name string, r config.SpriteRect, key utils.ColorKey, w, h int) image.Image {
		rect := toRect(r).Add(bounds.Min)
		if !rect.In(bounds) {
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: %s %v not in %v", ErrSpriteOutOfBounds, name, rect, bounds)
			}
			return nil
		}
		return utils.ScaleImage(utils.SliceImage(sheet, rect, key), w, h)
	}

	lib := &SpriteLibrary{
		groups:   make(map[components.SpriteGroup][]image.Image),
		oriented: make(map[frameKey]image.Image),
	}

	// 图集中的青蛙朝下，翻转后作为朝上的基础帧
	for i, r := range table.Frog {
		if img := slice(fmt.Sprintf("frog[%d]", i), r, spriteKey, player, player); img != nil {
			lib.frog = append(lib.frog, utils.FlipVertical(img))
		}
	}
	lib.deadFrog = slice("deadFrog", table.DeadFrog, spriteKey, player, player)

	lib.groups[components.SpriteGrass] = []image.Image{slice("grass", table.Grass, utils.NoColorKey, tile, tile)}
	lib.groups[components.SpriteWater] = []image.Image{slice("water", table.Water, utils.NoColorKey, tile, tile)}
	lib.groups[components.SpriteRoad] = []image.Image{slice("road", table.Road, utils.NoColorKey, tile, tile)}

	for i, v := range table.Brush {
		lib.groups[components.SpriteBrush] = append(lib.groups[components.SpriteBrush],
			slice(fmt.Sprintf("brush[%d]", i), v.Rect, spriteKey, tile, tile))
	}
	for i, v := range table.Vehicles {
		lib.groups[components.SpriteVehicle] = append(lib.groups[components.SpriteVehicle],
			slice(fmt.Sprintf("vehicles[%d]", i), v.Rect, spriteKey, int(v.Width), int(cfg.Vehicles.Height)))
	}
	for i, v := range table.Logs {
		lib.groups[components.SpriteLog] = append(lib.groups[components.SpriteLog],
			slice(fmt.Sprintf("logs[%d]", i), v.Rect, spriteKey, int(v.Width), int(cfg.Logs.Height)))
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return lib, nil
}

// FrameCount 青蛙动画帧数
func (l *SpriteLibrary) FrameCount() int {
	return len(l.frog)
}

// FrogFrame 返回指定帧在指定朝向下的图片
func (l *SpriteLibrary) FrogFrame(frame int, o components.Orientation) image.Image {
	if len(l.frog) == 0 {
		return nil
	}
	frame = ((frame % len(l.frog)) + len(l.frog)) % len(l.frog)
	key := frameKey{frame: frame, orientation: o}
	if img, ok := l.oriented[key]; ok {
		return img
	}
	img := utils.OrientImage(l.frog[frame], o)
	l.oriented[key] = img
	return img
}

// Sprite 返回某分组的某个变体，越界返回 nil
func (l *SpriteLibrary) Sprite(group components.SpriteGroup, variant int) image.Image {
	if group == components.SpriteDeadFrog {
		return l.deadFrog
	}
	imgs := l.groups[group]
	if variant < 0 || variant >= len(imgs) {
		return nil
	}
	return imgs[variant]
}

// For 返回实体快照对应的图片
func (l *SpriteLibrary) For(v ActorView) image.Image {
	if v.Group == components.SpriteFrog {
		return l.FrogFrame(v.Frame, v.Orientation)
	}
	return l.Sprite(v.Group, v.Variant)
}

// Icon 窗口图标（第一帧青蛙）
func (l *SpriteLibrary) Icon() image.Image {
	return l.FrogFrame(0, components.FacingUp)
}
