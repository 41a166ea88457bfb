package components

// SpriteGroup 精灵分组，对应图集坐标表中的一组变体
type SpriteGroup string

const (
	SpriteGrass    SpriteGroup = "grass"
	SpriteWater    SpriteGroup = "water"
	SpriteRoad     SpriteGroup = "road"
	SpriteVehicle  SpriteGroup = "vehicle"
	SpriteLog      SpriteGroup = "log"
	SpriteBrush    SpriteGroup = "brush"
	SpriteFrog     SpriteGroup = "frog"
	SpriteDeadFrog SpriteGroup = "deadFrog"
)

// SpriteComponent 存储实体的视觉表现(分组 + 变体下标)
// 渲染系统据此从 SpriteLibrary 中取得实际图片
type SpriteComponent struct {
	Group   SpriteGroup
	Variant int
}
