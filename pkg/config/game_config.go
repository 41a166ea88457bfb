package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// TicksPerSecond 固定逻辑帧率
const TicksPerSecond = 60

// DefaultConfigPath 嵌入的默认配置文件路径
const DefaultConfigPath = "data/frogger.yaml"

// ErrInvalidConfig 配置校验失败时返回（通过 errors.Is 判断）
var ErrInvalidConfig = errors.New("invalid game config")

// GameConfig 游戏配置
//
// 所有坐标和尺寸单位都是像素，时间单位是秒。
// 默认值对应 900×900 窗口、30 像素格子的原版布局。
//
// 配置文件位置: data/frogger.yaml
type GameConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Map       MapConfig       `yaml:"map"`
	Player    PlayerConfig    `yaml:"player"`
	Score     ScoreConfig     `yaml:"score"`
	Vehicles  VehicleConfig   `yaml:"vehicles"`
	Logs      LogConfig       `yaml:"logs"`
	Placement PlacementConfig `yaml:"placement"`
	Animation AnimationConfig `yaml:"animation"`
	EndScreen EndScreenConfig `yaml:"endScreen"`
	Sprites   SpriteTable     `yaml:"sprites"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title string `yaml:"title"`
}

// MapConfig 地图尺寸
type MapConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TileSize float64 `yaml:"tileSize"`
}

// PlayerConfig 玩家（青蛙）配置
type PlayerConfig struct {
	// SpawnX, SpawnY 出生点（精灵中心），为 0 时取第 0 条车道的中心
	SpawnX float64 `yaml:"spawnX,omitempty"`
	SpawnY float64 `yaml:"spawnY,omitempty"`
	// Size 青蛙边长
	Size float64 `yaml:"size"`
	// MoveDistance 每次移动的距离（一格）
	MoveDistance float64 `yaml:"moveDistance"`
}

// ScoreConfig 计分规则
type ScoreConfig struct {
	Initial   int `yaml:"initial"`
	UpDelta   int `yaml:"upDelta"`
	DownDelta int `yaml:"downDelta"`
	GoalBonus int `yaml:"goalBonus"`
}

// VehicleConfig 公路车道上的车辆
type VehicleConfig struct {
	PerLane int     `yaml:"perLane"`
	Height  float64 `yaml:"height"`
	Speed   float64 `yaml:"speed"`
}

// LogConfig 河道上的木头
//
// 每条河道的第一根木头使用 Speed，其余木头在 [SpeedMin, SpeedMax] 内取整数随机速度。
type LogConfig struct {
	PerLane  int     `yaml:"perLane"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`
	SpeedMin int     `yaml:"speedMin"`
	SpeedMax int     `yaml:"speedMax"`
}

// PlacementConfig 障碍物放置与循环
type PlacementConfig struct {
	// MaxRetries 单个障碍物放置的最大重试次数
	MaxRetries int `yaml:"maxRetries"`
	// WrapX 障碍物从右侧移出后重新出现的左边缘坐标
	WrapX float64 `yaml:"wrapX"`
	// EnsureGoal 终点行没有随机出任何荷叶时，强制放置一个
	EnsureGoal bool `yaml:"ensureGoal"`
}

// AnimationConfig 青蛙跳跃动画
type AnimationConfig struct {
	// FrameInterval 帧切换的最小间隔（秒）
	FrameInterval float64 `yaml:"frameInterval"`
	// CycleSteps 一次按键触发的动画持续逻辑帧数
	CycleSteps int `yaml:"cycleSteps"`
}

// EndScreenConfig 结束画面时长
type EndScreenConfig struct {
	// LoseDelay 失败后显示死亡青蛙的时长
	LoseDelay float64 `yaml:"loseDelay"`
	// BannerHold 胜负横幅停留时长，之后退出
	BannerHold float64 `yaml:"bannerHold"`
}

// SpriteRect 精灵在图集中的矩形区域
type SpriteRect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// SpriteVariant 可随机选择的精灵变体
type SpriteVariant struct {
	Rect SpriteRect `yaml:"rect"`
	// Width 游戏内宽度（车辆、木头按变体不同而不同）
	Width float64 `yaml:"width,omitempty"`
	// Goal 终点行中的荷叶（触碰即胜利）
	Goal bool `yaml:"goal,omitempty"`
}

// SpriteTable 精灵图集坐标表
//
// 坐标与某一张特定图集文件绑定，属于可信数据，不做越界检查之外的校验。
type SpriteTable struct {
	Sheet    string          `yaml:"sheet"`
	Frog     []SpriteRect    `yaml:"frog"`
	DeadFrog SpriteRect      `yaml:"deadFrog"`
	Grass    SpriteRect      `yaml:"grass"`
	Water    SpriteRect      `yaml:"water"`
	Road     SpriteRect      `yaml:"road"`
	Vehicles []SpriteVariant `yaml:"vehicles"`
	Logs     []SpriteVariant `yaml:"logs"`
	Brush    []SpriteVariant `yaml:"brush"`
}

// LaneCount 车道数量 = floor(地图高度 / 格子尺寸)
func (c *GameConfig) LaneCount() int {
	return int(math.Floor(c.Map.Height / c.Map.TileSize))
}

// Columns 每行格子数
func (c *GameConfig) Columns() int {
	return int(math.Floor(c.Map.Width / c.Map.TileSize))
}

// LaneTop 返回第 n 条车道（自底向上，从 0 开始）的顶边 Y 坐标
func (c *GameConfig) LaneTop(n int) float64 {
	return c.Map.Height - c.Map.TileSize*float64(n+1)
}

// Spawn 返回青蛙出生点（精灵中心）
//
// 未配置时水平居中、垂直位于第 0 条车道中央，随地图尺寸变化。
func (c *GameConfig) Spawn() (x, y float64) {
	x, y = c.Player.SpawnX, c.Player.SpawnY
	if x == 0 {
		x = c.Map.Width / 2
	}
	if y == 0 {
		y = c.LaneTop(0) + c.Map.TileSize/2
	}
	return x, y
}

// Parse 解析 YAML 配置
//
// 未出现在 YAML 中的字段保留 Default() 中的值。
func Parse(data []byte) (*GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadGameConfig 从磁盘加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/frogger.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置结构
//   - error: 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return Parse(data)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate 验证配置有效性
//
// 检查：
//   - 尺寸为正，且至少能放下两条车道（底部草地 + 顶部终点行）
//   - 青蛙出生格位于第 0 条车道、地图宽度之内
//   - 每条车道的障碍物数量、速度区间合法
//   - 精灵表非空，终点行至少有一个荷叶变体
func (c *GameConfig) Validate() error {
	if c.Map.Width <= 0 || c.Map.Height <= 0 || c.Map.TileSize <= 0 {
		return invalid("map size must be positive (width=%.0f height=%.0f tile=%.0f)",
			c.Map.Width, c.Map.Height, c.Map.TileSize)
	}
	if c.LaneCount() < 2 {
		return invalid("map must hold at least 2 lanes, got %d", c.LaneCount())
	}
	if c.Player.Size <= 0 || c.Player.MoveDistance <= 0 {
		return invalid("player size and move distance must be positive")
	}
	// 出生格必须完整落在第 0 条车道内
	x, y := c.Spawn()
	half := c.Player.Size / 2
	if x-half < 0 || x+half > c.Map.Width || y-half < c.LaneTop(0) || y+half > c.Map.Height {
		return invalid("player spawn (%.0f, %.0f) size %.0f is outside lane 0 (y %.0f..%.0f, width %.0f)",
			x, y, c.Player.Size, c.LaneTop(0), c.Map.Height, c.Map.Width)
	}
	if c.Vehicles.PerLane < 0 || c.Logs.PerLane < 0 {
		return invalid("obstacles per lane cannot be negative")
	}
	if c.Vehicles.Height <= 0 || c.Logs.Height <= 0 {
		return invalid("obstacle height must be positive")
	}
	if c.Logs.SpeedMin > c.Logs.SpeedMax {
		return invalid("log speed range invalid: min(%d) > max(%d)", c.Logs.SpeedMin, c.Logs.SpeedMax)
	}
	if c.Placement.MaxRetries <= 0 {
		return invalid("placement maxRetries must be positive")
	}
	if c.Animation.CycleSteps <= 0 || c.Animation.FrameInterval < 0 {
		return invalid("animation cycleSteps must be positive and frameInterval non-negative")
	}

	if len(c.Sprites.Frog) == 0 {
		return invalid("sprites.frog must list at least one frame")
	}
	if len(c.Sprites.Vehicles) == 0 || len(c.Sprites.Logs) == 0 || len(c.Sprites.Brush) == 0 {
		return invalid("vehicle, log and brush variant tables must not be empty")
	}
	for i, v := range c.Sprites.Vehicles {
		if v.Width <= 0 {
			return invalid("sprites.vehicles[%d].width must be positive", i)
		}
	}
	for i, v := range c.Sprites.Logs {
		if v.Width <= 0 {
			return invalid("sprites.logs[%d].width must be positive", i)
		}
	}
	if c.GoalVariant() < 0 {
		return invalid("sprites.brush must contain a variant with goal: true")
	}
	return nil
}

// GoalVariant 返回第一个荷叶变体的下标，没有则返回 -1
func (c *GameConfig) GoalVariant() int {
	for i, v := range c.Sprites.Brush {
		if v.Goal {
			return i
		}
	}
	return -1
}
