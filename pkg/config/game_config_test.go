package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() should be valid, got %v", err)
	}

	if got := cfg.LaneCount(); got != 30 {
		t.Errorf("LaneCount() = %d, want 30", got)
	}
	if got := cfg.Columns(); got != 30 {
		t.Errorf("Columns() = %d, want 30", got)
	}
	if got := cfg.LaneTop(0); got != 870 {
		t.Errorf("LaneTop(0) = %v, want 870", got)
	}
	if got := cfg.LaneTop(29); got != 0 {
		t.Errorf("LaneTop(29) = %v, want 0", got)
	}
	if got := cfg.GoalVariant(); got != 0 {
		t.Errorf("GoalVariant() = %d, want 0", got)
	}
	if x, y := cfg.Spawn(); x != 450 || y != 885 {
		t.Errorf("Spawn() = (%v, %v), want (450, 885)", x, y)
	}
}

func TestSpawnFollowsMap(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		tile          float64
		wantX, wantY  float64
	}{
		{"默认地图", 900, 900, 30, 450, 885},
		{"矮地图", 900, 600, 30, 450, 585},
		{"高度不是格子整数倍", 900, 95, 30, 450, 80},
		{"大格子", 900, 900, 45, 450, 877.5},
		{"两条车道", 300, 60, 30, 150, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Map.Width, cfg.Map.Height, cfg.Map.TileSize = tt.width, tt.height, tt.tile
			if err := cfg.Validate(); err != nil {
				t.Fatalf("Validate() = %v", err)
			}
			x, y := cfg.Spawn()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Spawn() = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
			if y-cfg.Player.Size/2 < cfg.LaneTop(0) {
				t.Errorf("spawn rect top %v is above lane 0 top %v", y-cfg.Player.Size/2, cfg.LaneTop(0))
			}
		})
	}
}

func TestSpawnExplicitOverride(t *testing.T) {
	cfg, err := Parse([]byte(`
player:
  spawnX: 105
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if x, y := cfg.Spawn(); x != 105 || y != 885 {
		t.Errorf("Spawn() = (%v, %v), want (105, 885)", x, y)
	}
}

// 嵌入的 data/frogger.yaml 必须与 Default() 保持一致
func TestEmbeddedConfigMatchesDefault(t *testing.T) {
	cfg, err := LoadGameConfig(filepath.Join("..", "..", DefaultConfigPath))
	if err != nil {
		t.Fatalf("LoadGameConfig failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("data/frogger.yaml diverges from Default():\n got  %+v\n want %+v", cfg, Default())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte(`
map:
  height: 300
vehicles:
  speed: 6
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Map.Height != 300 {
		t.Errorf("expected height 300, got %v", cfg.Map.Height)
	}
	if cfg.LaneCount() != 10 {
		t.Errorf("expected 10 lanes, got %d", cfg.LaneCount())
	}
	// 出生点随地图高度移动到新的第 0 条车道
	if _, y := cfg.Spawn(); y != 285 {
		t.Errorf("expected spawn y 285, got %v", y)
	}
	if cfg.Vehicles.Speed != 6 {
		t.Errorf("expected vehicle speed 6, got %v", cfg.Vehicles.Speed)
	}
	// 未覆盖的字段保留默认值
	if cfg.Map.Width != 900 || cfg.Vehicles.PerLane != 4 {
		t.Errorf("defaults lost: width=%v perLane=%d", cfg.Map.Width, cfg.Vehicles.PerLane)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("map: [")); err == nil {
		t.Error("expected parse error for malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"地图宽度为零", func(c *GameConfig) { c.Map.Width = 0 }},
		{"只能放下一条车道", func(c *GameConfig) { c.Map.Height = 45 }},
		{"玩家移动距离为零", func(c *GameConfig) { c.Player.MoveDistance = 0 }},
		{"出生点在地图下方", func(c *GameConfig) { c.Map.Height = 600; c.Player.SpawnY = 885 }},
		{"出生点不在第 0 条车道", func(c *GameConfig) { c.Player.SpawnY = 855 }},
		{"出生点超出右边界", func(c *GameConfig) { c.Player.SpawnX = 890 }},
		{"青蛙比车道高", func(c *GameConfig) { c.Player.Size = 40 }},
		{"负的障碍物数量", func(c *GameConfig) { c.Vehicles.PerLane = -1 }},
		{"木头速度区间颠倒", func(c *GameConfig) { c.Logs.SpeedMin, c.Logs.SpeedMax = 3, 2 }},
		{"重试次数为零", func(c *GameConfig) { c.Placement.MaxRetries = 0 }},
		{"动画步数为零", func(c *GameConfig) { c.Animation.CycleSteps = 0 }},
		{"没有青蛙帧", func(c *GameConfig) { c.Sprites.Frog = nil }},
		{"空的车辆表", func(c *GameConfig) { c.Sprites.Vehicles = nil }},
		{"车辆宽度为零", func(c *GameConfig) { c.Sprites.Vehicles[0].Width = 0 }},
		{"没有荷叶", func(c *GameConfig) {
			for i := range c.Sprites.Brush {
				c.Sprites.Brush[i].Goal = false
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}
