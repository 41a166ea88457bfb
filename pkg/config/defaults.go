package config

func rect(x, y, w, h int) SpriteRect {
	return SpriteRect{X: x, Y: y, W: w, H: h}
}

// Default 返回与原版图集 finalproject_gameSprites.png 对应的默认配置
//
// 尺寸全部由窗口边长 900 推导：格子 = 900/30，障碍物高 = 900/32，
// 车辆宽 = 900/16、3*900/32、900/8，木头宽 = 7*900/48、3*900/32、900/8。
func Default() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{Title: "Frogger"},
		Map: MapConfig{
			Width:    900,
			Height:   900,
			TileSize: 30,
		},
		Player: PlayerConfig{
			Size:         30,
			MoveDistance: 30,
		},
		Score: ScoreConfig{
			Initial:   10,
			UpDelta:   10,
			DownDelta: -10,
			GoalBonus: 200,
		},
		Vehicles: VehicleConfig{
			PerLane: 4,
			Height:  28,
			Speed:   4,
		},
		Logs: LogConfig{
			PerLane:  3,
			Height:   28,
			Speed:    2,
			SpeedMin: 2,
			SpeedMax: 3,
		},
		Placement: PlacementConfig{
			MaxRetries: 1000,
			WrapX:      -112,
			EnsureGoal: true,
		},
		Animation: AnimationConfig{
			FrameInterval: 0.010,
			CycleSteps:    7,
		},
		EndScreen: EndScreenConfig{
			LoseDelay:  0.5,
			BannerHold: 3.0,
		},
		Sprites: SpriteTable{
			Sheet: "assets/finalproject_gameSprites.png",
			Frog: []SpriteRect{
				rect(0, 31, 52, 37),
				rect(54, 28, 58, 42),
				rect(113, 19, 58, 53),
				rect(173, 8, 54, 66),
				rect(230, 2, 56, 74),
				rect(113, 19, 58, 53),
				rect(0, 31, 52, 37),
			},
			DeadFrog: rect(302, 333, 65, 50),
			Grass:    rect(135, 158, 82, 82),
			Water:    rect(226, 158, 82, 82),
			Road:     rect(316, 158, 82, 82),
			Vehicles: []SpriteVariant{
				{Rect: rect(12, 483, 127, 69), Width: 56},
				{Rect: rect(155, 483, 135, 71), Width: 56},
				{Rect: rect(305, 482, 134, 71), Width: 56},
				{Rect: rect(9, 407, 178, 66), Width: 84},
				{Rect: rect(203, 406, 285, 66), Width: 112},
			},
			Logs: []SpriteVariant{
				{Rect: rect(13, 258, 353, 59), Width: 131},
				{Rect: rect(387, 258, 185, 59), Width: 84},
				{Rect: rect(14, 328, 273, 59), Width: 112},
			},
			Brush: []SpriteVariant{
				{Rect: rect(497, 158, 82, 82), Goal: true},
				{Rect: rect(407, 158, 82, 82)},
				{Rect: rect(407, 158, 82, 82)},
				{Rect: rect(407, 158, 82, 82)},
			},
		},
	}
}
