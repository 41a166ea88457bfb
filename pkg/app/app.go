// Package app 提供 Ebitengine 前端的应用包装器
//
// 该包把资源加载、场景装配从 main 包中提取出来，main 只负责解析参数和选择前端。
package app

import (
	"errors"
	"fmt"
	"image"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/decker502/frogger/pkg/config"
	"github.com/decker502/frogger/pkg/game"
	"github.com/decker502/frogger/pkg/scenes"
	"github.com/decker502/frogger/pkg/systems"
)

// Config 定义应用启动配置
type Config struct {
	// Game 已校验的游戏配置
	Game *config.GameConfig
	// SheetPath 精灵图集路径，为空时使用 Game.Sprites.Sheet
	SheetPath string
	// Seed 地图生成的随机种子
	Seed int64
	// Logger 日志
	Logger zerolog.Logger
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *scenes.SceneManager
	cfg          *config.GameConfig
	icon         image.Image
	logger       zerolog.Logger
}

// NewApp 创建并初始化游戏应用
//
// 加载图集、生成地图，并以开始菜单作为初始场景。
// 图集缺失或地图生成失败时返回错误。
func NewApp(cfg Config) (*App, error) {
	logger := cfg.Logger

	sheet := cfg.SheetPath
	if sheet == "" {
		sheet = cfg.Game.Sprites.Sheet
	}

	// 创建资源管理器
	resourceManager := scenes.NewResourceManager(logger)
	sprites, err := resourceManager.LoadSpriteLibrary(sheet, cfg.Game)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("精灵图集加载失败（%s 不存在，可运行 go run ./cmd/gensheet -o %s 生成占位图集）: %w", sheet, sheet, err)
	}
	if err != nil {
		return nil, fmt.Errorf("精灵图集加载失败: %w", err)
	}

	sim, err := systems.NewSimulation(cfg.Game, rand.New(rand.NewSource(cfg.Seed)), logger)
	if err != nil {
		return nil, err
	}

	// 创建场景管理器
	sceneManager := scenes.NewSceneManager(logger)
	ctx := &scenes.Context{
		Config:     cfg.Game,
		Resources:  resourceManager,
		Sprites:    sprites,
		Scenes:     sceneManager,
		Simulation: sim,
		Logger:     logger,
	}
	sceneManager.SwitchTo(scenes.NewMenuScene(ctx))

	logger.Info().Int64("seed", cfg.Seed).Str("sheet", sheet).Msg("app ready")

	return &App{
		sceneManager: sceneManager,
		cfg:          cfg.Game,
		icon:         sprites.Icon(),
		logger:       logger,
	}, nil
}

// Run 设置窗口并进入游戏循环，直到退出
func (a *App) Run() error {
	ebiten.SetWindowSize(int(a.cfg.Map.Width), int(a.cfg.Map.Height))
	ebiten.SetWindowTitle(a.cfg.Window.Title)
	if a.icon != nil {
		ebiten.SetWindowIcon([]image.Image{a.icon})
	}
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / float64(config.TicksPerSecond)
	if err := a.sceneManager.Update(deltaTime); err != nil {
		if errors.Is(err, game.ErrQuit) {
			a.logger.Debug().Msg("terminating game loop")
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.cfg.Map.Width), int(a.cfg.Map.Height)
}
