package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/decker502/frogger/pkg/game"
)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	quit         bool
	logger       zerolog.Logger
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager(logger zerolog.Logger) *SceneManager {
	return &SceneManager{logger: logger}
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	sm.logger.Debug().Str("scene", sceneName(scene)).Msg("switch scene")
}

// RequestQuit 请求在本帧结束后退出
func (sm *SceneManager) RequestQuit() {
	if !sm.quit {
		sm.logger.Debug().Msg("quit requested")
	}
	sm.quit = true
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
//
// 返回 game.ErrQuit 表示应当结束游戏循环。
func (sm *SceneManager) Update(deltaTime float64) error {
	if sm.quit {
		return game.ErrQuit
	}
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
	if sm.quit {
		return game.ErrQuit
	}
	return nil
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Named 可选接口：场景名称，仅用于日志
type Named interface {
	Name() string
}

func sceneName(s Scene) string {
	if n, ok := s.(Named); ok {
		return n.Name()
	}
	if s == nil {
		return "<nil>"
	}
	return "anonymous"
}
