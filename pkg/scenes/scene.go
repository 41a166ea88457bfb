package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/decker502/frogger/pkg/config"
	"github.com/decker502/frogger/pkg/game"
	"github.com/decker502/frogger/pkg/systems"
)

// Scene represents a game scene (menu, gameplay, end banner).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Context 场景之间共享的依赖
//
// Simulation 在启动时生成，场景只负责推进和绘制。
type Context struct {
	Config     *config.GameConfig
	Resources  *ResourceManager
	Sprites    *game.SpriteLibrary
	Scenes     *SceneManager
	Simulation *systems.Simulation
	Logger     zerolog.Logger
}
