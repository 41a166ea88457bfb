package scenes

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/frogger/pkg/config"
	"github.com/decker502/frogger/pkg/entities"
	"github.com/decker502/frogger/pkg/game"
	"github.com/decker502/frogger/pkg/systems"
)

const testDeltaTime = 1.0 / config.TicksPerSecond

// scriptedInput 按顺序返回预设输入，用完后返回空输入
type scriptedInput struct {
	frames []game.InputFrame
	next   int
}

func (s *scriptedInput) Poll() game.InputFrame {
	if s.next >= len(s.frames) {
		return game.InputFrame{}
	}
	f := s.frames[s.next]
	s.next++
	return f
}

func press(d game.Direction) game.InputFrame {
	var f game.InputFrame
	f.Press(d)
	return f
}

// newTestContext 空地图上只有青蛙，向下一步即出界
func newTestContext(t *testing.T) *Context {
	t.Helper()
	cfg := config.Default()
	w := game.NewWorld(cfg)
	entities.NewPlayer(w)

	return &Context{
		Config:     cfg,
		Scenes:     NewSceneManager(zerolog.Nop()),
		Simulation: systems.NewSimulationForWorld(w, zerolog.Nop()),
		Logger:     zerolog.Nop(),
	}
}

func TestMenuButtonRect(t *testing.T) {
	r := menuButtonRect(900, 900)
	assert.Equal(t, 300, r.Dx())
	assert.Equal(t, 60, r.Dy())
	assert.Equal(t, 450, (r.Min.X+r.Max.X)/2)
	assert.Equal(t, 600, (r.Min.Y+r.Max.Y)/2)
}

func TestGameSceneSteps(t *testing.T) {
	ctx := newTestContext(t)
	scene := NewGameScene(ctx, &scriptedInput{frames: []game.InputFrame{press(game.DirUp)}})
	ctx.Scenes.SwitchTo(scene)

	require.NoError(t, ctx.Scenes.Update(testDeltaTime))
	assert.Equal(t, 20, ctx.Simulation.State().Score)
	assert.Same(t, scene, ctx.Scenes.currentScene)
	assert.Equal(t, 1, ctx.Simulation.Steps())
}

func TestGameSceneQuit(t *testing.T) {
	ctx := newTestContext(t)
	scene := NewGameScene(ctx, &scriptedInput{frames: []game.InputFrame{{Quit: true}}})
	ctx.Scenes.SwitchTo(scene)

	assert.ErrorIs(t, ctx.Scenes.Update(testDeltaTime), game.ErrQuit)
	assert.Equal(t, 0, ctx.Simulation.Steps(), "quit frame must not advance the simulation")
}

func TestGameSceneSwitchesToEndScene(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Scenes.SwitchTo(NewGameScene(ctx, &scriptedInput{frames: []game.InputFrame{press(game.DirDown)}}))

	require.NoError(t, ctx.Scenes.Update(testDeltaTime))

	end, ok := ctx.Scenes.currentScene.(*EndScene)
	require.True(t, ok, "expected EndScene after losing")
	assert.Equal(t, game.RoundLost, end.seq.Outcome())
	assert.Equal(t, game.EndPhaseDeadFrog, end.Phase())
}

func newTestEndScene(ctx *Context, outcome game.RoundOutcome) *EndScene {
	s := NewEndScene(ctx, nil, outcome)
	s.quitPressed = func() bool { return false }
	return s
}

func TestEndSceneLostTiming(t *testing.T) {
	ctx := newTestContext(t)
	s := newTestEndScene(ctx, game.RoundLost)

	s.Update(0.25)
	assert.Equal(t, game.EndPhaseDeadFrog, s.Phase())

	s.Update(0.3)
	assert.Equal(t, game.EndPhaseBanner, s.Phase())

	s.Update(2.9)
	assert.Equal(t, game.EndPhaseBanner, s.Phase())
	assert.False(t, ctx.Scenes.quit)

	s.Update(0.1)
	assert.Equal(t, game.EndPhaseDone, s.Phase())
	assert.True(t, ctx.Scenes.quit)
}

func TestEndSceneWonTiming(t *testing.T) {
	ctx := newTestContext(t)
	s := newTestEndScene(ctx, game.RoundWon)

	s.Update(0.1)
	assert.Equal(t, game.EndPhaseBanner, s.Phase(), "winning skips the dead frog phase")

	s.Update(2.8)
	assert.False(t, ctx.Scenes.quit)

	s.Update(0.2)
	assert.Equal(t, game.EndPhaseDone, s.Phase())
	assert.True(t, ctx.Scenes.quit)
}

func TestEndSceneEscape(t *testing.T) {
	ctx := newTestContext(t)
	s := newTestEndScene(ctx, game.RoundLost)
	s.quitPressed = func() bool { return true }

	s.Update(testDeltaTime)
	assert.True(t, ctx.Scenes.quit)
	assert.Equal(t, game.EndPhaseDeadFrog, s.Phase())
}
