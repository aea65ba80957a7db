package orion

import (
	"errors"
	"testing"
	"time"

	"github.com/oliverbestmann/shapeshifter/glimpse"
	"github.com/oliverbestmann/shapeshifter/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	width, height uint32
}

func (f *fakeWindow) GetSize() (uint32, uint32) {
	return f.width, f.height
}

func (f *fakeWindow) ShouldClose() bool {
	return false
}

func (f *fakeWindow) Run(frame func(input glimpse.UpdateInputState) error) error {
	return errors.New("not supported")
}

func (f *fakeWindow) Terminate() {}

type countingGame struct {
	initialized int
	updates     int
	sawEnter    bool
	windowSize  glm.Vec2f
}

func (c *countingGame) Initialize() error {
	c.initialized++
	return nil
}

func (c *countingGame) Update() error {
	c.updates++
	c.sawEnter = CurrentInput().Keys.JustPressed[glimpse.KeyEnter]
	c.windowSize = PrimaryWindowSize()
	return nil
}

func TestLoopOnce(t *testing.T) {
	game := &countingGame{}

	loopState := &LoopState{
		Window: &fakeWindow{width: 800, height: 600},
		Game:   game,
	}

	var input glimpse.InputState
	input.Keys.Press(glimpse.KeyEnter)

	update := func() glimpse.InputState {
		snapshot := input.Clone()
		input.NextTick()
		return snapshot
	}

	require.NoError(t, loopOnce(loopState, update))
	assert.True(t, game.sawEnter)
	assert.Equal(t, glm.Vec2f{800, 600}, game.windowSize)

	require.NoError(t, loopOnce(loopState, update))
	assert.False(t, game.sawEnter)

	assert.Equal(t, 1, game.initialized)
	assert.Equal(t, 2, game.updates)
}

type failingGame struct{}

func (failingGame) Initialize() error { return nil }
func (failingGame) Update() error     { return ExitApp }

func TestLoopOnceWrapsErrors(t *testing.T) {
	loopState := &LoopState{
		Window: &fakeWindow{width: 1, height: 1},
		Game:   failingGame{},
	}

	err := loopOnce(loopState, func() glimpse.InputState { return glimpse.InputState{} })
	assert.ErrorIs(t, err, ExitApp)
}

func TestRunGameRequiresGame(t *testing.T) {
	assert.Error(t, RunGame(RunGameOptions{}))
}

func TestGlobalPanicsWithoutValue(t *testing.T) {
	var g global[int]
	assert.Panics(t, func() { g.Get() })

	g.set(3)
	assert.Equal(t, 3, g.Get())
	assert.Panics(t, func() { g.set(4) })

	g.reset()
	assert.Panics(t, func() { g.Get() })
}

func TestHandle(t *testing.T) {
	assert.NotPanics(t, func() { Handle(nil, "nothing") })
	assert.PanicsWithValue(t, "load level 3: boom", func() {
		Handle(errors.New("boom"), "load level %d", 3)
	})
}

func TestEvents(t *testing.T) {
	var events Events[string]
	events.Send("a")
	events.Send("b")

	assert.Equal(t, 2, events.Len())
	assert.Equal(t, []string{"a", "b"}, events.Drain())
	assert.Empty(t, events.Drain())
}

func TestFrameTimes(t *testing.T) {
	var times FrameTimes

	start := time.Unix(0, 0)
	for idx := 0; idx < 60; idx++ {
		times.tickAt(start.Add(time.Duration(idx) * 10 * time.Millisecond))
	}

	assert.Equal(t, uint64(60), times.FrameCount)
	assert.Equal(t, 10*time.Millisecond, times.Delta)
	assert.InDelta(t, 100, times.FPS(), 0.5)
}
