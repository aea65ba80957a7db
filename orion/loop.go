package orion

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/shapeshifter/glimpse"
	"github.com/oliverbestmann/shapeshifter/glm"
)

type LoopState struct {
	Window        glimpse.Window
	Game          Game
	SurfaceWidth  uint32
	SurfaceHeight uint32
	Initialized   bool

	Times FrameTimes
}

func loopOnce(loopState *LoopState, inputState glimpse.UpdateInputState) error {
	if loopState.Times.Tick() {
		slog.Debug("Frame stats",
			slog.Float64("fps", loopState.Times.FPS()),
			slog.Duration("max", loopState.Times.MaxDuration),
		)
	}

	// get window size for this frame
	surfaceWidth, surfaceHeight := loopState.Window.GetSize()

	if loopState.SurfaceWidth != surfaceWidth || loopState.SurfaceHeight != surfaceHeight {
		slog.Debug("Resize window",
			slog.Int("width", int(surfaceWidth)),
			slog.Int("height", int(surfaceHeight)),
		)

		loopState.SurfaceWidth = surfaceWidth
		loopState.SurfaceHeight = surfaceHeight
	}

	currentWindowSize.reset()
	currentWindowSize.set(glm.Vec2f{float32(surfaceWidth), float32(surfaceHeight)})

	currentInputState.reset()
	currentInputState.set(inputState())

	// run game.Initialize and game.Update
	return performGameUpdate(loopState)
}

func performGameUpdate(loopState *LoopState) error {
	if !loopState.Initialized {
		loopState.Initialized = true

		if err := loopState.Game.Initialize(); err != nil {
			return fmt.Errorf("initialize game: %w", err)
		}
	}

	if err := loopState.Game.Update(); err != nil {
		return fmt.Errorf("update game: %w", err)
	}

	return nil
}
