package orion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/shapeshifter/glimpse"
)

// ExitApp can be returned from Game.Update to stop the game loop.
var ExitApp = errors.New("exit app")

type RunGameOptions struct {
	// game to run. This is the only field that is required
	Game Game

	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// record a cpu profile for the lifetime of the window
	Profile bool
}

func RunGame(opts RunGameOptions) error {
	game := opts.Game
	if game == nil {
		return errors.New("Game must not be nil")
	}

	if opts.WindowWidth == 0 {
		opts.WindowWidth = 1000
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 600
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "Orion"
	}

	// create a new window
	win, err := glimpse.NewWindow(glimpse.WindowOptions{
		Width:   opts.WindowWidth,
		Height:  opts.WindowHeight,
		Title:   opts.WindowTitle,
		Profile: opts.Profile,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	loopState := &LoopState{
		Window: win,
		Game:   game,
	}

	err = win.Run(func(inputState glimpse.UpdateInputState) error {
		return loopOnce(loopState, inputState)
	})

	if errors.Is(err, ExitApp) {
		slog.Info("Game requested exit")
		return nil
	}

	return err
}
