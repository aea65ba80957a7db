package main

import (
	"embed"
	"io/fs"
	"log/slog"
	"os"

	"github.com/oliverbestmann/shapeshifter/game"
	"github.com/oliverbestmann/shapeshifter/levels"
	"github.com/oliverbestmann/shapeshifter/orion"
)

//go:embed shapes/*.json
var _shapes embed.FS

func main() {
	level := slog.LevelInfo
	if os.Getenv("SHAPESHIFTER_DEBUG") != "" {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: level})
	slog.SetDefault(slog.New(handler))

	shapes, err := fs.Sub(_shapes, "shapes")
	orion.Handle(err, "open embedded shapes")

	g, err := game.New(game.Options{
		Start:  levels.Simplicity(0),
		Shapes: levels.FSLoader{FS: shapes},
	})
	orion.Handle(err, "create game")

	err = orion.RunGame(orion.RunGameOptions{
		Game:         g,
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "Shapeshifter",
		Profile:      os.Getenv("SHAPESHIFTER_PROFILE") != "",
	})

	orion.Handle(err, "run game")
}
