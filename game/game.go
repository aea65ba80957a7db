package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/shapeshifter/glimpse"
	"github.com/oliverbestmann/shapeshifter/glm"
	"github.com/oliverbestmann/shapeshifter/input"
	"github.com/oliverbestmann/shapeshifter/levels"
	"github.com/oliverbestmann/shapeshifter/orion"
	"github.com/oliverbestmann/shapeshifter/scene"
)

type QuickSave struct{}

type QuickLoad struct{}

type Options struct {
	// level to load on Initialize
	Start levels.Level

	// level catalog, defaults to levels.DefaultLevels()
	Levels *levels.GameLevels

	// loads the shapes referenced by the level catalog
	Shapes levels.Loader

	// number of shapes to keep in memory, defaults to 32
	ShapeCacheSize int
}

type Game struct {
	catalog *levels.GameLevels
	shapes  *levels.ShapeLibrary
	start   levels.Level

	camera     *input.Camera
	cursor     input.Cursor
	dispatcher *input.Dispatcher
	scene      scene.Scene

	level         levels.Level
	target        levels.Shape
	cutsRemaining int

	saved    []scene.Entity
	hasSaved bool

	// events of the last frame
	Actions    orion.Events[input.Action]
	QuickSaves orion.Events[QuickSave]
	QuickLoads orion.Events[QuickLoad]

	// instructions wait until they are consumed
	Instructions orion.Events[levels.SpawnInstruction]
}

func New(opts Options) (*Game, error) {
	if opts.Shapes == nil {
		return nil, errors.New("Shapes loader must not be nil")
	}

	if opts.Levels == nil {
		opts.Levels = levels.DefaultLevels()
	}

	if opts.ShapeCacheSize == 0 {
		opts.ShapeCacheSize = 32
	}

	shapes, err := levels.NewShapeLibrary(opts.Shapes, opts.ShapeCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create shape library: %w", err)
	}

	return &Game{
		catalog:    opts.Levels,
		shapes:     shapes,
		start:      opts.Start,
		camera:     input.NewCamera(),
		dispatcher: input.NewDispatcher(),
	}, nil
}

func (g *Game) Initialize() error {
	return g.Load(g.start)
}

func (g *Game) Update() error {
	g.Step(orion.CurrentInput(), orion.PrimaryWindowSize())

	for _, instruction := range g.Instructions.Drain() {
		slog.Info("Instruction", slog.String("text", instruction.Text))
	}

	return nil
}

// Step runs the input systems for one frame: cursor tracking, dispatching
// and the release cleanup.
func (g *Game) Step(in *glimpse.InputState, windowSize glm.Vec2f) input.Result {
	g.Actions.Drain()
	g.QuickSaves.Drain()
	g.QuickLoads.Drain()

	g.cursor.Update(in, windowSize, g.camera)

	result := g.dispatcher.Dispatch(&g.cursor, in)
	g.apply(result)

	input.ReleaseSegments[scene.EntityID](in, &g.scene)

	return result
}

func (g *Game) apply(result input.Result) {
	switch result.Effect {
	case input.EffectAction:
		g.Actions.Send(result.Action)
		g.scene.Apply(result.Action)

		switch result.Action.(type) {
		case input.EndCutSegment:
			g.cutsRemaining = max(0, g.cutsRemaining-1)

		case input.Delete, input.EndMakingPolygon:
			// the scene may discard what was being drawn
			g.dispatcher.Sync(g.scene.Phase())
		}

	case input.EffectCancelCut:
		g.scene.CancelCut()

	case input.EffectQuickSave:
		g.QuickSaves.Send(QuickSave{})
		g.saved = g.scene.Entities()
		g.hasSaved = true

		slog.Info("Quicksave", slog.Int("entities", len(g.saved)))

	case input.EffectQuickLoad:
		g.QuickLoads.Send(QuickLoad{})

		if !g.hasSaved {
			slog.Warn("Nothing to quickload")
			return
		}

		g.scene.Restore(g.saved)
		g.dispatcher.Sync(g.scene.Phase())

		slog.Info("Quickload", slog.Int("entities", len(g.saved)))

	case input.EffectReserved:
		slog.Debug("Gesture not bound", slog.String("rule", result.Rule))
	}
}

// Load resets the scene and spawns the given level. An invalid level
// reference panics.
func (g *Game) Load(level levels.Level) error {
	spawn := g.catalog.Get(level)

	target, source, err := g.shapes.Resolve(spawn)
	if err != nil {
		return fmt.Errorf("load level %s: %w", level, err)
	}

	slog.Info("Load level",
		slog.String("level", level.String()),
		slog.String("target", spawn.Target),
		slog.String("source", spawn.Source),
		slog.Int("cuts", spawn.Cuts),
	)

	g.scene.Reset()
	g.camera.SetPose(glm.Vec2f{}, 0, 1)
	g.scene.Spawn(scene.KindSource, 0, source.Points...)
	g.dispatcher.Sync(input.Idle)

	g.level = level
	g.target = target
	g.cutsRemaining = spawn.Cuts
	g.saved = nil
	g.hasSaved = false

	if level.Tier == levels.TierSimplicity {
		levels.SendTutorialText(level.Index, &g.Instructions)
	}

	return nil
}

// NextLevel loads the level following the current one. It returns false
// once the last level was reached.
func (g *Game) NextLevel() (bool, error) {
	next, ok := g.catalog.Next(g.level)
	if !ok {
		return false, nil
	}

	return true, g.Load(next)
}

func (g *Game) Level() levels.Level {
	return g.level
}

func (g *Game) Target() levels.Shape {
	return g.target
}

func (g *Game) CutsRemaining() int {
	return g.cutsRemaining
}

func (g *Game) Cursor() input.Cursor {
	return g.cursor
}

func (g *Game) Camera() *input.Camera {
	return g.camera
}

func (g *Game) Phase() input.Phase {
	return g.dispatcher.Phase()
}

func (g *Game) Scene() *scene.Scene {
	return &g.scene
}
