package levels

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/shapeshifter/glm"
)

// Shape is the outline of a level asset.
type Shape struct {
	ID     string
	Points []glm.Vec2f
}

// Clone returns a copy of the shape that shares no memory with s.
func (s Shape) Clone() Shape {
	return Shape{ID: s.ID, Points: slices.Clone(s.Points)}
}

func (s Shape) Scaled(scale float32) Shape {
	points := make([]glm.Vec2f, len(s.Points))
	for idx, point := range s.Points {
		points[idx] = point.MulScalar(scale)
	}

	return Shape{ID: s.ID, Points: points}
}

type Loader interface {
	LoadShape(id string) (Shape, error)
}

type LoaderFunc func(id string) (Shape, error)

func (fn LoaderFunc) LoadShape(id string) (Shape, error) {
	return fn(id)
}

// FSLoader reads shapes from "<id>.json" files, each holding a json
// array of [x, y] points.
type FSLoader struct {
	FS fs.FS
}

func (l FSLoader) LoadShape(id string) (Shape, error) {
	buf, err := fs.ReadFile(l.FS, id+".json")
	if err != nil {
		return Shape{}, fmt.Errorf("read shape %q: %w", id, err)
	}

	var points []glm.Vec2f
	if err := json.Unmarshal(buf, &points); err != nil {
		return Shape{}, fmt.Errorf("decode shape %q: %w", id, err)
	}

	if len(points) < 3 {
		return Shape{}, fmt.Errorf("shape %q has only %d points", id, len(points))
	}

	return Shape{ID: id, Points: points}, nil
}

// ShapeLibrary caches loaded shapes. Restarting a level does not hit
// the loader again.
type ShapeLibrary struct {
	loader Loader
	cache  *lru.Cache[string, Shape]
}

func NewShapeLibrary(loader Loader, size int) (*ShapeLibrary, error) {
	cache, err := lru.New[string, Shape](size)
	if err != nil {
		return nil, fmt.Errorf("create shape cache: %w", err)
	}

	return &ShapeLibrary{loader: loader, cache: cache}, nil
}

// Shape returns the shape with the given id. The result is a copy and may
// be modified by the caller.
func (l *ShapeLibrary) Shape(id string) (Shape, error) {
	if shape, ok := l.cache.Get(id); ok {
		return shape.Clone(), nil
	}

	shape, err := l.loader.LoadShape(id)
	if err != nil {
		return Shape{}, err
	}

	slog.Debug("Loaded shape",
		slog.String("id", id),
		slog.Int("points", len(shape.Points)),
	)

	l.cache.Add(id, shape)

	return shape.Clone(), nil
}

// Resolve loads the target and source shape of a level. The source shape
// is scaled by the level's scale.
func (l *ShapeLibrary) Resolve(level SpawnLevel) (target, source Shape, err error) {
	target, err = l.Shape(level.Target)
	if err != nil {
		return Shape{}, Shape{}, fmt.Errorf("load target: %w", err)
	}

	source, err = l.Shape(level.Source)
	if err != nil {
		return Shape{}, Shape{}, fmt.Errorf("load source: %w", err)
	}

	return target, source.Scaled(level.EffectiveScale()), nil
}
