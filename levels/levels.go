package levels

import (
	"fmt"
)

//go:generate stringer -type=Tier -trimprefix=Tier

type Tier uint8

const (
	TierSimplicity Tier = iota
	TierConvexity
	TierPerplexity
	TierComplexity
)

var tiers = []Tier{TierSimplicity, TierConvexity, TierPerplexity, TierComplexity}

// Level references a level by its tier and the index within that tier.
type Level struct {
	Tier  Tier
	Index int
}

func Simplicity(idx int) Level { return Level{Tier: TierSimplicity, Index: idx} }
func Convexity(idx int) Level  { return Level{Tier: TierConvexity, Index: idx} }
func Perplexity(idx int) Level { return Level{Tier: TierPerplexity, Index: idx} }
func Complexity(idx int) Level { return Level{Tier: TierComplexity, Index: idx} }

func (l Level) String() string {
	return fmt.Sprintf("%s(%d)", l.Tier, l.Index)
}

// SpawnLevel describes what to spawn for a level: the target silhouette,
// the polygon the player starts with and the number of cuts allowed.
type SpawnLevel struct {
	Target string
	Source string
	Cuts   int

	// scale applied to the source shape, zero means the default scale
	Scale float32
}

const DefaultScale float32 = 1.0

func NewSpawnLevel(target, source string, cuts int) SpawnLevel {
	return SpawnLevel{Target: target, Source: source, Cuts: cuts}
}

func (s SpawnLevel) WithScale(scale float32) SpawnLevel {
	s.Scale = scale
	return s
}

func (s SpawnLevel) EffectiveScale() float32 {
	if s.Scale == 0 {
		return DefaultScale
	}

	return s.Scale
}

type GameLevels struct {
	Simplicity []SpawnLevel
	Convexity  []SpawnLevel
	Perplexity []SpawnLevel
	Complexity []SpawnLevel
}

func (g *GameLevels) tier(tier Tier) []SpawnLevel {
	switch tier {
	case TierSimplicity:
		return g.Simplicity
	case TierConvexity:
		return g.Convexity
	case TierPerplexity:
		return g.Perplexity
	case TierComplexity:
		return g.Complexity
	default:
		panic(fmt.Sprintf("unknown tier %s", tier))
	}
}

// Get returns the level definition. Level references are produced by the
// game itself, an invalid reference is a bug and causes a panic.
func (g *GameLevels) Get(level Level) SpawnLevel {
	levels := g.tier(level.Tier)

	if level.Index < 0 || level.Index >= len(levels) {
		panic(fmt.Sprintf("level %s out of range, tier has %d levels", level, len(levels)))
	}

	return levels[level.Index]
}

// Next returns the level following the given one, continuing with the
// first level of the next non empty tier.
func (g *GameLevels) Next(level Level) (Level, bool) {
	if level.Index+1 < len(g.tier(level.Tier)) {
		return Level{Tier: level.Tier, Index: level.Index + 1}, true
	}

	for _, tier := range tiers {
		if tier <= level.Tier {
			continue
		}

		if len(g.tier(tier)) > 0 {
			return Level{Tier: tier, Index: 0}, true
		}
	}

	return Level{}, false
}

// DefaultLevels returns the level catalog shipped with the game.
func DefaultLevels() *GameLevels {
	simplicity := []SpawnLevel{
		NewSpawnLevel("002_simplicity_square", "002_simplicity_square", 0),
		NewSpawnLevel("002_simplicity_square", "003_simplicity_square_oblique", 3),
		NewSpawnLevel("002_simplicity_square", "004_simplicity_square_cut", 4).WithScale(1.2),
		NewSpawnLevel("002_simplicity_square", "tree1", 3).WithScale(1.25),
		NewSpawnLevel("002_simplicity_square", "004_simplicity_square_parallel", 4).WithScale(1.15),
		NewSpawnLevel("002_simplicity_square", "octogone", 3).WithScale(1.5),
	}

	convexity := []SpawnLevel{
		NewSpawnLevel("eggplant", "tree1", 3).WithScale(1.3),
		NewSpawnLevel("crab1", "whale1", 3).WithScale(1.3),
		NewSpawnLevel("seal1", "pear", 3).WithScale(1.3),
	}

	return &GameLevels{
		Simplicity: simplicity,
		Convexity:  convexity,
	}
}
