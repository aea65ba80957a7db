package scene

import (
	"fmt"
	"slices"
	"strings"

	"github.com/oliverbestmann/shapeshifter/glm"
	"github.com/oliverbestmann/shapeshifter/input"
)

type EntityID uint32

//go:generate stringer -type=Kind -trimprefix=Kind

type Kind uint8

const (
	KindPolygon Kind = iota
	KindCut

	// the polygon a level starts with, it can be cut but not deleted
	KindSource
)

// Marker tags an entity as being in a transient drawing state.
type Marker uint8

const (
	MakingPolygon Marker = 1 << iota
	MakingSegment
	MakingCutSegment
)

func (m Marker) String() string {
	var parts []string
	if m&MakingPolygon != 0 {
		parts = append(parts, "MakingPolygon")
	}

	if m&MakingSegment != 0 {
		parts = append(parts, "MakingSegment")
	}

	if m&MakingCutSegment != 0 {
		parts = append(parts, "MakingCutSegment")
	}

	return strings.Join(parts, "|")
}

type Entity struct {
	ID      EntityID
	Kind    Kind
	Points  []glm.Vec2f
	Markers Marker
}

func (e *Entity) Has(marker Marker) bool {
	return e.Markers&marker != 0
}

// Scene holds the polygons and cuts of the current level, in the order
// they were spawned.
type Scene struct {
	lastID   EntityID
	entities []*Entity
}

func (s *Scene) Spawn(kind Kind, markers Marker, points ...glm.Vec2f) EntityID {
	s.lastID++

	s.entities = append(s.entities, &Entity{
		ID:      s.lastID,
		Kind:    kind,
		Points:  slices.Clone(points),
		Markers: markers,
	})

	return s.lastID
}

func (s *Scene) Get(id EntityID) (*Entity, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, false
	}

	return s.entities[idx], true
}

func (s *Scene) Despawn(id EntityID) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	s.entities = slices.Delete(s.entities, idx, idx+1)
	return true
}

func (s *Scene) Len() int {
	return len(s.entities)
}

// Entities returns copies of all entities.
func (s *Scene) Entities() []Entity {
	result := make([]Entity, 0, len(s.entities))
	for _, entity := range s.entities {
		copied := *entity
		copied.Points = slices.Clone(entity.Points)
		result = append(result, copied)
	}

	return result
}

func (s *Scene) Reset() {
	s.entities = nil
}

func (s *Scene) Count(marker Marker) int {
	var count int
	for _, entity := range s.entities {
		if entity.Has(marker) {
			count++
		}
	}

	return count
}

func (s *Scene) WithMarker(marker Marker) []EntityID {
	var ids []EntityID
	for _, entity := range s.entities {
		if entity.Has(marker) {
			ids = append(ids, entity.ID)
		}
	}

	return ids
}

// Single returns the only entity carrying the marker. It panics if more
// than one entity carries it.
func (s *Scene) Single(marker Marker) (*Entity, bool) {
	var found *Entity

	for _, entity := range s.entities {
		if !entity.Has(marker) {
			continue
		}

		if found != nil {
			panic(fmt.Sprintf("more than one entity marked with %s", marker))
		}

		found = entity
	}

	return found, found != nil
}

func (s *Scene) RemoveMarker(id EntityID, marker Marker) {
	if entity, ok := s.Get(id); ok {
		entity.Markers &^= marker
	}
}

func (s *Scene) MakingSegment() []EntityID {
	return s.WithMarker(MakingSegment)
}

func (s *Scene) RemoveMakingSegment(id EntityID) {
	s.RemoveMarker(id, MakingSegment)
}

// Phase derives the interaction phase from the markers present.
func (s *Scene) Phase() input.Phase {
	var phase input.Phase

	if s.Count(MakingPolygon) > 0 {
		phase |= input.DrawingPolygon
	}

	if s.Count(MakingCutSegment) > 0 {
		phase |= input.DrawingCut
	}

	return phase
}

func (s *Scene) indexOf(id EntityID) int {
	return slices.IndexFunc(s.entities, func(entity *Entity) bool {
		return entity.ID == id
	})
}

// Restore replaces all entities with copies of the given ones.
func (s *Scene) Restore(entities []Entity) {
	s.entities = s.entities[:0]

	for _, entity := range entities {
		copied := entity
		copied.Points = slices.Clone(entity.Points)
		s.entities = append(s.entities, &copied)

		s.lastID = max(s.lastID, entity.ID)
	}
}
