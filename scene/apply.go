package scene

import (
	"log/slog"

	"github.com/oliverbestmann/shapeshifter/input"
)

// minPolygonPoints is the number of points a finished polygon needs.
const minPolygonPoints = 3

// Apply performs the action on the scene.
func (s *Scene) Apply(action input.Action) {
	switch action := action.(type) {
	case input.StartMakingPolygon:
		id := s.Spawn(KindPolygon, MakingPolygon|MakingSegment, action.Pos)
		slog.Debug("Start polygon", slog.Int("entity", int(id)))

	case input.StartMakingSegment:
		if polygon, ok := s.Single(MakingPolygon); ok {
			polygon.Markers |= MakingSegment
		}

	case input.EndSegment:
		polygon, ok := s.Single(MakingPolygon)
		if !ok {
			slog.Warn("No polygon to add segment to")
			return
		}

		polygon.Points = append(polygon.Points, action.Pos)
		polygon.Markers |= MakingSegment

	case input.EndMakingPolygon:
		polygon, ok := s.Single(MakingPolygon)
		if !ok {
			return
		}

		polygon.Markers &^= MakingPolygon | MakingSegment

		if len(polygon.Points) < minPolygonPoints {
			slog.Info("Discard degenerate polygon",
				slog.Int("entity", int(polygon.ID)),
				slog.Int("points", len(polygon.Points)),
			)

			s.Despawn(polygon.ID)
		}

	case input.StartMakingCutSegment:
		id := s.Spawn(KindCut, MakingCutSegment, action.Start)
		slog.Debug("Start cut", slog.Int("entity", int(id)))

	case input.EndCutSegment:
		cut, ok := s.Single(MakingCutSegment)
		if !ok {
			slog.Warn("No cut to end")
			return
		}

		cut.Points = append(cut.Points, action.End)
		cut.Markers &^= MakingCutSegment

	case input.Delete:
		s.deleteLatestFinished()
	}
}

// CancelCut removes the cut segment currently being drawn.
func (s *Scene) CancelCut() bool {
	cut, ok := s.Single(MakingCutSegment)
	if !ok {
		return false
	}

	return s.Despawn(cut.ID)
}

func (s *Scene) deleteLatestFinished() {
	for idx := len(s.entities) - 1; idx >= 0; idx-- {
		entity := s.entities[idx]
		if entity.Markers != 0 || entity.Kind == KindSource {
			continue
		}

		slog.Debug("Delete entity",
			slog.Int("entity", int(entity.ID)),
			slog.String("kind", entity.Kind.String()),
		)

		s.Despawn(entity.ID)
		return
	}
}
