package input

import (
	"github.com/oliverbestmann/shapeshifter/glimpse"
)

// SegmentMarkers gives access to the entities marked as having a segment
// in progress.
type SegmentMarkers[E comparable] interface {
	MakingSegment() []E
	RemoveMakingSegment(entity E)
}

// ReleaseSegments removes the in-progress segment marker from all
// entities once the left mouse button is released. It returns the
// number of markers removed.
func ReleaseSegments[E comparable](input *glimpse.InputState, markers SegmentMarkers[E]) int {
	if !input.Mouse.JustReleased[glimpse.MouseButtonLeft] {
		return 0
	}

	entities := markers.MakingSegment()
	for _, entity := range entities {
		markers.RemoveMakingSegment(entity)
	}

	return len(entities)
}
