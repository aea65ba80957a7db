package input

import (
	"fmt"

	"github.com/oliverbestmann/shapeshifter/glm"
)

// Action is a gameplay intent derived from raw input. The set of
// actions is closed.
type Action interface {
	fmt.Stringer
	isAction()
}

type StartMakingPolygon struct {
	Pos glm.Vec2f
}

type EndMakingPolygon struct{}

type StartMakingSegment struct {
	Pos glm.Vec2f
}

type EndSegment struct {
	Pos glm.Vec2f
}

type StartMakingCutSegment struct {
	Start glm.Vec2f
}

type EndCutSegment struct {
	End glm.Vec2f
}

type Delete struct{}

func (StartMakingPolygon) isAction()    {}
func (EndMakingPolygon) isAction()      {}
func (StartMakingSegment) isAction()    {}
func (EndSegment) isAction()            {}
func (StartMakingCutSegment) isAction() {}
func (EndCutSegment) isAction()         {}
func (Delete) isAction()                {}

func (a StartMakingPolygon) String() string {
	return fmt.Sprintf("StartMakingPolygon%v", a.Pos)
}

func (EndMakingPolygon) String() string {
	return "EndMakingPolygon"
}

func (a StartMakingSegment) String() string {
	return fmt.Sprintf("StartMakingSegment%v", a.Pos)
}

func (a EndSegment) String() string {
	return fmt.Sprintf("EndSegment%v", a.Pos)
}

func (a StartMakingCutSegment) String() string {
	return fmt.Sprintf("StartMakingCutSegment%v", a.Start)
}

func (a EndCutSegment) String() string {
	return fmt.Sprintf("EndCutSegment%v", a.End)
}

func (Delete) String() string {
	return "Delete"
}
