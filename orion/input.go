package orion

import (
	"github.com/oliverbestmann/shapeshifter/glimpse"
)

// CurrentInput returns the input snapshot of the current frame.
func CurrentInput() *glimpse.InputState {
	inputState := currentInputState.Get()
	return &inputState
}
