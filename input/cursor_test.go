package input

import (
	"math"
	"testing"

	"github.com/oliverbestmann/shapeshifter/glimpse"
	"github.com/oliverbestmann/shapeshifter/glm"
	"github.com/stretchr/testify/assert"
)

var windowSize = glm.Vec2f{800, 600}

func TestCursorCentersOnWindow(t *testing.T) {
	var input glimpse.InputState
	input.Mouse.Move(400, 300)

	var cursor Cursor
	cursor.Update(&input, windowSize, NewCamera())

	assert.Equal(t, glm.Vec2f{0, 0}, cursor.Position)
}

func TestCursorLastMoveWins(t *testing.T) {
	var input glimpse.InputState
	input.Mouse.Move(0, 0)
	input.Mouse.Move(10, 590)
	input.Mouse.Move(500, 400)

	var cursor Cursor
	cursor.Update(&input, windowSize, NewCamera())

	assert.Equal(t, glm.Vec2f{100, 100}, cursor.Position)
	assert.Equal(t, cursor.Position.Sub(cursor.LastClickPosition), cursor.PosRelativeToClick)
}

func TestCursorAppliesCameraTransform(t *testing.T) {
	camera := &Camera{
		Transform: glm.TranslationMat4[float32](-50, 25, 0).Scale(2, 2, 1),
	}

	var input glimpse.InputState
	input.Mouse.Move(410, 290)

	var cursor Cursor
	cursor.Update(&input, windowSize, camera)

	// centered (10, -10), scaled by two, then moved by the camera
	assert.Equal(t, glm.Vec2f{-30, 5}, cursor.Position)
}

func TestCursorFollowsRotatedCamera(t *testing.T) {
	camera := NewCamera()
	camera.SetPose(glm.Vec2f{100, 0}, glm.Rad(math.Pi/2), 2)

	var input glimpse.InputState
	input.Mouse.Move(410, 300)

	var cursor Cursor
	cursor.Update(&input, windowSize, camera)

	// (10, 0) zoomed to (20, 0), rotated to (0, 20), then moved
	assert.InDelta(t, 100, cursor.Position[0], 1e-4)
	assert.InDelta(t, 20, cursor.Position[1], 1e-4)
}

func TestCursorWithoutMovementKeepsPosition(t *testing.T) {
	cursor := Cursor{Position: glm.Vec2f{3, 4}}

	var input glimpse.InputState
	cursor.Update(&input, windowSize, NewCamera())

	assert.Equal(t, glm.Vec2f{3, 4}, cursor.Position)
}

func TestCursorLeftClickSetsAnchor(t *testing.T) {
	var cursor Cursor
	camera := NewCamera()

	var input glimpse.InputState
	input.Mouse.Move(420, 330)
	input.Mouse.Press(glimpse.MouseButtonLeft)
	cursor.Update(&input, windowSize, camera)

	assert.Equal(t, glm.Vec2f{20, 30}, cursor.LastClickPosition)
	assert.Equal(t, glm.Vec2f{}, cursor.PosRelativeToClick)

	// dragging while the button is held
	input.NextTick()
	input.Mouse.Move(425, 320)
	cursor.Update(&input, windowSize, camera)

	assert.Equal(t, glm.Vec2f{20, 30}, cursor.LastClickPosition)
	assert.Equal(t, glm.Vec2f{5, -10}, cursor.PosRelativeToClick)
	assert.Equal(t, cursor.Position.Sub(cursor.LastClickPosition), cursor.PosRelativeToClick)
}

func TestCursorRightClickSetsSeparateAnchor(t *testing.T) {
	cursor := Cursor{LastClickPosition: glm.Vec2f{1, 1}}

	var input glimpse.InputState
	input.Mouse.Move(450, 300)
	input.Mouse.Press(glimpse.MouseButtonRight)
	cursor.Update(&input, windowSize, NewCamera())

	assert.Equal(t, glm.Vec2f{50, 0}, cursor.LastRightClickPosition)
	assert.Equal(t, glm.Vec2f{1, 1}, cursor.LastClickPosition)
	assert.Equal(t, glm.Vec2f{49, -1}, cursor.PosRelativeToClick)
}

func TestCursorRequiresCamera(t *testing.T) {
	var cursor Cursor
	var input glimpse.InputState

	assert.Panics(t, func() {
		cursor.Update(&input, windowSize, nil)
	})
}

func TestCursorWithinRect(t *testing.T) {
	cursor := Cursor{Position: glm.Vec2f{10, 10}}

	assert.True(t, cursor.WithinRect(glm.Vec2f{0, 0}, glm.Vec2f{30, 30}))
	assert.False(t, cursor.WithinRect(glm.Vec2f{0, 0}, glm.Vec2f{20, 20}))
	assert.False(t, cursor.WithinRect(glm.Vec2f{100, 0}, glm.Vec2f{30, 30}))
}
