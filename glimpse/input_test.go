package glimpse

import (
	"testing"

	"github.com/oliverbestmann/shapeshifter/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeysEdges(t *testing.T) {
	var keys KeysState

	keys.Press(KeyS)
	assert.True(t, keys.Pressed[KeyS])
	assert.True(t, keys.JustPressed[KeyS])

	keys.NextTick()
	assert.True(t, keys.Pressed[KeyS])
	assert.False(t, keys.JustPressed[KeyS])

	keys.Release(KeyS)
	assert.False(t, keys.Pressed[KeyS])
	assert.True(t, keys.JustReleased[KeyS])

	keys.NextTick()
	assert.False(t, keys.JustReleased[KeyS])
}

func TestMouseMoves(t *testing.T) {
	var mouse MouseState

	mouse.Move(10, 20)
	mouse.Move(15, 18)

	assert.Equal(t, []glm.Vec2f{{10, 20}, {15, 18}}, mouse.Moves)
	assert.Equal(t, float32(15), mouse.CursorX)
	assert.Equal(t, float32(18), mouse.DeltaY)

	mouse.NextTick()
	assert.Empty(t, mouse.Moves)
	assert.Zero(t, mouse.DeltaX)
	assert.Equal(t, float32(15), mouse.CursorX)
}

func TestCloneDoesNotAlias(t *testing.T) {
	var input InputState
	input.Mouse.Press(MouseButtonLeft)
	input.Mouse.Move(1, 2)

	snapshot := input.Clone()

	input.NextTick()
	input.Mouse.Move(3, 4)
	input.Mouse.Release(MouseButtonLeft)

	require.Len(t, snapshot.Mouse.Moves, 1)
	assert.Equal(t, glm.Vec2f{1, 2}, snapshot.Mouse.Moves[0])
	assert.True(t, snapshot.Mouse.JustPressed[MouseButtonLeft])
	assert.True(t, snapshot.Mouse.Pressed[MouseButtonLeft])
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "G", KeyG.String())
	assert.Equal(t, "Key(9999)", Key(9999).String())
}
