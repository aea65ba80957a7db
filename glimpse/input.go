package glimpse

import (
	"log/slog"
	"maps"

	"github.com/oliverbestmann/shapeshifter/glm"
)

type UpdateInputState func() InputState

type MouseButton uint32

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

type KeysState struct {
	// the keys that are currently marked as "pressed"
	Pressed map[Key]bool

	// keys that where just pressed after the last call to NextTick()
	JustPressed map[Key]bool

	// keys that were just released after the last call to NextTick()
	JustReleased map[Key]bool
}

func (k *KeysState) Press(key Key) {
	slog.Debug("Key just pressed", slog.String("key", key.String()))

	setTrue(&k.Pressed, key)
	setTrue(&k.JustPressed, key)
}

func (k *KeysState) Release(key Key) {
	setFalse(&k.Pressed, key)
	setTrue(&k.JustReleased, key)
}

func (k *KeysState) NextTick() {
	clear(k.JustPressed)
	clear(k.JustReleased)
}

type MouseState struct {
	// last known cursor position in pixels, origin in the lower left corner
	CursorX, CursorY float32

	// movement since last tick
	DeltaX, DeltaY float32

	// every cursor position reported since the last tick, in order
	Moves []glm.Vec2f

	Pressed map[MouseButton]bool

	// mouse buttons that were just clicked after the last call to NextTick()
	JustPressed map[MouseButton]bool

	// mouse buttons that were just released after the last call to NextTick()
	JustReleased map[MouseButton]bool
}

func (m *MouseState) Press(button MouseButton) {
	setTrue(&m.Pressed, button)
	setTrue(&m.JustPressed, button)
}

func (m *MouseState) Release(button MouseButton) {
	setFalse(&m.Pressed, button)
	setTrue(&m.JustReleased, button)
}

func (m *MouseState) Move(x, y float32) {
	m.DeltaX += x - m.CursorX
	m.DeltaY += y - m.CursorY

	m.CursorX = x
	m.CursorY = y

	m.Moves = append(m.Moves, glm.Vec2f{x, y})
}

func (m *MouseState) NextTick() {
	clear(m.JustPressed)
	clear(m.JustReleased)

	m.DeltaX = 0
	m.DeltaY = 0
	m.Moves = m.Moves[:0]
}

// InputState is a snapshot of the keyboard and mouse. Edge triggered
// state (JustPressed, JustReleased, Moves) is only valid until the
// next call to NextTick.
type InputState struct {
	Keys  KeysState
	Mouse MouseState
}

func (s *InputState) NextTick() {
	s.Keys.NextTick()
	s.Mouse.NextTick()
}

// Clone returns a deep copy of the input state. Snapshots handed to the
// game must not alias the maps the window keeps writing into.
func (s *InputState) Clone() InputState {
	return InputState{
		Keys: KeysState{
			Pressed:      maps.Clone(s.Keys.Pressed),
			JustPressed:  maps.Clone(s.Keys.JustPressed),
			JustReleased: maps.Clone(s.Keys.JustReleased),
		},
		Mouse: MouseState{
			CursorX:      s.Mouse.CursorX,
			CursorY:      s.Mouse.CursorY,
			DeltaX:       s.Mouse.DeltaX,
			DeltaY:       s.Mouse.DeltaY,
			Moves:        append([]glm.Vec2f(nil), s.Mouse.Moves...),
			Pressed:      maps.Clone(s.Mouse.Pressed),
			JustPressed:  maps.Clone(s.Mouse.JustPressed),
			JustReleased: maps.Clone(s.Mouse.JustReleased),
		},
	}
}

func setTrue[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = true
}

func setFalse[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = false
}
