package input

import (
	"github.com/oliverbestmann/shapeshifter/glimpse"
	"github.com/oliverbestmann/shapeshifter/glm"
)

// Camera is the active 2d camera. Transform maps camera space into
// world space.
type Camera struct {
	Transform glm.Mat4f
}

func NewCamera() *Camera {
	return &Camera{Transform: glm.IdentityMat4[float32]()}
}

// SetPose places the camera at the given world position, rotated
// counter clockwise by rotation and zoomed by zoom.
func (c *Camera) SetPose(position glm.Vec2f, rotation glm.Rad, zoom float32) {
	c.Transform = glm.TranslationMat4(position[0], position[1], 0).
		Mul(glm.RotationZMat4[float32](rotation)).
		Scale(zoom, zoom, 1)
}

// ScreenToWorld maps a point given relative to the window center into
// world space.
func (c *Camera) ScreenToWorld(screen glm.Vec2f) glm.Vec2f {
	// the projection zoom is not taken into account yet
	const scale float32 = 1.0

	world := c.Transform.
		Transform(screen.Extend(0).Extend(1 / scale)).
		MulScalar(scale)

	return world.XY()
}

type Cursor struct {
	// world position of the pointer
	Position glm.Vec2f

	// Position minus LastClickPosition
	PosRelativeToClick glm.Vec2f

	LastClickPosition      glm.Vec2f
	LastRightClickPosition glm.Vec2f
}

// Update applies this frame's pointer movement and click anchors. windowSize
// is the size of the primary window in pixels. Pointer positions are
// expected with the origin in the lower left corner of the window.
func (c *Cursor) Update(input *glimpse.InputState, windowSize glm.Vec2f, camera *Camera) {
	if camera == nil {
		panic("cursor: no active camera")
	}

	for _, pixel := range input.Mouse.Moves {
		screen := pixel.Sub(windowSize.MulScalar(0.5))

		c.Position = camera.ScreenToWorld(screen)
		c.PosRelativeToClick = c.Position.Sub(c.LastClickPosition)
	}

	if input.Mouse.JustPressed[glimpse.MouseButtonLeft] {
		c.LastClickPosition = c.Position
		c.PosRelativeToClick = glm.Vec2f{}
	}

	if input.Mouse.JustPressed[glimpse.MouseButtonRight] {
		c.LastRightClickPosition = c.Position
	}
}

// WithinRect reports whether the cursor lies strictly inside the axis
// aligned rectangle with the given center and size.
func (c *Cursor) WithinRect(center, size glm.Vec2f) bool {
	half := size.MulScalar(0.5)

	return c.Position[0] < center[0]+half[0] &&
		c.Position[0] > center[0]-half[0] &&
		c.Position[1] < center[1]+half[1] &&
		c.Position[1] > center[1]-half[1]
}
