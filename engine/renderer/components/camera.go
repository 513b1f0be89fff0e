package components

import (
	"github.com/spaghettifunk/pong/engine/math"
)

/**
 * @brief A perspective camera looking at a fixed target. The view matrix is
 * rebuilt when the eye moves; the projection is rebuilt when the aspect ratio
 * changes, which happens every time the swapchain is recreated.
 */
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
	/** @brief Vertical field of view in radians. */
	Fov  float32
	Near float32
	Far  float32

	aspect     float32
	isDirty    bool
	viewMatrix math.Mat4
	projection math.Mat4
}

func NewCamera(position, target, up math.Vec3, fovRadians, near, far float32) *Camera {
	c := &Camera{
		Position: position,
		Target:   target,
		Up:       up,
		Fov:      fovRadians,
		Near:     near,
		Far:      far,
		aspect:   1,
		isDirty:  true,
	}
	c.projection = math.NewMat4Perspective(c.Fov, c.aspect, c.Near, c.Far)
	return c
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.Position = position
	c.isDirty = true
}

// SetAspect recomputes the projection for a framebuffer of the given size.
// A zero dimension leaves the camera untouched.
func (c *Camera) SetAspect(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}
	c.aspect = float32(width) / float32(height)
	c.projection = math.NewMat4Perspective(c.Fov, c.aspect, c.Near, c.Far)
}

func (c *Camera) Aspect() float32 {
	return c.aspect
}

func (c *Camera) GetView() math.Mat4 {
	if c.isDirty {
		c.viewMatrix = math.NewMat4LookAt(c.Position, c.Target, c.Up)
		c.isDirty = false
	}
	return c.viewMatrix
}

func (c *Camera) GetProjection() math.Mat4 {
	return c.projection
}
