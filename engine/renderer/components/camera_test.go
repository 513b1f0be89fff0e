package components

import (
	"testing"

	"github.com/spaghettifunk/pong/engine/math"
)

func newPongCamera() *Camera {
	return NewCamera(math.NewVec3(0, 0, 4), math.NewVec3Zero(), math.NewVec3Up(), math.DegToRad(45), 0.1, 10)
}

func TestCameraAspect(t *testing.T) {
	c := newPongCamera()
	c.SetAspect(800, 600)
	if c.Aspect() != float32(800)/float32(600) {
		t.Fatalf("Aspect() = %v", c.Aspect())
	}
	want := math.NewMat4Perspective(math.DegToRad(45), float32(800)/float32(600), 0.1, 10)
	if c.GetProjection() != want {
		t.Fatalf("projection not rebuilt for 800x600")
	}

	c.SetAspect(400, 300)
	if c.Aspect() != float32(400)/float32(300) {
		t.Fatalf("Aspect() after resize = %v", c.Aspect())
	}

	c.SetAspect(0, 300)
	if c.Aspect() != float32(400)/float32(300) {
		t.Fatalf("zero width changed the aspect to %v", c.Aspect())
	}
}

func TestCameraViewFollowsPosition(t *testing.T) {
	c := newPongCamera()
	if got := c.GetView().Translation(); !got.Compare(math.NewVec3(0, 0, -4), 1e-6) {
		t.Fatalf("view translation = %v, want (0, 0, -4)", got)
	}
	c.SetPosition(math.NewVec3(0, 0, 6))
	if got := c.GetView().Translation(); !got.Compare(math.NewVec3(0, 0, -6), 1e-6) {
		t.Fatalf("view translation after move = %v, want (0, 0, -6)", got)
	}
}
