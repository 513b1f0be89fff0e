package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-5

func assertMat4(t *testing.T, got Mat4, want mgl32.Mat4) {
	t.Helper()
	for i := 0; i < 16; i++ {
		if kabs(got.Data[i]-want[i]) > tolerance {
			t.Fatalf("element %d = %v, want %v\n got: %v\nwant: %v", i, got.Data[i], want[i], got.Data, want)
		}
	}
}

func TestPerspectiveMatchesMathGL(t *testing.T) {
	tests := []struct {
		name                  string
		fov, aspect, nr, far float32
	}{
		{name: "pong 800x600", fov: 45, aspect: 800.0 / 600.0, nr: 0.1, far: 10},
		{name: "pong 400x300", fov: 45, aspect: 400.0 / 300.0, nr: 0.1, far: 10},
		{name: "wide", fov: 60, aspect: 16.0 / 9.0, nr: 1, far: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMat4Perspective(DegToRad(tt.fov), tt.aspect, tt.nr, tt.far)
			want := mgl32.Perspective(mgl32.DegToRad(tt.fov), tt.aspect, tt.nr, tt.far)
			assertMat4(t, got, want)
		})
	}
}

func TestLookAtMatchesMathGL(t *testing.T) {
	tests := []struct {
		name             string
		eye, target, up Vec3
	}{
		{name: "pong camera", eye: NewVec3(0, 0, 4), target: NewVec3Zero(), up: NewVec3Up()},
		{name: "offset", eye: NewVec3(1, 2, 3), target: NewVec3(-1, 0.5, 0), up: NewVec3Up()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMat4LookAt(tt.eye, tt.target, tt.up)
			want := mgl32.LookAtV(
				mgl32.Vec3{tt.eye.X, tt.eye.Y, tt.eye.Z},
				mgl32.Vec3{tt.target.X, tt.target.Y, tt.target.Z},
				mgl32.Vec3{tt.up.X, tt.up.Y, tt.up.Z},
			)
			assertMat4(t, got, want)
		})
	}
}

func TestTranslationAndMul(t *testing.T) {
	tr := NewMat4Translation(NewVec3(1, -2, 0.5))
	assertMat4(t, tr, mgl32.Translate3D(1, -2, 0.5))
	if !tr.Translation().Compare(NewVec3(1, -2, 0.5), tolerance) {
		t.Fatalf("Translation() = %v", tr.Translation())
	}

	// a.Mul(b) applies a first, then b
	a := NewMat4Translation(NewVec3(1, 0, 0))
	b := NewMat4Perspective(DegToRad(45), 1, 0.1, 10)
	want := mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 10).Mul4(mgl32.Translate3D(1, 0, 0))
	assertMat4(t, a.Mul(b), want)

	if got := NewMat4Identity().Mul(tr); got != tr {
		t.Fatalf("identity.Mul(tr) = %v, want %v", got.Data, tr.Data)
	}
}

func TestTransformMovesPointToClipSpace(t *testing.T) {
	view := NewMat4LookAt(NewVec3(0, 0, 4), NewVec3Zero(), NewVec3Up())
	p := NewVec4(0, 0, 0, 1).Transform(view)
	if !NewVec3(p.X, p.Y, p.Z).Compare(NewVec3(0, 0, -4), tolerance) || p.W != 1 {
		t.Fatalf("origin in view space = %v, want (0, 0, -4, 1)", p)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(float32(2.5), -2, 2); got != 2 {
		t.Fatalf("Clamp(2.5) = %v", got)
	}
	if got := Clamp(uint32(10), 20, 4096); got != 20 {
		t.Fatalf("Clamp(10) = %v", got)
	}
	if got := Clamp(-1, -2, 2); got != -1 {
		t.Fatalf("Clamp(-1) = %v", got)
	}
}
