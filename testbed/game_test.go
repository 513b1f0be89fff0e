package testbed

import (
	"testing"

	"github.com/spaghettifunk/pong/engine"
	"github.com/spaghettifunk/pong/engine/config"
	"github.com/spaghettifunk/pong/engine/core"
	"github.com/spaghettifunk/pong/engine/math"
)

func newTestGame() *PongGame {
	return NewPongGame(engine.NewApplicationConfig(config.Default()))
}

func TestPhases(t *testing.T) {
	g := newTestGame()
	s := g.state()

	g.OnKey(core.KEY_SPACE, true)
	if s.Phase != PhasePlaying {
		t.Fatalf("phase = %s after space, want playing", s.Phase)
	}
	if s.Scene.Ball.Velocity.X == 0 {
		t.Fatalf("ball not served")
	}
	// space while playing does nothing
	v := s.Scene.Ball.Velocity
	g.OnKey(core.KEY_SPACE, true)
	if s.Phase != PhasePlaying || s.Scene.Ball.Velocity != v {
		t.Fatalf("space while playing changed the game")
	}

	s.Scene.Ball.Position = math.NewVec2(5, 0)
	if err := g.Update(0.016); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if s.Phase != PhaseEnd {
		t.Fatalf("phase = %s with ball out, want end", s.Phase)
	}

	g.OnKey(core.KEY_SPACE, true)
	if s.Phase != PhaseStart || s.Scene.Ball.Position != math.NewVec2(0, 0) {
		t.Fatalf("phase = %s, ball = %v after reset", s.Phase, s.Scene.Ball.Position)
	}
}

func TestPaddleKeys(t *testing.T) {
	tests := []struct {
		key     core.KeyCode
		pressed bool
		left    float32
		right   float32
	}{
		{key: core.KEY_W, pressed: true, left: -PaddleSpeed},
		{key: core.KEY_S, pressed: true, left: PaddleSpeed},
		{key: core.KEY_I, pressed: true, right: -PaddleSpeed},
		{key: core.KEY_K, pressed: true, right: PaddleSpeed},
		{key: core.KEY_W, pressed: false},
		{key: core.KEY_P, pressed: true},
	}
	for _, tt := range tests {
		g := newTestGame()
		g.OnKey(tt.key, tt.pressed)
		s := g.state().Scene
		if s.LeftPaddle.Velocity != tt.left || s.RightPaddle.Velocity != tt.right {
			t.Fatalf("key %d pressed=%v: velocities %v, %v; want %v, %v",
				tt.key, tt.pressed, s.LeftPaddle.Velocity, s.RightPaddle.Velocity, tt.left, tt.right)
		}
	}
}

func TestCameraAspect(t *testing.T) {
	g := newTestGame()
	if got, want := g.Camera().Aspect(), float32(800)/float32(600); got != want {
		t.Fatalf("camera aspect = %v, want %v", got, want)
	}
	if len(g.ModelTransforms()) != len(g.ModelData()) {
		t.Fatalf("transform and model counts differ")
	}
}
