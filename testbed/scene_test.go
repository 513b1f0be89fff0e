package testbed

import (
	"testing"

	"github.com/spaghettifunk/pong/engine/math"
)

func TestModelOrder(t *testing.T) {
	s := NewScene(1)
	data := s.ModelData()
	want := []string{"left_paddle", "right_paddle", "top_wall", "bottom_wall", "ball"}
	if len(data) != len(want) {
		t.Fatalf("ModelData() returned %d models, want %d", len(data), len(want))
	}
	transforms := s.ModelTransforms()
	for i, name := range want {
		if data[i].Mesh.Name != name {
			t.Fatalf("model %d = %q, want %q", i, data[i].Mesh.Name, name)
		}
		if err := data[i].Mesh.Validate(); err != nil {
			t.Fatalf("model %q: %v", name, err)
		}
		if data[i].Transform != transforms[i] {
			t.Fatalf("model %q initial transform differs from ModelTransforms()", name)
		}
	}
	// scene positions are halved on screen
	if got := transforms[0].Translation(); got != math.NewVec3(-PaddleX/2, 0, 0) {
		t.Fatalf("left paddle translation = %v", got)
	}
}

func TestPaddleActions(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		dt     float32
		want   float32
	}{
		{name: "up", action: ActionLeftPaddleUp, dt: 0.5, want: -1},
		{name: "down", action: ActionLeftPaddleDown, dt: 0.5, want: 1},
		{name: "clamped", action: ActionLeftPaddleDown, dt: 5, want: PaddleLimit},
		{name: "stop", action: ActionLeftPaddleStop, dt: 1, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene(1)
			s.HandleAction(tt.action)
			s.Update(tt.dt)
			if s.LeftPaddle.Position.Y != tt.want {
				t.Fatalf("left paddle y = %v, want %v", s.LeftPaddle.Position.Y, tt.want)
			}
			if s.RightPaddle.Position.Y != 0 {
				t.Fatalf("right paddle moved to %v", s.RightPaddle.Position.Y)
			}
		})
	}
}

func TestKickoff(t *testing.T) {
	for seed := uint64(0); seed < 32; seed++ {
		s := NewScene(seed)
		s.HandleAction(ActionKickoff)
		v := s.Ball.Velocity
		if v.X != 1 && v.X != -1 {
			t.Fatalf("seed %d: velocity x = %v, want ±1", seed, v.X)
		}
		if v.Y < -KickoffSpreadY || v.Y >= KickoffSpreadY {
			t.Fatalf("seed %d: velocity y = %v outside [-%v, %v)", seed, v.Y, KickoffSpreadY, KickoffSpreadY)
		}
	}
}

func TestBallBouncesOffWall(t *testing.T) {
	s := NewScene(1)
	s.Ball.Position = math.NewVec2(0, 2.8)
	s.Ball.Velocity = math.NewVec2(0, 1)
	s.Update(0.5)
	if s.Ball.Velocity.Y != -1 {
		t.Fatalf("velocity y = %v after hitting the bottom wall, want -1", s.Ball.Velocity.Y)
	}
	if s.Ball.Position.Y > WallY {
		t.Fatalf("ball went through the wall: y = %v", s.Ball.Position.Y)
	}
}

func TestBallBouncesOffPaddleFace(t *testing.T) {
	s := NewScene(1)
	s.Ball.Position = math.NewVec2(3.0, 0.2)
	s.Ball.Velocity = math.NewVec2(1, 0)
	s.Update(0.2)
	if s.Ball.Velocity.X != -1 {
		t.Fatalf("velocity x = %v after hitting the right paddle, want -1", s.Ball.Velocity.X)
	}

	// a ball passing far above the paddle is not deflected
	s = NewScene(1)
	s.Ball.Position = math.NewVec2(3.0, -2.5)
	s.Ball.Velocity = math.NewVec2(1, 0)
	s.Update(0.2)
	if s.Ball.Velocity.X != 1 {
		t.Fatalf("ball deflected away from the paddle")
	}
}

func TestGameOverAndReset(t *testing.T) {
	s := NewScene(1)
	s.Ball.Position = math.NewVec2(-4.8, 0)
	s.Ball.Velocity = math.NewVec2(-1, 0.2)
	s.LeftPaddle.Velocity = PaddleSpeed
	s.LeftPaddle.Position.Y = 1
	if !s.GameOver() {
		t.Fatalf("GameOver() = false with ball at x=%v", s.Ball.Position.X)
	}
	s.HandleAction(ActionGameOver)
	if s.Ball.Velocity != math.NewVec2(0, 0) || s.LeftPaddle.Velocity != 0 {
		t.Fatalf("GameOver left things moving")
	}
	s.HandleAction(ActionResetGame)
	if s.Ball.Position != math.NewVec2(0, 0) || s.LeftPaddle.Position.Y != 0 {
		t.Fatalf("ResetGame did not recenter: ball %v paddle %v", s.Ball.Position, s.LeftPaddle.Position)
	}
	if s.GameOver() {
		t.Fatalf("GameOver() = true after reset")
	}
}
