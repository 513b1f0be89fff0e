package testbed

import (
	"golang.org/x/exp/rand"

	"github.com/spaghettifunk/pong/engine/math"
	"github.com/spaghettifunk/pong/engine/renderer/metadata"
)

// Scene positions are in scene units. The model matrix translates by half the
// position, so on screen a mesh keeps its size while the positions shrink;
// collision extents below are mesh extents expressed in scene units.
const (
	PaddleX        float32 = 3.7
	PaddleSpeed    float32 = 2.0
	PaddleLimit    float32 = 2.0
	WallY          float32 = 3.2
	OutOfBoundsX   float32 = 4.7
	KickoffSpreadY float32 = 0.3

	paddleHalfWidth  float32 = 0.2
	paddleHalfHeight float32 = 0.5
	ballHalfSize     float32 = 0.1
	wallWidth        float32 = 4.4
	wallHeight       float32 = 0.1

	sceneScale float32 = 0.5
)

type Action uint8

const (
	ActionLeftPaddleUp Action = iota
	ActionLeftPaddleDown
	ActionLeftPaddleStop
	ActionRightPaddleUp
	ActionRightPaddleDown
	ActionRightPaddleStop
	ActionKickoff
	ActionGameOver
	ActionResetGame
)

type Paddle struct {
	Position math.Vec2
	// Vertical speed; negative moves up.
	Velocity float32
	Mesh     metadata.Mesh
}

type Ball struct {
	Position math.Vec2
	Velocity math.Vec2
	Mesh     metadata.Mesh
}

type Wall struct {
	Position math.Vec2
	Mesh     metadata.Mesh
}

type Scene struct {
	LeftPaddle  Paddle
	RightPaddle Paddle
	TopWall     Wall
	BottomWall  Wall
	Ball        Ball

	rng *rand.Rand
}

// NewScene lays out the court. The seed drives the kickoff direction.
func NewScene(seed uint64) *Scene {
	return &Scene{
		LeftPaddle: Paddle{
			Position: math.NewVec2(-PaddleX, 0),
			Mesh:     metadata.NewQuad("left_paddle", paddleHalfWidth, paddleHalfHeight),
		},
		RightPaddle: Paddle{
			Position: math.NewVec2(PaddleX, 0),
			Mesh:     metadata.NewQuad("right_paddle", paddleHalfWidth, paddleHalfHeight),
		},
		TopWall: Wall{
			Position: math.NewVec2(0, -WallY),
			Mesh:     metadata.NewQuad("top_wall", wallWidth/2, wallHeight/2),
		},
		BottomWall: Wall{
			Position: math.NewVec2(0, WallY),
			Mesh:     metadata.NewQuad("bottom_wall", wallWidth/2, wallHeight/2),
		},
		Ball: Ball{
			Position: math.NewVec2(0, 0),
			Mesh:     metadata.NewQuad("ball", ballHalfSize, ballHalfSize),
		},
		rng: rand.New(rand.NewSource(seed)),
	}
}

// modelMatrix places a mesh at a scene position.
func modelMatrix(position math.Vec2) math.Mat4 {
	return math.NewMat4Translation(position.MulScalar(sceneScale).ToVec3(0))
}

// ModelData lists the models in draw order: left paddle, right paddle, top
// wall, bottom wall, ball. ModelTransforms uses the same order.
func (s *Scene) ModelData() []metadata.ModelData {
	return []metadata.ModelData{
		{Mesh: s.LeftPaddle.Mesh, Transform: modelMatrix(s.LeftPaddle.Position)},
		{Mesh: s.RightPaddle.Mesh, Transform: modelMatrix(s.RightPaddle.Position)},
		{Mesh: s.TopWall.Mesh, Transform: modelMatrix(s.TopWall.Position)},
		{Mesh: s.BottomWall.Mesh, Transform: modelMatrix(s.BottomWall.Position)},
		{Mesh: s.Ball.Mesh, Transform: modelMatrix(s.Ball.Position)},
	}
}

func (s *Scene) ModelTransforms() []math.Mat4 {
	return []math.Mat4{
		modelMatrix(s.LeftPaddle.Position),
		modelMatrix(s.RightPaddle.Position),
		modelMatrix(s.TopWall.Position),
		modelMatrix(s.BottomWall.Position),
		modelMatrix(s.Ball.Position),
	}
}

func (s *Scene) HandleAction(action Action) {
	switch action {
	case ActionLeftPaddleUp:
		s.LeftPaddle.Velocity = -PaddleSpeed
	case ActionLeftPaddleDown:
		s.LeftPaddle.Velocity = PaddleSpeed
	case ActionLeftPaddleStop:
		s.LeftPaddle.Velocity = 0
	case ActionRightPaddleUp:
		s.RightPaddle.Velocity = -PaddleSpeed
	case ActionRightPaddleDown:
		s.RightPaddle.Velocity = PaddleSpeed
	case ActionRightPaddleStop:
		s.RightPaddle.Velocity = 0
	case ActionKickoff:
		s.Ball.Velocity = math.NewVec2(1, (s.rng.Float32()*2-1)*KickoffSpreadY)
		if s.rng.Intn(2) == 0 {
			s.Ball.Velocity.X = -1
		}
	case ActionGameOver:
		s.Ball.Velocity = math.NewVec2(0, 0)
		s.LeftPaddle.Velocity = 0
		s.RightPaddle.Velocity = 0
	case ActionResetGame:
		s.Ball.Position = math.NewVec2(0, 0)
		s.LeftPaddle.Position.Y = 0
		s.RightPaddle.Position.Y = 0
	}
}

// Update advances the paddles and the ball by dt seconds.
func (s *Scene) Update(dt float32) {
	s.LeftPaddle.Position.Y = math.Clamp(s.LeftPaddle.Position.Y+dt*s.LeftPaddle.Velocity, -PaddleLimit, PaddleLimit)
	s.RightPaddle.Position.Y = math.Clamp(s.RightPaddle.Position.Y+dt*s.RightPaddle.Velocity, -PaddleLimit, PaddleLimit)
	s.Ball.Position = s.Ball.Position.Add(s.Ball.Velocity.MulScalar(dt))

	s.bounceOffWalls()
	s.bounceOffPaddle(&s.LeftPaddle, -1)
	s.bounceOffPaddle(&s.RightPaddle, 1)
}

func (s *Scene) GameOver() bool {
	return s.Ball.Position.X > OutOfBoundsX || s.Ball.Position.X < -OutOfBoundsX
}

func (s *Scene) bounceOffWalls() {
	limit := WallY - (wallHeight/2+ballHalfSize)/sceneScale
	switch {
	case s.Ball.Position.Y < -limit && s.Ball.Velocity.Y < 0:
		s.Ball.Position.Y = -limit
		s.Ball.Velocity.Y = -s.Ball.Velocity.Y
	case s.Ball.Position.Y > limit && s.Ball.Velocity.Y > 0:
		s.Ball.Position.Y = limit
		s.Ball.Velocity.Y = -s.Ball.Velocity.Y
	}
}

// bounceOffPaddle reflects the ball off the front face of a paddle on the
// given side (-1 left, 1 right).
// TODO: resolve hits on the top and bottom edges of the paddle; the ball
// currently passes through them.
func (s *Scene) bounceOffPaddle(p *Paddle, side float32) {
	if s.Ball.Velocity.X*side <= 0 {
		return
	}
	face := p.Position.X*side - (paddleHalfWidth+ballHalfSize)/sceneScale
	reach := (paddleHalfHeight + ballHalfSize) / sceneScale
	x := s.Ball.Position.X * side
	if x < face || x > p.Position.X*side {
		return
	}
	if dy := s.Ball.Position.Y - p.Position.Y; dy < -reach || dy > reach {
		return
	}
	s.Ball.Position.X = face * side
	s.Ball.Velocity.X = -s.Ball.Velocity.X
}
