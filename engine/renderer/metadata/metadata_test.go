package metadata

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/pong/engine/core"
	"github.com/spaghettifunk/pong/engine/math"
)

func TestVertexLayout(t *testing.T) {
	if VertexStride != 20 {
		t.Fatalf("VertexStride = %d, want 20", VertexStride)
	}
	if VertexPositionOffset != 0 || VertexColorOffset != 8 {
		t.Fatalf("offsets = %d, %d; want 0, 8", VertexPositionOffset, VertexColorOffset)
	}
	if UniformTransformSize != 192 {
		t.Fatalf("UniformTransformSize = %d, want 192", UniformTransformSize)
	}
}

func TestNewQuad(t *testing.T) {
	q := NewQuad("paddle", 0.2, 0.5)
	if err := q.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if len(q.Vertices) != 4 || q.IndexCount() != 6 {
		t.Fatalf("quad has %d vertices and %d indices", len(q.Vertices), q.IndexCount())
	}
	if q.Vertices[2].Position != [2]float32{0.2, 0.5} {
		t.Fatalf("vertex 2 = %v", q.Vertices[2].Position)
	}
	if got := len(VertexBytes(q.Vertices)); got != 80 {
		t.Fatalf("VertexBytes length = %d, want 80", got)
	}
	if got := len(IndexBytes(q.Indices)); got != 24 {
		t.Fatalf("IndexBytes length = %d, want 24", got)
	}
	// the builder must not alias the shared index table
	q.Indices[0] = 3
	if QuadIndices[0] != 0 {
		t.Fatalf("NewQuad aliases QuadIndices")
	}
}

func TestMeshValidate(t *testing.T) {
	tri := []Vertex{NewVertex(0, 0, ColorRed), NewVertex(1, 0, ColorRed), NewVertex(0, 1, ColorRed)}
	tests := []struct {
		name string
		mesh Mesh
	}{
		{name: "no vertices", mesh: Mesh{Indices: []uint32{0, 1, 2}}},
		{name: "no indices", mesh: Mesh{Vertices: tri}},
		{name: "not a triangle list", mesh: Mesh{Vertices: tri, Indices: []uint32{0, 1}}},
		{name: "index out of range", mesh: Mesh{Vertices: tri, Indices: []uint32{0, 1, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.mesh.Validate(); !errors.Is(err, core.ErrInvalidMesh) {
				t.Fatalf("Validate() = %v, want ErrInvalidMesh", err)
			}
		})
	}
}

func TestUniformTransformBytes(t *testing.T) {
	u := UniformTransform{
		Model:      math.NewMat4Translation(math.NewVec3(1, 2, 3)),
		View:       math.NewMat4Identity(),
		Projection: math.NewMat4Identity(),
	}
	b := u.Bytes()
	if len(b) != 192 {
		t.Fatalf("len(Bytes()) = %d, want 192", len(b))
	}
	// float32(1.0) little-endian is 00 00 80 3f; model translation x sits at float 12
	if b[48] != 0x00 || b[49] != 0x00 || b[50] != 0x80 || b[51] != 0x3f {
		t.Fatalf("model[12] bytes = % x", b[48:52])
	}
}
