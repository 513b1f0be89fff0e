package metadata

import (
	"fmt"

	"github.com/spaghettifunk/pong/engine/core"
	"github.com/spaghettifunk/pong/engine/math"
)

var (
	ColorRed   = [3]float32{1, 0, 0}
	ColorGreen = [3]float32{0, 1, 0}
	ColorBlue  = [3]float32{0, 0, 1}
	ColorWhite = [3]float32{1, 1, 1}
)

// QuadIndices draws a quad as two clockwise triangles.
var QuadIndices = []uint32{0, 1, 2, 2, 3, 0}

// Mesh is an indexed triangle list.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// NewQuad builds an axis-aligned rectangle centred on the origin, with the
// corners coloured red, green, blue and white.
func NewQuad(name string, halfWidth, halfHeight float32) Mesh {
	return Mesh{
		Name: name,
		Vertices: []Vertex{
			NewVertex(-halfWidth, -halfHeight, ColorRed),
			NewVertex(halfWidth, -halfHeight, ColorGreen),
			NewVertex(halfWidth, halfHeight, ColorBlue),
			NewVertex(-halfWidth, halfHeight, ColorWhite),
		},
		Indices: append([]uint32(nil), QuadIndices...),
	}
}

// Validate checks that the mesh is a non-empty triangle list whose indices
// all address an existing vertex.
func (m Mesh) Validate() error {
	if len(m.Vertices) == 0 {
		return fmt.Errorf("%w: %q has no vertices", core.ErrInvalidMesh, m.Name)
	}
	if len(m.Indices) == 0 || len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %q has %d indices, want a non-zero multiple of 3", core.ErrInvalidMesh, m.Name, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("%w: %q index %d at position %d exceeds %d vertices", core.ErrInvalidMesh, m.Name, idx, i, len(m.Vertices))
		}
	}
	return nil
}

func (m Mesh) IndexCount() uint32 {
	return uint32(len(m.Indices))
}

// ModelData pairs the geometry of an entity with its initial model matrix.
type ModelData struct {
	Mesh      Mesh
	Transform math.Mat4
}
