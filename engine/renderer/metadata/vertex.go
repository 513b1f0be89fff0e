package metadata

import "unsafe"

// Vertex is a 2D position with a per-vertex RGB colour.
type Vertex struct {
	Position [2]float32
	Color    [3]float32
}

const (
	// VertexStride is the byte distance between consecutive vertices.
	VertexStride uint32 = uint32(unsafe.Sizeof(Vertex{}))
	// VertexPositionOffset is the offset of the position attribute (location 0).
	VertexPositionOffset uint32 = uint32(unsafe.Offsetof(Vertex{}.Position))
	// VertexColorOffset is the offset of the colour attribute (location 1).
	VertexColorOffset uint32 = uint32(unsafe.Offsetof(Vertex{}.Color))
)

func NewVertex(x, y float32, color [3]float32) Vertex {
	return Vertex{
		Position: [2]float32{x, y},
		Color:    color,
	}
}

// VertexBytes views the vertices as raw bytes, ready to be copied into GPU memory.
func VertexBytes(vertices []Vertex) []byte {
	if len(vertices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&vertices[0])), len(vertices)*int(VertexStride))
}

// IndexBytes views the indices as raw bytes.
func IndexBytes(indices []uint32) []byte {
	if len(indices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&indices[0])), len(indices)*4)
}
