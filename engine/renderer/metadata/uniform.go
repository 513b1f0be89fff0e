package metadata

import (
	"unsafe"

	"github.com/spaghettifunk/pong/engine/math"
)

// UniformTransform matches the std140 block at binding 0 of the vertex shader.
type UniformTransform struct {
	Model      math.Mat4
	View       math.Mat4
	Projection math.Mat4
}

// UniformTransformSize is the byte size of the uniform block (3 * 64).
const UniformTransformSize uint64 = uint64(unsafe.Sizeof(UniformTransform{}))

// Bytes views the transform as raw bytes.
func (u *UniformTransform) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(u)), UniformTransformSize)
}
