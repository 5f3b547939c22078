package renderer

import "github.com/go-gl/mathgl/mgl32"

// Uniforms is the transient per-draw payload: both matrices column-major,
// matching the std140 Uniforms block in the shader.
type Uniforms struct {
	ModelView  mgl32.Mat4
	Projection mgl32.Mat4
}

// UniformsSize is the payload size in bytes (two 4x4 float matrices).
const UniformsSize = 2 * 16 * 4

// UniformArena is a persistent per-frame staging area for instance uniforms.
// All instances are written before command recording begins and referenced by
// byte offset during submission, so no per-draw allocation or upload happens.
// The arena is reused across frames and only grows.
type UniformArena struct {
	stride int
	data   []float32
	count  int
}

// NewUniformArena creates an arena whose slots satisfy the device's uniform
// offset alignment.
func NewUniformArena(alignment int) *UniformArena {
	stride := UniformsSize
	if alignment > 0 && stride%alignment != 0 {
		stride += alignment - stride%alignment
	}
	return &UniformArena{stride: stride}
}

// Stride returns the byte distance between consecutive slots.
func (a *UniformArena) Stride() int { return a.stride }

// Reset clears the arena for a new frame without releasing its storage.
func (a *UniformArena) Reset() {
	a.count = 0
}

// Append writes one instance's uniforms into the next slot and returns its
// byte offset.
func (a *UniformArena) Append(u Uniforms) int {
	offset := a.count * a.stride
	needed := (offset + a.stride) / 4
	if len(a.data) < needed {
		a.data = append(a.data, make([]float32, needed-len(a.data))...)
	}
	slot := a.data[offset/4:]
	copy(slot, u.ModelView[:])
	copy(slot[16:], u.Projection[:])
	a.count++
	return offset
}

// Count returns the number of slots written since the last Reset.
func (a *UniformArena) Count() int { return a.count }

// Data returns the written portion of the arena for upload.
func (a *UniformArena) Data() []float32 {
	return a.data[:a.count*a.stride/4]
}
