package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexAttrib describes one attribute slot of a vertex layout.
type VertexAttrib struct {
	Name       string
	Location   uint32
	Components int32
	// Offset in bytes from the start of the vertex.
	Offset int
	// GLType is the attribute type the shader must declare (e.g. gl.FLOAT_VEC3).
	GLType uint32
}

// VertexLayout is the interleaved vertex schema shared by mesh uploads and
// pipeline validation.
type VertexLayout struct {
	// Stride in bytes between consecutive vertices.
	Stride  int32
	Attribs []VertexAttrib
}

// ActorVertexLayout returns the fixed layout used by all actor meshes:
// position vec3, normal vec3, uv vec2, interleaved, 32-byte stride.
func ActorVertexLayout() VertexLayout {
	return VertexLayout{
		Stride: 8 * 4,
		Attribs: []VertexAttrib{
			{Name: "position", Location: 0, Components: 3, Offset: 0, GLType: gl.FLOAT_VEC3},
			{Name: "normal", Location: 1, Components: 3, Offset: 3 * 4, GLType: gl.FLOAT_VEC3},
			{Name: "texCoord", Location: 2, Components: 2, Offset: 6 * 4, GLType: gl.FLOAT_VEC2},
		},
	}
}

// Validate checks every active attribute of a linked program against the
// layout. A vertex shader declaring an attribute the layout does not provide,
// or at a different type or location, is a setup-time error.
func (l VertexLayout) Validate(program uint32) error {
	var count int32
	gl.GetProgramiv(program, gl.ACTIVE_ATTRIBUTES, &count)

	for i := int32(0); i < count; i++ {
		var buf [256]byte
		var length, size int32
		var xtype uint32
		gl.GetActiveAttrib(program, uint32(i), int32(len(buf)), &length, &size, &xtype, &buf[0])
		name := string(buf[:length])

		loc := gl.GetAttribLocation(program, gl.Str(name+"\x00"))
		if loc < 0 {
			// Built-in attribute (gl_*), not fed by the layout.
			continue
		}

		attrib, ok := l.lookup(uint32(loc))
		if !ok {
			return fmt.Errorf("shader attribute %q at location %d has no slot in the vertex layout", name, loc)
		}
		if attrib.GLType != xtype {
			return fmt.Errorf("shader attribute %q type 0x%x does not match layout slot %q (0x%x)",
				name, xtype, attrib.Name, attrib.GLType)
		}
	}
	return nil
}

func (l VertexLayout) lookup(location uint32) (VertexAttrib, bool) {
	for _, a := range l.Attribs {
		if a.Location == location {
			return a, true
		}
	}
	return VertexAttrib{}, false
}
