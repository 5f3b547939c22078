package graphics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ColorFormat identifies the color format of the render target a pipeline is
// built for.
type ColorFormat int32

// ColorFormatRGBA8 matches the default framebuffer of an 8-bit RGBA window.
const ColorFormatRGBA8 ColorFormat = gl.RGBA8

// UniformBlockName is the uniform block both shader stages read per-draw
// transforms from.
const UniformBlockName = "Uniforms"

// ShaderLibrary resolves named entry points to shader sources. Entry point N
// maps to N.vert and N.frag inside the library directory.
type ShaderLibrary struct {
	Dir string
}

func (l ShaderLibrary) source(entry, ext string) (string, error) {
	path := filepath.Join(l.Dir, entry+ext)
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("shader entry point %q not found: %w", entry, err)
	}
	return string(src), nil
}

// Pipeline is an immutable compiled configuration: shader stages, vertex
// layout, target color format, and fixed render state. Built once at startup
// and reused unchanged for every draw.
type Pipeline struct {
	Program       uint32
	Layout        VertexLayout
	Format        ColorFormat
	CullBackFaces bool
	// UniformBinding is the binding point the Uniforms block is bound to.
	UniformBinding uint32
	// Texture is the material texture sampled by the fragment stage.
	Texture uint32
}

// BuildPipeline compiles and links the named entry points against the vertex
// layout. The compile/link step runs exactly once; any failure here is fatal
// to the caller since rendering cannot proceed without a pipeline.
func BuildPipeline(lib ShaderLibrary, vertexEntry, fragmentEntry string, layout VertexLayout, format ColorFormat) (*Pipeline, error) {
	vertexSrc, err := lib.source(vertexEntry, ".vert")
	if err != nil {
		return nil, err
	}
	fragmentSrc, err := lib.source(fragmentEntry, ".frag")
	if err != nil {
		return nil, err
	}

	program, err := compileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	if err := layout.Validate(program); err != nil {
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("vertex layout incompatible with entry point %q: %w", vertexEntry, err)
	}

	blockIndex := gl.GetUniformBlockIndex(program, gl.Str(UniformBlockName+"\x00"))
	if blockIndex == gl.INVALID_INDEX {
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("shader program has no %q uniform block", UniformBlockName)
	}
	const binding = 0
	gl.UniformBlockBinding(program, blockIndex, binding)

	return &Pipeline{
		Program:        program,
		Layout:         layout,
		Format:         format,
		CullBackFaces:  true,
		UniformBinding: binding,
	}, nil
}

// Dispose releases the linked program.
func (p *Pipeline) Dispose() {
	if p.Program != 0 {
		gl.DeleteProgram(p.Program)
		p.Program = 0
	}
}

func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to link program: %v", log)
	}
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}
	return shader, nil
}
