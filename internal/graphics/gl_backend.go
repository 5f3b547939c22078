package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowSurface adapts a GLFW window to the Surface interface.
type WindowSurface struct {
	window *glfw.Window
}

func NewWindowSurface(window *glfw.Window) *WindowSurface {
	return &WindowSurface{window: window}
}

// AcquireDrawable returns the window's backbuffer for this frame. A zero-area
// framebuffer (minimized window) yields no drawable; the frame is skipped.
func (s *WindowSurface) AcquireDrawable() (Drawable, bool) {
	w, h := s.window.GetFramebufferSize()
	if w <= 0 || h <= 0 {
		return nil, false
	}
	return &windowDrawable{window: s.window, width: w, height: h}, true
}

type windowDrawable struct {
	window *glfw.Window
	width  int
	height int
}

func (d *windowDrawable) Size() (int, int) { return d.width, d.height }

func (d *windowDrawable) Present() { d.window.SwapBuffers() }

// GLQueue is the OpenGL-backed command queue. It owns the persistent uniform
// buffer that per-frame instance uniforms are written into.
type GLQueue struct {
	ubo       uint32
	uboSize   int
	alignment int
}

// NewGLQueue creates the queue and its uniform buffer. Requires a current GL
// context; failure to allocate the buffer is fatal at the call site.
func NewGLQueue() *GLQueue {
	q := &GLQueue{}

	var align int32
	gl.GetIntegerv(gl.UNIFORM_BUFFER_OFFSET_ALIGNMENT, &align)
	if align <= 0 {
		align = 256
	}
	q.alignment = int(align)

	gl.GenBuffers(1, &q.ubo)
	return q
}

func (q *GLQueue) UniformAlignment() int { return q.alignment }

// Begin targets the drawable, clears it, and opens the frame's encoder.
func (q *GLQueue) Begin(d Drawable, clear [4]float32) Encoder {
	w, h := d.Size()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(clear[0], clear[1], clear[2], clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	return &glEncoder{queue: q}
}

// Dispose releases the uniform buffer.
func (q *GLQueue) Dispose() {
	if q.ubo != 0 {
		gl.DeleteBuffers(1, &q.ubo)
		q.ubo = 0
	}
}

type glEncoder struct {
	queue    *GLQueue
	pipeline *Pipeline
}

func (e *glEncoder) SetPipeline(p *Pipeline) {
	e.pipeline = p
	gl.UseProgram(p.Program)
	if p.CullBackFaces {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
	if p.Texture != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, p.Texture)
	}
}

// WriteUniforms uploads the whole frame's uniform arena in one transfer,
// growing the buffer when the actor count does.
func (e *glEncoder) WriteUniforms(data []float32) {
	if len(data) == 0 {
		return
	}
	size := len(data) * 4
	gl.BindBuffer(gl.UNIFORM_BUFFER, e.queue.ubo)
	if size > e.queue.uboSize {
		gl.BufferData(gl.UNIFORM_BUFFER, size, nil, gl.DYNAMIC_DRAW)
		e.queue.uboSize = size
	}
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, size, gl.Ptr(data))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

func (e *glEncoder) SetUniformOffset(offset, size int) {
	binding := uint32(0)
	if e.pipeline != nil {
		binding = e.pipeline.UniformBinding
	}
	gl.BindBufferRange(gl.UNIFORM_BUFFER, binding, e.queue.ubo, offset, size)
}

func (e *glEncoder) BindMesh(m *Mesh) {
	gl.BindVertexArray(m.vao)
}

func (e *glEncoder) DrawIndexed(s *Submesh) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, s.ebo)
	gl.DrawElements(s.Topology, s.IndexCount, s.IndexType, gl.PtrOffset(0))
}

func (e *glEncoder) End() {
	gl.BindVertexArray(0)
}
