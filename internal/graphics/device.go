package graphics

// Drawable is a presentable surface for one frame.
type Drawable interface {
	// Size returns the drawable's dimensions in device pixels.
	Size() (width, height int)
	// Present shows the finished frame.
	Present()
}

// Surface hands out drawables. Acquisition may fail transiently (e.g. a
// minimized window); callers treat that as a skipped frame, not an error.
type Surface interface {
	AcquireDrawable() (Drawable, bool)
}

// CommandQueue opens one command encoder per frame.
type CommandQueue interface {
	// UniformAlignment is the device's required alignment for uniform
	// buffer range offsets.
	UniformAlignment() int
	// Begin targets the drawable, clears it, and returns an open encoder.
	Begin(d Drawable, clear [4]float32) Encoder
}

// Encoder records one frame's draw commands. Exactly one encoder is open at
// a time; End closes it.
type Encoder interface {
	SetPipeline(p *Pipeline)
	// WriteUniforms uploads the whole per-frame uniform arena.
	WriteUniforms(data []float32)
	// SetUniformOffset binds the uniform range at offset for subsequent draws.
	SetUniformOffset(offset, size int)
	BindMesh(m *Mesh)
	DrawIndexed(s *Submesh)
	End()
}
