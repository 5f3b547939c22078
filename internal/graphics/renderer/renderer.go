// Package renderer orchestrates one frame: acquire a drawable, record one
// command encoder, draw every actor against the shared mesh asset, present.
package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"mini-stage/internal/graphics"
	"mini-stage/internal/graphics/transform"
	"mini-stage/internal/scene"
)

// Renderer owns the device-facing handles for the process's rendering
// lifetime: surface, queue, pipeline, and mesh asset are set once and never
// mutated concurrently. Frames are issued serially; one encoder is open at a
// time.
type Renderer struct {
	surface  graphics.Surface
	queue    graphics.CommandQueue
	pipeline *graphics.Pipeline
	asset    *graphics.MeshAsset
	arena    *UniformArena

	clear [4]float32

	// Cached projection state, recomputed only when the drawable size
	// changes or InvalidateProjection is called.
	proj      mgl32.Mat4
	projW     int
	projH     int
	projValid bool
}

// New wires a renderer to its immutable collaborators.
func New(surface graphics.Surface, queue graphics.CommandQueue, pipeline *graphics.Pipeline, asset *graphics.MeshAsset, clear [4]float32) *Renderer {
	return &Renderer{
		surface:  surface,
		queue:    queue,
		pipeline: pipeline,
		asset:    asset,
		arena:    NewUniformArena(queue.UniformAlignment()),
		clear:    clear,
	}
}

// InvalidateProjection forces a projection recompute on the next frame.
// Hooked to the window resize callback.
func (r *Renderer) InvalidateProjection() {
	r.projValid = false
}

// projectionFor returns the cached projection matrix for the viewport,
// rebuilding it only when the size changed since the last frame.
func (r *Renderer) projectionFor(width, height int) mgl32.Mat4 {
	if r.projValid && width == r.projW && height == r.projH {
		return r.proj
	}
	aspect := float32(width) / float32(height)
	r.proj = transform.Orthographic(
		0, scene.SceneHeight*aspect,
		0, scene.SceneHeight,
		scene.NearPlane, scene.FarPlane,
	)
	r.projW, r.projH = width, height
	r.projValid = true
	return r.proj
}

// RenderFrame draws the actor list in input order and presents the result.
// Returns false when no drawable is available; the frame is skipped with no
// side effects. An empty actor list still presents a cleared frame.
func (r *Renderer) RenderFrame(actors []scene.Actor) bool {
	drawable, ok := r.surface.AcquireDrawable()
	if !ok {
		return false
	}
	width, height := drawable.Size()
	if width <= 0 || height <= 0 {
		return false
	}

	proj := r.projectionFor(width, height)

	// Stage every actor's uniforms before recording begins.
	r.arena.Reset()
	offsets := make([]int, len(actors))
	for i, a := range actors {
		offsets[i] = r.arena.Append(Uniforms{
			ModelView:  transform.ModelView(a.X, a.Y, scene.ActorDepth, a.Flip, scene.MeshCenterOffset),
			Projection: proj,
		})
	}

	enc := r.queue.Begin(drawable, r.clear)
	enc.SetPipeline(r.pipeline)
	if r.arena.Count() > 0 {
		enc.WriteUniforms(r.arena.Data())
	}

	// Strict input order per actor; meshes and submeshes in asset order.
	for i := range actors {
		enc.SetUniformOffset(offsets[i], UniformsSize)
		for m := range r.asset.Meshes {
			mesh := &r.asset.Meshes[m]
			enc.BindMesh(mesh)
			for s := range mesh.Submeshes {
				enc.DrawIndexed(&mesh.Submeshes[s])
			}
		}
	}

	enc.End()
	drawable.Present()
	return true
}
