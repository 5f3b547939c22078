package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"mini-stage/pkg/objmesh"
)

// Submesh is one indexed draw range: its own index buffer, shared topology.
type Submesh struct {
	ebo        uint32
	IndexCount int32
	// IndexType is the GL element type (gl.UNSIGNED_INT).
	IndexType uint32
	// Topology is the primitive mode (gl.TRIANGLES).
	Topology uint32
	Material string
}

// Mesh owns one vertex buffer plus its submeshes.
type Mesh struct {
	vao         uint32
	vbo         uint32
	VertexCount int32
	Submeshes   []Submesh
}

// MeshAsset is the GPU-resident form of a decoded model. Immutable after
// upload; owned by the renderer until Dispose.
type MeshAsset struct {
	Meshes []Mesh
}

// UploadMeshAsset uploads a decoded model into device buffers laid out
// according to the given vertex layout.
func UploadMeshAsset(model *objmesh.Model, layout VertexLayout) *MeshAsset {
	asset := &MeshAsset{Meshes: make([]Mesh, 0, len(model.Meshes))}
	for i := range model.Meshes {
		asset.Meshes = append(asset.Meshes, uploadMesh(&model.Meshes[i], layout))
	}
	return asset
}

func uploadMesh(data *objmesh.MeshData, layout VertexLayout) Mesh {
	mesh := Mesh{VertexCount: int32(data.VertexCount())}

	gl.GenVertexArrays(1, &mesh.vao)
	gl.GenBuffers(1, &mesh.vbo)
	gl.BindVertexArray(mesh.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*4, gl.Ptr(data.Vertices), gl.STATIC_DRAW)

	for _, a := range layout.Attribs {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointer(a.Location, a.Components, gl.FLOAT, false, layout.Stride, gl.PtrOffset(a.Offset))
	}

	for si := range data.Submeshes {
		sub := Submesh{
			IndexCount: int32(len(data.Submeshes[si].Indices)),
			IndexType:  gl.UNSIGNED_INT,
			Topology:   gl.TRIANGLES,
			Material:   data.Submeshes[si].Material,
		}
		gl.GenBuffers(1, &sub.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, sub.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Submeshes[si].Indices)*4,
			gl.Ptr(data.Submeshes[si].Indices), gl.STATIC_DRAW)
		mesh.Submeshes = append(mesh.Submeshes, sub)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return mesh
}

// Dispose releases all GL buffers owned by the asset.
func (a *MeshAsset) Dispose() {
	for i := range a.Meshes {
		m := &a.Meshes[i]
		for s := range m.Submeshes {
			if m.Submeshes[s].ebo != 0 {
				gl.DeleteBuffers(1, &m.Submeshes[s].ebo)
			}
		}
		if m.vbo != 0 {
			gl.DeleteBuffers(1, &m.vbo)
		}
		if m.vao != 0 {
			gl.DeleteVertexArrays(1, &m.vao)
		}
	}
}
