package objmesh

// VertexFloats is the number of floats per interleaved vertex:
// position (3), normal (3), texture coordinate (2).
const VertexFloats = 8

// Model is the CPU-side result of decoding a mesh asset file.
// It is immutable after Load returns.
type Model struct {
	Meshes []MeshData
}

// MeshData holds one interleaved vertex stream and its submesh index ranges.
type MeshData struct {
	Name string
	// Vertices is interleaved position/normal/uv data, stride VertexFloats.
	Vertices  []float32
	Submeshes []SubmeshData
}

// SubmeshData is a contiguous indexed triangle range sharing one material.
type SubmeshData struct {
	Material string
	Indices  []uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m *MeshData) VertexCount() int {
	return len(m.Vertices) / VertexFloats
}

// IndexCount returns the total index count across all submeshes.
func (m *MeshData) IndexCount() int {
	total := 0
	for i := range m.Submeshes {
		total += len(m.Submeshes[i].Indices)
	}
	return total
}

// Bounds returns the axis-aligned bounding box of all vertex positions
// in the model. Valid only for models with at least one vertex.
func (m *Model) Bounds() (min, max [3]float32) {
	first := true
	for mi := range m.Meshes {
		verts := m.Meshes[mi].Vertices
		for v := 0; v+VertexFloats <= len(verts); v += VertexFloats {
			for axis := 0; axis < 3; axis++ {
				p := verts[v+axis]
				if first || p < min[axis] {
					min[axis] = p
				}
				if first || p > max[axis] {
					max[axis] = p
				}
			}
			first = false
		}
	}
	return min, max
}
