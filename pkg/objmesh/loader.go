package objmesh

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/g3n/engine/loader/obj"
)

// Load decodes a Wavefront OBJ file into a Model. Material definitions are
// optional; faces keep their usemtl name so submeshes can be grouped per
// material even without an .mtl file.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open mesh file: %w", err)
	}
	defer f.Close()

	model, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode mesh file %s: %w", path, err)
	}
	return model, nil
}

// Decode decodes OBJ data from r into a Model.
func Decode(r io.Reader) (*Model, error) {
	// The decoder reads the material stream unconditionally; an empty one
	// stands in for the optional .mtl file.
	dec, err := obj.DecodeReader(r, strings.NewReader(""))
	if err != nil {
		return nil, fmt.Errorf("obj parse failed: %w", err)
	}
	if len(dec.Objects) == 0 {
		return nil, fmt.Errorf("obj contains no objects")
	}

	model := &Model{}
	for i := range dec.Objects {
		mesh, err := buildMesh(dec, &dec.Objects[i])
		if err != nil {
			return nil, err
		}
		if mesh != nil {
			model.Meshes = append(model.Meshes, *mesh)
		}
	}
	if len(model.Meshes) == 0 {
		return nil, fmt.Errorf("obj contains no faces")
	}
	return model, nil
}

// buildMesh converts one decoded object into an interleaved vertex stream
// with one submesh per consecutive material run. Polygon faces are
// triangulated as fans; identical position/normal/uv triplets are shared.
func buildMesh(dec *obj.Decoder, object *obj.Object) (*MeshData, error) {
	if len(object.Faces) == 0 {
		return nil, nil
	}

	mesh := &MeshData{Name: object.Name}
	seen := make(map[[VertexFloats]float32]uint32)
	var current *SubmeshData

	for fi := range object.Faces {
		face := &object.Faces[fi]
		if len(face.Vertices) < 3 {
			return nil, fmt.Errorf("object %s: face %d has %d vertices", object.Name, fi, len(face.Vertices))
		}
		if current == nil || current.Material != face.Material {
			mesh.Submeshes = append(mesh.Submeshes, SubmeshData{Material: face.Material})
			current = &mesh.Submeshes[len(mesh.Submeshes)-1]
		}

		// Triangle fan over the face's vertices.
		for t := 1; t+1 < len(face.Vertices); t++ {
			for _, corner := range [3]int{0, t, t + 1} {
				v, err := cornerVertex(dec, face, corner)
				if err != nil {
					return nil, fmt.Errorf("object %s: %w", object.Name, err)
				}
				idx, ok := seen[v]
				if !ok {
					idx = uint32(len(mesh.Vertices) / VertexFloats)
					mesh.Vertices = append(mesh.Vertices, v[:]...)
					seen[v] = idx
				}
				current.Indices = append(current.Indices, idx)
			}
		}
	}
	return mesh, nil
}

// cornerVertex assembles the interleaved attributes for one face corner.
// Normals and texture coordinates absent from the file are filled with zeros.
func cornerVertex(dec *obj.Decoder, face *obj.Face, corner int) ([VertexFloats]float32, error) {
	var v [VertexFloats]float32

	pi := face.Vertices[corner]
	if pi < 0 || 3*pi+2 >= len(dec.Vertices) {
		return v, fmt.Errorf("position index %d out of range", pi)
	}
	v[0] = dec.Vertices[3*pi]
	v[1] = dec.Vertices[3*pi+1]
	v[2] = dec.Vertices[3*pi+2]

	if corner < len(face.Normals) {
		if ni := face.Normals[corner]; ni >= 0 && 3*ni+2 < len(dec.Normals) {
			v[3] = dec.Normals[3*ni]
			v[4] = dec.Normals[3*ni+1]
			v[5] = dec.Normals[3*ni+2]
		}
	}
	if corner < len(face.Uvs) {
		if ti := face.Uvs[corner]; ti >= 0 && 2*ti+1 < len(dec.Uvs) {
			v[6] = dec.Uvs[2*ti]
			v[7] = dec.Uvs[2*ti+1]
		}
	}
	return v, nil
}
