package objmesh

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadActorModel(t *testing.T) {
	model, err := Load(filepath.Join("testdata", "actor.obj"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(model.Meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(model.Meshes))
	}

	mesh := &model.Meshes[0]
	if mesh.Name != "actor" {
		t.Errorf("mesh name = %q, want %q", mesh.Name, "actor")
	}
	if len(mesh.Submeshes) != 2 {
		t.Fatalf("expected 2 submeshes, got %d", len(mesh.Submeshes))
	}
	if mesh.Submeshes[0].Material != "body" || mesh.Submeshes[1].Material != "fin" {
		t.Errorf("submesh materials = %q, %q", mesh.Submeshes[0].Material, mesh.Submeshes[1].Material)
	}

	// Body quad is two triangles, fin is one.
	if got := len(mesh.Submeshes[0].Indices); got != 6 {
		t.Errorf("body index count = %d, want 6", got)
	}
	if got := len(mesh.Submeshes[1].Indices); got != 3 {
		t.Errorf("fin index count = %d, want 3", got)
	}

	// The two body triangles share two corners, so dedup must leave
	// 4 body vertices + 3 fin vertices.
	if got := mesh.VertexCount(); got != 7 {
		t.Errorf("vertex count = %d, want 7 after dedup", got)
	}
	if len(mesh.Vertices)%VertexFloats != 0 {
		t.Errorf("vertex stream length %d is not a multiple of stride %d", len(mesh.Vertices), VertexFloats)
	}

	// First vertex: position (0,0,0), normal (0,0,1), uv (0,0).
	want := [VertexFloats]float32{0, 0, 0, 0, 0, 1, 0, 0}
	for i, w := range want {
		if mesh.Vertices[i] != w {
			t.Errorf("vertex[0] float %d = %v, want %v", i, mesh.Vertices[i], w)
		}
	}

	// Every index must reference a vertex inside the stream.
	for _, sub := range mesh.Submeshes {
		for _, idx := range sub.Indices {
			if int(idx) >= mesh.VertexCount() {
				t.Fatalf("index %d out of range (%d vertices)", idx, mesh.VertexCount())
			}
		}
	}
}

func TestModelBounds(t *testing.T) {
	model, err := Load(filepath.Join("testdata", "actor.obj"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	min, max := model.Bounds()
	if min != [3]float32{0, 0, 0} {
		t.Errorf("bounds min = %v, want origin", min)
	}
	if max != [3]float32{3, 1, 0} {
		t.Errorf("bounds max = %v, want (3,1,0)", max)
	}
}

func TestDecodeRejectsEmptyInput(t *testing.T) {
	if _, err := Decode(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := Decode(strings.NewReader("o empty\nv 0 0 0\n")); err == nil {
		t.Error("expected error for object without faces")
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	garbage := "o bad\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/x/1 2/x/1 3/x/1\n"
	if _, err := Decode(strings.NewReader(garbage)); err == nil {
		t.Error("expected error for non-numeric face index")
	}
}

func TestDecodeWithoutMaterialLibrary(t *testing.T) {
	// A bare mesh with no mtllib and no usemtl must still decode.
	src := "o plain\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	model, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	mesh := &model.Meshes[0]
	if got := len(mesh.Submeshes); got != 1 {
		t.Fatalf("submesh count = %d, want 1", got)
	}
	if got := len(mesh.Submeshes[0].Indices); got != 3 {
		t.Errorf("index count = %d, want 3", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "no-such.obj")); err == nil {
		t.Error("expected error for missing file")
	}
}
