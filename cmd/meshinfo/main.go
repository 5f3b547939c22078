// meshinfo prints the structure of a mesh asset file: meshes, submeshes,
// vertex and index counts, and bounds. Handy for checking an export before
// pointing mini-stage at it.
package main

import (
	"flag"
	"fmt"
	"log"

	"mini-stage/pkg/objmesh"
)

func main() {
	path := flag.String("model", "assets/models/actor.obj", "mesh asset to inspect")
	flag.Parse()

	model, err := objmesh.Load(*path)
	if err != nil {
		log.Fatalf("meshinfo: %v", err)
	}

	min, max := model.Bounds()
	fmt.Printf("%s: %d mesh(es), bounds min %v max %v\n", *path, len(model.Meshes), min, max)

	for i := range model.Meshes {
		mesh := &model.Meshes[i]
		fmt.Printf("  mesh %q: %d vertices, %d indices, %d submesh(es)\n",
			mesh.Name, mesh.VertexCount(), mesh.IndexCount(), len(mesh.Submeshes))
		for _, sub := range mesh.Submeshes {
			material := sub.Material
			if material == "" {
				material = "(none)"
			}
			fmt.Printf("    %-12s %5d indices (%d triangles)\n", material, len(sub.Indices), len(sub.Indices)/3)
		}
	}
}
