package main

import (
	"flag"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"mini-stage/internal/app"
	"mini-stage/internal/config"
	"mini-stage/internal/graphics"
	"mini-stage/internal/graphics/renderer"
	"mini-stage/internal/scene"
	"mini-stage/pkg/objmesh"
)

func init() { runtime.LockOSThread() }

var (
	modelPath   = flag.String("model", "assets/models/actor.obj", "actor mesh asset")
	shaderDir   = flag.String("shaders", "assets/shaders/actor", "shader library directory")
	texturePath = flag.String("texture", "", "optional actor texture")
	actorCount  = flag.Int("actors", 0, "number of actors (0 = default)")
)

// Water-ish backdrop the stage clears to each frame.
var clearColor = [4]float32{0.16, 0.35, 0.52, 1.0}

func main() {
	flag.Parse()
	if *actorCount > 0 {
		config.SetActorCount(*actorCount)
	}
	if *texturePath != "" {
		config.SetTexturePath(*texturePath)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	closer.Bind(glfw.Terminate)
	defer closer.Close()

	window, err := app.SetupWindow("mini-stage", 900, 600)
	if err != nil {
		panic(err)
	}

	// One-time setup: any failure here is unrecoverable, rendering cannot
	// proceed without geometry and a pipeline.
	model, err := objmesh.Load(*modelPath)
	if err != nil {
		panic(err)
	}

	layout := graphics.ActorVertexLayout()
	asset := graphics.UploadMeshAsset(model, layout)
	closer.Bind(asset.Dispose)

	pipeline, err := graphics.BuildPipeline(
		graphics.ShaderLibrary{Dir: *shaderDir},
		"actor", "actor",
		layout,
		graphics.ColorFormatRGBA8,
	)
	if err != nil {
		panic(err)
	}
	closer.Bind(pipeline.Dispose)

	if path := config.GetTexturePath(); path != "" {
		pipeline.Texture, err = graphics.LoadTexture(path)
		if err != nil {
			panic(err)
		}
	} else {
		pipeline.Texture = graphics.WhiteTexture()
	}

	queue := graphics.NewGLQueue()
	closer.Bind(queue.Dispose)

	r := renderer.New(graphics.NewWindowSurface(window), queue, pipeline, asset, clearColor)
	stage := scene.NewStage(config.GetActorCount())

	app.New(window, stage, r).Run()
}
