package app

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"mini-stage/internal/graphics/renderer"
	"mini-stage/internal/profiling"
	"mini-stage/internal/scene"
)

// App runs the main loop: poll events, advance the stage, render one frame,
// throttle. Setup (mesh, pipeline, renderer) happens before New; App only
// drives what it is given.
type App struct {
	window   *glfw.Window
	stage    *scene.Stage
	renderer *renderer.Renderer

	limiter  *FPSLimiter
	lastTime time.Time
	paused   bool

	frames       int
	lastFPSCheck time.Time
}

// New wires the app and installs its window callbacks.
func New(window *glfw.Window, stage *scene.Stage, r *renderer.Renderer) *App {
	a := &App{
		window:       window,
		stage:        stage,
		renderer:     r,
		limiter:      NewFPSLimiter(),
		lastTime:     time.Now(),
		lastFPSCheck: time.Now(),
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		if width > 0 && height > 0 {
			a.stage.Resize(scene.SceneHeight * float32(width) / float32(height))
		}
		a.renderer.InvalidateProjection()
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeySpace:
			a.paused = !a.paused
		}
	})

	// Match the stage width to the initial framebuffer before the first frame.
	if width, height := window.GetFramebufferSize(); width > 0 && height > 0 {
		stage.Resize(scene.SceneHeight * float32(width) / float32(height))
	}

	return a
}

// Run loops until the window closes.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()
	dt := start.Sub(a.lastTime).Seconds()
	a.lastTime = start

	glfw.PollEvents()

	if !a.paused {
		func() { defer profiling.Track("stage.Update")(); a.stage.Update(dt) }()
	}

	// A skipped frame (no drawable while minimized) is normal; keep looping.
	func() {
		defer profiling.Track("renderer.RenderFrame")()
		a.renderer.RenderFrame(a.stage.Actors())
	}()
	a.frames++

	if time.Since(a.lastFPSCheck) >= time.Second {
		fmt.Println("FPS: ", a.frames)
		a.frames = 0
		a.lastFPSCheck = time.Now()
	}

	// Check if frame took too long (> 16ms)
	if d := time.Since(start); d > 16*time.Millisecond {
		log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	}

	a.limiter.Wait()
}
