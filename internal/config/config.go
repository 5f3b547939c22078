package config

import "sync"

// RenderSettings holds process-wide render configuration
type RenderSettings struct {
	mu          sync.RWMutex
	fpsLimit    int
	actorCount  int
	texturePath string
}

var globalRenderSettings = &RenderSettings{
	fpsLimit:   120,
	actorCount: 6,
}

// GetFPSLimit returns the current FPS cap
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the FPS cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 30 {
		limit = 30
	}
	if limit > 360 {
		limit = 360
	}

	globalRenderSettings.fpsLimit = limit
}

// GetActorCount returns how many actors the stage spawns
func GetActorCount() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.actorCount
}

// SetActorCount sets the number of actors on the stage
func SetActorCount(n int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if n < 1 {
		n = 1
	}
	if n > 64 {
		n = 64
	}

	globalRenderSettings.actorCount = n
}

// GetTexturePath returns the actor texture path; empty selects the built-in
// white texture
func GetTexturePath() string {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.texturePath
}

// SetTexturePath sets the actor texture path
func SetTexturePath(path string) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.texturePath = path
}
