// Package scene holds the actor state the renderer consumes each frame and
// the fixed constants of the stage's view box.
package scene

import "math"

// View box constants. The visible world is SceneHeight units tall; width
// follows the viewport aspect ratio.
const (
	SceneHeight float32 = 200
	NearPlane   float32 = -1
	FarPlane    float32 = 10

	// ActorDepth is the camera standoff distance every actor is drawn at.
	ActorDepth float32 = 5

	// MeshCenterOffset recenters the shared mesh on its own origin before
	// the facing rotation (the mesh is authored with its tail at x=0).
	MeshCenterOffset float32 = -15
)

// Actor is one drawable instance: a position and a facing flag. Actors have
// no identity beyond their slice position and no GPU-side state.
type Actor struct {
	X, Y float32
	// Flip selects the facing direction; true faces +X.
	Flip bool
}

// Stage animates a fixed set of actors drifting horizontally across the view
// box, turning around at the edges.
type Stage struct {
	actors []Actor
	baseY  []float32
	speed  []float32
	phase  []float32
	dir    []float32
	width  float32
	clock  float64
}

// turnMargin keeps actors from clipping the view edge before turning.
const turnMargin float32 = 20

// NewStage creates n actors spread evenly over the view box, alternating
// initial direction.
func NewStage(n int) *Stage {
	if n < 1 {
		n = 1
	}
	s := &Stage{
		actors: make([]Actor, n),
		baseY:  make([]float32, n),
		speed:  make([]float32, n),
		phase:  make([]float32, n),
		dir:    make([]float32, n),
		width:  SceneHeight * 1.5,
	}
	for i := range s.actors {
		f := float32(i)
		s.baseY[i] = SceneHeight * (0.2 + 0.6*float32(i)/float32(n))
		s.speed[i] = 22 + 7*float32(i%5)
		s.phase[i] = f * 1.3
		s.dir[i] = 1
		if i%2 == 1 {
			s.dir[i] = -1
		}
		s.actors[i] = Actor{
			X:    s.width * (0.15 + 0.7*f/float32(n)),
			Y:    s.baseY[i],
			Flip: s.dir[i] > 0,
		}
	}
	return s
}

// Resize sets the horizontal extent of the stage, in scene units. Called when
// the viewport aspect ratio changes.
func (s *Stage) Resize(width float32) {
	if width > 0 {
		s.width = width
	}
}

// Width returns the current horizontal extent in scene units.
func (s *Stage) Width() float32 { return s.width }

// Update advances every actor by dt seconds: horizontal drift with a
// turnaround at the stage edges and a slow vertical bob.
func (s *Stage) Update(dt float64) {
	s.clock += dt
	for i := range s.actors {
		a := &s.actors[i]
		a.X += s.dir[i] * s.speed[i] * float32(dt)

		if a.X > s.width-turnMargin {
			a.X = s.width - turnMargin
			s.dir[i] = -1
		} else if a.X < turnMargin {
			a.X = turnMargin
			s.dir[i] = 1
		}
		a.Flip = s.dir[i] > 0

		bob := math.Sin(s.clock*0.8 + float64(s.phase[i]))
		a.Y = s.baseY[i] + 6*float32(bob)
	}
}

// Actors returns the per-frame instance list, ordered and read-only by
// convention; the renderer must not retain it across frames.
func (s *Stage) Actors() []Actor {
	return s.actors
}
