package scene

import "testing"

func TestNewStageSpreadsActors(t *testing.T) {
	s := NewStage(6)
	actors := s.Actors()
	if len(actors) != 6 {
		t.Fatalf("actor count = %d, want 6", len(actors))
	}
	for i, a := range actors {
		if a.X < 0 || a.X > s.Width() {
			t.Errorf("actor %d starts outside stage: x=%v", i, a.X)
		}
		if a.Y < 0 || a.Y > SceneHeight {
			t.Errorf("actor %d starts outside stage: y=%v", i, a.Y)
		}
	}
}

func TestStageClampsActorCount(t *testing.T) {
	if n := len(NewStage(0).Actors()); n != 1 {
		t.Errorf("zero request produced %d actors, want 1", n)
	}
}

func TestUpdateKeepsActorsInBounds(t *testing.T) {
	s := NewStage(8)
	for step := 0; step < 2000; step++ {
		s.Update(1.0 / 60.0)
	}
	for i, a := range s.Actors() {
		if a.X < 0 || a.X > s.Width() {
			t.Errorf("actor %d drifted out of bounds: x=%v", i, a.X)
		}
	}
}

func TestFlipFollowsDirection(t *testing.T) {
	s := NewStage(1)
	// Drive the single actor into the right edge; it must turn and flip.
	for step := 0; step < 5000; step++ {
		s.Update(1.0 / 30.0)
		a := s.Actors()[0]
		wantFlip := s.dir[0] > 0
		if a.Flip != wantFlip {
			t.Fatalf("flip=%v with direction %v", a.Flip, s.dir[0])
		}
	}
	// Over that span the actor must have turned at least once.
	turned := false
	prev := s.dir[0]
	for step := 0; step < 5000; step++ {
		s.Update(1.0 / 30.0)
		if s.dir[0] != prev {
			turned = true
			break
		}
	}
	if !turned {
		t.Error("actor never turned around at the stage edge")
	}
}

func TestResizeIgnoresNonPositive(t *testing.T) {
	s := NewStage(2)
	w := s.Width()
	s.Resize(0)
	if s.Width() != w {
		t.Errorf("width changed to %v on zero resize", s.Width())
	}
	s.Resize(420)
	if s.Width() != 420 {
		t.Errorf("width = %v, want 420", s.Width())
	}
}
