package config

import "testing"

func TestFPSLimitClamping(t *testing.T) {
	defer SetFPSLimit(120)

	SetFPSLimit(10)
	if got := GetFPSLimit(); got != 30 {
		t.Errorf("low limit clamped to %d, want 30", got)
	}
	SetFPSLimit(1000)
	if got := GetFPSLimit(); got != 360 {
		t.Errorf("high limit clamped to %d, want 360", got)
	}
	SetFPSLimit(144)
	if got := GetFPSLimit(); got != 144 {
		t.Errorf("limit = %d, want 144", got)
	}
}

func TestActorCountClamping(t *testing.T) {
	defer SetActorCount(6)

	SetActorCount(0)
	if got := GetActorCount(); got != 1 {
		t.Errorf("zero count clamped to %d, want 1", got)
	}
	SetActorCount(500)
	if got := GetActorCount(); got != 64 {
		t.Errorf("high count clamped to %d, want 64", got)
	}
}
