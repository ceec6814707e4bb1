package core

import (
	"testing"
	"time"
)

func TestFixedStepPacesTicks(t *testing.T) {
	clock := time.Unix(0, 0)
	f := NewFixedStep(10)
	f.now = func() time.Time { return clock }

	if !f.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	if f.ShouldStep() {
		t.Fatal("no time passed, no step expected")
	}
	clock = clock.Add(60 * time.Millisecond)
	if f.ShouldStep() {
		t.Fatal("60ms is less than one 100ms tick")
	}
	if got := f.Wait(); got != 40*time.Millisecond {
		t.Fatalf("wait = %v, want 40ms", got)
	}
	clock = clock.Add(40 * time.Millisecond)
	if !f.ShouldStep() {
		t.Fatal("a full tick elapsed")
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	clock := time.Unix(0, 0)
	f := NewFixedStep(10)
	f.now = func() time.Time { return clock }
	f.ShouldStep()

	clock = clock.Add(time.Second)
	steps := 0
	for f.ShouldStep() {
		steps++
	}
	if steps != 2 {
		t.Fatalf("steps after a stall = %d, want 2", steps)
	}
}
