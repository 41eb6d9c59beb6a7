package components

import "testing"

func TestRepeatingTimerWraps(t *testing.T) {
	timer := NewRepeatingTimer(1)

	var fired int
	for i := 0; i < 10; i++ {
		timer.Tick(0.25)
		if timer.Finished() {
			fired++
		}
	}
	if fired != 2 {
		t.Errorf("fired %d times in 2.5s, want 2", fired)
	}
	if timer.Elapsed != 0.5 {
		t.Errorf("elapsed = %v, want 0.5", timer.Elapsed)
	}
}

func TestOnceTimerStops(t *testing.T) {
	timer := NewOnceTimer(0.5)
	timer.Tick(0.3)
	if timer.Finished() {
		t.Fatal("finished early")
	}
	timer.Tick(0.3)
	if !timer.Finished() || timer.Elapsed != 0.5 {
		t.Fatalf("after 0.6s: finished=%v elapsed=%v", timer.Finished(), timer.Elapsed)
	}
	timer.Tick(1)
	if !timer.Finished() || timer.Elapsed != 0.5 {
		t.Errorf("one-shot timer moved past its duration: elapsed=%v", timer.Elapsed)
	}

	timer.Reset()
	if timer.Finished() || timer.Elapsed != 0 {
		t.Errorf("reset timer: finished=%v elapsed=%v", timer.Finished(), timer.Elapsed)
	}
}

func TestZeroDurationFiresEveryTick(t *testing.T) {
	timer := NewRepeatingTimer(0)
	for i := 0; i < 3; i++ {
		timer.Tick(0.1)
		if !timer.Finished() {
			t.Fatalf("tick %d did not fire", i)
		}
	}
}
