package core

import "testing"

func TestIntervalTimerFiresOncePerPeriod(t *testing.T) {
	var tm IntervalTimer
	tm.Start(100, 0)

	if tm.Expired(50) {
		t.Error("fired before the period elapsed")
	}
	if !tm.Expired(100) {
		t.Error("did not fire at the period boundary")
	}
	if tm.Expired(150) {
		t.Error("fired twice in one period")
	}
	if !tm.Expired(200) {
		t.Error("did not fire in the second period")
	}
}

func TestIntervalTimerKeepsPhase(t *testing.T) {
	// A moderately late poll advances the reference by exactly one
	// period, so the cadence stays phase-locked to the original
	// reference rather than drifting with poll jitter.
	var tm IntervalTimer
	tm.Start(100, 0)

	if !tm.Expired(130) {
		t.Fatal("did not fire")
	}
	if tm.Expired(199) {
		t.Error("fired early; reference should be 100, not 130")
	}
	if !tm.Expired(200) {
		t.Error("did not fire at the phase-locked boundary")
	}
}

func TestIntervalTimerCatchUpSnap(t *testing.T) {
	// After a stall past ten periods the timer fires once and snaps
	// its reference to the present instead of replaying the backlog.
	var tm IntervalTimer
	tm.Start(100, 0)

	if !tm.Expired(1500) {
		t.Fatal("did not fire after the stall")
	}
	if tm.Expired(1501) {
		t.Error("replayed a missed firing after the snap")
	}
	if tm.Expired(1599) {
		t.Error("fired before a full period from the snap point")
	}
	if !tm.Expired(1600) {
		t.Error("did not fire one period after the snap point")
	}
}

func TestIntervalTimerWrapsWithClock(t *testing.T) {
	var tm IntervalTimer
	tm.Start(100, 0xFFFFFFF0)

	if tm.Expired(0xFFFFFFFF) {
		t.Error("fired before the period elapsed near wraparound")
	}
	if !tm.Expired(84) { // 0xFFFFFFF0 + 100 wraps to 84
		t.Error("did not fire across the clock wraparound")
	}
}
