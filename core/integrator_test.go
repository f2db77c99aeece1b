package core

import "testing"

func TestElapsedMicrosWraparound(t *testing.T) {
	testCases := []struct {
		prev     uint32
		now      uint32
		expected uint32
	}{
		{0, 0, 0},
		{0, 1000, 1000},
		{1000, 5000, 4000},
		{0xFFFFFFFF, 0, 1},
		{0xFFFFFC00, 0x400, 0x800},
		{0xFFFFFFFF, 0xFFFFFFFF, 0},
	}

	for _, tc := range testCases {
		got := ElapsedMicros(tc.prev, tc.now)
		if got != tc.expected {
			t.Errorf("ElapsedMicros(%#x, %#x) = %d, want %d",
				tc.prev, tc.now, got, tc.expected)
		}
	}
}

func TestIntegratorAccumulatesSeconds(t *testing.T) {
	g := NewIntegrator(0)
	g.Advance(0) // prime

	var now uint32
	for i := 0; i < 50; i++ {
		now += 100000 // 100ms per call
		g.Advance(now)
	}

	if got := g.SessionSeconds(); got != 5 {
		t.Errorf("SessionSeconds = %d, want 5", got)
	}
}

func TestIntegratorMultipleSecondsPerCall(t *testing.T) {
	// A stalled scheduler can hand the integrator several seconds in
	// one delta; the whole span must be credited.
	g := NewIntegrator(0)
	g.Advance(0)
	g.Advance(3500000)

	if got := g.SessionSeconds(); got != 3 {
		t.Errorf("SessionSeconds = %d, want 3", got)
	}
}

func TestIntegratorGranularityDeferral(t *testing.T) {
	g := NewIntegrator(0)
	g.Advance(0)

	// Sub-millisecond deltas are deferred, not dropped: the marker
	// stays put, so the ticks count once enough have built up.
	g.Advance(400)
	g.Advance(800)
	if got := g.SessionSeconds(); got != 0 {
		t.Fatalf("SessionSeconds = %d after tiny deltas, want 0", got)
	}

	g.Advance(1000000)
	if got := g.SessionSeconds(); got != 1 {
		t.Errorf("SessionSeconds = %d, want 1 (deferred ticks lost)", got)
	}
}

func TestIntegratorAcrossWraparound(t *testing.T) {
	start := uint32(0xFFFFF000)
	g := NewIntegrator(0)
	g.Advance(start)

	// 4096 µs to the wrap point plus 996904 µs past it.
	g.Advance(start + 1001000)

	if got := g.SessionSeconds(); got != 1 {
		t.Errorf("SessionSeconds = %d across wraparound, want 1", got)
	}
}

// One hour of raw ticks at +1111 ppm: the oscillator overcounts by
// roughly four seconds per hour, so the corrected session reads 3596.
func TestIntegratorCorrectionCalibrationScenario(t *testing.T) {
	g := NewIntegrator(1111)
	g.Advance(0)

	var now uint32
	for i := 0; i < 36000; i++ {
		now += 100000
		g.Advance(now)
	}

	if got := g.SessionSeconds(); got != 3596 {
		t.Errorf("SessionSeconds = %d, want 3596", got)
	}
}

// The fractional correction remainder is carried across calls, so the
// cumulative corrected ticks stay within one tick of N*(1e6-C)/1e6 no
// matter how the run is chunked.
func TestIntegratorCorrectionNoTruncationDrift(t *testing.T) {
	const ppm = 313
	const calls = 100000
	const delta = 7777 // deliberately not a divisor of 1e6

	g := NewIntegrator(ppm)
	g.Advance(0)

	var now uint32
	for i := 0; i < calls; i++ {
		now += delta
		g.Advance(now)
	}

	rawTicks := uint64(calls) * delta
	expectedCorrected := rawTicks * (1000000 - ppm) / 1000000
	gotCorrected := uint64(g.SessionSeconds())*microsPerSecond + g.microBuf

	diff := int64(gotCorrected) - int64(expectedCorrected)
	if diff < -1 || diff > 1 {
		t.Errorf("corrected ticks = %d, want %d within one tick",
			gotCorrected, expectedCorrected)
	}
}

func TestIntegratorNegativePPMAddsTime(t *testing.T) {
	// A slow oscillator (-1000 ppm) gets time added back.
	g := NewIntegrator(-1000)
	g.Advance(0)
	g.Advance(1000000)

	// 1e6 raw + 1000 correction leaves the buffer past one second.
	if got := g.SessionSeconds(); got != 1 {
		t.Fatalf("SessionSeconds = %d, want 1", got)
	}
	if g.microBuf != 1000 {
		t.Errorf("microBuf = %d, want 1000", g.microBuf)
	}
}

func TestIntegratorClampsNonPositiveDelta(t *testing.T) {
	// A pathological correction factor that swallows the entire
	// delta must contribute zero, never a negative amount.
	g := NewIntegrator(1000000)
	g.Advance(0)
	g.Advance(5000)

	if got := g.SessionSeconds(); got != 0 {
		t.Errorf("SessionSeconds = %d, want 0", got)
	}
	if g.microBuf != 0 {
		t.Errorf("microBuf = %d, want 0", g.microBuf)
	}
}

func TestIntegratorReset(t *testing.T) {
	g := NewIntegrator(1111)
	g.Advance(0)
	g.Advance(5500000)

	g.Reset()
	if g.SessionSeconds() != 0 || g.microBuf != 0 || g.corrAcc != 0 {
		t.Fatalf("Reset left state behind: seconds=%d microBuf=%d corrAcc=%d",
			g.SessionSeconds(), g.microBuf, g.corrAcc)
	}

	// The last-seen marker survives, so integration resumes from the
	// present reading rather than replaying the old span.
	g.Advance(6510000)
	if got := g.SessionSeconds(); got != 1 {
		t.Errorf("SessionSeconds = %d after reset+advance, want 1", got)
	}
}
