package core

const microsPerSecond = 1000000

// Minimum raw delta worth integrating. Smaller deltas are deferred to a
// later call by leaving the last-seen marker alone, which keeps the
// correction accumulator from churning on sub-millisecond polls.
const minGranularityMicros = 1000

// Integrator turns raw wrapping clock readings into corrected elapsed
// seconds. The correction accumulator keeps the fractional remainder of
// delta*ppm across calls; truncating it per call would bias the
// long-run rate.
type Integrator struct {
	ppm int32

	lastMicros uint32
	primed     bool

	corrAcc  int64  // delta*ppm residue, below one microsecond worth
	microBuf uint64 // corrected microseconds not yet rolled into a second

	seconds uint32
}

// NewIntegrator creates an integrator with the given correction factor.
// ppm = 0 disables correction entirely.
func NewIntegrator(ppm int32) *Integrator {
	return &Integrator{ppm: ppm}
}

// Advance folds a clock reading into the session total. Called from the
// control loop's time-advance step.
func (g *Integrator) Advance(nowMicros uint32) {
	if !g.primed {
		g.lastMicros = nowMicros
		g.primed = true
		return
	}

	delta := ElapsedMicros(g.lastMicros, nowMicros)
	if delta < minGranularityMicros {
		// Too small; the marker stays put so the ticks are picked
		// up by the next call.
		return
	}
	g.lastMicros = nowMicros

	corrected := int64(delta)
	if g.ppm != 0 {
		g.corrAcc += int64(delta) * int64(g.ppm)
		whole := g.corrAcc / microsPerSecond
		g.corrAcc -= whole * microsPerSecond
		corrected -= whole
	}
	if corrected <= 0 {
		// Correction swallowed the whole delta. Contribute nothing
		// rather than going backwards.
		return
	}

	g.microBuf += uint64(corrected)
	// A single call may span several seconds under abnormal
	// scheduling delay, so drain in a loop.
	for g.microBuf >= microsPerSecond {
		g.microBuf -= microsPerSecond
		g.seconds++
	}
}

// SessionSeconds returns the corrected seconds accumulated since boot
// or since the last total override.
func (g *Integrator) SessionSeconds() uint32 {
	return g.seconds
}

// Reset clears the session count, the correction residue and the
// microsecond buffer. The last-seen clock marker is kept so integration
// resumes cleanly from the present reading.
func (g *Integrator) Reset() {
	g.seconds = 0
	g.corrAcc = 0
	g.microBuf = 0
}
