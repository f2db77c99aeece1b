package core

// Accumulator owns the working-memory time values: the current session,
// the lifetime total as of the last boot or override, and the previous
// session's duration. It is touched only from the control loop, so no
// locking is involved.
type Accumulator struct {
	integ *Integrator

	// Total seconds persisted at the last boot load or override.
	// The displayed total is this plus the running session.
	persistedTotal uint32

	// Duration of the prior power cycle's session, loaded at boot.
	previous uint32
}

// NewAccumulator creates an accumulator with the given drift
// correction factor.
func NewAccumulator(ppm int32) *Accumulator {
	return &Accumulator{integ: NewIntegrator(ppm)}
}

// Advance feeds a raw clock reading to the integrator.
func (a *Accumulator) Advance(nowMicros uint32) {
	a.integ.Advance(nowMicros)
}

// SessionSeconds returns the corrected seconds of the current session.
func (a *Accumulator) SessionSeconds() uint32 {
	return a.integ.SessionSeconds()
}

// TotalSeconds returns the lifetime operating seconds: the persisted
// baseline plus the running session.
func (a *Accumulator) TotalSeconds() uint32 {
	return a.persistedTotal + a.integ.SessionSeconds()
}

// PreviousSessionSeconds returns the prior power cycle's duration.
func (a *Accumulator) PreviousSessionSeconds() uint32 {
	return a.previous
}

// SetTotal force-sets the lifetime total and restarts the session from
// zero, clearing the integrator's correction state with it.
func (a *Accumulator) SetTotal(hours, minutes uint32) {
	a.persistedTotal = hours*3600 + minutes*60
	a.integ.Reset()
}

// load installs the values reconstructed from storage at boot.
func (a *Accumulator) load(totalSeconds, previousSeconds uint32) {
	a.persistedTotal = totalSeconds
	a.previous = previousSeconds
}
