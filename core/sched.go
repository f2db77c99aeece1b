package core

// How far behind a timer may fall, in periods, before its reference
// point is snapped to the present instead of replaying the missed
// firings one per loop iteration.
const catchUpPeriods = 10

// IntervalTimer is a polled periodic deadline on the wrapping
// millisecond clock.
type IntervalTimer struct {
	period uint32
	ref    uint32
}

// Start arms the timer with the given period, referenced to now.
func (t *IntervalTimer) Start(periodMillis, nowMillis uint32) {
	t.period = periodMillis
	t.ref = nowMillis
}

// Expired reports whether a period has elapsed, advancing the
// reference by exactly one period when it has. After a stall of more
// than catchUpPeriods periods the reference snaps to now instead: the
// action runs once with fresh values rather than firing repeatedly to
// work off the backlog.
func (t *IntervalTimer) Expired(nowMillis uint32) bool {
	elapsed := ElapsedMillis(t.ref, nowMillis)
	if elapsed < t.period {
		return false
	}
	if elapsed > t.period*catchUpPeriods {
		t.ref = nowMillis
	} else {
		t.ref += t.period
	}
	return true
}

// Snap moves the reference to now without firing.
func (t *IntervalTimer) Snap(nowMillis uint32) {
	t.ref = nowMillis
}
