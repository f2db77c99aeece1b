package core

// ClockSource is the free-running hardware time base.
//
// NowMicros is a wrapping 32-bit microsecond counter. It never decreases
// except at wraparound, so consumers must difference readings with
// ElapsedMicros rather than comparing absolute values. NowMillis is a
// coarser wrapping counter used only to schedule the periodic tasks; it
// carries no calibration.
type ClockSource interface {
	NowMicros() uint32
	NowMillis() uint32
}

// ElapsedMicros returns the ticks elapsed from prev to now, assuming at
// most one wraparound between the two readings. Unsigned subtraction
// adds the full counter range back in exactly that case.
func ElapsedMicros(prev, now uint32) uint32 {
	return now - prev
}

// ElapsedMillis is the same computation on the millisecond clock.
func ElapsedMillis(prev, now uint32) uint32 {
	return now - prev
}
