//go:build rp2040

package main

import (
	"runtime/volatile"
	"unsafe"
)

// RP2040 timer peripheral: a free-running 64-bit microsecond counter.
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x08 // Raw timer high word
	timerTIMERAWL = timerBase + 0x0C // Raw timer low word
)

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// hardwareClock exposes the RP2040 timer as the meter's time base.
type hardwareClock struct{}

// NowMicros returns the low 32 bits of the microsecond counter. It
// wraps every ~71.6 minutes; the core's wraparound-safe differencing
// handles that.
func (c *hardwareClock) NowMicros() uint32 {
	return timerRAWL.Get()
}

// NowMillis derives the coarse scheduling clock from the 64-bit
// counter.
func (c *hardwareClock) NowMillis() uint32 {
	return uint32(uptimeMicros() / 1000)
}

// uptimeMicros reads the full 64-bit counter.
// Must read high first, then low, then high again to detect rollover.
func uptimeMicros() uint64 {
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()

		// If high didn't change, we got a consistent reading
		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
		// Otherwise retry (rollover happened during read)
	}
}
