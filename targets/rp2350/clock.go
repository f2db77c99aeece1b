//go:build rp2350

package main

import (
	"runtime/volatile"
	"unsafe"
)

// RP2350 timer peripheral memory map.
// NOTE: the RP2350 timer is at a DIFFERENT address than the RP2040:
// - RP2040 TIMER:  0x40054000
// - RP2350 TIMER0: 0x400B0000
const (
	timerBase     = 0x400B0000
	timerTimeRawH = timerBase + 0x24 // Raw read from upper 32b (no latching)
	timerTimeRawL = timerBase + 0x28 // Raw read from lower 32b
)

var (
	timerRawH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTimeRawH)))
	timerRawL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTimeRawL)))
)

// hardwareClock exposes TIMER0 as the meter's time base.
type hardwareClock struct{}

// NowMicros returns the low 32 bits of the microsecond counter.
func (c *hardwareClock) NowMicros() uint32 {
	return timerRawL.Get()
}

// NowMillis derives the coarse scheduling clock from the 64-bit
// counter.
func (c *hardwareClock) NowMillis() uint32 {
	return uint32(uptimeMicros() / 1000)
}

// uptimeMicros reads the full 64-bit counter, re-reading the high word
// to detect a rollover mid-read.
func uptimeMicros() uint64 {
	for {
		high1 := timerRawH.Get()
		low := timerRawL.Get()
		high2 := timerRawH.Get()

		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
	}
}
