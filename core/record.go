package core

// Storage is the non-volatile medium behind the meter. Implementations
// are expected to be wear-aware: WriteByte skips the physical write
// when the cell already holds the value.
type Storage interface {
	ReadByte(addr uint16) byte
	WriteByte(addr uint16, value byte)
}

// Storage cell layout. Multi-byte fields are big-endian.
const (
	addrTotalHours   = 0 // 2 bytes
	addrTotalMinutes = 2
	addrTotalSeconds = 3 // written only when storing sub-minute precision
	addrPrevHours    = 4 // 2 bytes
	addrPrevMinutes  = 6
	addrPrevSeconds  = 7
)

// Erased EEPROM cells read as all bits set.
const (
	blankByte = 0xFF
	blankWord = 0xFFFF
)

// hms is one stored hours/minutes/seconds triple.
type hms struct {
	hours   uint16
	minutes uint8
	seconds uint8
}

func (v hms) totalSeconds() uint32 {
	return uint32(v.hours)*3600 + uint32(v.minutes)*60 + uint32(v.seconds)
}

func splitHMS(seconds uint32) hms {
	h := seconds / 3600
	if h >= blankWord {
		// Never write the erased sentinel as a legitimate value.
		h = blankWord - 1
	}
	return hms{
		hours:   uint16(h),
		minutes: uint8(seconds / 60 % 60),
		seconds: uint8(seconds % 60),
	}
}

// readHMS loads one triple from storage, sanitizing per field: a blank
// (erased) hours word and any minutes or seconds cell at or above 60
// load as zero. Out-of-range cells are corruption, never trusted.
func readHMS(st Storage, base uint16, withSeconds bool) hms {
	var v hms
	v.hours = uint16(st.ReadByte(base))<<8 | uint16(st.ReadByte(base+1))
	if v.hours == blankWord {
		v.hours = 0
	}
	v.minutes = st.ReadByte(base + 2)
	if v.minutes >= 60 {
		// Covers the blank 0xFF cell as well.
		v.minutes = 0
	}
	if withSeconds {
		v.seconds = st.ReadByte(base + 3)
		if v.seconds >= 60 {
			v.seconds = 0
		}
	}
	return v
}

// writeHMS stores one triple. The seconds cell is left untouched when
// the variant keeps minute granularity.
func writeHMS(st Storage, base uint16, v hms, withSeconds bool) {
	st.WriteByte(base, byte(v.hours>>8))
	st.WriteByte(base+1, byte(v.hours))
	st.WriteByte(base+2, v.minutes)
	if withSeconds {
		st.WriteByte(base+3, v.seconds)
	}
}
