package core

// Test doubles for the hardware collaborators.

// fakeClock is a manually advanced ClockSource. The counters are plain
// uint32s so wraparound behaves exactly like the hardware timer.
type fakeClock struct {
	micros uint32
	millis uint32
}

func (c *fakeClock) NowMicros() uint32 { return c.micros }
func (c *fakeClock) NowMillis() uint32 { return c.millis }

// tick advances both counters by the given wall time.
func (c *fakeClock) tick(millis uint32) {
	c.millis += millis
	c.micros += millis * 1000
}

// fakeStorage is an in-memory EEPROM. Unwritten cells read as the
// erased 0xFF pattern, and identical writes are skipped, as the real
// driver does.
type fakeStorage struct {
	cells  map[uint16]byte
	writes int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{cells: make(map[uint16]byte)}
}

func (s *fakeStorage) ReadByte(addr uint16) byte {
	if v, ok := s.cells[addr]; ok {
		return v
	}
	return blankByte
}

func (s *fakeStorage) WriteByte(addr uint16, value byte) {
	if v, ok := s.cells[addr]; ok && v == value {
		return
	}
	s.cells[addr] = value
	s.writes++
}

// fakeDisplay records the last text written to each row.
type fakeDisplay struct {
	lines    [2]string
	topDraws int
	draws    int
}

func (d *fakeDisplay) WriteLine(row uint8, text string) {
	d.lines[row] = text
	d.draws++
	if row == 0 {
		d.topDraws++
	}
}
