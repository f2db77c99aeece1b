package core

// Saver decides when accumulated time reaches the storage medium and
// rebuilds state at power-on. It is the only writer of the stored
// record. No error is ever surfaced and writes are not retried: the
// medium is assumed writable within its endurance rating, and a lost
// commit costs at most one period of accrued time.
type Saver struct {
	st  Storage
	acc *Accumulator

	trackPrevious bool
	storeSeconds  bool
}

// NewSaver creates the persistence layer over the given medium.
func NewSaver(st Storage, acc *Accumulator, cfg Config) *Saver {
	return &Saver{
		st:            st,
		acc:           acc,
		trackPrevious: cfg.TrackPrevious,
		storeSeconds:  cfg.StoreSeconds,
	}
}

// Boot reconstructs the totals from storage, sanitizing blank and
// out-of-range fields to zero. The just-loaded previous-session value
// is committed straight back: a no-op on a healthy slot, but on first
// power-up it replaces the erased cells with a valid zero record so
// later boots do not depend on sanitizing.
func (s *Saver) Boot() {
	total := readHMS(s.st, addrTotalHours, s.storeSeconds)

	var previous uint32
	if s.trackPrevious {
		prev := readHMS(s.st, addrPrevHours, true)
		previous = prev.totalSeconds()
		writeHMS(s.st, addrPrevHours, prev, true)
	}

	s.acc.load(total.totalSeconds(), previous)
}

// Commit writes the lifetime total so far, and the running session as
// the next boot's previous session. If power is lost before the next
// period, the next boot sees this session's progress, not a stale
// value.
func (s *Saver) Commit() {
	s.CommitTotal()
	if s.trackPrevious {
		writeHMS(s.st, addrPrevHours, splitHMS(s.acc.SessionSeconds()), true)
	}
}

// CommitTotal writes only the lifetime total fields. Used by the
// administrative override, which must not disturb the previous-session
// slot.
func (s *Saver) CommitTotal() {
	writeHMS(s.st, addrTotalHours, splitHMS(s.acc.TotalSeconds()), s.storeSeconds)
}
