package core

// Default scheduling periods in milliseconds.
const (
	DefaultAdvancePeriod   = 50
	DefaultRefreshPeriod   = 1000
	DefaultTopPeriod       = 2000
	DefaultAlternatePeriod = 4000
	DefaultCommitPeriod    = 60000
)

// Config selects the per-variant behavior of the meter. The basic
// hardware variant runs with CorrectionPPM: 0, TrackPrevious: false and
// StoreSeconds: false; everything else is shared between variants.
type Config struct {
	// CorrectionPPM is the oscillator rate error in parts per million.
	// Positive means the clock runs fast and time is subtracted;
	// negative means it runs slow and time is added.
	CorrectionPPM int32

	// TrackPrevious enables previous-session bookkeeping and its
	// storage fields.
	TrackPrevious bool

	// StoreSeconds persists the sub-minute part of the total. The
	// basic variant keeps minute granularity in storage.
	StoreSeconds bool

	// Scheduling periods in milliseconds. Zero selects the default.
	AdvancePeriodMillis   uint32
	RefreshPeriodMillis   uint32
	TopPeriodMillis       uint32
	AlternatePeriodMillis uint32
	CommitPeriodMillis    uint32
}

// applyDefaults fills in missing configuration values
func (c *Config) applyDefaults() {
	if c.AdvancePeriodMillis == 0 {
		c.AdvancePeriodMillis = DefaultAdvancePeriod
	}
	if c.RefreshPeriodMillis == 0 {
		c.RefreshPeriodMillis = DefaultRefreshPeriod
	}
	if c.TopPeriodMillis == 0 {
		c.TopPeriodMillis = DefaultTopPeriod
	}
	if c.AlternatePeriodMillis == 0 {
		c.AlternatePeriodMillis = DefaultAlternatePeriod
	}
	if c.CommitPeriodMillis == 0 {
		c.CommitPeriodMillis = DefaultCommitPeriod
	}
}
