package core

// Manager wires the meter subsystems together and runs the cooperative
// control loop. All mutable time state lives behind it and is touched
// only from Poll, so there is no concurrent access anywhere.
type Manager struct {
	cfg   Config
	clock ClockSource

	acc      *Accumulator
	saver    *Saver
	renderer *Renderer

	advance IntervalTimer
	refresh IntervalTimer
	commit  IntervalTimer
}

// NewManager creates a meter over the given collaborators.
func NewManager(cfg Config, clock ClockSource, st Storage, disp Display) *Manager {
	cfg.applyDefaults()
	acc := NewAccumulator(cfg.CorrectionPPM)
	return &Manager{
		cfg:      cfg,
		clock:    clock,
		acc:      acc,
		saver:    NewSaver(st, acc, cfg),
		renderer: NewRenderer(disp, acc, cfg),
	}
}

// Start loads persisted state and arms the loop timers. Call once
// before the first Poll.
func (m *Manager) Start() {
	m.saver.Boot()

	now := m.clock.NowMillis()
	m.advance.Start(m.cfg.AdvancePeriodMillis, now)
	m.refresh.Start(m.cfg.RefreshPeriodMillis, now)
	m.commit.Start(m.cfg.CommitPeriodMillis, now)
	m.renderer.Arm(now)

	// Prime the integrator's last-seen marker.
	m.acc.Advance(m.clock.NowMicros())
}

// Poll is one control-loop iteration: each of the three periods is
// checked and its action run if due. The time-advance step always runs
// before the display refresh, so drawn values include the latest
// integration. The commit cadence runs on the raw millisecond clock;
// only accumulated values are drift-corrected, not the save
// periodicity.
func (m *Manager) Poll() {
	nowMillis := m.clock.NowMillis()

	if m.advance.Expired(nowMillis) {
		m.acc.Advance(m.clock.NowMicros())
	}
	if m.refresh.Expired(nowMillis) {
		m.renderer.Refresh(nowMillis)
	}
	if m.commit.Expired(nowMillis) {
		m.saver.Commit()
	}
}

// Run polls forever. Device targets call this from main with an idle
// function that yields to the runtime between iterations.
func (m *Manager) Run(idle func()) {
	for {
		m.Poll()
		if idle != nil {
			idle()
		}
	}
}

// SetTotal force-sets the lifetime total to the given hours and
// minutes, resets the running session, and commits the new total
// write-through. This is a rare administrative action where durability
// matters more than wear; it is meant to be invoked at startup, before
// normal operation.
func (m *Manager) SetTotal(hours, minutes uint32) {
	m.acc.SetTotal(hours, minutes)
	m.saver.CommitTotal()
}

// SessionSeconds returns the corrected seconds of the current session.
func (m *Manager) SessionSeconds() uint32 {
	return m.acc.SessionSeconds()
}

// TotalSeconds returns the lifetime operating seconds.
func (m *Manager) TotalSeconds() uint32 {
	return m.acc.TotalSeconds()
}

// PreviousSessionSeconds returns the prior power cycle's duration.
func (m *Manager) PreviousSessionSeconds() uint32 {
	return m.acc.PreviousSessionSeconds()
}
