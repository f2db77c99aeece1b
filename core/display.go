package core

// Display is the physical two-line character display. The renderer
// always writes full-width lines so stale characters never linger.
type Display interface {
	WriteLine(row uint8, text string)
}

// DisplayWidth is the character width the renderer formats to.
const DisplayWidth = 16

// Renderer formats the accumulator's values for a two-line character
// display. The top region alternates between the lifetime total and
// the previous session; the bottom region tracks the current session.
// It reads the accumulator and never mutates it.
type Renderer struct {
	disp Display
	acc  *Accumulator

	trackPrevious bool

	// The top region refreshes on its own slower timer; the
	// alternation timer toggles which value it shows.
	top          IntervalTimer
	alternate    IntervalTimer
	showPrevious bool

	topPeriod       uint32
	alternatePeriod uint32
}

// NewRenderer creates a renderer over the given display.
func NewRenderer(disp Display, acc *Accumulator, cfg Config) *Renderer {
	return &Renderer{
		disp:            disp,
		acc:             acc,
		trackPrevious:   cfg.TrackPrevious,
		topPeriod:       cfg.TopPeriodMillis,
		alternatePeriod: cfg.AlternatePeriodMillis,
	}
}

// Arm starts the region timers and draws both regions once.
func (r *Renderer) Arm(nowMillis uint32) {
	r.top.Start(r.topPeriod, nowMillis)
	r.alternate.Start(r.alternatePeriod, nowMillis)
	r.drawTop()
	r.drawBottom()
}

// Refresh is one display-refresh step. The bottom region redraws every
// step; the top region redraws on its slower timer, or immediately
// when the alternation toggles so the switch is visible the moment it
// happens.
func (r *Renderer) Refresh(nowMillis uint32) {
	if r.trackPrevious && r.alternate.Expired(nowMillis) {
		r.showPrevious = !r.showPrevious
		r.top.Snap(nowMillis)
		r.drawTop()
	} else if r.top.Expired(nowMillis) {
		r.drawTop()
	}
	r.drawBottom()
}

func (r *Renderer) drawTop() {
	label := "Total"
	secs := r.acc.TotalSeconds()
	if r.showPrevious {
		label = "Last "
		secs = r.acc.PreviousSessionSeconds()
	}
	h, m, _ := clockFields(secs)
	line := label + rightJustify(utoa(h), 6) + "h" + rightJustify(utoa(m), 3) + "m"
	r.disp.WriteLine(0, padRight(line, DisplayWidth))
}

func (r *Renderer) drawBottom() {
	h, m, s := clockFields(r.acc.SessionSeconds())
	line := "Run" + rightJustify(utoa(h), 4) + "h" +
		rightJustify(utoa(m), 3) + "m" + rightJustify(utoa(s), 3) + "s"
	r.disp.WriteLine(1, padRight(line, DisplayWidth))
}

// clockFields decomposes a second count into hours, minutes and
// seconds for rendering.
func clockFields(seconds uint32) (h, m, s uint32) {
	return seconds / 3600, seconds / 60 % 60, seconds % 60
}
