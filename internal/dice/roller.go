package dice

import "time"

// Roll animation defaults.
const (
	DefaultRollTicks    = 11
	DefaultRollInterval = 50 * time.Millisecond
)

// Roller animates RollAll as a bounded repeating timer driven by Update.
// While a roll is in progress further RollAll calls are ignored.
type Roller struct {
	tray *Tray

	ticks    int
	interval time.Duration

	rolling   bool
	remaining int
	elapsed   time.Duration

	onTick   func(remaining int)
	onSettle func(Snapshot)
}

// NewRoller creates a roller for t. Non-positive arguments fall back to the defaults.
func NewRoller(t *Tray, ticks int, interval time.Duration) *Roller {
	if ticks <= 0 {
		ticks = DefaultRollTicks
	}
	if interval <= 0 {
		interval = DefaultRollInterval
	}
	return &Roller{
		tray:     t,
		ticks:    ticks,
		interval: interval,
	}
}

// OnTick sets a callback fired after each animation tick.
func (r *Roller) OnTick(fn func(remaining int)) {
	r.onTick = fn
}

// OnSettle sets a callback fired once the last tick has landed.
func (r *Roller) OnSettle(fn func(Snapshot)) {
	r.onSettle = fn
}

// Rolling reports whether an animation is in progress.
func (r *Roller) Rolling() bool {
	return r.rolling
}

// Remaining returns the number of ticks still pending.
func (r *Roller) Remaining() int {
	return r.remaining
}

// RollAll starts a roll animation. It returns false if one is already running.
func (r *Roller) RollAll() bool {
	if r.rolling {
		return false
	}
	r.rolling = true
	r.remaining = r.ticks
	r.elapsed = 0
	return true
}

// Update advances the animation clock by dt, firing every tick that came due.
func (r *Roller) Update(dt time.Duration) {
	if !r.rolling {
		return
	}
	r.elapsed += dt
	for r.rolling && r.elapsed >= r.interval {
		r.elapsed -= r.interval
		r.remaining--
		r.tray.Roll()
		if r.onTick != nil {
			r.onTick(r.remaining)
		}
		if r.remaining <= 0 {
			r.rolling = false
			r.elapsed = 0
			if r.onSettle != nil {
				r.onSettle(r.tray.Snapshot())
			}
		}
	}
}

// Stop cancels a pending animation without firing further ticks.
func (r *Roller) Stop() {
	r.rolling = false
	r.remaining = 0
	r.elapsed = 0
}
