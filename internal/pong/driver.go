package pong

import "time"

// DefaultTickPeriod is the reference cadence of the game loop.
const DefaultTickPeriod = 15 * time.Millisecond

// maxCatchUp bounds how many ticks a single Advance may run, so a long
// stall (window drag, debugger) doesn't fast-forward the rally.
const maxCatchUp = 8

// Driver is a fixed-step accumulator. The shell feeds it real elapsed time
// and it reports how many whole periods are owed. The match starts and
// stops it.
type Driver struct {
	period  time.Duration
	running bool
	accum   time.Duration
}

// Start begins ticking at the given period. Any previously accumulated time
// is discarded.
func (d *Driver) Start(period time.Duration) {
	if period <= 0 {
		period = DefaultTickPeriod
	}
	d.period = period
	d.running = true
	d.accum = 0
}

// Stop halts ticking immediately.
func (d *Driver) Stop() {
	d.running = false
	d.accum = 0
}

// Running reports whether ticks are being issued.
func (d *Driver) Running() bool { return d.running }

// Period returns the tick period.
func (d *Driver) Period() time.Duration { return d.period }

// feed adds elapsed time and returns the number of ticks now owed.
func (d *Driver) feed(dt time.Duration) int {
	if !d.running || dt <= 0 {
		return 0
	}
	d.accum += dt
	n := int(d.accum / d.period)
	if n > maxCatchUp {
		n = maxCatchUp
		d.accum = 0
		return n
	}
	d.accum -= time.Duration(n) * d.period
	return n
}
