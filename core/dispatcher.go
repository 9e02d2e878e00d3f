package core

// Periodic dispatcher: polls the monotonic counter and injects a tick
// event into the state machine at a fixed cadence. This is a busy-poll
// evaluated on every iteration of the target's outer control loop,
// interleaved with whatever other polling that loop performs; it never
// suspends.

// Dispatcher detects elapsed-time thresholds against the system timer and
// reports the machine's state after each tick.
type Dispatcher struct {
	interval  uint32
	lastFired uint32
}

// NewDispatcher returns a dispatcher that fires every interval ticks,
// anchored at the current time.
func NewDispatcher(interval uint32) *Dispatcher {
	return &Dispatcher{
		interval:  interval,
		lastFired: GetTime(),
	}
}

// Poll checks whether the tick interval has elapsed and, if so, dispatches
// one tick event through the coordinator and reports the resulting state
// over serial. Returns whether a tick fired and the state label derived
// while holding exclusive access (label is "" when no tick fired).
func (d *Dispatcher) Poll() (fired bool, label string) {
	now := GetTime()
	if ElapsedTicks(now, d.lastFired) < d.interval {
		return false, ""
	}
	d.lastFired = now

	// Label defaults to Unknown so a tick that races startup (nothing
	// published yet) still reports something well-formed.
	label = "Unknown"
	WithExclusiveAccess(func(m *Machine, ctx *Context) {
		m.Dispatch(ctx, Event{Type: EventTick})
		label = m.Label()
	})

	ReportState(label)
	return true, label
}
