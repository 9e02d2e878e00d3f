// Finite-state machine for the analog threshold monitor.
// Implements the indicator control policy: toggle the output on a periodic
// tick, and hold it off in a cooldown state while the monitored voltage
// stays above the trip threshold.
package core

// Build-time tuning constants. All timing values are in timer ticks
// (1MHz on RP2040/RP2350, so 1 tick = 1us).
const (
	// TickInterval is the dispatcher period: 200ms.
	TickInterval uint32 = 200000

	// HighThreshold is the raw ADC trip level. The value is inherited from
	// the deployed configuration as-is; it is far below the 12-bit full
	// scale, so treat it as an externally supplied constant rather than a
	// fraction of ADC_MAX.
	HighThreshold ADCValue = 70

	// CooldownTicks is the minimum number of ticks spent in cooldown
	// before the machine may return to idle (~2s at TickInterval).
	CooldownTicks uint32 = 10
)

// State identifies the active state of the machine.
type State uint8

const (
	StateIdle     State = iota // output de-asserted
	StateActive                // output asserted, conversion in flight or due
	StateCooldown              // output de-asserted, re-sampling until safe
)

// EventType identifies the kind of event delivered to the machine.
type EventType uint8

const (
	EventTick        EventType = iota // periodic dispatcher tick
	EventSampleReady                  // one ADC conversion completed
)

// Event is delivered synchronously to the machine; Value is only
// meaningful for EventSampleReady.
type Event struct {
	Type  EventType
	Value ADCValue
}

// Context is the mutable data carried across transitions. Exactly one
// instance exists; it is owned by the coordinator after Publish and must
// only be touched inside WithExclusiveAccess.
type Context struct {
	Pin     GPIOPin      // indicator output, exclusively owned
	Channel ADCChannelID // monitored ADC channel

	// WaitTicks and LastSample are meaningful only in StateCooldown.
	// Both are reset on every entry into cooldown.
	WaitTicks  uint32
	LastSample ADCValue
}

// transition is the result of a state's process function: either stay in
// the current state or move to Next.
type transition struct {
	move bool
	next State
}

func stay() transition                { return transition{} }
func transitionTo(s State) transition { return transition{move: true, next: s} }

// stateSpec binds a state's entry action and event processing function.
// Entry actions must not block; they may start asynchronous work (an ADC
// conversion) whose result arrives later as an event.
type stateSpec struct {
	label   string
	entry   func(ctx *Context)
	process func(ctx *Context, evt Event) transition
}

var stateTable = [...]stateSpec{
	StateIdle: {
		label: "OFF",
		entry: func(ctx *Context) {
			setIndicator(ctx, false)
		},
		process: func(ctx *Context, evt Event) transition {
			if evt.Type == EventTick {
				return transitionTo(StateActive)
			}
			// A stale sample can arrive here if a conversion completes
			// after leaving Active; ignore it.
			return stay()
		},
	},
	StateActive: {
		label: "ON",
		entry: func(ctx *Context) {
			setIndicator(ctx, true)
			MustADC().StartConversion(ctx.Channel)
		},
		process: func(ctx *Context, evt Event) transition {
			switch evt.Type {
			case EventTick:
				return transitionTo(StateIdle)
			case EventSampleReady:
				if evt.Value > HighThreshold {
					return transitionTo(StateCooldown)
				}
			}
			return stay()
		},
	},
	StateCooldown: {
		label: "WAIT_HIGH_VALUE",
		entry: func(ctx *Context) {
			setIndicator(ctx, false)
			ctx.WaitTicks = 0
			ctx.LastSample = 0
		},
		process: func(ctx *Context, evt Event) transition {
			switch evt.Type {
			case EventTick:
				// Keep re-sampling while waiting: the exit condition
				// requires a confirmed reading below the threshold, not
				// just elapsed time, so the machine cannot oscillate when
				// the signal hovers near HighThreshold.
				MustADC().StartConversion(ctx.Channel)
				ctx.WaitTicks++
				if ctx.WaitTicks >= CooldownTicks && ctx.LastSample <= HighThreshold {
					return transitionTo(StateIdle)
				}
			case EventSampleReady:
				ctx.LastSample = evt.Value
			}
			return stay()
		},
	},
}

// setIndicator drives the output pin. Pin writes are treated as
// infallible; a failed write on a configured pin has no recovery path.
func setIndicator(ctx *Context, on bool) {
	_ = MustGPIO().SetPin(ctx.Pin, on)
}

// Machine holds the active state tag. One instance exists for the process
// lifetime, owned by the coordinator after Publish.
type Machine struct {
	state State
}

// NewMachine returns a machine in StateIdle. Call Init before dispatching
// any event.
func NewMachine() *Machine {
	return &Machine{state: StateIdle}
}

// Init runs the initial state's entry action exactly once, with no
// incoming event. The entry action is side-effect idempotent (de-asserting
// an already low pin is a no-op at the hardware level).
func (m *Machine) Init(ctx *Context) {
	stateTable[m.state].entry(ctx)
}

// Dispatch runs the active state's process function and, on a transition,
// updates the tag and runs the new state's entry action before returning.
// Dispatch never fails: events a state does not handle are no-ops.
func (m *Machine) Dispatch(ctx *Context, evt Event) {
	d := stateTable[m.state].process(ctx, evt)
	if !d.move {
		return
	}
	m.state = d.next
	stateTable[m.state].entry(ctx)
}

// State returns the active state tag.
func (m *Machine) State() State {
	return m.state
}

// Label returns the reporting label for the active state.
func (m *Machine) Label() string {
	return stateTable[m.state].label
}
