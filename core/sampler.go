package core

// HandleSampleReady is the interrupt-side entry point for completed
// conversions. The target's ADC FIFO interrupt handler drains exactly one
// result and hands it here; the event is dispatched synchronously under
// the critical section and control returns to the handler without
// blocking. This function never starts a new conversion itself - only the
// state machine's entry/process logic decides when the next one is
// requested, so at most one conversion is ever in flight.
func HandleSampleReady(v ADCValue) {
	WithExclusiveAccess(func(m *Machine, ctx *Context) {
		m.Dispatch(ctx, Event{Type: EventSampleReady, Value: v})
	})
}
