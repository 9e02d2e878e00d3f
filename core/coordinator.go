package core

// Shared-state coordinator: the single cell holding the only mutable
// application state shared between interrupt and non-interrupt code. The
// machine and context are published once at startup, before the conversion
// interrupt is armed, and live for the remainder of program execution.
// Every access is bracketed by the interrupt-masking critical section, so
// the dispatcher's tick path and the ADC interrupt handler are serialized
// on a single core without locks or allocation.

var (
	sharedMachine *Machine
	sharedContext *Context
)

// Publish installs the machine/context pair into the coordinator. Must be
// called exactly once, before the asynchronous sample producer's interrupt
// source is armed; calling it after arming is a programming error and is
// not handled defensively.
func Publish(m *Machine, ctx *Context) {
	state := disableInterrupts()
	sharedMachine = m
	sharedContext = ctx
	restoreInterrupts(state)
}

// WithExclusiveAccess runs fn with mutable access to the published
// machine/context pair, with interrupts masked for the duration. If
// nothing has been published yet it is a no-op. fn must not block and must
// not call WithExclusiveAccess again; sections never nest.
func WithExclusiveAccess(fn func(m *Machine, ctx *Context)) {
	state := disableInterrupts()
	if sharedMachine != nil {
		fn(sharedMachine, sharedContext)
	}
	restoreInterrupts(state)
}
