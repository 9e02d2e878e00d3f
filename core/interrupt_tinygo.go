//go:build tinygo

package core

import "runtime/interrupt"

// On a single-core bare-metal target, masking interrupts for the duration
// of an access makes it atomic with respect to interrupt handlers. Critical
// sections must never nest.

// disableInterrupts disables interrupts and returns the previous state
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

// restoreInterrupts restores the interrupt state
func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}
