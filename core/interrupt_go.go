//go:build !tinygo

package core

import "sync"

// irqState is a placeholder for the saved interrupt state on regular Go,
// mirroring interrupt.State on the bare-metal side.
type irqState uintptr

// On hosted builds there is no interrupt masking; a package-level mutex
// provides the same exclusion so tests can run simulated producers on real
// goroutines. Critical sections must never nest (the mutex is not
// reentrant), matching the bare-metal discipline.
var sectionMu sync.Mutex

// disableInterrupts enters the critical section on regular Go
func disableInterrupts() irqState {
	sectionMu.Lock()
	return 0
}

// restoreInterrupts leaves the critical section on regular Go
func restoreInterrupts(state irqState) {
	sectionMu.Unlock()
}
