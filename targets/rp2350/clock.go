//go:build rp2350

package main

import (
	"runtime/volatile"
	"unsafe"

	"voltmon/core"
)

// RP2350 Timer peripheral memory map
// NOTE: RP2350 timer is at a DIFFERENT address than RP2040!
// - RP2040 TIMER: 0x40054000
// - RP2350 TIMER0: 0x400B0000
//
// timeRawH @ 0x24 - Raw read from upper 32b
// timeRawL @ 0x28 - Raw read from lower 32b (what TinyGo uses)
const (
	timerBase     = 0x400B0000       // RP2350 TIMER0 base address
	timerTimeRawH = timerBase + 0x24 // Raw timer high (no latching)
	timerTimeRawL = timerBase + 0x28 // Raw timer low (no latching)
)

var (
	timerRawH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTimeRawH)))
	timerRawL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTimeRawL)))
)

// InitClock initializes the RP2350 hardware timer
// The RP2350 has a 64-bit microsecond timer at 1MHz
// Note: TinyGo's runtime already initializes the tick generators
func InitClock() {
	// Read and discard a few values to ensure stable readings after
	// TinyGo's clock initialization
	_ = timerRawL.Get()
	_ = timerRawL.Get()
	_ = timerRawL.Get()

	core.SetTime(GetHardwareTime())
}

// GetHardwareTime reads the RP2350 hardware timer
// Returns the low 32 bits of the microsecond counter
func GetHardwareTime() uint32 {
	return timerRawL.Get()
}

// GetHardwareUptime reads the full 64-bit RP2350 hardware timer
func GetHardwareUptime() uint64 {
	// Read high, then low, then high again to detect rollover
	for {
		high1 := timerRawH.Get()
		low := timerRawL.Get()
		high2 := timerRawH.Get()

		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
		// Otherwise retry (rollover happened during read)
	}
}

// UpdateSystemTime updates the core timer with hardware time
// Called from the main loop
func UpdateSystemTime() {
	core.SetTime(GetHardwareTime())
}
