//go:build rp2350

package main

import (
	"machine"
)

// InitUSB initializes USB serial communication
// TinyGo automatically sets up USB CDC-ACM on RP2350
func InitUSB() {
	// Configure machine.Serial (which is USB CDC on RP2350)
	if err := machine.Serial.Configure(machine.UARTConfig{}); err != nil {
		return
	}

	// Note: machine.Serial is USB CDC here, not a UART; the USB
	// descriptors are set by TinyGo's runtime. Writes before the host
	// opens the port are dropped, which is fine: reports are
	// best-effort.
}

// USBWriteBytes writes multiple bytes to USB
func USBWriteBytes(data []byte) (int, error) {
	return machine.Serial.Write(data)
}
