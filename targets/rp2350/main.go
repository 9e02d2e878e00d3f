//go:build rp2350

package main

import (
	"machine"

	"voltmon/core"
)

// Board wiring, fixed at build time.
const (
	// indicatorPin is the indicator output (GPIO15).
	indicatorPin = core.GPIOPin(15)

	// monitorChannel is the monitored analog input: ADC channel 0 (GPIO26).
	monitorChannel = core.ADCChannelID(0)

	// debugDiagnostics turns on boot and bring-up diagnostics over the
	// same USB CDC link. The State reports are emitted either way.
	debugDiagnostics = true
)

func main() {
	// CRITICAL: Disable watchdog on boot to clear any previous state
	// This prevents issues with watchdog persisting across resets
	if err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0}); err != nil {
		return
	}

	// Initialize USB CDC immediately so early reports are not lost
	InitUSB()

	// Route diagnostics over the same CDC link as the state reports.
	core.SetDebugWriter(func(s string) {
		_, _ = USBWriteBytes([]byte(s + "\r\n"))
	})
	core.SetDebugEnabled(debugDiagnostics)

	// Initialize clock
	InitClock()
	core.DebugPrintln("boot uptime_us=" + core.Utoa(uint32(GetHardwareUptime())))

	// Register hardware drivers
	gpioDriver := NewRPGPIODriver()
	core.SetGPIODriver(gpioDriver)
	adcDriver := NewRPADCDriver()
	core.SetADCDriver(adcDriver)

	// Bring-up failures are fatal: halt before the control loop runs.
	if err := adcDriver.Init(core.ADCConfig{}); err != nil {
		core.DebugPrintln("adc init failed: " + err.Error())
		return
	}
	if err := adcDriver.ConfigureChannel(monitorChannel); err != nil {
		core.DebugPrintln("adc channel config failed: " + err.Error())
		return
	}
	if err := gpioDriver.ConfigureOutput(indicatorPin); err != nil {
		core.DebugPrintln("gpio config failed: " + err.Error())
		return
	}

	// Best-effort state reporting over USB CDC.
	core.SetSerialWriter(func(b []byte) {
		_, _ = USBWriteBytes(b)
	})

	// Construct the application state and run the initial entry action.
	ctx := &core.Context{Pin: indicatorPin, Channel: monitorChannel}
	m := core.NewMachine()
	m.Init(ctx)

	// Publish before arming the conversion interrupt; the handler must
	// never observe an unpopulated coordinator.
	core.Publish(m, ctx)
	adcDriver.EnableFIFOInterrupt()

	status := NewStatusLED()
	status.Show("OFF")

	// Main control loop: busy-poll the dispatcher, mirror the state on
	// the ws2812. Nothing here blocks.
	d := core.NewDispatcher(core.TickInterval)
	for {
		UpdateSystemTime()
		if fired, label := d.Poll(); fired {
			status.Show(label)
		}
	}
}
