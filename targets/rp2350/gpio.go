//go:build rp2350

package main

import (
	"errors"
	"machine"

	"voltmon/core"
)

// RPGPIODriver implements the GPIODriver interface for RP2350
type RPGPIODriver struct {
	// Track configured pins to prevent conflicts
	configuredPins map[core.GPIOPin]machine.Pin
}

// NewRPGPIODriver creates a new RP2350 GPIO driver
func NewRPGPIODriver() *RPGPIODriver {
	return &RPGPIODriver{
		configuredPins: make(map[core.GPIOPin]machine.Pin),
	}
}

// ConfigureOutput configures a pin as a digital output
func (d *RPGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	// Check if already configured
	if _, exists := d.configuredPins[pin]; exists {
		// Already configured, this is OK
		return nil
	}

	machinePin, err := pinNumberToMachinePin(pin)
	if err != nil {
		return err
	}

	machinePin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	// Track configured pin
	d.configuredPins[pin] = machinePin

	return nil
}

// SetPin sets the pin to high (true) or low (false)
func (d *RPGPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	machinePin, exists := d.configuredPins[pin]
	if !exists {
		return errors.New("pin not configured")
	}
	machinePin.Set(value)
	return nil
}

// GetPin reads the current pin state
func (d *RPGPIODriver) GetPin(pin core.GPIOPin) (bool, error) {
	machinePin, exists := d.configuredPins[pin]
	if !exists {
		return false, errors.New("pin not configured")
	}
	return machinePin.Get(), nil
}

// pinNumberToMachinePin maps a GPIO number to a machine.Pin.
// RP2350A exposes GPIO0-GPIO29.
func pinNumberToMachinePin(pin core.GPIOPin) (machine.Pin, error) {
	if pin > 29 {
		return machine.NoPin, errors.New("invalid GPIO pin")
	}
	return machine.Pin(pin), nil
}
