package core

// ADCChannelID identifies a logical ADC channel (0-3 external, 4 internal
// temperature sensor on RP2040/RP2350).
type ADCChannelID uint8

// ADCValue is a raw ADC reading in the device's native resolution
// (12-bit on RP2040/RP2350, 0-4095). No implicit scaling.
type ADCValue uint16

// ADCConfig is the high-level config the core cares about.
type ADCConfig struct {
	// Reference voltage in millivolts (0 = platform default).
	Reference uint32
}

// ADCDriver is the abstract ADC interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type ADCDriver interface {
	// Init powers up and configures the ADC peripheral.
	Init(cfg ADCConfig) error

	// ConfigureChannel prepares a channel for analog input.
	// For pin-muxed channels, this should set the pin to analog mode.
	ConfigureChannel(ch ADCChannelID) error

	// StartConversion triggers a single one-shot conversion on the given
	// channel. Fire-and-forget: the result is delivered asynchronously
	// through the completion interrupt, never as a return value. Callers
	// must not start a new conversion before the previous result has been
	// consumed; the state machine's own pacing enforces this.
	StartConversion(ch ADCChannelID)
}

// Global singleton used by core code.
var adcDriver ADCDriver

// SetADCDriver is called by target-specific code to register its driver.
func SetADCDriver(d ADCDriver) {
	adcDriver = d
}

// MustADC returns the configured driver or panics if missing.
func MustADC() ADCDriver {
	if adcDriver == nil {
		panic("ADC driver not configured")
	}
	return adcDriver
}
