//go:build rp2350

package main

import (
	"device/rp"
	"errors"
	"machine"
	"runtime/interrupt"

	"voltmon/core"
)

// RPADCDriver implements core.ADCDriver with register-level one-shot
// conversions. Results are routed through the ADC FIFO so the completion
// interrupt can drain them; the driver never polls for a result.
type RPADCDriver struct {
	arefMilliVolt uint32

	// Per-channel TinyGo ADC handles, used only for pin muxing.
	channels map[core.ADCChannelID]*machine.ADC
}

// NewRPADCDriver constructs the driver but does not Init() it yet.
func NewRPADCDriver() *RPADCDriver {
	return &RPADCDriver{
		arefMilliVolt: 3300,
		channels:      make(map[core.ADCChannelID]*machine.ADC),
	}
}

func (d *RPADCDriver) Init(cfg core.ADCConfig) error {
	if cfg.Reference != 0 {
		d.arefMilliVolt = cfg.Reference
	}

	// Use TinyGo's global ADC init for the power-up sequence.
	machine.InitADC()

	// Route conversion results into the FIFO and raise the IRQ as soon
	// as one entry is present.
	rp.ADC.FCS.SetBits(rp.ADC_FCS_EN)
	rp.ADC.FCS.ReplaceBits(1<<rp.ADC_FCS_THRESH_Pos, rp.ADC_FCS_THRESH_Msk, 0)

	return nil
}

// ConfigureChannel sets up a specific ADC channel (pin mux, etc.).
func (d *RPADCDriver) ConfigureChannel(ch core.ADCChannelID) error {
	if _, ok := d.channels[ch]; ok {
		// already configured
		return nil
	}

	// Map channel -> TinyGo ADC for external channels 0-3.
	var adc machine.ADC

	switch ch {
	case 0:
		adc = machine.ADC{Pin: machine.ADC0}
	case 1:
		adc = machine.ADC{Pin: machine.ADC1}
	case 2:
		adc = machine.ADC{Pin: machine.ADC2}
	case 3:
		adc = machine.ADC{Pin: machine.ADC3}
	default:
		return errors.New("unsupported ADC channel")
	}

	if err := adc.Configure(machine.ADCConfig{}); err != nil {
		return err
	}

	d.channels[ch] = &adc
	return nil
}

// StartConversion triggers a single one-shot conversion. Fire-and-forget:
// the result lands in the FIFO and is consumed by the interrupt handler.
func (d *RPADCDriver) StartConversion(ch core.ADCChannelID) {
	rp.ADC.CS.ReplaceBits(uint32(ch)<<rp.ADC_CS_AINSEL_Pos, rp.ADC_CS_AINSEL_Msk, 0)
	rp.ADC.CS.SetBits(rp.ADC_CS_START_ONCE)
}

var adcFIFOInterrupt interrupt.Interrupt

// EnableFIFOInterrupt arms the conversion-complete interrupt. Call only
// after core.Publish: the handler dispatches into the coordinator.
func (d *RPADCDriver) EnableFIFOInterrupt() {
	rp.ADC.INTE.SetBits(rp.ADC_INTE_FIFO)
	adcFIFOInterrupt = interrupt.New(rp.IRQ_ADC_IRQ_FIFO, handleADCFIFO)
	adcFIFOInterrupt.Enable()
}

// handleADCFIFO drains exactly one result per invocation. The one-shot
// request pacing guarantees at most one pending entry, so the IRQ
// de-asserts once it is read.
func handleADCFIFO(intr interrupt.Interrupt) {
	level := (rp.ADC.FCS.Get() & rp.ADC_FCS_LEVEL_Msk) >> rp.ADC_FCS_LEVEL_Pos
	if level == 0 {
		return
	}
	// Low 12 bits are the sample; the ERR flag in bit 15 is masked off.
	value := uint16(rp.ADC.FIFO.Get() & 0x0FFF)
	core.HandleSampleReady(core.ADCValue(value))
}
