//go:build rp2350

package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// statusLEDPin drives a single ws2812 pixel mirroring the machine state.
const statusLEDPin = machine.GPIO16

// Dim colors; the pixel is a panel indicator, not a flashlight.
var (
	colorIdle     = color.RGBA{R: 0, G: 0, B: 8}
	colorActive   = color.RGBA{R: 0, G: 16, B: 0}
	colorCooldown = color.RGBA{R: 16, G: 4, B: 0}
	colorUnknown  = color.RGBA{R: 8, G: 0, B: 8}
)

// StatusLED mirrors the reported state label on a ws2812 pixel.
type StatusLED struct {
	dev  ws2812.Device
	last string
}

// NewStatusLED configures the ws2812 data pin and returns the indicator.
func NewStatusLED() *StatusLED {
	statusLEDPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &StatusLED{dev: ws2812.New(statusLEDPin)}
}

// Show updates the pixel if the label changed. ws2812 writes bit-bang
// with interrupts briefly masked inside the driver, so only write on
// transitions to keep the control loop responsive.
func (s *StatusLED) Show(label string) {
	if label == s.last {
		return
	}
	s.last = label

	var c color.RGBA
	switch label {
	case "OFF":
		c = colorIdle
	case "ON":
		c = colorActive
	case "WAIT_HIGH_VALUE":
		c = colorCooldown
	default:
		c = colorUnknown
	}
	_ = s.dev.WriteColors([]color.RGBA{c})
}
