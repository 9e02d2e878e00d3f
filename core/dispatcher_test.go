package core

import (
	"strings"
	"testing"
)

// captureSerial installs a serial writer that records every report line.
func captureSerial() *[]string {
	lines := &[]string{}
	SetSerialWriter(func(b []byte) {
		*lines = append(*lines, string(b))
	})
	return lines
}

func TestDispatcherHoldsUntilIntervalElapses(t *testing.T) {
	setupCore()
	lines := captureSerial()

	m, ctx := newTestMachine()
	Publish(m, ctx)

	SetTime(0)
	d := NewDispatcher(TickInterval)

	SetTime(TickInterval - 1)
	if fired, _ := d.Poll(); fired {
		t.Fatal("Dispatcher fired before the interval elapsed")
	}
	if len(*lines) != 0 {
		t.Fatal("Dispatcher reported without firing")
	}

	SetTime(TickInterval)
	fired, label := d.Poll()
	if !fired {
		t.Fatal("Dispatcher did not fire at the interval")
	}
	if label != "ON" {
		t.Errorf("First tick label = %q, want ON", label)
	}
	if len(*lines) != 1 || (*lines)[0] != "State: ON\r\n" {
		t.Errorf("Report lines = %q, want one State: ON line", *lines)
	}
}

func TestDispatcherRearmsFromLastFiring(t *testing.T) {
	setupCore()
	captureSerial()

	m, ctx := newTestMachine()
	Publish(m, ctx)

	SetTime(0)
	d := NewDispatcher(TickInterval)

	SetTime(TickInterval)
	if fired, _ := d.Poll(); !fired {
		t.Fatal("First tick did not fire")
	}

	// The next poll is measured from the last firing, not from zero.
	SetTime(TickInterval + TickInterval - 1)
	if fired, _ := d.Poll(); fired {
		t.Fatal("Dispatcher fired early after re-arming")
	}
	SetTime(2 * TickInterval)
	fired, label := d.Poll()
	if !fired {
		t.Fatal("Second tick did not fire")
	}
	if label != "OFF" {
		t.Errorf("Second tick label = %q, want OFF (back to idle)", label)
	}
}

func TestDispatcherLateTickDoesNotBurst(t *testing.T) {
	setupCore()
	captureSerial()

	m, ctx := newTestMachine()
	Publish(m, ctx)

	SetTime(0)
	d := NewDispatcher(TickInterval)

	// A long stall produces exactly one tick when polling resumes; the
	// dispatcher is a threshold detector, not a catch-up scheduler.
	SetTime(10 * TickInterval)
	if fired, _ := d.Poll(); !fired {
		t.Fatal("Expected one tick after a stall")
	}
	if fired, _ := d.Poll(); fired {
		t.Fatal("Dispatcher burst-fired to catch up")
	}
}

func TestDispatcherUnpublishedReportsUnknown(t *testing.T) {
	setupCore()
	lines := captureSerial()

	SetTime(0)
	d := NewDispatcher(TickInterval)
	SetTime(TickInterval)

	fired, label := d.Poll()
	if !fired {
		t.Fatal("Dispatcher did not fire")
	}
	if label != "Unknown" {
		t.Errorf("Label before publish = %q, want Unknown", label)
	}
	if len(*lines) != 1 || !strings.Contains((*lines)[0], "Unknown") {
		t.Errorf("Report lines = %q, want one Unknown line", *lines)
	}
}

// Immediately after the counter wraps, saturating subtraction understates
// elapsed time and suppresses the tick instead of firing spuriously.
func TestDispatcherCounterWraparound(t *testing.T) {
	setupCore()
	captureSerial()

	m, ctx := newTestMachine()
	Publish(m, ctx)

	const nearWrap = ^uint32(0) - 100
	SetTime(nearWrap)
	d := NewDispatcher(TickInterval)

	// The counter wrapped; now < lastFired so elapsed floors at zero.
	SetTime(TickInterval / 2)
	if fired, _ := d.Poll(); fired {
		t.Error("Dispatcher fired on a wrapped counter")
	}
}
