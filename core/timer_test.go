package core

import "testing"

func TestElapsedTicks(t *testing.T) {
	cases := []struct {
		name       string
		now, since uint32
		want       uint32
	}{
		{"zero elapsed", 1000, 1000, 0},
		{"normal", 5000, 1000, 4000},
		{"wrapped counter floors at zero", 100, ^uint32(0) - 100, 0},
		{"full range", ^uint32(0), 0, ^uint32(0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ElapsedTicks(tc.now, tc.since); got != tc.want {
				t.Errorf("ElapsedTicks(%d, %d) = %d, want %d", tc.now, tc.since, got, tc.want)
			}
		})
	}
}

func TestTimerUnitConversion(t *testing.T) {
	// 1MHz timer: ticks and microseconds are the same unit.
	if got := TimerFromUS(200000); got != TickInterval {
		t.Errorf("TimerFromUS(200000) = %d, want %d", got, TickInterval)
	}
	if got := TimerToUS(TickInterval); got != 200000 {
		t.Errorf("TimerToUS(%d) = %d, want 200000", TickInterval, got)
	}
}

func TestSetTimeRoundTrip(t *testing.T) {
	SetTime(123456)
	if got := GetTime(); got != 123456 {
		t.Errorf("GetTime() = %d, want 123456", got)
	}
	SetTime(0)
}
