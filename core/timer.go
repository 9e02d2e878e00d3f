package core

// TimerFreq is the tick rate of the monotonic counter. RP2040/RP2350 both
// run the TIMER peripheral at 1MHz, so one tick is one microsecond.
const TimerFreq = 1000000

// GetTime returns the current system time in timer ticks. The counter is
// strictly increasing until it wraps at 2^32 ticks (~71 minutes at 1MHz).
func GetTime() uint32 {
	return getSystemTicks()
}

// SetTime sets the current system time (for testing/hardware integration)
func SetTime(ticks uint32) {
	setSystemTicks(ticks)
}

// TimerFromUS converts microseconds to timer ticks
func TimerFromUS(us uint32) uint32 {
	return us * (TimerFreq / 1000000)
}

// TimerToUS converts timer ticks to microseconds
func TimerToUS(ticks uint32) uint32 {
	return ticks / (TimerFreq / 1000000)
}

// ElapsedTicks computes now-since with saturating (floor-at-zero)
// subtraction. Immediately after the counter wraps, `now < since` and the
// result is 0, which understates elapsed time for at most one interval and
// delays exactly one tick. Given the counter's ~71 minute period against a
// 200ms tick this is an accepted approximation, not a correctness bug.
func ElapsedTicks(now, since uint32) uint32 {
	if now < since {
		return 0
	}
	return now - since
}
