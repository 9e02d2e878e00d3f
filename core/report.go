package core

// SerialWriter is a function type for sending a byte buffer to the host.
// Writes are best-effort: data may be silently dropped if the host is not
// listening, and no acknowledgment is expected.
type SerialWriter func([]byte)

// serialWrite is the global serial output function (set by platform code).
// No-op by default so the core stays runnable without a transport.
var serialWrite SerialWriter = func([]byte) {}

// SetSerialWriter sets the platform-specific serial output function.
// This allows targets to redirect reports to USB CDC, UART, etc.
func SetSerialWriter(w SerialWriter) {
	serialWrite = w
}

// ReportState sends one "State: <label>" line to the host.
func ReportState(label string) {
	serialWrite([]byte("State: " + label + "\r\n"))
}
