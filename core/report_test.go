package core

import "testing"

func TestReportStateFormat(t *testing.T) {
	var got []byte
	SetSerialWriter(func(b []byte) {
		got = append([]byte(nil), b...)
	})
	defer SetSerialWriter(func([]byte) {})

	ReportState("WAIT_HIGH_VALUE")
	if string(got) != "State: WAIT_HIGH_VALUE\r\n" {
		t.Errorf("ReportState wrote %q", string(got))
	}
}

func TestReportStateWithoutWriterIsSilent(t *testing.T) {
	SetSerialWriter(func([]byte) {})
	// Must not panic or block with the default no-op writer.
	ReportState("OFF")
}
