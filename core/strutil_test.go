package core

import "testing"

func TestItoa(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{-42, "-42"},
		{200000, "200000"},
	}
	for _, tc := range cases {
		if got := itoa(tc.in); got != tc.want {
			t.Errorf("itoa(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUtoa(t *testing.T) {
	cases := []struct {
		in   uint32
		want string
	}{
		{0, "0"},
		{4095, "4095"},
		{^uint32(0), "4294967295"},
	}
	for _, tc := range cases {
		if got := Utoa(tc.in); got != tc.want {
			t.Errorf("Utoa(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
