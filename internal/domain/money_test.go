package domain

import "testing"

func TestFormatINR(t *testing.T) {
	cases := []struct {
		paise int64
		want  string
	}{
		{0, "₹0.00"},
		{50, "₹0.50"},
		{51150, "₹511.50"},
		{220000, "₹2,200.00"},
		{38000, "₹380.00"},
		{12345678, "₹1,23,456.78"},
		{123456789, "₹12,34,567.89"},
		{100000000000, "₹1,00,00,00,000.00"},
		{-220000, "-₹2,200.00"},
	}
	for _, tc := range cases {
		if got := FormatINR(tc.paise); got != tc.want {
			t.Errorf("FormatINR(%d) = %q, want %q", tc.paise, got, tc.want)
		}
	}
}

func TestParsePaise(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"380.00", 38000},
		{"380", 38000},
		{"380.5", 38050},
		{"0.01", 1},
		{".50", 50},
		{"-12.75", -1275},
		{" 1800.00 ", 180000},
	}
	for _, tc := range cases {
		got, err := ParsePaise(tc.in)
		if err != nil {
			t.Errorf("ParsePaise(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePaise(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParsePaise_Rejects(t *testing.T) {
	for _, in := range []string{"", "abc", "12.345", "1.2.3"} {
		if _, err := ParsePaise(in); err == nil {
			t.Errorf("ParsePaise(%q): expected error", in)
		}
	}
}
