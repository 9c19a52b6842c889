package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatINR renders an amount of paise as rupees with Indian digit grouping,
// e.g. 51150 -> "₹511.50", 123456789 -> "₹12,34,567.89".
func FormatINR(paise int64) string {
	neg := paise < 0
	if neg {
		paise = -paise
	}

	rupees := strconv.FormatInt(paise/100, 10)

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString("₹")

	// Indian grouping: rightmost group of three, then groups of two.
	if len(rupees) > 3 {
		head := rupees[:len(rupees)-3]
		rem := len(head) % 2
		if rem == 1 {
			b.WriteString(head[:1])
			head = head[1:]
			b.WriteString(",")
		}
		for i := 0; i < len(head); i += 2 {
			b.WriteString(head[i : i+2])
			b.WriteString(",")
		}
		b.WriteString(rupees[len(rupees)-3:])
	} else {
		b.WriteString(rupees)
	}

	fmt.Fprintf(&b, ".%02d", paise%100)
	return b.String()
}

// ParsePaise converts a decimal rupee string ("120.50") to paise without
// going through binary floating point.
func ParsePaise(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	if whole == "" {
		whole = "0"
	}

	rupees, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	paise, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}

	out := rupees*100 + paise
	if neg {
		out = -out
	}
	return out, nil
}
