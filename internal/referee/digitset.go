package referee

import (
	"strconv"
	"strings"
)

// DigitSet is a set over the digits 0-9
type DigitSet [10]bool

// ParseDigitSet reads a comma-separated digit list such as "3, 7,7".
// Entries that are not a single digit are dropped without error, so a
// malformed list contributes fewer (possibly zero) digits.
func ParseDigitSet(s string) DigitSet {
	var set DigitSet
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if len(part) != 1 {
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		set[d] = true
	}
	return set
}

// Add puts d into the set
func (s *DigitSet) Add(d uint8) {
	if d <= 9 {
		s[d] = true
	}
}

// Has reports membership
func (s DigitSet) Has(d uint8) bool {
	return d <= 9 && s[d]
}

// Len returns the number of distinct digits
func (s DigitSet) Len() int {
	n := 0
	for _, ok := range s {
		if ok {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no digit is present
func (s DigitSet) IsEmpty() bool {
	return s.Len() == 0
}

// Missing returns the digits of s that are absent from other
func (s DigitSet) Missing(other DigitSet) DigitSet {
	var out DigitSet
	for d, ok := range s {
		if ok && !other[d] {
			out[d] = true
		}
	}
	return out
}

// String renders the set as "{1,8,9}"
func (s DigitSet) String() string {
	parts := make([]string, 0, 10)
	for d, ok := range s {
		if ok {
			parts = append(parts, strconv.Itoa(d))
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}
