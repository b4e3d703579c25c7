// Package phone holds the 10-digit candidate number value type.
package phone

import (
	"strings"

	"calsdt/domain/core"
	"calsdt/domain/element"
)

// Length is the only accepted digit count.
const Length = 10

// Digits is a fixed 10-digit sequence, each entry 0-9.
type Digits [Length]uint8

// Number is a parsed candidate. It keeps the digits as written; the
// zero-to-five transform is derived on demand and never stored.
type Number struct {
	digits Digits
}

// Extract pulls the candidate digits out of one raw input line. Only the
// first whitespace-separated token is considered, so result lines such as
// "0912345678  score=3.20" parse back to their number. Separators inside the
// token (dots, dashes, parentheses, a leading '+') are dropped.
func Extract(line string) (Number, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Number{}, core.NewMalformedNumberError(line, 0)
	}

	var d Digits
	n := 0
	for _, r := range fields[0] {
		if r < '0' || r > '9' {
			continue
		}
		if n < Length {
			d[n] = uint8(r - '0')
		}
		n++
	}
	if n != Length {
		return Number{}, core.NewMalformedNumberError(line, n)
	}
	return Number{digits: d}, nil
}

// FromDigits builds a Number from already-split digits.
func FromDigits(ds []uint8) (Number, error) {
	if len(ds) != Length {
		return Number{}, core.NewMalformedNumberError(digitString(ds), len(ds))
	}
	var d Digits
	for i, v := range ds {
		if v > 9 {
			return Number{}, core.NewInvalidDigitError(int(v))
		}
		d[i] = v
	}
	return Number{digits: d}, nil
}

// Digits returns a copy of the original digits.
func (n Number) Digits() Digits {
	return n.digits
}

// String returns the original 10-digit form.
func (n Number) String() string {
	return digitString(n.digits[:])
}

// Transformed returns the digits with every 0 replaced by 5. Applying the
// transform to its own output changes nothing.
func (n Number) Transformed() Digits {
	return Transform(n.digits)
}

// Transform replaces every 0 with 5 in a copy of d.
func Transform(d Digits) Digits {
	for i, v := range d {
		if v == 0 {
			d[i] = 5
		}
	}
	return d
}

// Counts is the per-element occurrence count, indexed by element.Element.
type Counts [element.Count]int

// Of returns the count for e.
func (c Counts) Of(e element.Element) int {
	return c[e]
}

// Present returns how many distinct elements occur at least once.
func (c Counts) Present() int {
	n := 0
	for _, v := range c {
		if v > 0 {
			n++
		}
	}
	return n
}

// Max returns the largest single count and its element.
func (c Counts) Max() (element.Element, int) {
	best := element.Water
	for _, e := range element.All {
		if c[e] > c[best] {
			best = e
		}
	}
	return best, c[best]
}

// ElementCounts classifies every digit of d and counts each element.
func ElementCounts(d Digits) Counts {
	var c Counts
	for _, v := range d {
		c[element.Classify(v)]++
	}
	return c
}

func digitString(ds []uint8) string {
	var b strings.Builder
	b.Grow(len(ds))
	for _, v := range ds {
		b.WriteByte('0' + v)
	}
	return b.String()
}
