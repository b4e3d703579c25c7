package referee

import (
	"fmt"
	"strings"

	"calsdt/domain/element"
	"calsdt/domain/phone"
	"calsdt/domain/verdict"
)

// perElementTarget is the exact count absolute balance requires of every element
const perElementTarget = phone.Length / element.Count

// AbsoluteBalance passes only when every element appears exactly twice
func AbsoluteBalance(c phone.Counts) GateResult {
	var off []string
	for _, e := range element.All {
		if c.Of(e) != perElementTarget {
			off = append(off, fmt.Sprintf("%s=%d", e, c.Of(e)))
		}
	}
	if len(off) > 0 {
		return fail(GateAbsolute, verdict.ReasonAbsolute,
			fmt.Sprintf("absolute balance: each element must appear exactly %d times (%s)",
				perElementTarget, strings.Join(off, ", ")))
	}
	return pass(GateAbsolute)
}
