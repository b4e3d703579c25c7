package referee

import (
	"fmt"

	"calsdt/domain/phone"
	"calsdt/domain/verdict"
)

const (
	minEvenDigits = 4
	maxEvenDigits = 5
	sumModulus    = 8
)

// StaticBalance checks digit parity and half sums on the original digits.
// The even-digit count must be 4 or 5, and neither the first five nor the
// last five digits may sum to a multiple of 8.
func StaticBalance(d phone.Digits) GateResult {
	even := 0
	for _, v := range d {
		if v%2 == 0 {
			even++
		}
	}
	if even < minEvenDigits || even > maxEvenDigits {
		return fail(GateStaticBalance, verdict.ReasonParity,
			fmt.Sprintf("static balance: %d even digits, need %d or %d", even, minEvenDigits, maxEvenDigits))
	}

	half := phone.Length / 2
	first, last := 0, 0
	for i, v := range d {
		if i < half {
			first += int(v)
		} else {
			last += int(v)
		}
	}
	if first%sumModulus == 0 {
		return fail(GateStaticBalance, verdict.ReasonDigitSum,
			fmt.Sprintf("static balance: first 5 digits sum to %d, a multiple of %d", first, sumModulus))
	}
	if last%sumModulus == 0 {
		return fail(GateStaticBalance, verdict.ReasonDigitSum,
			fmt.Sprintf("static balance: last 5 digits sum to %d, a multiple of %d", last, sumModulus))
	}

	return pass(GateStaticBalance)
}
