package referee

import (
	"fmt"
	"strings"

	"calsdt/domain/element"
	"calsdt/domain/phone"
	"calsdt/domain/verdict"
)

// Thresholds are the element-count limits of compatibility mode
type Thresholds struct {
	KhacMax   int `json:"filter_khac_max" yaml:"filter_khac_max"`
	BiKhacMax int `json:"filter_bi_khac_max" yaml:"filter_bi_khac_max"`
	SinhMin   int `json:"filter_sinh_min" yaml:"filter_sinh_min"`
	CungMin   int `json:"filter_cung_min" yaml:"filter_cung_min"`
	TongMax   int `json:"filter_tong_max" yaml:"filter_tong_max"`
	AnyMax    int `json:"filter_any_max" yaml:"filter_any_max"`
}

// DefaultThresholds returns the stock limits
func DefaultThresholds() Thresholds {
	return Thresholds{
		KhacMax:   1,
		BiKhacMax: 2,
		SinhMin:   2,
		CungMin:   2,
		TongMax:   5,
		AnyMax:    4,
	}
}

// Compatibility runs the seven element-count checks in order: completeness,
// dominance, khac max, bi khac max, sinh min, cung min, sinh+cung max. With
// stopOnFail the slice ends at the first failure.
func Compatibility(c phone.Counts, roles element.Roles, t Thresholds, requireComplete, stopOnFail bool) []GateResult {
	checks := []func() GateResult{
		func() GateResult { return completeness(c, requireComplete) },
		func() GateResult { return dominance(c, t.AnyMax) },
		func() GateResult {
			n := c.Of(roles.OvercomeBy)
			if n > t.KhacMax {
				return fail(GateKhacMax, verdict.ReasonKhacMax,
					fmt.Sprintf("khac element %s appears %d times, max %d", roles.OvercomeBy, n, t.KhacMax))
			}
			return pass(GateKhacMax)
		},
		func() GateResult {
			n := c.Of(roles.WeakenedBy)
			if n > t.BiKhacMax {
				return fail(GateBiKhacMax, verdict.ReasonBiKhacMax,
					fmt.Sprintf("bi khac element %s appears %d times, max %d", roles.WeakenedBy, n, t.BiKhacMax))
			}
			return pass(GateBiKhacMax)
		},
		func() GateResult {
			n := c.Of(roles.Generates)
			if n < t.SinhMin {
				return fail(GateSinhMin, verdict.ReasonSinhMin,
					fmt.Sprintf("sinh element %s appears %d times, min %d", roles.Generates, n, t.SinhMin))
			}
			return pass(GateSinhMin)
		},
		func() GateResult {
			n := c.Of(roles.SameAs)
			if n < t.CungMin {
				return fail(GateCungMin, verdict.ReasonCungMin,
					fmt.Sprintf("cung element %s appears %d times, min %d", roles.SameAs, n, t.CungMin))
			}
			return pass(GateCungMin)
		},
		func() GateResult {
			n := c.Of(roles.Generates) + c.Of(roles.SameAs)
			if n > t.TongMax {
				return fail(GateTongMax, verdict.ReasonTongMax,
					fmt.Sprintf("sinh + cung elements appear %d times, max %d", n, t.TongMax))
			}
			return pass(GateTongMax)
		},
	}

	results := make([]GateResult, 0, len(checks))
	for _, check := range checks {
		r := check()
		results = append(results, r)
		if stopOnFail && !r.Passed {
			break
		}
	}
	return results
}

func completeness(c phone.Counts, required bool) GateResult {
	if !required {
		return skip(GateCompleteness)
	}
	var missing []string
	for _, e := range element.All {
		if c.Of(e) == 0 {
			missing = append(missing, e.String())
		}
	}
	if len(missing) > 0 {
		return fail(GateCompleteness, verdict.ReasonCompleteness,
			fmt.Sprintf("completeness: missing element(s) %s", strings.Join(missing, ", ")))
	}
	return pass(GateCompleteness)
}

func dominance(c phone.Counts, anyMax int) GateResult {
	e, n := c.Max()
	if n > anyMax {
		return fail(GateDominance, verdict.ReasonDominance,
			fmt.Sprintf("dominance: element %s appears %d times, max %d", e, n, anyMax))
	}
	return pass(GateDominance)
}
