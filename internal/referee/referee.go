// Package referee implements the pass/fail gates a candidate number must
// clear before it is scored. Gates are pure functions of their inputs.
package referee

import (
	"calsdt/domain/verdict"
)

// Gate names, in pipeline order
const (
	GatePrefix        = "prefix"
	GateSuffix        = "suffix"
	GateBlacklist     = "blacklist"
	GateStaticBalance = "static_balance"
	GateCompleteness  = "completeness"
	GateDominance     = "dominance"
	GateKhacMax       = "khac_max"
	GateBiKhacMax     = "bi_khac_max"
	GateSinhMin       = "sinh_min"
	GateCungMin       = "cung_min"
	GateTongMax       = "tong_max"
	GateAbsolute      = "absolute_balance"
)

// GateResult is the outcome of one gate for one number
type GateResult struct {
	GateName      string                  `json:"gate_name"`
	Passed        bool                    `json:"passed"`
	Skipped       bool                    `json:"skipped,omitempty"`
	Reason        verdict.RejectionReason `json:"code,omitempty"`
	FailureReason string                  `json:"failure_reason,omitempty"`
}

// Rejection converts a failed gate into the domain rejection
func (g GateResult) Rejection() verdict.Rejection {
	return verdict.Rejection{Reason: g.Reason, Message: g.FailureReason}
}

func pass(name string) GateResult {
	return GateResult{GateName: name, Passed: true}
}

func skip(name string) GateResult {
	return GateResult{GateName: name, Passed: true, Skipped: true}
}

func fail(name string, reason verdict.RejectionReason, message string) GateResult {
	return GateResult{GateName: name, Reason: reason, FailureReason: message}
}

// FirstFailure returns the first failed gate in order, if any
func FirstFailure(results []GateResult) (GateResult, bool) {
	for _, r := range results {
		if !r.Passed {
			return r, true
		}
	}
	return GateResult{}, false
}
