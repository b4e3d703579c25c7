package verdict

import (
	"encoding/json"
	"fmt"
)

// RejectionReason is a stable machine code for the check that rejected a number
type RejectionReason string

const (
	ReasonMalformed    RejectionReason = "malformed"
	ReasonPrefix       RejectionReason = "prefix"
	ReasonSuffix       RejectionReason = "suffix"
	ReasonBlacklist    RejectionReason = "blacklist"
	ReasonParity       RejectionReason = "static_parity"
	ReasonDigitSum     RejectionReason = "static_digit_sum"
	ReasonCompleteness RejectionReason = "completeness"
	ReasonDominance    RejectionReason = "dominance"
	ReasonKhacMax      RejectionReason = "khac_max"
	ReasonBiKhacMax    RejectionReason = "bi_khac_max"
	ReasonSinhMin      RejectionReason = "sinh_min"
	ReasonCungMin      RejectionReason = "cung_min"
	ReasonTongMax      RejectionReason = "tong_max"
	ReasonAbsolute     RejectionReason = "absolute_balance"
)

// Rejection pairs the reason code with the human-readable text shown to users
type Rejection struct {
	Reason  RejectionReason `json:"code"`
	Message string          `json:"reason"`
}

func (r Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Reason, r.Message)
}

// Outcome is the single-check result: exactly one of Valid or Invalid is set.
type Outcome struct {
	Valid   *Valid
	Invalid *Invalid
}

// Valid carries the final score of an accepted number
type Valid struct {
	Score float64 `json:"score"`
}

// Invalid carries the reason the number was rejected
type Invalid struct {
	Reason string          `json:"reason"`
	Code   RejectionReason `json:"code"`
}

// Accept builds a Valid outcome
func Accept(score float64) Outcome {
	return Outcome{Valid: &Valid{Score: score}}
}

// Reject builds an Invalid outcome
func Reject(r Rejection) Outcome {
	return Outcome{Invalid: &Invalid{Reason: r.Message, Code: r.Reason}}
}

// IsValid reports whether the number was accepted
func (o Outcome) IsValid() bool {
	return o.Valid != nil
}

// MarshalJSON emits the externally tagged form {"Valid":{...}} or {"Invalid":{...}}
func (o Outcome) MarshalJSON() ([]byte, error) {
	if o.Valid != nil {
		return json.Marshal(map[string]*Valid{"Valid": o.Valid})
	}
	if o.Invalid != nil {
		return json.Marshal(map[string]*Invalid{"Invalid": o.Invalid})
	}
	return nil, fmt.Errorf("empty outcome")
}

func (o Outcome) String() string {
	if o.Valid != nil {
		return fmt.Sprintf("valid (score %.2f)", o.Valid.Score)
	}
	if o.Invalid != nil {
		return fmt.Sprintf("invalid: %s", o.Invalid.Reason)
	}
	return "empty"
}
