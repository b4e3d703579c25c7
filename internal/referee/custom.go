package referee

import (
	"fmt"
	"strings"

	"calsdt/domain/phone"
	"calsdt/domain/verdict"
)

// suffixWindow is how many trailing digits the suffix filter inspects
const suffixWindow = 3

// CustomFilterConfig holds the user-facing toggles and raw values of the
// prefix, suffix and blacklist filters.
type CustomFilterConfig struct {
	PrefixEnabled    bool   `json:"toggle_prefix_filter" yaml:"toggle_prefix_filter"`
	PrefixValue      string `json:"prefix_value" yaml:"prefix_value"`
	SuffixEnabled    bool   `json:"toggle_suffix_filter" yaml:"toggle_suffix_filter"`
	SuffixValue      string `json:"suffix_value" yaml:"suffix_value"`
	BlacklistEnabled bool   `json:"toggle_blacklist_filter" yaml:"toggle_blacklist_filter"`
	BlacklistDigits  string `json:"blacklist_digits" yaml:"blacklist_digits"`
}

// CustomFilters is a CustomFilterConfig with its digit lists parsed once
type CustomFilters struct {
	prefix    string
	suffix    DigitSet
	blacklist DigitSet

	prefixOn    bool
	suffixOn    bool
	blacklistOn bool
}

// NewCustomFilters parses the raw lists. An empty prefix or an empty parsed
// digit set makes the corresponding filter inert even when toggled on.
func NewCustomFilters(cfg CustomFilterConfig) CustomFilters {
	f := CustomFilters{
		prefix:    strings.TrimSpace(cfg.PrefixValue),
		suffix:    ParseDigitSet(cfg.SuffixValue),
		blacklist: ParseDigitSet(cfg.BlacklistDigits),
	}
	f.prefixOn = cfg.PrefixEnabled && f.prefix != ""
	f.suffixOn = cfg.SuffixEnabled && !f.suffix.IsEmpty()
	f.blacklistOn = cfg.BlacklistEnabled && !f.blacklist.IsEmpty()
	return f
}

// Check runs prefix, suffix and blacklist in that order. With stopOnFail the
// slice ends at the first failure.
func (f CustomFilters) Check(n phone.Number, stopOnFail bool) []GateResult {
	gates := []func(phone.Number) GateResult{f.Prefix, f.Suffix, f.Blacklist}
	results := make([]GateResult, 0, len(gates))
	for _, g := range gates {
		r := g(n)
		results = append(results, r)
		if stopOnFail && !r.Passed {
			break
		}
	}
	return results
}

// Prefix requires the original digit string to start with the prefix value
func (f CustomFilters) Prefix(n phone.Number) GateResult {
	if !f.prefixOn {
		return skip(GatePrefix)
	}
	if !strings.HasPrefix(n.String(), f.prefix) {
		return fail(GatePrefix, verdict.ReasonPrefix,
			fmt.Sprintf("prefix filter: does not start with %q", f.prefix))
	}
	return pass(GatePrefix)
}

// Suffix requires the last three digits, taken as a set, to contain every
// required digit.
func (f CustomFilters) Suffix(n phone.Number) GateResult {
	if !f.suffixOn {
		return skip(GateSuffix)
	}
	d := n.Digits()
	var tail DigitSet
	for _, v := range d[phone.Length-suffixWindow:] {
		tail.Add(v)
	}
	if missing := f.suffix.Missing(tail); !missing.IsEmpty() {
		return fail(GateSuffix, verdict.ReasonSuffix,
			fmt.Sprintf("suffix filter: last %d digits %s are missing %s", suffixWindow, tail, missing))
	}
	return pass(GateSuffix)
}

// Blacklist rejects a number containing any forbidden digit
func (f CustomFilters) Blacklist(n phone.Number) GateResult {
	if !f.blacklistOn {
		return skip(GateBlacklist)
	}
	var hit DigitSet
	for _, v := range n.Digits() {
		if f.blacklist.Has(v) {
			hit.Add(v)
		}
	}
	if !hit.IsEmpty() {
		return fail(GateBlacklist, verdict.ReasonBlacklist,
			fmt.Sprintf("blacklist filter: contains forbidden digit(s) %s", hit))
	}
	return pass(GateBlacklist)
}
