package referee

import (
	"testing"

	"calsdt/domain/element"
	"calsdt/domain/phone"
	"calsdt/domain/verdict"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNumber(t *testing.T, s string) phone.Number {
	t.Helper()
	n, err := phone.Extract(s)
	require.NoError(t, err)
	return n
}

func TestStaticBalance(t *testing.T) {
	tests := []struct {
		name   string
		number string
		passed bool
		reason verdict.RejectionReason
	}{
		{"five evens, sums 10 and 35", "0123456789", true, ""},
		{"no evens", "1111111111", false, verdict.ReasonParity},
		{"six evens", "2222221111", false, verdict.ReasonParity},
		{"first half sums to 16", "2222813579", false, verdict.ReasonDigitSum},
		{"last half sums to 24", "1234524639", false, verdict.ReasonDigitSum},
		{"four evens", "1128346799", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StaticBalance(mustNumber(t, tt.number).Digits())
			assert.Equal(t, tt.passed, got.Passed, got.FailureReason)
			assert.Equal(t, tt.reason, got.Reason)
			assert.Equal(t, GateStaticBalance, got.GateName)
		})
	}
}

func TestStaticBalanceUsesOriginalDigits(t *testing.T) {
	// five evens as written, none once zeros become fives
	n := mustNumber(t, "0000013579")
	got := StaticBalance(n.Digits())
	// first half sums to 0
	assert.False(t, got.Passed)
	assert.Equal(t, verdict.ReasonDigitSum, got.Reason)

	got = StaticBalance(n.Transformed())
	assert.Equal(t, verdict.ReasonParity, got.Reason)
}

func TestParseDigitSet(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"8,9", "{8,9}"},
		{" 9 , 8 ,8", "{8,9}"},
		{"3,x,7", "{3,7}"},
		{"12,5", "{5}"},
		{"", "{}"},
		{"abc", "{}"},
		{",,,", "{}"},
		{"-1,0", "{0}"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDigitSet(tt.input).String())
		})
	}
}

func TestCustomFilters_Suffix(t *testing.T) {
	f := NewCustomFilters(CustomFilterConfig{SuffixEnabled: true, SuffixValue: "8,9"})

	ok := f.Suffix(mustNumber(t, "0123456891"))
	assert.True(t, ok.Passed)
	assert.False(t, ok.Skipped)

	bad := f.Suffix(mustNumber(t, "0123456811"))
	assert.False(t, bad.Passed)
	assert.Equal(t, verdict.ReasonSuffix, bad.Reason)
	assert.Contains(t, bad.FailureReason, "{9}")

	// duplicates in the tail collapse: 9,9,8 still covers {8,9}
	assert.True(t, f.Suffix(mustNumber(t, "0123456998")).Passed)
}

func TestCustomFilters_Blacklist(t *testing.T) {
	f := NewCustomFilters(CustomFilterConfig{BlacklistEnabled: true, BlacklistDigits: "3,7"})

	got := f.Blacklist(mustNumber(t, "0912456780"))
	assert.False(t, got.Passed)
	assert.Equal(t, verdict.ReasonBlacklist, got.Reason)
	assert.Contains(t, got.FailureReason, "blacklist")

	assert.True(t, f.Blacklist(mustNumber(t, "0912456580")).Passed)
}

func TestCustomFilters_Prefix(t *testing.T) {
	f := NewCustomFilters(CustomFilterConfig{PrefixEnabled: true, PrefixValue: "091"})

	assert.True(t, f.Prefix(mustNumber(t, "0912345678")).Passed)

	got := f.Prefix(mustNumber(t, "0982345678"))
	assert.False(t, got.Passed)
	assert.Equal(t, verdict.ReasonPrefix, got.Reason)
}

func TestCustomFilters_InertWhenEmptyOrOff(t *testing.T) {
	n := mustNumber(t, "0123456789")

	tests := []struct {
		name string
		cfg  CustomFilterConfig
	}{
		{"all off with values", CustomFilterConfig{PrefixValue: "999", SuffixValue: "1", BlacklistDigits: "0"}},
		{"on with empty prefix", CustomFilterConfig{PrefixEnabled: true, PrefixValue: "  "}},
		{"on with unparsable suffix", CustomFilterConfig{SuffixEnabled: true, SuffixValue: "a,b"}},
		{"on with unparsable blacklist", CustomFilterConfig{BlacklistEnabled: true, BlacklistDigits: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := NewCustomFilters(tt.cfg).Check(n, false)
			require.Len(t, results, 3)
			for _, r := range results {
				assert.True(t, r.Passed)
				assert.True(t, r.Skipped)
			}
		})
	}
}

func TestCustomFilters_CheckOrder(t *testing.T) {
	f := NewCustomFilters(CustomFilterConfig{
		PrefixEnabled: true, PrefixValue: "1",
		SuffixEnabled: true, SuffixValue: "1",
		BlacklistEnabled: true, BlacklistDigits: "0",
	})
	n := mustNumber(t, "0123456789")

	stopped := f.Check(n, true)
	require.Len(t, stopped, 1)
	assert.Equal(t, GatePrefix, stopped[0].GateName)

	all := f.Check(n, false)
	require.Len(t, all, 3)
	assert.Equal(t, []string{GatePrefix, GateSuffix, GateBlacklist},
		[]string{all[0].GateName, all[1].GateName, all[2].GateName})
	for _, r := range all {
		assert.False(t, r.Passed)
	}
}

func counts(t *testing.T, number string) phone.Counts {
	t.Helper()
	return phone.ElementCounts(mustNumber(t, number).Transformed())
}

func TestCompatibility_FirstFailure(t *testing.T) {
	metal := element.RolesFor(element.Metal)
	defaults := DefaultThresholds()

	tests := []struct {
		name     string
		number   string
		roles    element.Roles
		th       Thresholds
		complete bool
		want     string
	}{
		{"single element fails completeness", "1111111111", element.RolesFor(element.Water), defaults, true, GateCompleteness},
		{"completeness off falls to dominance", "1111111111", element.RolesFor(element.Water), defaults, false, GateDominance},
		{"0123456789 metal fails tong", "0123456789", metal, defaults, true, GateTongMax},
		{"two fires break khac max for metal", "1234567899", metal, defaults, true, GateKhacMax},
		{"three woods break bi khac max for metal", "1233456789", metal, defaults, true, GateBiKhacMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Compatibility(counts(t, tt.number), tt.roles, tt.th, tt.complete, true)
			failed, ok := FirstFailure(results)
			require.True(t, ok)
			assert.Equal(t, tt.want, failed.GateName)
			assert.Equal(t, failed, results[len(results)-1])
		})
	}
}

func TestCompatibility_AllPass(t *testing.T) {
	th := DefaultThresholds()
	th.TongMax = 6

	results := Compatibility(counts(t, "0123456789"), element.RolesFor(element.Metal), th, true, true)
	require.Len(t, results, 7)
	_, failed := FirstFailure(results)
	assert.False(t, failed)
}

func TestCompatibility_FullTraceKeepsGoing(t *testing.T) {
	results := Compatibility(counts(t, "1111111111"), element.RolesFor(element.Metal), DefaultThresholds(), true, false)
	require.Len(t, results, 7)

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.GateName
	}
	assert.Equal(t, []string{
		GateCompleteness, GateDominance, GateKhacMax, GateBiKhacMax, GateSinhMin, GateCungMin, GateTongMax,
	}, names)
}

func TestAbsoluteBalance(t *testing.T) {
	got := AbsoluteBalance(counts(t, "1128346799"))
	assert.True(t, got.Passed)

	// zeros count as Earth after the transform: 0,5 -> Earth Earth
	got = AbsoluteBalance(counts(t, "1105346799"))
	assert.True(t, got.Passed)

	got = AbsoluteBalance(counts(t, "0123456789"))
	assert.False(t, got.Passed)
	assert.Equal(t, verdict.ReasonAbsolute, got.Reason)
	assert.Contains(t, got.FailureReason, "Tho=4")
}
