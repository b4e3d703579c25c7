package verdict

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeJSONShape(t *testing.T) {
	tests := []struct {
		name string
		out  Outcome
		want string
	}{
		{
			name: "valid",
			out:  Accept(8.8),
			want: `{"Valid":{"score":8.8}}`,
		},
		{
			name: "invalid",
			out:  Reject(Rejection{Reason: ReasonTongMax, Message: "tong 6 exceeds max 5"}),
			want: `{"Invalid":{"reason":"tong 6 exceeds max 5","code":"tong_max"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.out)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}

func TestOutcomeEmpty(t *testing.T) {
	_, err := json.Marshal(Outcome{})
	assert.Error(t, err)
	assert.False(t, Outcome{}.IsValid())
	assert.Equal(t, "empty", Outcome{}.String())
}

func TestRejectionError(t *testing.T) {
	r := Rejection{Reason: ReasonBlacklist, Message: "contains blacklisted digit 4"}
	assert.EqualError(t, r, "blacklist: contains blacklisted digit 4")

	out := Reject(r)
	assert.False(t, out.IsValid())
	assert.Equal(t, "invalid: contains blacklisted digit 4", out.String())
}
