package phone

import (
	"testing"

	"calsdt/domain/core"
	"calsdt/domain/element"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    string
		wantErr bool
	}{
		{"plain", "0123456789", "0123456789", false},
		{"separators", "091.234-5678", "0912345678", false},
		{"parenthesised", "(091) 2345678", "", true},
		{"result line", "0912345678  score=3.20", "0912345678", false},
		{"leading whitespace", "   0912345678\r", "0912345678", false},
		{"too short", "091234567", "", true},
		{"too long", "09123456789", "", true},
		{"empty", "", "", true},
		{"letters only", "hello", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Extract(tt.line)
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrMalformedNumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.String())
		})
	}
}

func TestFromDigits(t *testing.T) {
	n, err := FromDigits([]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, "0123456789", n.String())

	_, err = FromDigits([]uint8{1, 2, 3})
	assert.ErrorIs(t, err, core.ErrMalformedNumber)

	_, err = FromDigits([]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 12})
	assert.ErrorIs(t, err, core.ErrInvalidDigit)
}

func TestTransform(t *testing.T) {
	n, err := Extract("0100200300")
	require.NoError(t, err)

	tr := n.Transformed()
	assert.Equal(t, Digits{5, 1, 5, 5, 2, 5, 5, 3, 5, 5}, tr)

	// original is untouched
	assert.Equal(t, "0100200300", n.String())

	// idempotent
	assert.Equal(t, tr, Transform(tr))
}

func TestTransformIdempotentOverAllDigits(t *testing.T) {
	for d := uint8(0); d <= 9; d++ {
		var in Digits
		for i := range in {
			in[i] = (d + uint8(i)) % 10
		}
		once := Transform(in)
		assert.Equal(t, once, Transform(once))
		for _, v := range once {
			assert.NotZero(t, v)
		}
	}
}

func TestElementCounts(t *testing.T) {
	n, err := Extract("0123456789")
	require.NoError(t, err)

	c := ElementCounts(n.Transformed())
	assert.Equal(t, 1, c.Of(element.Water))
	assert.Equal(t, 4, c.Of(element.Earth))
	assert.Equal(t, 2, c.Of(element.Wood))
	assert.Equal(t, 2, c.Of(element.Metal))
	assert.Equal(t, 1, c.Of(element.Fire))
	assert.Equal(t, 5, c.Present())

	e, max := c.Max()
	assert.Equal(t, element.Earth, e)
	assert.Equal(t, 4, max)

	total := 0
	for _, v := range c {
		total += v
	}
	assert.Equal(t, Length, total)
}

func TestElementCounts_SingleElement(t *testing.T) {
	n, err := Extract("1111111111")
	require.NoError(t, err)

	c := ElementCounts(n.Transformed())
	assert.Equal(t, 10, c.Of(element.Water))
	assert.Equal(t, 1, c.Present())
}
