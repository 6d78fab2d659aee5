package fingerprint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "0",
		},
		{
			name:     "single character",
			input:    "a",
			expected: strconvBase36(97),
		},
		{
			name:     "stable for same input",
			input:    "Mozilla/5.0en-US1920x1080",
			expected: Hash("Mozilla/5.0en-US1920x1080"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Hash(tt.input))
		})
	}
}

func strconvBase36(n int64) string {
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	if n == 0 {
		return "0"
	}
	out := ""
	for n > 0 {
		out = string(digits[n%36]) + out
		n /= 36
	}
	return out
}

func TestHashWrapsToInt32(t *testing.T) {
	// Long inputs overflow 32 bits many times over; the result must stay a
	// valid base-36 rendering of a non-negative int32.
	long := ""
	for i := 0; i < 200; i++ {
		long += "fingerprint-signal"
	}
	got := Hash(long)
	assert.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 6) // |MinInt32| renders as "zik0zk"
}

func TestRenderNeverNegative(t *testing.T) {
	tests := []struct {
		name     string
		in       int32
		expected string
	}{
		{"zero", 0, "0"},
		{"positive", 97, "2p"},
		{"negative", -1, "1"},
		{"max int32", math.MaxInt32, "zik0zj"},
		// -MinInt32 overflows int32; Math.abs in the widget yields 2147483648.
		{"min int32", math.MinInt32, "zik0zk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, render(tt.in))
		})
	}
}

func TestHashSurrogatePairs(t *testing.T) {
	// Characters outside the BMP contribute two code units each.
	a := Hash("😀")
	b := Hash("😀")
	assert.Equal(t, a, b)
	assert.NotEqual(t, Hash("😀"), Hash("a"))
}

func TestFromSignalsOrderMatters(t *testing.T) {
	assert.NotEqual(t, FromSignals("a", "b"), FromSignals("b", "a"))
	assert.Equal(t, Hash("ab"), FromSignals("a", "b"))
}
