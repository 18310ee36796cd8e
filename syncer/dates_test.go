package syncer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"full timestamp", "2025-12-26T21:20:03.675Z", "12/26/2025"},
		{"date only", "2025-01-05", "1/5/2025"},
		{"no zero padding", "2025-03-09", "3/9/2025"},
		{"range keeps start", "2025-01-05 -> 2025-02-10", "1/5/2025"},
		{"range with timestamps", "2025-12-26T21:20:03.675Z -> 2025-12-31T00:00:00.000Z", "12/26/2025"},
		{"offset keeps its own date", "2025-06-01T23:30:00+09:00", "6/1/2025"},
		{"unparseable verbatim", "next quarter", "next quarter"},
		{"unparseable start of range", "sometime -> 2025-01-01", "sometime"},
		{"blank start of range", " -> 2025-01-01", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeDate(tc.input))
		})
	}
}

func TestNormalizeDatePrefixFallback(t *testing.T) {
	// Not valid RFC 3339, but the first 10 characters are a date.
	assert.Equal(t, "7/4/2024", NormalizeDate("2024-07-04 12:00"))
	// Shorter than a date prefix and not a timestamp: verbatim.
	assert.Equal(t, "2024-07", NormalizeDate("2024-07"))
}
