package dynamo

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Lexical order of the encoded range key must match time order even when the
// fractional parts have different lengths in their shortest rendering.
func TestEncodeCreatedAt_LexicalOrderMatchesTimeOrder(t *testing.T) {
	base := time.Date(2026, 8, 28, 10, 0, 1, 0, time.UTC)
	earlier := base.Add(123 * time.Millisecond)   // .123
	later := base.Add(123456700 * time.Nanosecond) // .1234567

	require.True(t, earlier.Before(later))
	assert.Less(t, encodeCreatedAt(earlier), encodeCreatedAt(later))
}

func TestEncodeCreatedAt_FixedWidth(t *testing.T) {
	times := []time.Time{
		time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 28, 10, 0, 0, 5, time.UTC),
		time.Date(2026, 8, 28, 10, 0, 0, 999999999, time.UTC),
	}
	for _, ts := range times {
		assert.Len(t, encodeCreatedAt(ts), len("2026-08-28T10:00:00.000000000Z"))
	}
}

// The encoded form stays RFC3339-parseable so UnmarshalListOfMaps can read
// it back into AlertRecord.CreatedAt.
func TestEncodeCreatedAt_RoundTrips(t *testing.T) {
	ts := time.Date(2026, 8, 28, 10, 0, 1, 123456700, time.UTC)
	parsed, err := time.Parse(time.RFC3339Nano, encodeCreatedAt(ts))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))
}

func TestEncodeCreatedAt_SortedSequence(t *testing.T) {
	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	var encoded []string
	for _, d := range []time.Duration{
		0,
		100 * time.Nanosecond,
		time.Millisecond,
		123 * time.Millisecond,
		123456700 * time.Nanosecond,
		time.Second,
		time.Minute,
	} {
		encoded = append(encoded, encodeCreatedAt(base.Add(d)))
	}
	assert.True(t, sort.StringsAreSorted(encoded))
}
