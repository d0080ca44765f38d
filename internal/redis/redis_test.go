package redis

import (
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The invalidation patterns glob over the keys occurrenceKey writes; a
// drifting key scheme would leave stale calendars in the cache.
func TestOccurrenceKeyScheme(t *testing.T) {
	from := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.September, 14, 0, 0, 0, 0, time.UTC)

	key := occurrenceKey(7, from, to)
	assert.Equal(t, "course:7:occurrences:2025-09-01:2025-09-14", key)

	matched, err := path.Match(courseOccurrencePattern(7), key)
	require.NoError(t, err)
	assert.True(t, matched, "course invalidation must cover the course's keys")

	matched, err = path.Match(courseOccurrencePattern(8), key)
	require.NoError(t, err)
	assert.False(t, matched, "course invalidation must not cover other courses")

	matched, err = path.Match(allOccurrencePattern, key)
	require.NoError(t, err)
	assert.True(t, matched, "global invalidation must cover every course's keys")
}
