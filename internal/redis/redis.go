// Package redis caches computed course occurrence lists so calendar
// views don't recompute the expansion on every request. All helpers are
// no-ops when the client is not initialized (tests, dev without redis).
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/bildungswerk/kursbuero/internal/schedule"
)

var Rdb *redis.Client

const occurrenceTTL = 15 * time.Minute

func InitRedis(redisAddress, redisUsername, redisPassword string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})
}

// allOccurrencePattern matches every cached occurrence range of every
// course; courseOccurrencePattern narrows it to one course. Both must
// stay in sync with occurrenceKey.
const allOccurrencePattern = "course:*:occurrences:*"

func occurrenceKey(courseID int, from, to time.Time) string {
	return fmt.Sprintf("course:%d:occurrences:%s:%s", courseID, from.Format("2006-01-02"), to.Format("2006-01-02"))
}

func courseOccurrencePattern(courseID int) string {
	return fmt.Sprintf("course:%d:occurrences:*", courseID)
}

// GetOccurrences returns the cached expansion for the range, if any.
func GetOccurrences(ctx context.Context, courseID int, from, to time.Time) ([]schedule.Occurrence, bool) {
	if Rdb == nil {
		return nil, false
	}
	raw, err := Rdb.Get(ctx, occurrenceKey(courseID, from, to)).Bytes()
	if err != nil {
		return nil, false
	}
	var occs []schedule.Occurrence
	if err := json.Unmarshal(raw, &occs); err != nil {
		log.Warn().Err(err).Int("course_id", courseID).Msg("dropping unreadable occurrence cache entry")
		return nil, false
	}
	return occs, true
}

// SetOccurrences stores the expansion for the range.
func SetOccurrences(ctx context.Context, courseID int, from, to time.Time, occs []schedule.Occurrence) {
	if Rdb == nil {
		return
	}
	raw, err := json.Marshal(occs)
	if err != nil {
		return
	}
	if err := Rdb.Set(ctx, occurrenceKey(courseID, from, to), raw, occurrenceTTL).Err(); err != nil {
		log.Warn().Err(err).Int("course_id", courseID).Msg("failed to cache occurrences")
	}
}

// InvalidateCourse drops every cached range of one course. Called after
// any rhythm, holiday, or special-day mutation of that course.
func InvalidateCourse(ctx context.Context, courseID int) {
	invalidatePattern(ctx, courseOccurrencePattern(courseID))
}

// InvalidateAll drops every cached occurrence range. Called after a
// global-holiday mutation, which affects every course.
func InvalidateAll(ctx context.Context) {
	invalidatePattern(ctx, allOccurrencePattern)
}

func invalidatePattern(ctx context.Context, pattern string) {
	if Rdb == nil {
		return
	}
	iter := Rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := Rdb.Del(ctx, iter.Val()).Err(); err != nil {
			log.Warn().Err(err).Str("key", iter.Val()).Msg("failed to drop cache key")
		}
	}
	if err := iter.Err(); err != nil {
		log.Warn().Err(err).Str("pattern", pattern).Msg("occurrence cache scan failed")
	}
}
