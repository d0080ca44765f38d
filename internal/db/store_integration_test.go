package db

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bildungswerk/kursbuero/internal/model"
)

// TestStoreIntegration exercises the store against a real database.
// Set TEST_DATABASE_URL to run it; without one the test is skipped.
func TestStoreIntegration(t *testing.T) {
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	require.NoError(t, Init(databaseURL))
	require.NoError(t, RunMigrations("../../migrations"))
	store := NewStore(nil)

	newCourse := func(t *testing.T, name string) model.Course {
		t.Helper()
		area, err := store.CreateArea(fmt.Sprintf("Area %s %d", name, time.Now().UnixNano()), nil)
		require.NoError(t, err)
		program, err := store.CreateProgram(area.ID, "Programm", nil)
		require.NoError(t, err)
		course, err := store.CreateCourse(program.ID, name, nil,
			time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC), nil)
		require.NoError(t, err)
		return course
	}

	t.Run("Rhythm Upsert", func(t *testing.T) {
		course := newCourse(t, "Deutsch B1")

		first, err := store.UpsertWeeklyRhythm(course.ID, 1, 540, 720, 30)
		require.NoError(t, err)
		assert.Equal(t, 540, first.StartMinutes)

		// resubmitting the same (course, weekday) overwrites, never errors
		second, err := store.UpsertWeeklyRhythm(course.ID, 1, 600, 780, 15)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 600, second.StartMinutes)
		assert.Equal(t, 15, second.PauseMinutes)

		rhythms, err := store.ListWeeklyRhythms(course.ID)
		require.NoError(t, err)
		require.Len(t, rhythms, 1)
	})

	t.Run("Rhythm Upsert Revives Deleted Row", func(t *testing.T) {
		course := newCourse(t, "Deutsch B2")

		first, err := store.UpsertWeeklyRhythm(course.ID, 3, 540, 720, 0)
		require.NoError(t, err)

		require.NoError(t, store.DeleteWeeklyRhythm(course.ID, 3))
		gone, err := store.ListWeeklyRhythms(course.ID)
		require.NoError(t, err)
		assert.Empty(t, gone)

		// the same slot comes back as the same row, not a second one
		revived, err := store.UpsertWeeklyRhythm(course.ID, 3, 570, 750, 10)
		require.NoError(t, err)
		assert.Equal(t, first.ID, revived.ID)
		assert.Nil(t, revived.DeletedAt)

		rhythms, err := store.ListWeeklyRhythms(course.ID)
		require.NoError(t, err)
		require.Len(t, rhythms, 1)
		assert.Equal(t, 570, rhythms[0].StartMinutes)
	})

	t.Run("Special Day Duplicate Rejected", func(t *testing.T) {
		course := newCourse(t, "Yoga")
		start := time.Date(2025, time.October, 3, 18, 0, 0, 0, time.UTC)

		_, err := store.CreateSpecialDay(course.ID, start, start.Add(2*time.Hour), 0, "Exkursion")
		require.NoError(t, err)

		_, err = store.CreateSpecialDay(course.ID, start, start.Add(3*time.Hour), 15, "Doppelt")
		assert.ErrorIs(t, err, ErrDuplicateSpecialDay)

		// deleting frees the slot again
		days, err := store.ListSpecialDays(course.ID)
		require.NoError(t, err)
		require.Len(t, days, 1)
		require.NoError(t, store.DeleteSpecialDay(days[0].ID))

		_, err = store.CreateSpecialDay(course.ID, start, start.Add(2*time.Hour), 0, "Neu")
		assert.NoError(t, err)
	})
}
