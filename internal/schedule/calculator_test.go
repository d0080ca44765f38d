package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandRhythmOnly(t *testing.T) {
	// Mondays 09:00-12:00 with a 30 minute pause, four weeks.
	in := Input{
		From: date(2025, time.June, 2), // a Monday
		To:   date(2025, time.June, 29),
		Rhythms: []Rhythm{
			{Weekday: time.Monday, Start: TimeOfDay{9, 0}, End: TimeOfDay{12, 0}, Pause: 30 * time.Minute},
		},
	}

	occs, err := Expand(in)
	require.NoError(t, err)
	require.Len(t, occs, 4)

	for i, o := range occs {
		assert.Equal(t, OriginRhythm, o.Origin)
		assert.Equal(t, time.Monday, o.Date.Weekday())
		assert.Equal(t, date(2025, time.June, 2+7*i), o.Date)
		assert.Equal(t, 9, o.Start.Hour())
		assert.Equal(t, 12, o.End.Hour())
		assert.Equal(t, 30*time.Minute, o.Pause)
	}
}

func TestExpandHolidaySuppression(t *testing.T) {
	monday := Rhythm{Weekday: time.Monday, Start: TimeOfDay{9, 0}, End: TimeOfDay{12, 0}, Pause: 30 * time.Minute}

	t.Run("global holiday drops the occurrence", func(t *testing.T) {
		in := Input{
			From:           date(2025, time.June, 2),
			To:             date(2025, time.June, 29),
			Rhythms:        []Rhythm{monday},
			GlobalHolidays: []time.Time{date(2025, time.June, 9)},
		}
		occs, err := Expand(in)
		require.NoError(t, err)
		require.Len(t, occs, 3)
		for _, o := range occs {
			assert.NotEqual(t, date(2025, time.June, 9), o.Date)
		}
	})

	t.Run("course holiday drops the occurrence", func(t *testing.T) {
		in := Input{
			From:           date(2025, time.June, 2),
			To:             date(2025, time.June, 29),
			Rhythms:        []Rhythm{monday},
			CourseHolidays: []time.Time{date(2025, time.June, 16)},
		}
		occs, err := Expand(in)
		require.NoError(t, err)
		require.Len(t, occs, 3)
		for _, o := range occs {
			assert.NotEqual(t, date(2025, time.June, 16), o.Date)
		}
	})

	t.Run("holiday timestamp is compared date-only", func(t *testing.T) {
		in := Input{
			From:           date(2025, time.June, 2),
			To:             date(2025, time.June, 8),
			Rhythms:        []Rhythm{monday},
			GlobalHolidays: []time.Time{time.Date(2025, time.June, 2, 15, 30, 0, 0, time.UTC)},
		}
		occs, err := Expand(in)
		require.NoError(t, err)
		assert.Empty(t, occs)
	})

	t.Run("holiday in another zone still suppresses", func(t *testing.T) {
		// timestamptz rows scan in the server zone while bounds bind as
		// UTC; the calendar date is what counts.
		berlin := time.FixedZone("CEST", 2*60*60)
		in := Input{
			From:           date(2025, time.June, 2),
			To:             date(2025, time.June, 8),
			Rhythms:        []Rhythm{monday},
			GlobalHolidays: []time.Time{time.Date(2025, time.June, 2, 0, 0, 0, 0, berlin)},
		}
		occs, err := Expand(in)
		require.NoError(t, err)
		assert.Empty(t, occs)
	})

	t.Run("course holiday in another zone still suppresses", func(t *testing.T) {
		berlin := time.FixedZone("CEST", 2*60*60)
		in := Input{
			From:           date(2025, time.June, 2),
			To:             date(2025, time.June, 15),
			Rhythms:        []Rhythm{monday},
			CourseHolidays: []time.Time{time.Date(2025, time.June, 9, 0, 0, 0, 0, berlin)},
		}
		occs, err := Expand(in)
		require.NoError(t, err)
		require.Len(t, occs, 1)
		assert.Equal(t, date(2025, time.June, 2), occs[0].Date)
	})
}

func TestExpandSpecialDays(t *testing.T) {
	t.Run("special day on a rhythmless course", func(t *testing.T) {
		// Course meets Tuesdays; the excursion is on a Monday.
		in := Input{
			From: date(2025, time.June, 1),
			To:   date(2025, time.June, 7),
			Rhythms: []Rhythm{
				{Weekday: time.Tuesday, Start: TimeOfDay{18, 0}, End: TimeOfDay{20, 0}},
			},
			SpecialDays: []SpecialDay{{
				Start: time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC),
				End:   time.Date(2025, time.June, 2, 14, 0, 0, 0, time.UTC),
				Title: "Exkursion",
			}},
		}
		occs, err := Expand(in)
		require.NoError(t, err)
		require.Len(t, occs, 2)

		assert.Equal(t, OriginSpecial, occs[0].Origin)
		assert.Equal(t, "Exkursion", occs[0].Title)
		assert.Equal(t, date(2025, time.June, 2), occs[0].Date)
		assert.Equal(t, OriginRhythm, occs[1].Origin)
	})

	t.Run("special days survive holiday suppression", func(t *testing.T) {
		in := Input{
			From: date(2025, time.June, 2),
			To:   date(2025, time.June, 8),
			Rhythms: []Rhythm{
				{Weekday: time.Monday, Start: TimeOfDay{9, 0}, End: TimeOfDay{12, 0}},
			},
			GlobalHolidays: []time.Time{date(2025, time.June, 2)},
			SpecialDays: []SpecialDay{{
				Start: time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC),
				End:   time.Date(2025, time.June, 2, 14, 0, 0, 0, time.UTC),
			}},
		}
		occs, err := Expand(in)
		require.NoError(t, err)
		require.Len(t, occs, 1)
		assert.Equal(t, OriginSpecial, occs[0].Origin)
	})

	t.Run("no rhythms at all yields only special days", func(t *testing.T) {
		in := Input{
			From: date(2025, time.June, 1),
			To:   date(2025, time.June, 30),
			SpecialDays: []SpecialDay{{
				Start: time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC),
				End:   time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC),
			}},
		}
		occs, err := Expand(in)
		require.NoError(t, err)
		require.Len(t, occs, 1)
		assert.Equal(t, OriginSpecial, occs[0].Origin)
	})
}

func TestExpandOrdering(t *testing.T) {
	in := Input{
		From: date(2025, time.June, 2),
		To:   date(2025, time.June, 15),
		Rhythms: []Rhythm{
			{Weekday: time.Friday, Start: TimeOfDay{14, 0}, End: TimeOfDay{16, 0}},
			{Weekday: time.Monday, Start: TimeOfDay{9, 0}, End: TimeOfDay{12, 0}},
		},
		SpecialDays: []SpecialDay{{
			Start: time.Date(2025, time.June, 4, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2025, time.June, 4, 12, 0, 0, 0, time.UTC),
		}},
	}
	occs, err := Expand(in)
	require.NoError(t, err)
	require.Len(t, occs, 5)
	for i := 1; i < len(occs); i++ {
		assert.False(t, occs[i].Start.Before(occs[i-1].Start), "occurrences must be ordered by start")
	}
}

func TestExpandInvalidRange(t *testing.T) {
	_, err := Expand(Input{From: date(2025, time.June, 10), To: date(2025, time.June, 1)})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestTimeOfDay(t *testing.T) {
	t.Run("parse and format", func(t *testing.T) {
		tod, err := ParseTimeOfDay("09:30")
		require.NoError(t, err)
		assert.Equal(t, TimeOfDay{9, 30}, tod)
		assert.Equal(t, "09:30", tod.String())
		assert.Equal(t, 570, tod.Minutes())
		assert.Equal(t, tod, FromMinutes(570))
	})

	t.Run("rejects out of range values", func(t *testing.T) {
		_, err := ParseTimeOfDay("24:00")
		assert.Error(t, err)
		_, err = ParseTimeOfDay("12:75")
		assert.Error(t, err)
	})

	t.Run("transplants only hour and minute", func(t *testing.T) {
		day := date(2025, time.June, 2)
		at := combine(day, TimeOfDay{9, 15})
		assert.Equal(t, time.Date(2025, time.June, 2, 9, 15, 0, 0, time.UTC), at)
	})
}
