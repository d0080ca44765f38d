// Package schedule derives the concrete dated sessions of a course from
// its weekly rhythms, holidays, and one-off special days. It is pure
// date arithmetic over rows the caller has already loaded; soft-deleted
// rows must be filtered out before calling.
package schedule

import (
	"errors"
	"sort"
	"time"
)

// Origin tags where an occurrence came from.
type Origin string

const (
	OriginRhythm  Origin = "rhythm"
	OriginSpecial Origin = "special"
)

// Rhythm is one active weekly slot of a course.
type Rhythm struct {
	Weekday time.Weekday
	Start   TimeOfDay
	End     TimeOfDay
	Pause   time.Duration
}

// SpecialDay is one active manually scheduled session.
type SpecialDay struct {
	Start time.Time
	End   time.Time
	Pause time.Duration
	Title string
}

// Occurrence is one concrete, dated course session.
type Occurrence struct {
	Date   time.Time     `json:"date"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Pause  time.Duration `json:"pause"`
	Origin Origin        `json:"origin"`
	Title  string        `json:"title,omitempty"`
}

// Input collects everything occurrence expansion needs. From and To are
// inclusive date bounds (usually the course's start and end dates).
type Input struct {
	From           time.Time
	To             time.Time
	Rhythms        []Rhythm
	CourseHolidays []time.Time
	GlobalHolidays []time.Time
	SpecialDays    []SpecialDay
}

// ErrInvalidRange indicates the expansion bounds are reversed.
var ErrInvalidRange = errors.New("schedule: range end before range start")

// Expand walks every calendar date in [From, To], emits a rhythm
// occurrence for each date whose weekday has an active rhythm, drops
// rhythm occurrences that fall on a global or course holiday, then
// merges in the special days and sorts everything by start time.
//
// Special days are deliberate manual overrides and are never subject to
// holiday suppression. A course without rhythms yields only its special
// days.
func Expand(in Input) ([]Occurrence, error) {
	from := dateOnly(in.From)
	to := dateOnly(in.To)
	if to.Before(from) {
		return nil, ErrInvalidRange
	}

	byWeekday := make(map[time.Weekday]Rhythm, len(in.Rhythms))
	for _, r := range in.Rhythms {
		byWeekday[r.Weekday] = r
	}

	holidays := make(map[string]struct{}, len(in.GlobalHolidays)+len(in.CourseHolidays))
	for _, d := range in.GlobalHolidays {
		holidays[dateKey(d)] = struct{}{}
	}
	for _, d := range in.CourseHolidays {
		holidays[dateKey(d)] = struct{}{}
	}

	var out []Occurrence
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		r, ok := byWeekday[day.Weekday()]
		if !ok {
			continue
		}
		if _, suppressed := holidays[dateKey(day)]; suppressed {
			continue
		}
		out = append(out, Occurrence{
			Date:   day,
			Start:  combine(day, r.Start),
			End:    combine(day, r.End),
			Pause:  r.Pause,
			Origin: OriginRhythm,
		})
	}

	for _, sd := range in.SpecialDays {
		out = append(out, Occurrence{
			Date:   dateOnly(sd.Start),
			Start:  sd.Start,
			End:    sd.End,
			Pause:  sd.Pause,
			Origin: OriginSpecial,
			Title:  sd.Title,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Start.Equal(out[j].Start) {
			// rhythm rows sort ahead of a special day at the same instant
			return out[i].Origin == OriginRhythm && out[j].Origin == OriginSpecial
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out, nil
}

// combine transplants a wall-clock time onto a calendar date.
func combine(day time.Time, t TimeOfDay) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dateKey is the calendar date of t in t's own location. Holiday rows
// and expansion bounds may carry different zones (timestamptz scans in
// the server zone, query bounds bind as UTC); suppression must compare
// the wall-clock date, not time.Time equality.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
