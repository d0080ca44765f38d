package model

import "time"

// WeeklyRhythm is a course's recurring weekly slot. Weekday follows
// time.Weekday (Sunday = 0). Times of day are stored as minutes since
// midnight; at most one active row exists per (course_id, weekday) and
// re-submitting the pair upserts the existing row instead of erroring.
type WeeklyRhythm struct {
	ID           int        `db:"id"            json:"id"`
	CourseID     int        `db:"course_id"     json:"course_id"`
	Weekday      int        `db:"weekday"       json:"weekday"`
	StartMinutes int        `db:"start_minutes" json:"start_minutes"`
	EndMinutes   int        `db:"end_minutes"   json:"end_minutes"`
	PauseMinutes int        `db:"pause_minutes" json:"pause_minutes"`
	CreatedAt    time.Time  `db:"created_at"    json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"    json:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"    json:"deleted_at,omitempty"`
}

// CourseHoliday suppresses rhythm occurrences of one course on one date.
type CourseHoliday struct {
	ID        int        `db:"id"         json:"id"`
	CourseID  int        `db:"course_id"  json:"course_id"`
	Date      time.Time  `db:"date"       json:"date"`
	Title     string     `db:"title"      json:"title"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}

// GlobalHoliday suppresses rhythm occurrences of every course on one date.
type GlobalHoliday struct {
	ID        int        `db:"id"         json:"id"`
	Date      time.Time  `db:"date"       json:"date"`
	Title     string     `db:"title"      json:"title"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}

// CourseSpecialDay is a one-off session outside the weekly rhythm. It is
// never suppressed by holidays; an active (course_id, start) pair is
// unique and duplicates are rejected at creation.
type CourseSpecialDay struct {
	ID           int        `db:"id"            json:"id"`
	CourseID     int        `db:"course_id"     json:"course_id"`
	Start        time.Time  `db:"start_ts"      json:"start"`
	End          time.Time  `db:"end_ts"        json:"end"`
	PauseMinutes int        `db:"pause_minutes" json:"pause_minutes"`
	Title        string     `db:"title"         json:"title"`
	CreatedAt    time.Time  `db:"created_at"    json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"    json:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"    json:"deleted_at,omitempty"`
}
