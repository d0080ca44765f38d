package db

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/bildungswerk/kursbuero/internal/model"
)

const rhythmColumns = `id, course_id, weekday, start_minutes, end_minutes, pause_minutes, created_at, updated_at, deleted_at`
const specialDayColumns = `id, course_id, start_ts, end_ts, pause_minutes, title, created_at, updated_at, deleted_at`

// UpsertWeeklyRhythm inserts a rhythm row or, when the (course, weekday)
// pair already exists, overwrites its times and revives it if it had
// been soft-deleted. Resubmitting a rhythm is an update, never an error.
func (s *pgStore) UpsertWeeklyRhythm(courseID, weekday, startMinutes, endMinutes, pauseMinutes int) (model.WeeklyRhythm, error) {
	var r model.WeeklyRhythm
	const q = `
	INSERT INTO weekly_rhythms (course_id, weekday, start_minutes, end_minutes, pause_minutes, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, now(), now())
	ON CONFLICT (course_id, weekday)
	DO UPDATE SET start_minutes = EXCLUDED.start_minutes,
	              end_minutes   = EXCLUDED.end_minutes,
	              pause_minutes = EXCLUDED.pause_minutes,
	              deleted_at    = NULL,
	              updated_at    = now()
	RETURNING ` + rhythmColumns + `;`
	if err := s.db.Get(&r, q, courseID, weekday, startMinutes, endMinutes, pauseMinutes); err != nil {
		log.Error().Err(err).Int("course_id", courseID).Int("weekday", weekday).Msg("UpsertWeeklyRhythm failed")
		return model.WeeklyRhythm{}, err
	}
	return r, nil
}

func (s *pgStore) ListWeeklyRhythms(courseID int) ([]model.WeeklyRhythm, error) {
	var out []model.WeeklyRhythm
	const q = `
	SELECT ` + rhythmColumns + `
	  FROM weekly_rhythms
	 WHERE course_id = $1 AND deleted_at IS NULL
	 ORDER BY weekday;`
	if err := s.db.Select(&out, q, courseID); err != nil {
		log.Error().Err(err).Int("course_id", courseID).Msg("ListWeeklyRhythms failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) DeleteWeeklyRhythm(courseID, weekday int) error {
	_, err := s.db.Exec(`
	UPDATE weekly_rhythms
	   SET deleted_at = now(), updated_at = now()
	 WHERE course_id = $1 AND weekday = $2 AND deleted_at IS NULL;`, courseID, weekday)
	if err != nil {
		log.Error().Err(err).Int("course_id", courseID).Int("weekday", weekday).Msg("DeleteWeeklyRhythm failed")
	}
	return err
}

func (s *pgStore) CreateCourseHoliday(courseID int, date time.Time, title string) (model.CourseHoliday, error) {
	var h model.CourseHoliday
	const q = `
	INSERT INTO course_holidays (course_id, date, title, created_at, updated_at)
	VALUES ($1, $2, $3, now(), now())
	RETURNING id, course_id, date, title, created_at, updated_at, deleted_at;`
	if err := s.db.Get(&h, q, courseID, date, title); err != nil {
		log.Error().Err(err).Int("course_id", courseID).Msg("CreateCourseHoliday failed")
		return model.CourseHoliday{}, err
	}
	return h, nil
}

func (s *pgStore) ListCourseHolidays(courseID int) ([]model.CourseHoliday, error) {
	var out []model.CourseHoliday
	const q = `
	SELECT id, course_id, date, title, created_at, updated_at, deleted_at
	  FROM course_holidays
	 WHERE course_id = $1 AND deleted_at IS NULL
	 ORDER BY date;`
	if err := s.db.Select(&out, q, courseID); err != nil {
		log.Error().Err(err).Int("course_id", courseID).Msg("ListCourseHolidays failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) DeleteCourseHoliday(id int) error {
	_, err := s.db.Exec(`UPDATE course_holidays SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL;`, id)
	if err != nil {
		log.Error().Err(err).Int("holiday_id", id).Msg("DeleteCourseHoliday failed")
	}
	return err
}

func (s *pgStore) CreateGlobalHoliday(date time.Time, title string) (model.GlobalHoliday, error) {
	var h model.GlobalHoliday
	const q = `
	INSERT INTO global_holidays (date, title, created_at, updated_at)
	VALUES ($1, $2, now(), now())
	RETURNING id, date, title, created_at, updated_at, deleted_at;`
	if err := s.db.Get(&h, q, date, title); err != nil {
		log.Error().Err(err).Msg("CreateGlobalHoliday failed")
		return model.GlobalHoliday{}, err
	}
	return h, nil
}

func (s *pgStore) ListGlobalHolidays() ([]model.GlobalHoliday, error) {
	var out []model.GlobalHoliday
	const q = `
	SELECT id, date, title, created_at, updated_at, deleted_at
	  FROM global_holidays
	 WHERE deleted_at IS NULL
	 ORDER BY date;`
	if err := s.db.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListGlobalHolidays failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) DeleteGlobalHoliday(id int) error {
	_, err := s.db.Exec(`UPDATE global_holidays SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL;`, id)
	if err != nil {
		log.Error().Err(err).Int("holiday_id", id).Msg("DeleteGlobalHoliday failed")
	}
	return err
}

// CreateSpecialDay rejects a second active special day at the same start
// time for the same course. Unlike rhythms this is a hard error, not an
// upsert; special days are explicit one-off overrides. The pre-check
// gives the common case a clean path; the partial unique index on
// (course_id, start_ts) closes the race between concurrent inserts.
func (s *pgStore) CreateSpecialDay(courseID int, start, end time.Time, pauseMinutes int, title string) (model.CourseSpecialDay, error) {
	var exists int
	err := s.db.Get(&exists, `
	SELECT 1 FROM course_special_days
	 WHERE course_id = $1 AND start_ts = $2 AND deleted_at IS NULL;`, courseID, start)
	if err == nil {
		return model.CourseSpecialDay{}, ErrDuplicateSpecialDay
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Int("course_id", courseID).Msg("CreateSpecialDay duplicate check failed")
		return model.CourseSpecialDay{}, err
	}

	var d model.CourseSpecialDay
	const q = `
	INSERT INTO course_special_days (course_id, start_ts, end_ts, pause_minutes, title, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, now(), now())
	RETURNING ` + specialDayColumns + `;`
	if err := s.db.Get(&d, q, courseID, start, end, pauseMinutes, title); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return model.CourseSpecialDay{}, ErrDuplicateSpecialDay
		}
		log.Error().Err(err).Int("course_id", courseID).Msg("CreateSpecialDay failed")
		return model.CourseSpecialDay{}, err
	}
	return d, nil
}

func (s *pgStore) ListSpecialDays(courseID int) ([]model.CourseSpecialDay, error) {
	var out []model.CourseSpecialDay
	const q = `
	SELECT ` + specialDayColumns + `
	  FROM course_special_days
	 WHERE course_id = $1 AND deleted_at IS NULL
	 ORDER BY start_ts;`
	if err := s.db.Select(&out, q, courseID); err != nil {
		log.Error().Err(err).Int("course_id", courseID).Msg("ListSpecialDays failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) DeleteSpecialDay(id int) error {
	_, err := s.db.Exec(`UPDATE course_special_days SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL;`, id)
	if err != nil {
		log.Error().Err(err).Int("special_day_id", id).Msg("DeleteSpecialDay failed")
	}
	return err
}
