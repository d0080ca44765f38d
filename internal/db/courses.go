package db

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bildungswerk/kursbuero/internal/model"
)

const courseColumns = `id, program_id, name, description, start_date, end_date, price_cents, created_at, updated_at, deleted_at`

func (s *pgStore) CreateCourse(programID int, name string, description *string, start, end time.Time, priceCents *int) (model.Course, error) {
	var c model.Course
	const q = `
	INSERT INTO courses (program_id, name, description, start_date, end_date, price_cents, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, now(), now())
	RETURNING ` + courseColumns + `;`
	if err := s.db.Get(&c, q, programID, name, description, start, end, priceCents); err != nil {
		log.Error().Err(err).Int("program_id", programID).Msg("CreateCourse failed")
		return model.Course{}, err
	}
	return c, nil
}

func (s *pgStore) GetCourseByID(id int) (model.Course, error) {
	var c model.Course
	const q = `SELECT ` + courseColumns + ` FROM courses WHERE id = $1 AND deleted_at IS NULL;`
	if err := s.db.Get(&c, q, id); err != nil {
		return model.Course{}, err
	}
	return c, nil
}

func (s *pgStore) ListCourses(programID *int) ([]model.Course, error) {
	var out []model.Course
	const q = `
	SELECT ` + courseColumns + `
	  FROM courses
	 WHERE deleted_at IS NULL
	   AND ($1::int IS NULL OR program_id = $1)
	 ORDER BY start_date, name;`
	if err := s.db.Select(&out, q, programID); err != nil {
		log.Error().Err(err).Msg("ListCourses failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdateCourse(id int, name, description *string, start, end *time.Time, priceCents *int) (model.Course, error) {
	var c model.Course
	const q = `
	UPDATE courses
	   SET name        = COALESCE($2, name),
	       description = COALESCE($3, description),
	       start_date  = COALESCE($4, start_date),
	       end_date    = COALESCE($5, end_date),
	       price_cents = COALESCE($6, price_cents),
	       updated_at  = now()
	 WHERE id = $1 AND deleted_at IS NULL
	RETURNING ` + courseColumns + `;`
	if err := s.db.Get(&c, q, id, name, description, start, end, priceCents); err != nil {
		log.Error().Err(err).Int("course_id", id).Msg("UpdateCourse failed")
		return model.Course{}, err
	}
	return c, nil
}

func (s *pgStore) DeleteCourse(id int) error {
	_, err := s.db.Exec(`UPDATE courses SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL;`, id)
	if err != nil {
		log.Error().Err(err).Int("course_id", id).Msg("DeleteCourse failed")
	}
	return err
}
