package db

import (
	"github.com/rs/zerolog/log"

	"github.com/bildungswerk/kursbuero/internal/model"
)

const trainerColumns = `id, name, surname, email, phone, created_at, updated_at, deleted_at`

func (s *pgStore) CreateTrainer(name, surname, email string, phone *string) (model.Trainer, error) {
	var t model.Trainer
	const q = `
	INSERT INTO trainers (name, surname, email, phone, created_at, updated_at)
	VALUES ($1, $2, $3, $4, now(), now())
	RETURNING ` + trainerColumns + `;`
	if err := s.db.Get(&t, q, name, surname, email, phone); err != nil {
		log.Error().Err(err).Msg("CreateTrainer failed")
		return model.Trainer{}, err
	}
	return t, nil
}

func (s *pgStore) GetTrainerByID(id int) (model.Trainer, error) {
	var t model.Trainer
	const q = `SELECT ` + trainerColumns + ` FROM trainers WHERE id = $1 AND deleted_at IS NULL;`
	if err := s.db.Get(&t, q, id); err != nil {
		return model.Trainer{}, err
	}
	return t, nil
}

func (s *pgStore) ListTrainers() ([]model.Trainer, error) {
	var out []model.Trainer
	const q = `SELECT ` + trainerColumns + ` FROM trainers WHERE deleted_at IS NULL ORDER BY surname, name;`
	if err := s.db.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListTrainers failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdateTrainer(id int, name, surname, email, phone *string) (model.Trainer, error) {
	var t model.Trainer
	const q = `
	UPDATE trainers
	   SET name       = COALESCE($2, name),
	       surname    = COALESCE($3, surname),
	       email      = COALESCE($4, email),
	       phone      = COALESCE($5, phone),
	       updated_at = now()
	 WHERE id = $1 AND deleted_at IS NULL
	RETURNING ` + trainerColumns + `;`
	if err := s.db.Get(&t, q, id, name, surname, email, phone); err != nil {
		log.Error().Err(err).Int("trainer_id", id).Msg("UpdateTrainer failed")
		return model.Trainer{}, err
	}
	return t, nil
}

func (s *pgStore) DeleteTrainer(id int) error {
	_, err := s.db.Exec(`UPDATE trainers SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL;`, id)
	if err != nil {
		log.Error().Err(err).Int("trainer_id", id).Msg("DeleteTrainer failed")
	}
	return err
}

func (s *pgStore) AssignTrainerToCourse(courseID, trainerID int) error {
	_, err := s.db.Exec(`
	INSERT INTO course_trainers (course_id, trainer_id)
	VALUES ($1, $2)
	ON CONFLICT DO NOTHING;`, courseID, trainerID)
	if err != nil {
		log.Error().Err(err).Int("course_id", courseID).Int("trainer_id", trainerID).Msg("AssignTrainerToCourse failed")
	}
	return err
}

func (s *pgStore) UnassignTrainerFromCourse(courseID, trainerID int) error {
	_, err := s.db.Exec(`DELETE FROM course_trainers WHERE course_id = $1 AND trainer_id = $2;`, courseID, trainerID)
	if err != nil {
		log.Error().Err(err).Int("course_id", courseID).Int("trainer_id", trainerID).Msg("UnassignTrainerFromCourse failed")
	}
	return err
}

func (s *pgStore) ListCourseTrainers(courseID int) ([]model.Trainer, error) {
	var out []model.Trainer
	const q = `
	SELECT t.id, t.name, t.surname, t.email, t.phone, t.created_at, t.updated_at, t.deleted_at
	  FROM trainers t
	  JOIN course_trainers ct ON ct.trainer_id = t.id
	 WHERE ct.course_id = $1 AND t.deleted_at IS NULL
	 ORDER BY t.surname, t.name;`
	if err := s.db.Select(&out, q, courseID); err != nil {
		log.Error().Err(err).Int("course_id", courseID).Msg("ListCourseTrainers failed")
		return nil, err
	}
	return out, nil
}
