package db

import (
	"github.com/rs/zerolog/log"

	"github.com/bildungswerk/kursbuero/internal/model"
)

const participantColumns = `id, name, surname, email, phone, street, postal_code, city, country, created_at, updated_at, deleted_at`

func (s *pgStore) CreateParticipant(p model.Participant) (model.Participant, error) {
	var out model.Participant
	const q = `
	INSERT INTO participants (name, surname, email, phone, street, postal_code, city, country, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
	RETURNING ` + participantColumns + `;`
	if err := s.db.Get(&out, q, p.Name, p.Surname, p.Email, p.Phone, p.Street, p.PostalCode, p.City, p.Country); err != nil {
		log.Error().Err(err).Msg("CreateParticipant failed")
		return model.Participant{}, err
	}
	return out, nil
}

func (s *pgStore) GetParticipantByID(id int) (model.Participant, error) {
	var p model.Participant
	const q = `SELECT ` + participantColumns + ` FROM participants WHERE id = $1 AND deleted_at IS NULL;`
	if err := s.db.Get(&p, q, id); err != nil {
		return model.Participant{}, err
	}
	return p, nil
}

func (s *pgStore) ListParticipants() ([]model.Participant, error) {
	var out []model.Participant
	const q = `SELECT ` + participantColumns + ` FROM participants WHERE deleted_at IS NULL ORDER BY surname, name;`
	if err := s.db.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListParticipants failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdateParticipant(id int, p model.Participant) (model.Participant, error) {
	var out model.Participant
	const q = `
	UPDATE participants
	   SET name        = $2,
	       surname     = $3,
	       email       = $4,
	       phone       = $5,
	       street      = $6,
	       postal_code = $7,
	       city        = $8,
	       country     = $9,
	       updated_at  = now()
	 WHERE id = $1 AND deleted_at IS NULL
	RETURNING ` + participantColumns + `;`
	if err := s.db.Get(&out, q, id, p.Name, p.Surname, p.Email, p.Phone, p.Street, p.PostalCode, p.City, p.Country); err != nil {
		log.Error().Err(err).Int("participant_id", id).Msg("UpdateParticipant failed")
		return model.Participant{}, err
	}
	return out, nil
}

func (s *pgStore) DeleteParticipant(id int) error {
	_, err := s.db.Exec(`UPDATE participants SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL;`, id)
	if err != nil {
		log.Error().Err(err).Int("participant_id", id).Msg("DeleteParticipant failed")
	}
	return err
}

// ListCourseParticipants returns the participants with an active
// registration in the course.
func (s *pgStore) ListCourseParticipants(courseID int) ([]model.Participant, error) {
	var out []model.Participant
	const q = `
	SELECT p.id, p.name, p.surname, p.email, p.phone, p.street, p.postal_code, p.city, p.country, p.created_at, p.updated_at, p.deleted_at
	  FROM participants p
	  JOIN course_registrations r ON r.participant_id = p.id
	 WHERE r.course_id = $1
	   AND r.deleted_at IS NULL
	   AND p.deleted_at IS NULL
	 ORDER BY p.surname, p.name;`
	if err := s.db.Select(&out, q, courseID); err != nil {
		log.Error().Err(err).Int("course_id", courseID).Msg("ListCourseParticipants failed")
		return nil, err
	}
	return out, nil
}
