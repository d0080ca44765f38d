package db

import (
	"github.com/rs/zerolog/log"

	"github.com/bildungswerk/kursbuero/internal/model"
)

const registrationColumns = `id, course_id, participant_id, invoice_recipient_id, notes, created_at, updated_at, deleted_at`

func (s *pgStore) CreateRegistration(courseID, participantID int, notes *string) (model.CourseRegistration, error) {
	var r model.CourseRegistration
	const q = `
	INSERT INTO course_registrations (course_id, participant_id, notes, created_at, updated_at)
	VALUES ($1, $2, $3, now(), now())
	RETURNING ` + registrationColumns + `;`
	if err := s.db.Get(&r, q, courseID, participantID, notes); err != nil {
		log.Error().Err(err).Int("course_id", courseID).Int("participant_id", participantID).Msg("CreateRegistration failed")
		return model.CourseRegistration{}, err
	}
	return r, nil
}

func (s *pgStore) GetRegistrationByID(id int) (model.CourseRegistration, error) {
	var r model.CourseRegistration
	const q = `SELECT ` + registrationColumns + ` FROM course_registrations WHERE id = $1 AND deleted_at IS NULL;`
	if err := s.db.Get(&r, q, id); err != nil {
		return model.CourseRegistration{}, err
	}
	return r, nil
}

func (s *pgStore) ListRegistrations(courseID *int) ([]model.CourseRegistration, error) {
	var out []model.CourseRegistration
	const q = `
	SELECT ` + registrationColumns + `
	  FROM course_registrations
	 WHERE deleted_at IS NULL
	   AND ($1::int IS NULL OR course_id = $1)
	 ORDER BY created_at;`
	if err := s.db.Select(&out, q, courseID); err != nil {
		log.Error().Err(err).Msg("ListRegistrations failed")
		return nil, err
	}
	return out, nil
}

// AttachInvoiceRecipient points the registration at a billing target.
func (s *pgStore) AttachInvoiceRecipient(registrationID, recipientID int) error {
	_, err := s.db.Exec(`
	UPDATE course_registrations
	   SET invoice_recipient_id = $2, updated_at = now()
	 WHERE id = $1 AND deleted_at IS NULL;`, registrationID, recipientID)
	if err != nil {
		log.Error().Err(err).Int("registration_id", registrationID).Int("recipient_id", recipientID).Msg("AttachInvoiceRecipient failed")
	}
	return err
}

// DetachInvoiceRecipient resets the registration to self-payer.
func (s *pgStore) DetachInvoiceRecipient(registrationID int) error {
	_, err := s.db.Exec(`
	UPDATE course_registrations
	   SET invoice_recipient_id = NULL, updated_at = now()
	 WHERE id = $1 AND deleted_at IS NULL;`, registrationID)
	if err != nil {
		log.Error().Err(err).Int("registration_id", registrationID).Msg("DetachInvoiceRecipient failed")
	}
	return err
}

func (s *pgStore) DeleteRegistration(id int) error {
	_, err := s.db.Exec(`UPDATE course_registrations SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL;`, id)
	if err != nil {
		log.Error().Err(err).Int("registration_id", id).Msg("DeleteRegistration failed")
	}
	return err
}
