package db

import (
	"github.com/rs/zerolog/log"

	"github.com/bildungswerk/kursbuero/internal/model"
)

const recipientColumns = `id, type, salutation, name, surname, company_name, email, street, postal_code, city, country, participant_id, created_at, updated_at, deleted_at`

// CreateInvoiceRecipient is a pure insert; matching against existing
// rows happens in the billing package before this is called.
func (s *pgStore) CreateInvoiceRecipient(r model.InvoiceRecipient) (model.InvoiceRecipient, error) {
	var out model.InvoiceRecipient
	const q = `
	INSERT INTO invoice_recipients
	  (type, salutation, name, surname, company_name, email, street, postal_code, city, country, participant_id, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
	RETURNING ` + recipientColumns + `;`
	if err := s.db.Get(&out, q,
		r.Type, r.Salutation, r.Name, r.Surname, r.CompanyName,
		r.Email, r.Street, r.PostalCode, r.City, r.Country, r.ParticipantID,
	); err != nil {
		log.Error().Err(err).Msg("CreateInvoiceRecipient failed")
		return model.InvoiceRecipient{}, err
	}
	return out, nil
}

func (s *pgStore) GetInvoiceRecipientByID(id int) (model.InvoiceRecipient, error) {
	var r model.InvoiceRecipient
	const q = `SELECT ` + recipientColumns + ` FROM invoice_recipients WHERE id = $1 AND deleted_at IS NULL;`
	if err := s.db.Get(&r, q, id); err != nil {
		return model.InvoiceRecipient{}, err
	}
	return r, nil
}

func (s *pgStore) ListInvoiceRecipients() ([]model.InvoiceRecipient, error) {
	var out []model.InvoiceRecipient
	const q = `SELECT ` + recipientColumns + ` FROM invoice_recipients WHERE deleted_at IS NULL ORDER BY created_at DESC;`
	if err := s.db.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListInvoiceRecipients failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) DeleteInvoiceRecipient(id int) error {
	_, err := s.db.Exec(`UPDATE invoice_recipients SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL;`, id)
	if err != nil {
		log.Error().Err(err).Int("recipient_id", id).Msg("DeleteInvoiceRecipient failed")
	}
	return err
}
