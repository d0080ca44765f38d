package db

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bildungswerk/kursbuero/internal/model"
)

const invoiceColumns = `id, registration_id, recipient_id, invoice_number, amount_cents, status, due_date, created_at, updated_at, deleted_at`

func (s *pgStore) CreateInvoice(registrationID, recipientID int, invoiceNumber string, amountCents int, dueDate *time.Time) (model.Invoice, error) {
	var inv model.Invoice
	const q = `
	INSERT INTO invoices (registration_id, recipient_id, invoice_number, amount_cents, status, due_date, created_at, updated_at)
	VALUES ($1, $2, $3, $4, 'DRAFT', $5, now(), now())
	RETURNING ` + invoiceColumns + `;`
	if err := s.db.Get(&inv, q, registrationID, recipientID, invoiceNumber, amountCents, dueDate); err != nil {
		log.Error().Err(err).Int("registration_id", registrationID).Msg("CreateInvoice failed")
		return model.Invoice{}, err
	}
	return inv, nil
}

func (s *pgStore) GetInvoiceByID(id int) (model.Invoice, error) {
	var inv model.Invoice
	const q = `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 AND deleted_at IS NULL;`
	if err := s.db.Get(&inv, q, id); err != nil {
		return model.Invoice{}, err
	}
	return inv, nil
}

func (s *pgStore) ListInvoices(status *string) ([]model.Invoice, error) {
	var out []model.Invoice
	const q = `
	SELECT ` + invoiceColumns + `
	  FROM invoices
	 WHERE deleted_at IS NULL
	   AND ($1::text IS NULL OR status = $1)
	 ORDER BY created_at DESC;`
	if err := s.db.Select(&out, q, status); err != nil {
		log.Error().Err(err).Msg("ListInvoices failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdateInvoiceStatus(id int, status string) (model.Invoice, error) {
	var inv model.Invoice
	const q = `
	UPDATE invoices
	   SET status = $2, updated_at = now()
	 WHERE id = $1 AND deleted_at IS NULL
	RETURNING ` + invoiceColumns + `;`
	if err := s.db.Get(&inv, q, id, status); err != nil {
		log.Error().Err(err).Int("invoice_id", id).Msg("UpdateInvoiceStatus failed")
		return model.Invoice{}, err
	}
	return inv, nil
}

func (s *pgStore) DeleteInvoice(id int) error {
	_, err := s.db.Exec(`UPDATE invoices SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL;`, id)
	if err != nil {
		log.Error().Err(err).Int("invoice_id", id).Msg("DeleteInvoice failed")
	}
	return err
}
