package model

import "time"

const (
	InvoiceStatusDraft     = "DRAFT"
	InvoiceStatusSent      = "SENT"
	InvoiceStatusPaid      = "PAID"
	InvoiceStatusCancelled = "CANCELLED"
)

type Invoice struct {
	ID             int        `db:"id"              json:"id"`
	RegistrationID int        `db:"registration_id" json:"registration_id"`
	RecipientID    int        `db:"recipient_id"    json:"recipient_id"`
	InvoiceNumber  string     `db:"invoice_number"  json:"invoice_number"`
	AmountCents    int        `db:"amount_cents"    json:"amount_cents"`
	Status         string     `db:"status"          json:"status"`
	DueDate        *time.Time `db:"due_date"        json:"due_date"`
	CreatedAt      time.Time  `db:"created_at"      json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"      json:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"      json:"deleted_at,omitempty"`
}

// Document is a stored file (generated course rules, uploaded forms)
// optionally scoped to a course. FilePath is the storage backend URL.
type Document struct {
	ID          int        `db:"id"           json:"id"`
	CourseID    *int       `db:"course_id"    json:"course_id"`
	Name        string     `db:"name"         json:"name"`
	FilePath    string     `db:"file_path"    json:"file_path"`
	ContentType string     `db:"content_type" json:"content_type"`
	CreatedAt   time.Time  `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"   json:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"   json:"deleted_at,omitempty"`
}
