package model

import "time"

type Participant struct {
	ID         int        `db:"id"          json:"id"`
	Name       string     `db:"name"        json:"name"`
	Surname    string     `db:"surname"     json:"surname"`
	Email      string     `db:"email"       json:"email"`
	Phone      *string    `db:"phone"       json:"phone"`
	Street     string     `db:"street"      json:"street"`
	PostalCode string     `db:"postal_code" json:"postal_code"`
	City       string     `db:"city"        json:"city"`
	Country    string     `db:"country"     json:"country"`
	CreatedAt  time.Time  `db:"created_at"  json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"  json:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"  json:"deleted_at,omitempty"`
}

// CourseRegistration links a participant to a course. InvoiceRecipientID
// is null while the participant pays for themselves.
type CourseRegistration struct {
	ID                 int        `db:"id"                   json:"id"`
	CourseID           int        `db:"course_id"            json:"course_id"`
	ParticipantID      int        `db:"participant_id"       json:"participant_id"`
	InvoiceRecipientID *int       `db:"invoice_recipient_id" json:"invoice_recipient_id"`
	Notes              *string    `db:"notes"                json:"notes"`
	CreatedAt          time.Time  `db:"created_at"           json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"           json:"updated_at"`
	DeletedAt          *time.Time `db:"deleted_at"           json:"deleted_at,omitempty"`
}
