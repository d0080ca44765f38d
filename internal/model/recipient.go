package model

import "time"

// Recipient types. A PERSON carries salutation/name/surname, a COMPANY
// carries a company name; the address block is required for both.
const (
	RecipientTypePerson  = "PERSON"
	RecipientTypeCompany = "COMPANY"
)

// InvoiceRecipient is the billing party for an invoice. It may be linked
// to a participant, be a different named person, or a company. Rows are
// soft deleted only; they are never removed while an invoice points at
// them.
type InvoiceRecipient struct {
	ID            int        `db:"id"             json:"id"`
	Type          string     `db:"type"           json:"type"`
	Salutation    *string    `db:"salutation"     json:"salutation"`
	Name          *string    `db:"name"           json:"name"`
	Surname       *string    `db:"surname"        json:"surname"`
	CompanyName   *string    `db:"company_name"   json:"company_name"`
	Email         string     `db:"email"          json:"email"`
	Street        string     `db:"street"         json:"street"`
	PostalCode    string     `db:"postal_code"    json:"postal_code"`
	City          string     `db:"city"           json:"city"`
	Country       string     `db:"country"        json:"country"`
	ParticipantID *int       `db:"participant_id" json:"participant_id"`
	CreatedAt     time.Time  `db:"created_at"     json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"     json:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"     json:"deleted_at,omitempty"`
}
