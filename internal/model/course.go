package model

import "time"

type Course struct {
	ID          int        `db:"id"           json:"id"`
	ProgramID   int        `db:"program_id"   json:"program_id"`
	Name        string     `db:"name"         json:"name"`
	Description *string    `db:"description"  json:"description"`
	StartDate   time.Time  `db:"start_date"   json:"start_date"`
	EndDate     time.Time  `db:"end_date"     json:"end_date"`
	PriceCents  *int       `db:"price_cents"  json:"price_cents"`
	CreatedAt   time.Time  `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"   json:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"   json:"deleted_at,omitempty"`
}

type Trainer struct {
	ID        int        `db:"id"         json:"id"`
	Name      string     `db:"name"       json:"name"`
	Surname   string     `db:"surname"    json:"surname"`
	Email     string     `db:"email"      json:"email"`
	Phone     *string    `db:"phone"      json:"phone"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}
