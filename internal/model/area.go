package model

import "time"

// Area is the top level of the course catalogue (e.g. "Languages").
type Area struct {
	ID          int        `db:"id"          json:"id"`
	Name        string     `db:"name"        json:"name"`
	Description *string    `db:"description" json:"description"`
	CreatedAt   time.Time  `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"  json:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"  json:"deleted_at,omitempty"`
}

// Program groups courses inside an area (e.g. "Spanish beginners").
type Program struct {
	ID          int        `db:"id"          json:"id"`
	AreaID      int        `db:"area_id"     json:"area_id"`
	Name        string     `db:"name"        json:"name"`
	Description *string    `db:"description" json:"description"`
	CreatedAt   time.Time  `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"  json:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"  json:"deleted_at,omitempty"`
}
