package packets

import "time"

type CreateAreaRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type UpdateAreaRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type CreateProgramRequest struct {
	AreaID      int     `json:"area_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type UpdateProgramRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type CreateCourseRequest struct {
	ProgramID   int       `json:"program_id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description *string   `json:"description"`
	StartDate   time.Time `json:"start_date" binding:"required"` // RFC3339
	EndDate     time.Time `json:"end_date" binding:"required"`
	PriceCents  *int      `json:"price_cents"`
}

type UpdateCourseRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	PriceCents  *int       `json:"price_cents"`
}

type CreateTrainerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Surname string  `json:"surname" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone"`
}

type UpdateTrainerRequest struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
}

type AssignTrainerRequest struct {
	TrainerID int `json:"trainer_id" binding:"required"`
}

type CreateParticipantRequest struct {
	Name       string  `json:"name" binding:"required"`
	Surname    string  `json:"surname" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      *string `json:"phone"`
	Street     string  `json:"street" binding:"required"`
	PostalCode string  `json:"postal_code" binding:"required"`
	City       string  `json:"city" binding:"required"`
	Country    string  `json:"country" binding:"required"`
}

// RecipientBody carries the full field set of an invoice recipient; the
// billing package performs the required-field validation per type.
type RecipientBody struct {
	Type          string  `json:"type" binding:"required,oneof=PERSON COMPANY"`
	Salutation    *string `json:"salutation"`
	Name          *string `json:"name"`
	Surname       *string `json:"surname"`
	CompanyName   *string `json:"company_name"`
	Email         string  `json:"email"`
	Street        string  `json:"street"`
	PostalCode    string  `json:"postal_code"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	ParticipantID *int    `json:"participant_id"`
}

type CreateRegistrationRequest struct {
	CourseID      int     `json:"course_id" binding:"required"`
	ParticipantID int     `json:"participant_id" binding:"required"`
	Notes         *string `json:"notes"`
}

// AttachRecipientRequest either references an existing recipient or
// carries a full candidate that is resolved against the existing pool.
type AttachRecipientRequest struct {
	RecipientID *int           `json:"recipient_id"`
	Recipient   *RecipientBody `json:"recipient"`
}

type CreateInvoiceRequest struct {
	RegistrationID int        `json:"registration_id" binding:"required"`
	InvoiceNumber  string     `json:"invoice_number" binding:"required"`
	AmountCents    int        `json:"amount_cents" binding:"required"`
	DueDate        *time.Time `json:"due_date"`
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=DRAFT SENT PAID CANCELLED"`
}

type UpsertRhythmRequest struct {
	Weekday      *int   `json:"weekday" binding:"required,min=0,max=6"` // time.Weekday, Sunday = 0
	Start        string `json:"start" binding:"required"`               // "HH:MM"
	End          string `json:"end" binding:"required"`
	PauseMinutes int    `json:"pause_minutes" binding:"min=0"`
}

type CreateHolidayRequest struct {
	Date  time.Time `json:"date" binding:"required"`
	Title string    `json:"title" binding:"required"`
}

type CreateSpecialDayRequest struct {
	Start        time.Time `json:"start" binding:"required"`
	End          time.Time `json:"end" binding:"required"`
	PauseMinutes int       `json:"pause_minutes" binding:"min=0"`
	Title        string    `json:"title"`
}

type ListOccurrencesQuery struct {
	From *time.Time `form:"from"`
	To   *time.Time `form:"to"`
}
