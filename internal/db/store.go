// Package db holds the PostgreSQL data-access layer. All queries filter
// soft-deleted rows (deleted_at IS NULL); deletes only stamp deleted_at.
package db

import (
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/bildungswerk/kursbuero/internal/model"
)

// ErrDuplicateSpecialDay is returned when a course already has an active
// special day at the same start time.
var ErrDuplicateSpecialDay = errors.New("duplicate special day for this course/time")

// Store is the single data-access handle passed into the API modules.
type Store interface {
	// users
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// areas
	CreateArea(name string, description *string) (model.Area, error)
	GetAreaByID(id int) (model.Area, error)
	ListAreas() ([]model.Area, error)
	UpdateArea(id int, name, description *string) (model.Area, error)
	DeleteArea(id int) error

	// programs
	CreateProgram(areaID int, name string, description *string) (model.Program, error)
	GetProgramByID(id int) (model.Program, error)
	ListPrograms(areaID *int) ([]model.Program, error)
	UpdateProgram(id int, name, description *string) (model.Program, error)
	DeleteProgram(id int) error

	// courses
	CreateCourse(programID int, name string, description *string, start, end time.Time, priceCents *int) (model.Course, error)
	GetCourseByID(id int) (model.Course, error)
	ListCourses(programID *int) ([]model.Course, error)
	UpdateCourse(id int, name, description *string, start, end *time.Time, priceCents *int) (model.Course, error)
	DeleteCourse(id int) error

	// trainers
	CreateTrainer(name, surname, email string, phone *string) (model.Trainer, error)
	GetTrainerByID(id int) (model.Trainer, error)
	ListTrainers() ([]model.Trainer, error)
	UpdateTrainer(id int, name, surname, email, phone *string) (model.Trainer, error)
	DeleteTrainer(id int) error
	AssignTrainerToCourse(courseID, trainerID int) error
	UnassignTrainerFromCourse(courseID, trainerID int) error
	ListCourseTrainers(courseID int) ([]model.Trainer, error)

	// participants
	CreateParticipant(p model.Participant) (model.Participant, error)
	GetParticipantByID(id int) (model.Participant, error)
	ListParticipants() ([]model.Participant, error)
	UpdateParticipant(id int, p model.Participant) (model.Participant, error)
	DeleteParticipant(id int) error
	ListCourseParticipants(courseID int) ([]model.Participant, error)

	// invoice recipients
	CreateInvoiceRecipient(r model.InvoiceRecipient) (model.InvoiceRecipient, error)
	GetInvoiceRecipientByID(id int) (model.InvoiceRecipient, error)
	ListInvoiceRecipients() ([]model.InvoiceRecipient, error)
	DeleteInvoiceRecipient(id int) error

	// registrations
	CreateRegistration(courseID, participantID int, notes *string) (model.CourseRegistration, error)
	GetRegistrationByID(id int) (model.CourseRegistration, error)
	ListRegistrations(courseID *int) ([]model.CourseRegistration, error)
	AttachInvoiceRecipient(registrationID, recipientID int) error
	DetachInvoiceRecipient(registrationID int) error
	DeleteRegistration(id int) error

	// invoices
	CreateInvoice(registrationID, recipientID int, invoiceNumber string, amountCents int, dueDate *time.Time) (model.Invoice, error)
	GetInvoiceByID(id int) (model.Invoice, error)
	ListInvoices(status *string) ([]model.Invoice, error)
	UpdateInvoiceStatus(id int, status string) (model.Invoice, error)
	DeleteInvoice(id int) error

	// documents
	CreateDocument(courseID *int, name, filePath, contentType string) (model.Document, error)
	GetDocumentByID(id int) (model.Document, error)
	ListDocuments(courseID *int) ([]model.Document, error)
	DeleteDocument(id int) error

	// scheduling
	UpsertWeeklyRhythm(courseID, weekday, startMinutes, endMinutes, pauseMinutes int) (model.WeeklyRhythm, error)
	ListWeeklyRhythms(courseID int) ([]model.WeeklyRhythm, error)
	DeleteWeeklyRhythm(courseID, weekday int) error
	CreateCourseHoliday(courseID int, date time.Time, title string) (model.CourseHoliday, error)
	ListCourseHolidays(courseID int) ([]model.CourseHoliday, error)
	DeleteCourseHoliday(id int) error
	CreateGlobalHoliday(date time.Time, title string) (model.GlobalHoliday, error)
	ListGlobalHolidays() ([]model.GlobalHoliday, error)
	DeleteGlobalHoliday(id int) error
	CreateSpecialDay(courseID int, start, end time.Time, pauseMinutes int, title string) (model.CourseSpecialDay, error)
	ListSpecialDays(courseID int) ([]model.CourseSpecialDay, error)
	DeleteSpecialDay(id int) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(conn *sqlx.DB) Store {
	if conn == nil {
		conn = DB
	}
	return &pgStore{db: conn}
}
