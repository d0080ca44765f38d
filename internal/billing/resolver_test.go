package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bildungswerk/kursbuero/internal/model"
)

func str(s string) *string { return &s }

func person(id int, salutation, name, surname, email string, created time.Time) model.InvoiceRecipient {
	return model.InvoiceRecipient{
		ID:         id,
		Type:       model.RecipientTypePerson,
		Salutation: str(salutation),
		Name:       str(name),
		Surname:    str(surname),
		Email:      email,
		Street:     "Hauptstr. 1",
		PostalCode: "10115",
		City:       "Berlin",
		Country:    "DE",
		CreatedAt:  created,
	}
}

func company(id int, name, email string, created time.Time) model.InvoiceRecipient {
	return model.InvoiceRecipient{
		ID:          id,
		Type:        model.RecipientTypeCompany,
		CompanyName: str(name),
		Email:       email,
		Street:      "Industrieweg 5",
		PostalCode:  "20095",
		City:        "Hamburg",
		Country:     "DE",
		CreatedAt:   created,
	}
}

func TestValidate(t *testing.T) {
	now := time.Now()

	t.Run("accepts complete person and company", func(t *testing.T) {
		assert.NoError(t, Validate(person(1, "Mr", "Jane", "Doe", "jane@example.com", now)))
		assert.NoError(t, Validate(company(2, "ACME GmbH", "billing@acme.de", now)))
	})

	t.Run("reports the missing field by name", func(t *testing.T) {
		r := person(1, "Mr", "Jane", "Doe", "jane@example.com", now)
		r.City = ""
		err := Validate(r)
		var fe *FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "city", fe.Field)
	})

	t.Run("person requires name and surname", func(t *testing.T) {
		r := person(1, "Mr", "Jane", "Doe", "jane@example.com", now)
		r.Surname = str("  ")
		err := Validate(r)
		var fe *FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "surname", fe.Field)
	})

	t.Run("company requires company name", func(t *testing.T) {
		r := company(1, "ACME GmbH", "billing@acme.de", now)
		r.CompanyName = nil
		err := Validate(r)
		var fe *FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "company_name", fe.Field)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		r := person(1, "Mr", "Jane", "Doe", "jane@example.com", now)
		r.Type = "CLUB"
		assert.Error(t, Validate(r))
	})
}

func TestFindExactMatch(t *testing.T) {
	now := time.Now()
	pool := []model.InvoiceRecipient{
		person(1, "Mr", "Jane", "Doe", "jane@example.com", now),
		company(2, "ACME GmbH", "billing@acme.de", now),
	}

	t.Run("identical fields reuse the existing row", func(t *testing.T) {
		cand := person(0, "Mr", "Jane", "Doe", "jane@example.com", now)
		match := FindExactMatch(pool, cand)
		require.NotNil(t, match)
		assert.Equal(t, 1, match.ID)
	})

	t.Run("equality is case-sensitive", func(t *testing.T) {
		cand := person(0, "Mr", "jane", "Doe", "jane@example.com", now)
		assert.Nil(t, FindExactMatch(pool, cand))
	})

	t.Run("any differing field means no match", func(t *testing.T) {
		cand := person(0, "Mr", "Jane", "Doe", "jane@example.com", now)
		cand.PostalCode = "10117"
		assert.Nil(t, FindExactMatch(pool, cand))
	})

	t.Run("nil and empty string are distinct", func(t *testing.T) {
		cand := person(0, "Mr", "Jane", "Doe", "jane@example.com", now)
		cand.Salutation = nil
		assert.Nil(t, FindExactMatch(pool, cand))
	})
}

func TestDedupeForDisplay(t *testing.T) {
	t.Run("keeps the most recently created row per key", func(t *testing.T) {
		old := person(1, "Mr", "Jane", "Doe", "old@example.com", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
		recent := person(2, "Mr", "Jane", "Doe", "new@example.com", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

		out := DedupeForDisplay([]model.InvoiceRecipient{old, recent})
		require.Len(t, out, 1)
		assert.Equal(t, 2, out[0].ID)
	})

	t.Run("keys are normalized case-insensitively", func(t *testing.T) {
		a := company(1, "ACME GmbH", "a@acme.de", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
		b := company(2, "  acme gmbh ", "b@acme.de", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

		out := DedupeForDisplay([]model.InvoiceRecipient{a, b})
		require.Len(t, out, 1)
		assert.Equal(t, 2, out[0].ID)
	})

	t.Run("empty names fall back to the row id", func(t *testing.T) {
		a := model.InvoiceRecipient{ID: 1, Type: model.RecipientTypePerson}
		b := model.InvoiceRecipient{ID: 2, Type: model.RecipientTypePerson}
		out := DedupeForDisplay([]model.InvoiceRecipient{a, b})
		assert.Len(t, out, 2)
	})

	t.Run("result is newest first", func(t *testing.T) {
		a := person(1, "Mr", "Jane", "Doe", "a@x.de", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
		b := company(2, "ACME GmbH", "b@acme.de", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		out := DedupeForDisplay([]model.InvoiceRecipient{a, b})
		require.Len(t, out, 2)
		assert.Equal(t, 2, out[0].ID)
	})
}

func TestExcludeCourseParticipants(t *testing.T) {
	participants := []model.Participant{
		{ID: 7, Name: "Jane", Surname: "Doe", Email: "jane@example.com"},
	}

	t.Run("linked person recipients are excluded", func(t *testing.T) {
		r := person(1, "Mr", "Max", "Muster", "max@example.com", time.Now())
		linked := 7
		r.ParticipantID = &linked
		out := ExcludeCourseParticipants([]model.InvoiceRecipient{r}, participants)
		assert.Empty(t, out)
	})

	t.Run("field-identical person recipients are excluded", func(t *testing.T) {
		r := person(1, "Ms", "Jane", "Doe", "jane@example.com", time.Now())
		out := ExcludeCourseParticipants([]model.InvoiceRecipient{r}, participants)
		assert.Empty(t, out)
	})

	t.Run("unrelated persons pass", func(t *testing.T) {
		r := person(1, "Mr", "Max", "Muster", "max@example.com", time.Now())
		out := ExcludeCourseParticipants([]model.InvoiceRecipient{r}, participants)
		assert.Len(t, out, 1)
	})

	t.Run("companies are never excluded", func(t *testing.T) {
		c := company(1, "ACME GmbH", "jane@example.com", time.Now())
		out := ExcludeCourseParticipants([]model.InvoiceRecipient{c}, participants)
		assert.Len(t, out, 1)
	})
}
