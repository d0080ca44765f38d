package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bildungswerk/kursbuero/internal/http/api/admin/packets"
	"github.com/bildungswerk/kursbuero/internal/model"
)

func str(s string) *string { return &s }

func personRecipient(id int, name, surname, email string, createdAt time.Time) model.InvoiceRecipient {
	return model.InvoiceRecipient{
		ID:         id,
		Type:       model.RecipientTypePerson,
		Name:       str(name),
		Surname:    str(surname),
		Email:      email,
		Street:     "Hauptstr. 1",
		PostalCode: "10115",
		City:       "Berlin",
		Country:    "DE",
		CreatedAt:  createdAt,
	}
}

func TestCreateRecipientReusesExactMatch(t *testing.T) {
	existing := personRecipient(42, "Erika", "Musterfrau", "erika@example.com", time.Now())
	store := &mockStore{recipients: []model.InvoiceRecipient{existing}}
	router := newTestRouter(store, RecipientModule(store))

	w := postJSON(t, router, "/api/admin/recipients", packets.RecipientBody{
		Type:       model.RecipientTypePerson,
		Name:       str("Erika"),
		Surname:    str("Musterfrau"),
		Email:      "erika@example.com",
		Street:     "Hauptstr. 1",
		PostalCode: "10115",
		City:       "Berlin",
		Country:    "DE",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp model.InvoiceRecipient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, existing.ID, resp.ID)
	assert.Empty(t, store.created, "an exact match must not insert a new row")
}

func TestCreateRecipientCaseSensitiveMatch(t *testing.T) {
	existing := personRecipient(42, "Erika", "Musterfrau", "erika@example.com", time.Now())
	store := &mockStore{recipients: []model.InvoiceRecipient{existing}}
	router := newTestRouter(store, RecipientModule(store))

	// differing case is a different recipient
	w := postJSON(t, router, "/api/admin/recipients", packets.RecipientBody{
		Type:       model.RecipientTypePerson,
		Name:       str("ERIKA"),
		Surname:    str("Musterfrau"),
		Email:      "erika@example.com",
		Street:     "Hauptstr. 1",
		PostalCode: "10115",
		City:       "Berlin",
		Country:    "DE",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp model.InvoiceRecipient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEqual(t, existing.ID, resp.ID)
	assert.Len(t, store.created, 1)
}

func TestCreateRecipientValidation(t *testing.T) {
	store := &mockStore{}
	router := newTestRouter(store, RecipientModule(store))

	// a company without a company name
	w := postJSON(t, router, "/api/admin/recipients", packets.RecipientBody{
		Type:       model.RecipientTypeCompany,
		Email:      "billing@example.com",
		Street:     "Hauptstr. 1",
		PostalCode: "10115",
		City:       "Berlin",
		Country:    "DE",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.created)
}

func TestListCandidatesHidesParticipantsAndDedupes(t *testing.T) {
	now := time.Now()
	participant := model.Participant{ID: 5, Name: "Max", Surname: "Mustermann", Email: "max@example.com"}

	self := personRecipient(1, "Max", "Mustermann", "max@example.com", now.Add(-3*time.Hour))
	olderEmployer := model.InvoiceRecipient{
		ID: 2, Type: model.RecipientTypeCompany, CompanyName: str("ACME GmbH"),
		Email: "old@acme.example", Street: "Werkstr. 2", PostalCode: "20095", City: "Hamburg", Country: "DE",
		CreatedAt: now.Add(-2 * time.Hour),
	}
	newerEmployer := model.InvoiceRecipient{
		ID: 3, Type: model.RecipientTypeCompany, CompanyName: str("acme gmbh"),
		Email: "billing@acme.example", Street: "Werkstr. 2", PostalCode: "20095", City: "Hamburg", Country: "DE",
		CreatedAt: now.Add(-1 * time.Hour),
	}

	store := &mockStore{
		course:       testCourse(),
		participants: []model.Participant{participant},
		recipients:   []model.InvoiceRecipient{self, olderEmployer, newerEmployer},
	}
	router := newTestRouter(store, RecipientModule(store))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/courses/7/recipients/candidates", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var candidates []model.InvoiceRecipient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &candidates))
	require.Len(t, candidates, 1)
	assert.Equal(t, newerEmployer.ID, candidates[0].ID)
}
