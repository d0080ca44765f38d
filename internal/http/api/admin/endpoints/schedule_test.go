package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bildungswerk/kursbuero/internal/db"
	"github.com/bildungswerk/kursbuero/internal/http/api"
	"github.com/bildungswerk/kursbuero/internal/http/api/admin/packets"
	"github.com/bildungswerk/kursbuero/internal/model"
)

// mockStore overrides the store methods the handlers under test touch;
// everything else panics through the embedded nil interface.
type mockStore struct {
	db.Store

	course         model.Course
	rhythms        []model.WeeklyRhythm
	courseHolidays []model.CourseHoliday
	globalHolidays []model.GlobalHoliday
	specialDays    []model.CourseSpecialDay

	recipients   []model.InvoiceRecipient
	participants []model.Participant
	created      []model.InvoiceRecipient

	lastUpsert *model.WeeklyRhythm
}

func (m *mockStore) GetCourseByID(id int) (model.Course, error) {
	return m.course, nil
}

func (m *mockStore) UpsertWeeklyRhythm(courseID, weekday, startMinutes, endMinutes, pauseMinutes int) (model.WeeklyRhythm, error) {
	r := model.WeeklyRhythm{
		ID:           1,
		CourseID:     courseID,
		Weekday:      weekday,
		StartMinutes: startMinutes,
		EndMinutes:   endMinutes,
		PauseMinutes: pauseMinutes,
	}
	m.lastUpsert = &r
	return r, nil
}

func (m *mockStore) ListWeeklyRhythms(courseID int) ([]model.WeeklyRhythm, error) {
	return m.rhythms, nil
}

func (m *mockStore) ListCourseHolidays(courseID int) ([]model.CourseHoliday, error) {
	return m.courseHolidays, nil
}

func (m *mockStore) ListGlobalHolidays() ([]model.GlobalHoliday, error) {
	return m.globalHolidays, nil
}

func (m *mockStore) ListSpecialDays(courseID int) ([]model.CourseSpecialDay, error) {
	return m.specialDays, nil
}

func (m *mockStore) CreateSpecialDay(courseID int, start, end time.Time, pauseMinutes int, title string) (model.CourseSpecialDay, error) {
	for _, sd := range m.specialDays {
		if sd.CourseID == courseID && sd.Start.Equal(start) {
			return model.CourseSpecialDay{}, db.ErrDuplicateSpecialDay
		}
	}
	sd := model.CourseSpecialDay{ID: len(m.specialDays) + 1, CourseID: courseID, Start: start, End: end, PauseMinutes: pauseMinutes, Title: title}
	m.specialDays = append(m.specialDays, sd)
	return sd, nil
}

func (m *mockStore) ListInvoiceRecipients() ([]model.InvoiceRecipient, error) {
	return m.recipients, nil
}

func (m *mockStore) ListCourseParticipants(courseID int) ([]model.Participant, error) {
	return m.participants, nil
}

func (m *mockStore) CreateInvoiceRecipient(r model.InvoiceRecipient) (model.InvoiceRecipient, error) {
	r.ID = 1000 + len(m.created)
	r.CreatedAt = time.Now()
	m.created = append(m.created, r)
	return r, nil
}

func newTestRouter(store db.Store, modules ...api.Module) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Middleware: []gin.HandlerFunc{func(c *gin.Context) {
			c.Set("currentUser", &model.User{ID: 1, Email: "admin@example.com"})
			c.Next()
		}},
	}, modules...)
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func putJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testCourse() model.Course {
	return model.Course{
		ID:        7,
		ProgramID: 1,
		Name:      "Deutsch B1",
		StartDate: date(2025, time.September, 1), // a Monday
		EndDate:   date(2025, time.September, 14),
	}
}

func TestUpsertRhythm(t *testing.T) {
	store := &mockStore{course: testCourse()}
	router := newTestRouter(store, ScheduleModule(store))

	weekday := 1
	w := putJSON(t, router, "/api/admin/courses/7/rhythms", packets.UpsertRhythmRequest{
		Weekday:      &weekday,
		Start:        "09:00",
		End:          "12:30",
		PauseMinutes: 15,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp packets.RhythmResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Weekday)
	assert.Equal(t, "09:00", resp.Start)
	assert.Equal(t, "12:30", resp.End)
	assert.Equal(t, 15, resp.PauseMinutes)

	require.NotNil(t, store.lastUpsert)
	assert.Equal(t, 540, store.lastUpsert.StartMinutes)
	assert.Equal(t, 750, store.lastUpsert.EndMinutes)
}

func TestUpsertRhythmRejectsBadTimes(t *testing.T) {
	store := &mockStore{course: testCourse()}
	router := newTestRouter(store, ScheduleModule(store))
	weekday := 2

	w := putJSON(t, router, "/api/admin/courses/7/rhythms", packets.UpsertRhythmRequest{
		Weekday: &weekday, Start: "25:00", End: "12:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = putJSON(t, router, "/api/admin/courses/7/rhythms", packets.UpsertRhythmRequest{
		Weekday: &weekday, Start: "12:00", End: "09:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSpecialDayDuplicateConflict(t *testing.T) {
	store := &mockStore{course: testCourse()}
	router := newTestRouter(store, ScheduleModule(store))

	start := time.Date(2025, time.September, 10, 18, 0, 0, 0, time.UTC)
	payload := packets.CreateSpecialDayRequest{
		Start: start,
		End:   start.Add(2 * time.Hour),
		Title: "Exkursion",
	}

	w := postJSON(t, router, "/api/admin/courses/7/special-days", payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// same course, same start must be rejected
	w = postJSON(t, router, "/api/admin/courses/7/special-days", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListOccurrences(t *testing.T) {
	store := &mockStore{
		course: testCourse(),
		rhythms: []model.WeeklyRhythm{
			{ID: 1, CourseID: 7, Weekday: 1, StartMinutes: 540, EndMinutes: 720, PauseMinutes: 30},
		},
		globalHolidays: []model.GlobalHoliday{
			{ID: 1, Date: date(2025, time.September, 8), Title: "Feiertag"},
		},
		specialDays: []model.CourseSpecialDay{
			{ID: 1, CourseID: 7, Start: time.Date(2025, time.September, 10, 18, 0, 0, 0, time.UTC), End: time.Date(2025, time.September, 10, 20, 0, 0, 0, time.UTC), Title: "Exkursion"},
		},
	}
	router := newTestRouter(store, ScheduleModule(store))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/courses/7/occurrences", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var occs []packets.OccurrenceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &occs))
	require.Len(t, occs, 2)

	// 2025-09-08 is a Monday but falls on the global holiday
	assert.Equal(t, "2025-09-01", occs[0].Date)
	assert.Equal(t, "rhythm", occs[0].Origin)
	assert.Equal(t, "09:00", occs[0].Start)
	assert.Equal(t, 30, occs[0].PauseMinutes)

	assert.Equal(t, "2025-09-10", occs[1].Date)
	assert.Equal(t, "special", occs[1].Origin)
	assert.Equal(t, "Exkursion", occs[1].Title)
}

func TestListOccurrencesRejectsReversedRange(t *testing.T) {
	store := &mockStore{course: testCourse()}
	router := newTestRouter(store, ScheduleModule(store))

	req := httptest.NewRequest(http.MethodGet,
		"/api/admin/courses/7/occurrences?from=2025-09-14T00:00:00Z&to=2025-09-01T00:00:00Z", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
