package docs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bildungswerk/kursbuero/internal/model"
	"github.com/bildungswerk/kursbuero/internal/schedule"
)

func TestRenderCourseRules(t *testing.T) {
	desc := "Abendkurs"
	course := model.Course{
		Name:        "Deutsch B1",
		Description: &desc,
		StartDate:   time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC),
	}
	occs := []schedule.Occurrence{
		{
			Date:   time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
			Start:  time.Date(2025, time.September, 1, 18, 0, 0, 0, time.UTC),
			End:    time.Date(2025, time.September, 1, 20, 30, 0, 0, time.UTC),
			Pause:  15 * time.Minute,
			Origin: schedule.OriginRhythm,
		},
		{
			Date:   time.Date(2025, time.September, 6, 0, 0, 0, 0, time.UTC),
			Start:  time.Date(2025, time.September, 6, 10, 0, 0, 0, time.UTC),
			End:    time.Date(2025, time.September, 6, 16, 0, 0, 0, time.UTC),
			Origin: schedule.OriginSpecial,
			Title:  "Exkursion",
		},
	}

	out, err := RenderCourseRules(course, occs)
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "Deutsch B1")
	assert.Contains(t, html, "Abendkurs")
	assert.Contains(t, html, "01.09.2025")
	assert.Contains(t, html, "18:00")
	assert.Contains(t, html, "15 min")
	assert.Contains(t, html, "Exkursion")
	assert.Contains(t, html, "01.09.2025 – 15.12.2025")
}

func TestRenderCourseRulesNoSessions(t *testing.T) {
	course := model.Course{
		Name:      "Yoga",
		StartDate: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC),
	}
	out, err := RenderCourseRules(course, nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Yoga")
}
