package packets

import (
	"github.com/bildungswerk/kursbuero/internal/model"
	"github.com/bildungswerk/kursbuero/internal/schedule"
)

// RhythmResponse mirrors model.WeeklyRhythm but formats the times of day.
type RhythmResponse struct {
	ID           int    `json:"id"`
	CourseID     int    `json:"course_id"`
	Weekday      int    `json:"weekday"`
	Start        string `json:"start"`
	End          string `json:"end"`
	PauseMinutes int    `json:"pause_minutes"`
}

func NewRhythmResponse(r model.WeeklyRhythm) RhythmResponse {
	return RhythmResponse{
		ID:           r.ID,
		CourseID:     r.CourseID,
		Weekday:      r.Weekday,
		Start:        schedule.FromMinutes(r.StartMinutes).String(),
		End:          schedule.FromMinutes(r.EndMinutes).String(),
		PauseMinutes: r.PauseMinutes,
	}
}

// OccurrenceResponse flattens a calculator occurrence for the calendar UI.
type OccurrenceResponse struct {
	Date         string `json:"date"`
	Start        string `json:"start"`
	End          string `json:"end"`
	PauseMinutes int    `json:"pause_minutes"`
	Origin       string `json:"origin"`
	Title        string `json:"title,omitempty"`
}

func NewOccurrenceResponse(o schedule.Occurrence) OccurrenceResponse {
	return OccurrenceResponse{
		Date:         o.Date.Format("2006-01-02"),
		Start:        o.Start.Format("15:04"),
		End:          o.End.Format("15:04"),
		PauseMinutes: int(o.Pause.Minutes()),
		Origin:       string(o.Origin),
		Title:        o.Title,
	}
}

func NewOccurrenceResponses(occs []schedule.Occurrence) []OccurrenceResponse {
	out := make([]OccurrenceResponse, 0, len(occs))
	for _, o := range occs {
		out = append(out, NewOccurrenceResponse(o))
	}
	return out
}
