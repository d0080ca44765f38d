// Package docs renders participant-facing course documents. The rules
// sheet ("Kursregeln") lists every meeting date of a course, fed by the
// occurrence calculator so the document and the calendar never diverge.
package docs

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/bildungswerk/kursbuero/internal/model"
	"github.com/bildungswerk/kursbuero/internal/schedule"
)

type sessionLine struct {
	Date    string
	Start   string
	End     string
	Pause   string
	Special bool
	Title   string
}

type rulesData struct {
	CourseName  string
	Description string
	StartDate   string
	EndDate     string
	GeneratedAt string
	Sessions    []sessionLine
}

var rulesTmpl = template.Must(template.New("rules").Parse(`<!DOCTYPE html>
<html lang="de">
<head><meta charset="utf-8"><title>Kursregeln – {{.CourseName}}</title></head>
<body>
<h1>Kursregeln</h1>
<h2>{{.CourseName}}</h2>
{{if .Description}}<p>{{.Description}}</p>{{end}}
<p>Kurszeitraum: {{.StartDate}} – {{.EndDate}}</p>
<h3>Termine</h3>
<table>
<tr><th>Datum</th><th>Beginn</th><th>Ende</th><th>Pause</th><th></th></tr>
{{range .Sessions}}<tr><td>{{.Date}}</td><td>{{.Start}}</td><td>{{.End}}</td><td>{{.Pause}}</td><td>{{if .Special}}{{if .Title}}{{.Title}}{{else}}Sondertermin{{end}}{{end}}</td></tr>
{{end}}</table>
<p><small>Erstellt am {{.GeneratedAt}}</small></p>
</body>
</html>
`))

// RenderCourseRules produces the rules sheet for a course from the
// already-expanded occurrence list.
func RenderCourseRules(course model.Course, occs []schedule.Occurrence) ([]byte, error) {
	data := rulesData{
		CourseName:  course.Name,
		StartDate:   course.StartDate.Format("02.01.2006"),
		EndDate:     course.EndDate.Format("02.01.2006"),
		GeneratedAt: time.Now().Format("02.01.2006"),
	}
	if course.Description != nil {
		data.Description = *course.Description
	}

	for _, o := range occs {
		data.Sessions = append(data.Sessions, sessionLine{
			Date:    o.Date.Format("02.01.2006"),
			Start:   o.Start.Format("15:04"),
			End:     o.End.Format("15:04"),
			Pause:   formatPause(o.Pause),
			Special: o.Origin == schedule.OriginSpecial,
			Title:   o.Title,
		})
	}

	var buf bytes.Buffer
	if err := rulesTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render course rules: %w", err)
	}
	return buf.Bytes(), nil
}

func formatPause(d time.Duration) string {
	if d <= 0 {
		return "–"
	}
	return fmt.Sprintf("%d min", int(d.Minutes()))
}
