package endpoints

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bildungswerk/kursbuero/internal/db"
	"github.com/bildungswerk/kursbuero/internal/http/api"
	"github.com/bildungswerk/kursbuero/internal/http/api/admin/packets"
	"github.com/bildungswerk/kursbuero/internal/model"
	"github.com/bildungswerk/kursbuero/internal/mqtt"
	"github.com/bildungswerk/kursbuero/internal/redis"
	"github.com/bildungswerk/kursbuero/internal/schedule"
)

type ScheduleController struct {
	store db.Store
}

func NewScheduleController(store db.Store) *ScheduleController {
	return &ScheduleController{store: store}
}

func ScheduleModule(store db.Store) api.Module {
	ctl := NewScheduleController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUT("/courses/:id/rhythms", ctl.upsertRhythm)
		c.GET("/courses/:id/rhythms", ctl.listRhythms)
		c.DELETE("/courses/:id/rhythms/:weekday", ctl.deleteRhythm)

		c.POST("/courses/:id/holidays", ctl.createCourseHoliday)
		c.GET("/courses/:id/holidays", ctl.listCourseHolidays)
		c.DELETE("/courses/:id/holidays/:holiday_id", ctl.deleteCourseHoliday)

		c.POST("/holidays", ctl.createGlobalHoliday)
		c.GET("/holidays", ctl.listGlobalHolidays)
		c.DELETE("/holidays/:id", ctl.deleteGlobalHoliday)

		c.POST("/courses/:id/special-days", ctl.createSpecialDay)
		c.GET("/courses/:id/special-days", ctl.listSpecialDays)
		c.DELETE("/courses/:id/special-days/:special_id", ctl.deleteSpecialDay)

		c.GET("/courses/:id/occurrences", ctl.listOccurrences)
	})
}

// courseOccurrences loads a course's active schedule rows and expands
// them into concrete sessions for the given range.
func courseOccurrences(store db.Store, courseID int, from, to time.Time) ([]schedule.Occurrence, error) {
	rhythms, err := store.ListWeeklyRhythms(courseID)
	if err != nil {
		return nil, err
	}
	courseHolidays, err := store.ListCourseHolidays(courseID)
	if err != nil {
		return nil, err
	}
	globalHolidays, err := store.ListGlobalHolidays()
	if err != nil {
		return nil, err
	}
	specialDays, err := store.ListSpecialDays(courseID)
	if err != nil {
		return nil, err
	}

	in := schedule.Input{From: from, To: to}
	for _, r := range rhythms {
		in.Rhythms = append(in.Rhythms, schedule.Rhythm{
			Weekday: time.Weekday(r.Weekday),
			Start:   schedule.FromMinutes(r.StartMinutes),
			End:     schedule.FromMinutes(r.EndMinutes),
			Pause:   time.Duration(r.PauseMinutes) * time.Minute,
		})
	}
	for _, h := range courseHolidays {
		in.CourseHolidays = append(in.CourseHolidays, h.Date)
	}
	for _, h := range globalHolidays {
		in.GlobalHolidays = append(in.GlobalHolidays, h.Date)
	}
	for _, sd := range specialDays {
		in.SpecialDays = append(in.SpecialDays, schedule.SpecialDay{
			Start: sd.Start,
			End:   sd.End,
			Pause: time.Duration(sd.PauseMinutes) * time.Minute,
			Title: sd.Title,
		})
	}
	return schedule.Expand(in)
}

// afterScheduleChange drops the course's cached ranges and pushes the
// recomputed plan to its display boards.
func (sc *ScheduleController) afterScheduleChange(ctx *gin.Context, course model.Course) {
	redis.InvalidateCourse(ctx, course.ID)

	occs, err := courseOccurrences(sc.store, course.ID, course.StartDate, course.EndDate)
	if err != nil {
		log.Warn().Err(err).Int("course_id", course.ID).Msg("skipping schedule broadcast")
		return
	}
	mqtt.PublishCourseSchedule(course.ID, occs)
}

func (sc *ScheduleController) upsertRhythm(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpsertRhythmRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	start, err := schedule.ParseTimeOfDay(request.Start)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid start time"}
	}
	end, err := schedule.ParseTimeOfDay(request.End)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid end time"}
	}
	if !start.Before(end) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "end must be after start"}
	}

	course, err := sc.store.GetCourseByID(courseID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "course not found"}
	}

	rhythm, err := sc.store.UpsertWeeklyRhythm(courseID, *request.Weekday, start.Minutes(), end.Minutes(), request.PauseMinutes)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save rhythm"}
	}

	sc.afterScheduleChange(ctx, course)
	return packets.NewRhythmResponse(rhythm), nil
}

func (sc *ScheduleController) listRhythms(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	rhythms, err := sc.store.ListWeeklyRhythms(courseID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list rhythms"}
	}
	out := make([]packets.RhythmResponse, 0, len(rhythms))
	for _, r := range rhythms {
		out = append(out, packets.NewRhythmResponse(r))
	}
	return out, nil
}

func (sc *ScheduleController) deleteRhythm(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	weekday, err := strconv.Atoi(ctx.Param("weekday"))
	if err != nil || weekday < 0 || weekday > 6 {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid weekday"}
	}

	course, err := sc.store.GetCourseByID(courseID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "course not found"}
	}
	if err := sc.store.DeleteWeeklyRhythm(courseID, weekday); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete rhythm"}
	}

	sc.afterScheduleChange(ctx, course)
	return gin.H{"message": "deleted"}, nil
}

func (sc *ScheduleController) createCourseHoliday(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.CreateHolidayRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	course, err := sc.store.GetCourseByID(courseID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "course not found"}
	}

	holiday, err := sc.store.CreateCourseHoliday(courseID, request.Date, request.Title)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create holiday"}
	}

	sc.afterScheduleChange(ctx, course)
	return holiday, nil
}

func (sc *ScheduleController) listCourseHolidays(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	holidays, err := sc.store.ListCourseHolidays(courseID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list holidays"}
	}
	return holidays, nil
}

func (sc *ScheduleController) deleteCourseHoliday(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	holidayID, err := strconv.Atoi(ctx.Param("holiday_id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid holiday id"}
	}

	course, err := sc.store.GetCourseByID(courseID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "course not found"}
	}
	if err := sc.store.DeleteCourseHoliday(holidayID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete holiday"}
	}

	sc.afterScheduleChange(ctx, course)
	return gin.H{"message": "deleted"}, nil
}

func (sc *ScheduleController) createGlobalHoliday(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateHolidayRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	holiday, err := sc.store.CreateGlobalHoliday(request.Date, request.Title)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create holiday"}
	}

	// a global date affects every course's calendar
	redis.InvalidateAll(ctx)
	return holiday, nil
}

func (sc *ScheduleController) listGlobalHolidays(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	holidays, err := sc.store.ListGlobalHolidays()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list holidays"}
	}
	return holidays, nil
}

func (sc *ScheduleController) deleteGlobalHoliday(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if err := sc.store.DeleteGlobalHoliday(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete holiday"}
	}

	redis.InvalidateAll(ctx)
	return gin.H{"message": "deleted"}, nil
}

func (sc *ScheduleController) createSpecialDay(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.CreateSpecialDayRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if !request.End.After(request.Start) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "end must be after start"}
	}

	course, err := sc.store.GetCourseByID(courseID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "course not found"}
	}

	specialDay, err := sc.store.CreateSpecialDay(courseID, request.Start, request.End, request.PauseMinutes, request.Title)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateSpecialDay) {
			return nil, &api.APIError{Code: http.StatusConflict, Message: "a special day already exists at this start time"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create special day"}
	}

	sc.afterScheduleChange(ctx, course)
	return specialDay, nil
}

func (sc *ScheduleController) listSpecialDays(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	specialDays, err := sc.store.ListSpecialDays(courseID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list special days"}
	}
	return specialDays, nil
}

func (sc *ScheduleController) deleteSpecialDay(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	specialID, err := strconv.Atoi(ctx.Param("special_id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid special day id"}
	}

	course, err := sc.store.GetCourseByID(courseID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "course not found"}
	}
	if err := sc.store.DeleteSpecialDay(specialID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete special day"}
	}

	sc.afterScheduleChange(ctx, course)
	return gin.H{"message": "deleted"}, nil
}

func (sc *ScheduleController) listOccurrences(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var query packets.ListOccurrencesQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	course, err := sc.store.GetCourseByID(courseID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "course not found"}
	}

	from := course.StartDate
	to := course.EndDate
	if query.From != nil {
		from = *query.From
	}
	if query.To != nil {
		to = *query.To
	}

	if cached, ok := redis.GetOccurrences(ctx, courseID, from, to); ok {
		return packets.NewOccurrenceResponses(cached), nil
	}

	occs, err := courseOccurrences(sc.store, courseID, from, to)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidRange) {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "to must not be before from"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to expand occurrences"}
	}

	redis.SetOccurrences(ctx, courseID, from, to, occs)
	return packets.NewOccurrenceResponses(occs), nil
}
