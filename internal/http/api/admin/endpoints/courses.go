package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bildungswerk/kursbuero/internal/db"
	"github.com/bildungswerk/kursbuero/internal/http/api"
	"github.com/bildungswerk/kursbuero/internal/http/api/admin/packets"
	"github.com/bildungswerk/kursbuero/internal/model"
)

type CourseController struct {
	store db.Store
}

func NewCourseController(store db.Store) *CourseController {
	return &CourseController{store: store}
}

func CourseModule(store db.Store) api.Module {
	ctl := NewCourseController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/courses", ctl.listCourses)
		c.GET("/courses/:id", ctl.getCourse)
		c.POST("/courses", ctl.createCourse)
		c.PUT("/courses/:id", ctl.updateCourse)
		c.DELETE("/courses/:id", ctl.deleteCourse)

		// course <-> trainer
		c.GET("/courses/:id/trainers", ctl.listCourseTrainers)
		c.POST("/courses/:id/trainers", ctl.assignTrainer)
		c.DELETE("/courses/:id/trainers/:trainer_id", ctl.unassignTrainer)

		c.GET("/courses/:id/participants", ctl.listCourseParticipants)
	})
}

func (cc *CourseController) listCourses(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	programID, apiErr := optionalIntQuery(ctx, "program_id")
	if apiErr != nil {
		return nil, apiErr
	}

	list, err := cc.store.ListCourses(programID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list courses"}
	}
	return list, nil
}

func (cc *CourseController) getCourse(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	course, err := cc.store.GetCourseByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "course not found"}
	}
	return course, nil
}

func (cc *CourseController) createCourse(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if !request.EndDate.After(request.StartDate) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "end_date must be after start_date"}
	}

	if _, err := cc.store.GetProgramByID(request.ProgramID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "program not found"}
	}

	course, err := cc.store.CreateCourse(
		request.ProgramID, request.Name, request.Description,
		request.StartDate, request.EndDate, request.PriceCents,
	)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create course"}
	}
	return course, nil
}

func (cc *CourseController) updateCourse(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	course, err := cc.store.UpdateCourse(id, request.Name, request.Description, request.StartDate, request.EndDate, request.PriceCents)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "course not found"}
	}
	return course, nil
}

func (cc *CourseController) deleteCourse(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if _, err := cc.store.GetCourseByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "course not found"}
	}
	if err := cc.store.DeleteCourse(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete course"}
	}
	return gin.H{"message": "deleted"}, nil
}

func (cc *CourseController) listCourseTrainers(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	trainers, err := cc.store.ListCourseTrainers(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list course trainers"}
	}
	return trainers, nil
}

func (cc *CourseController) assignTrainer(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid course id"}
	}

	var request packets.AssignTrainerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := cc.store.GetCourseByID(courseID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "course not found"}
	}
	if _, err := cc.store.GetTrainerByID(request.TrainerID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "trainer not found"}
	}

	if err := cc.store.AssignTrainerToCourse(courseID, request.TrainerID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not assign trainer"}
	}
	return gin.H{"message": "assigned"}, nil
}

func (cc *CourseController) unassignTrainer(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid course id"}
	}
	trainerID, err := strconv.Atoi(ctx.Param("trainer_id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid trainer id"}
	}

	if err := cc.store.UnassignTrainerFromCourse(courseID, trainerID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not unassign trainer"}
	}
	return gin.H{"message": "unassigned"}, nil
}

func (cc *CourseController) listCourseParticipants(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	participants, err := cc.store.ListCourseParticipants(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list course participants"}
	}
	return participants, nil
}
