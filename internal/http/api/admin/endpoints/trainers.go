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

type TrainerController struct {
	store db.Store
}

func NewTrainerController(store db.Store) *TrainerController {
	return &TrainerController{store: store}
}

func TrainerModule(store db.Store) api.Module {
	ctl := NewTrainerController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/trainers", ctl.listTrainers)
		c.GET("/trainers/:id", ctl.getTrainer)
		c.POST("/trainers", ctl.createTrainer)
		c.PUT("/trainers/:id", ctl.updateTrainer)
		c.DELETE("/trainers/:id", ctl.deleteTrainer)
	})
}

func (t *TrainerController) listTrainers(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := t.store.ListTrainers()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list trainers"}
	}
	return list, nil
}

func (t *TrainerController) getTrainer(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	trainer, err := t.store.GetTrainerByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "trainer not found"}
	}
	return trainer, nil
}

func (t *TrainerController) createTrainer(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateTrainerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	trainer, err := t.store.CreateTrainer(request.Name, request.Surname, request.Email, request.Phone)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create trainer"}
	}
	return trainer, nil
}

func (t *TrainerController) updateTrainer(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateTrainerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	trainer, err := t.store.UpdateTrainer(id, request.Name, request.Surname, request.Email, request.Phone)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "trainer not found"}
	}
	return trainer, nil
}

func (t *TrainerController) deleteTrainer(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if _, err := t.store.GetTrainerByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "trainer not found"}
	}
	if err := t.store.DeleteTrainer(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete trainer"}
	}
	return gin.H{"message": "deleted"}, nil
}
