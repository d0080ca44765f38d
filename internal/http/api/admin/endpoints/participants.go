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

type ParticipantController struct {
	store db.Store
}

func NewParticipantController(store db.Store) *ParticipantController {
	return &ParticipantController{store: store}
}

func ParticipantModule(store db.Store) api.Module {
	ctl := NewParticipantController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/participants", ctl.listParticipants)
		c.GET("/participants/:id", ctl.getParticipant)
		c.POST("/participants", ctl.createParticipant)
		c.PUT("/participants/:id", ctl.updateParticipant)
		c.DELETE("/participants/:id", ctl.deleteParticipant)
	})
}

func participantFromRequest(r packets.CreateParticipantRequest) model.Participant {
	return model.Participant{
		Name:       r.Name,
		Surname:    r.Surname,
		Email:      r.Email,
		Phone:      r.Phone,
		Street:     r.Street,
		PostalCode: r.PostalCode,
		City:       r.City,
		Country:    r.Country,
	}
}

func (p *ParticipantController) listParticipants(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := p.store.ListParticipants()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list participants"}
	}
	return list, nil
}

func (p *ParticipantController) getParticipant(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	participant, err := p.store.GetParticipantByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "participant not found"}
	}
	return participant, nil
}

func (p *ParticipantController) createParticipant(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateParticipantRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	participant, err := p.store.CreateParticipant(participantFromRequest(request))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create participant"}
	}
	return participant, nil
}

func (p *ParticipantController) updateParticipant(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.CreateParticipantRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	participant, err := p.store.UpdateParticipant(id, participantFromRequest(request))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "participant not found"}
	}
	return participant, nil
}

func (p *ParticipantController) deleteParticipant(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if _, err := p.store.GetParticipantByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "participant not found"}
	}
	if err := p.store.DeleteParticipant(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete participant"}
	}
	return gin.H{"message": "deleted"}, nil
}
