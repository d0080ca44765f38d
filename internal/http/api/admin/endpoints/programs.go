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

type ProgramController struct {
	store db.Store
}

func NewProgramController(store db.Store) *ProgramController {
	return &ProgramController{store: store}
}

func ProgramModule(store db.Store) api.Module {
	ctl := NewProgramController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/programs", ctl.listPrograms)
		c.GET("/programs/:id", ctl.getProgram)
		c.POST("/programs", ctl.createProgram)
		c.PUT("/programs/:id", ctl.updateProgram)
		c.DELETE("/programs/:id", ctl.deleteProgram)
	})
}

// optionalIntQuery parses an optional ?key=<int> filter.
func optionalIntQuery(ctx *gin.Context, key string) (*int, *api.APIError) {
	raw := ctx.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid " + key}
	}
	return &v, nil
}

func (p *ProgramController) listPrograms(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	areaID, apiErr := optionalIntQuery(ctx, "area_id")
	if apiErr != nil {
		return nil, apiErr
	}

	list, err := p.store.ListPrograms(areaID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list programs"}
	}
	return list, nil
}

func (p *ProgramController) getProgram(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	program, err := p.store.GetProgramByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "program not found"}
	}
	return program, nil
}

func (p *ProgramController) createProgram(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateProgramRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := p.store.GetAreaByID(request.AreaID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "area not found"}
	}

	program, err := p.store.CreateProgram(request.AreaID, request.Name, request.Description)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create program"}
	}
	return program, nil
}

func (p *ProgramController) updateProgram(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateProgramRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	program, err := p.store.UpdateProgram(id, request.Name, request.Description)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "program not found"}
	}
	return program, nil
}

func (p *ProgramController) deleteProgram(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if _, err := p.store.GetProgramByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "program not found"}
	}
	if err := p.store.DeleteProgram(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete program"}
	}
	return gin.H{"message": "deleted"}, nil
}
