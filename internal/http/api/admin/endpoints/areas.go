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

type AreaController struct {
	store db.Store
}

func NewAreaController(store db.Store) *AreaController {
	return &AreaController{store: store}
}

func AreaModule(store db.Store) api.Module {
	ctl := NewAreaController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/areas", ctl.listAreas)
		c.GET("/areas/:id", ctl.getArea)
		c.POST("/areas", ctl.createArea)
		c.PUT("/areas/:id", ctl.updateArea)
		c.DELETE("/areas/:id", ctl.deleteArea)
	})
}

func (a *AreaController) listAreas(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := a.store.ListAreas()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list areas"}
	}
	return list, nil
}

func (a *AreaController) getArea(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	area, err := a.store.GetAreaByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "area not found"}
	}
	return area, nil
}

func (a *AreaController) createArea(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateAreaRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	area, err := a.store.CreateArea(request.Name, request.Description)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create area"}
	}
	return area, nil
}

func (a *AreaController) updateArea(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateAreaRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	area, err := a.store.UpdateArea(id, request.Name, request.Description)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "area not found"}
	}
	return area, nil
}

func (a *AreaController) deleteArea(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if _, err := a.store.GetAreaByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "area not found"}
	}
	if err := a.store.DeleteArea(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete area"}
	}
	return gin.H{"message": "deleted"}, nil
}
