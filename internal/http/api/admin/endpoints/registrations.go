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

type RegistrationController struct {
	store db.Store
}

func NewRegistrationController(store db.Store) *RegistrationController {
	return &RegistrationController{store: store}
}

func RegistrationModule(store db.Store) api.Module {
	ctl := NewRegistrationController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/registrations", ctl.listRegistrations)
		c.GET("/registrations/:id", ctl.getRegistration)
		c.POST("/registrations", ctl.createRegistration)
		c.DELETE("/registrations/:id", ctl.deleteRegistration)

		c.PUT("/registrations/:id/recipient", ctl.attachRecipient)
		c.DELETE("/registrations/:id/recipient", ctl.detachRecipient)
	})
}

func (rg *RegistrationController) listRegistrations(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	courseID, apiErr := optionalIntQuery(ctx, "course_id")
	if apiErr != nil {
		return nil, apiErr
	}

	list, err := rg.store.ListRegistrations(courseID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list registrations"}
	}
	return list, nil
}

func (rg *RegistrationController) getRegistration(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	registration, err := rg.store.GetRegistrationByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "registration not found"}
	}
	return registration, nil
}

func (rg *RegistrationController) createRegistration(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateRegistrationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := rg.store.GetCourseByID(request.CourseID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "course not found"}
	}
	if _, err := rg.store.GetParticipantByID(request.ParticipantID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "participant not found"}
	}

	registration, err := rg.store.CreateRegistration(request.CourseID, request.ParticipantID, request.Notes)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create registration"}
	}
	return registration, nil
}

func (rg *RegistrationController) deleteRegistration(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if _, err := rg.store.GetRegistrationByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "registration not found"}
	}
	if err := rg.store.DeleteRegistration(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete registration"}
	}
	return gin.H{"message": "deleted"}, nil
}

// attachRecipient binds a billing party to the registration, either by id
// or from a full candidate that is matched against the existing pool
// before anything is inserted.
func (rg *RegistrationController) attachRecipient(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.AttachRecipientRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if request.RecipientID == nil && request.Recipient == nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "recipient_id or recipient is required"}
	}

	if _, err := rg.store.GetRegistrationByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "registration not found"}
	}

	var recipient model.InvoiceRecipient
	if request.RecipientID != nil {
		recipient, err = rg.store.GetInvoiceRecipientByID(*request.RecipientID)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "recipient not found"}
		}
	} else {
		var apiErr *api.APIError
		recipient, apiErr = resolveRecipient(rg.store, *request.Recipient)
		if apiErr != nil {
			return nil, apiErr
		}
	}

	if err := rg.store.AttachInvoiceRecipient(id, recipient.ID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not attach recipient"}
	}
	return recipient, nil
}

// detachRecipient clears the billing party; the participant pays for
// themselves again. The recipient row itself is kept.
func (rg *RegistrationController) detachRecipient(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if _, err := rg.store.GetRegistrationByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "registration not found"}
	}
	if err := rg.store.DetachInvoiceRecipient(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not detach recipient"}
	}
	return gin.H{"message": "detached"}, nil
}
