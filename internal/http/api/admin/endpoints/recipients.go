package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bildungswerk/kursbuero/internal/billing"
	"github.com/bildungswerk/kursbuero/internal/db"
	"github.com/bildungswerk/kursbuero/internal/http/api"
	"github.com/bildungswerk/kursbuero/internal/http/api/admin/packets"
	"github.com/bildungswerk/kursbuero/internal/model"
)

type RecipientController struct {
	store db.Store
}

func NewRecipientController(store db.Store) *RecipientController {
	return &RecipientController{store: store}
}

func RecipientModule(store db.Store) api.Module {
	ctl := NewRecipientController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/recipients", ctl.listRecipients)
		c.GET("/recipients/:id", ctl.getRecipient)
		c.POST("/recipients", ctl.createRecipient)
		c.DELETE("/recipients/:id", ctl.deleteRecipient)

		// selectable billing targets for a course, participants hidden
		c.GET("/courses/:id/recipients/candidates", ctl.listCandidates)
	})
}

func recipientFromBody(b packets.RecipientBody) model.InvoiceRecipient {
	return model.InvoiceRecipient{
		Type:          b.Type,
		Salutation:    b.Salutation,
		Name:          b.Name,
		Surname:       b.Surname,
		CompanyName:   b.CompanyName,
		Email:         b.Email,
		Street:        b.Street,
		PostalCode:    b.PostalCode,
		City:          b.City,
		Country:       b.Country,
		ParticipantID: b.ParticipantID,
	}
}

// resolveRecipient validates the candidate and either reuses a
// structurally identical existing row or inserts a new one.
func resolveRecipient(store db.Store, body packets.RecipientBody) (model.InvoiceRecipient, *api.APIError) {
	candidate := recipientFromBody(body)
	if err := billing.Validate(candidate); err != nil {
		return model.InvoiceRecipient{}, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	pool, err := store.ListInvoiceRecipients()
	if err != nil {
		return model.InvoiceRecipient{}, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load recipients"}
	}
	if existing := billing.FindExactMatch(pool, candidate); existing != nil {
		return *existing, nil
	}

	created, err := store.CreateInvoiceRecipient(candidate)
	if err != nil {
		return model.InvoiceRecipient{}, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create recipient"}
	}
	return created, nil
}

func (rc *RecipientController) listRecipients(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := rc.store.ListInvoiceRecipients()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list recipients"}
	}
	return list, nil
}

func (rc *RecipientController) getRecipient(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	recipient, err := rc.store.GetInvoiceRecipientByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "recipient not found"}
	}
	return recipient, nil
}

func (rc *RecipientController) createRecipient(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var body packets.RecipientBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	recipient, apiErr := resolveRecipient(rc.store, body)
	if apiErr != nil {
		return nil, apiErr
	}
	return recipient, nil
}

func (rc *RecipientController) deleteRecipient(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if _, err := rc.store.GetInvoiceRecipientByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "recipient not found"}
	}
	if err := rc.store.DeleteInvoiceRecipient(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete recipient"}
	}
	return gin.H{"message": "deleted"}, nil
}

func (rc *RecipientController) listCandidates(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if _, err := rc.store.GetCourseByID(courseID); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "course not found"}
	}

	pool, err := rc.store.ListInvoiceRecipients()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load recipients"}
	}
	participants, err := rc.store.ListCourseParticipants(courseID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load course participants"}
	}

	candidates := billing.ExcludeCourseParticipants(pool, participants)
	return billing.DedupeForDisplay(candidates), nil
}
