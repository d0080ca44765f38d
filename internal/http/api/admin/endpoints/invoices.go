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

type InvoiceController struct {
	store db.Store
}

func NewInvoiceController(store db.Store) *InvoiceController {
	return &InvoiceController{store: store}
}

func InvoiceModule(store db.Store) api.Module {
	ctl := NewInvoiceController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/invoices", ctl.listInvoices)
		c.GET("/invoices/:id", ctl.getInvoice)
		c.POST("/invoices", ctl.createInvoice)
		c.PUT("/invoices/:id/status", ctl.updateInvoiceStatus)
		c.DELETE("/invoices/:id", ctl.deleteInvoice)
	})
}

func (ic *InvoiceController) listInvoices(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var status *string
	if raw := ctx.Query("status"); raw != "" {
		status = &raw
	}

	list, err := ic.store.ListInvoices(status)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list invoices"}
	}
	return list, nil
}

func (ic *InvoiceController) getInvoice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	invoice, err := ic.store.GetInvoiceByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "invoice not found"}
	}
	return invoice, nil
}

// createInvoice bills the registration's attached recipient. Without one
// the participant pays for themselves: their data becomes a PERSON
// recipient, reusing an identical existing row where possible.
func (ic *InvoiceController) createInvoice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateInvoiceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	registration, err := ic.store.GetRegistrationByID(request.RegistrationID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "registration not found"}
	}

	recipientID, apiErr := ic.resolveBillingTarget(registration)
	if apiErr != nil {
		return nil, apiErr
	}

	invoice, err := ic.store.CreateInvoice(registration.ID, recipientID, request.InvoiceNumber, request.AmountCents, request.DueDate)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create invoice"}
	}
	return invoice, nil
}

func (ic *InvoiceController) resolveBillingTarget(registration model.CourseRegistration) (int, *api.APIError) {
	if registration.InvoiceRecipientID != nil {
		if _, err := ic.store.GetInvoiceRecipientByID(*registration.InvoiceRecipientID); err != nil {
			return 0, &api.APIError{Code: http.StatusNotFound, Message: "attached recipient not found"}
		}
		return *registration.InvoiceRecipientID, nil
	}

	participant, err := ic.store.GetParticipantByID(registration.ParticipantID)
	if err != nil {
		return 0, &api.APIError{Code: http.StatusNotFound, Message: "participant not found"}
	}

	candidate := model.InvoiceRecipient{
		Type:          model.RecipientTypePerson,
		Name:          &participant.Name,
		Surname:       &participant.Surname,
		Email:         participant.Email,
		Street:        participant.Street,
		PostalCode:    participant.PostalCode,
		City:          participant.City,
		Country:       participant.Country,
		ParticipantID: &participant.ID,
	}
	if err := billing.Validate(candidate); err != nil {
		return 0, &api.APIError{Code: http.StatusBadRequest, Message: "participant address is incomplete: " + err.Error()}
	}

	pool, err := ic.store.ListInvoiceRecipients()
	if err != nil {
		return 0, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load recipients"}
	}
	if existing := billing.FindExactMatch(pool, candidate); existing != nil {
		return existing.ID, nil
	}

	created, err := ic.store.CreateInvoiceRecipient(candidate)
	if err != nil {
		return 0, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create recipient"}
	}
	return created.ID, nil
}

func (ic *InvoiceController) updateInvoiceStatus(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateInvoiceStatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	invoice, err := ic.store.UpdateInvoiceStatus(id, request.Status)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "invoice not found"}
	}
	return invoice, nil
}

func (ic *InvoiceController) deleteInvoice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if _, err := ic.store.GetInvoiceByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "invoice not found"}
	}
	if err := ic.store.DeleteInvoice(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete invoice"}
	}
	return gin.H{"message": "deleted"}, nil
}
