package endpoints

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bildungswerk/kursbuero/internal/db"
	"github.com/bildungswerk/kursbuero/internal/docs"
	"github.com/bildungswerk/kursbuero/internal/http/api"
	"github.com/bildungswerk/kursbuero/internal/model"
	"github.com/bildungswerk/kursbuero/internal/storage"
)

type DocumentController struct {
	store db.Store
	files storage.Storage
}

func NewDocumentController(store db.Store, files storage.Storage) *DocumentController {
	return &DocumentController{store: store, files: files}
}

func DocumentModule(store db.Store, files storage.Storage) api.Module {
	ctl := NewDocumentController(store, files)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/documents", ctl.listDocuments)
		c.GET("/documents/:id", ctl.getDocument)
		c.POST("/documents", ctl.uploadDocument)
		c.DELETE("/documents/:id", ctl.deleteDocument)

		c.POST("/courses/:id/documents/rules", ctl.generateCourseRules)
	})
}

func (dc *DocumentController) listDocuments(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	courseID, apiErr := optionalIntQuery(ctx, "course_id")
	if apiErr != nil {
		return nil, apiErr
	}

	list, err := dc.store.ListDocuments(courseID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list documents"}
	}
	return list, nil
}

func (dc *DocumentController) getDocument(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	document, err := dc.store.GetDocumentByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "document not found"}
	}
	return document, nil
}

func (dc *DocumentController) uploadDocument(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "file is required"}
	}

	var courseID *int
	if raw := ctx.PostForm("course_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid course_id"}
		}
		if _, err := dc.store.GetCourseByID(id); err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "course not found"}
		}
		courseID = &id
	}

	path, err := dc.files.SaveFile(fileHeader, fileHeader.Filename)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store file"}
	}

	contentType := fileHeader.Header.Get("Content-Type")
	document, err := dc.store.CreateDocument(courseID, fileHeader.Filename, path, contentType)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create document"}
	}
	return document, nil
}

func (dc *DocumentController) deleteDocument(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if _, err := dc.store.GetDocumentByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "document not found"}
	}
	if err := dc.store.DeleteDocument(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete document"}
	}
	return gin.H{"message": "deleted"}, nil
}

// generateCourseRules renders the rules sheet from the course's current
// schedule, stores it, and records it as a course document.
func (dc *DocumentController) generateCourseRules(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	course, err := dc.store.GetCourseByID(courseID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "course not found"}
	}

	occs, err := courseOccurrences(dc.store, courseID, course.StartDate, course.EndDate)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to expand occurrences"}
	}

	rendered, err := docs.RenderCourseRules(course, occs)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not render course rules"}
	}

	filename := fmt.Sprintf("kursregeln_%d.html", courseID)
	path, err := dc.files.SaveBytes(rendered, filename, "text/html; charset=utf-8")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store course rules"}
	}

	document, err := dc.store.CreateDocument(&course.ID, "Kursregeln "+course.Name, path, "text/html; charset=utf-8")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create document"}
	}
	return document, nil
}
