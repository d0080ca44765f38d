package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bildungswerk/kursbuero/internal/http/middleware"
	"github.com/bildungswerk/kursbuero/internal/model"
)

// APIError is the error shape handlers return to the HTTP edge.
type APIError struct {
	Code    int
	Message string
}

// HandlerFuncWithAuth runs after JWTMiddleware and receives the caller.
type HandlerFuncWithAuth func(ctx *gin.Context, user *model.User) (any, *APIError)

// HandlerFunc is the public (unauthenticated) handler shape.
type HandlerFunc func(ctx *gin.Context) (any, *APIError)

// Controller wraps a gin group so modules can register typed handlers.
type Controller struct {
	Group *gin.RouterGroup
}

func (c *Controller) GET(path string, h HandlerFuncWithAuth) {
	c.Group.GET(path, ResolveEndpointWithAuth(h))
}

func (c *Controller) POST(path string, h HandlerFuncWithAuth) {
	c.Group.POST(path, ResolveEndpointWithAuth(h))
}

func (c *Controller) PUT(path string, h HandlerFuncWithAuth) {
	c.Group.PUT(path, ResolveEndpointWithAuth(h))
}

func (c *Controller) DELETE(path string, h HandlerFuncWithAuth) {
	c.Group.DELETE(path, ResolveEndpointWithAuth(h))
}

func (c *Controller) PUBLIC_GET(path string, h HandlerFunc) {
	c.Group.GET(path, ResolveEndpoint(h))
}

func (c *Controller) PUBLIC_POST(path string, h HandlerFunc) {
	c.Group.POST(path, ResolveEndpoint(h))
}

// ResolveEndpointWithAuth adapts an authenticated handler into a gin
// handler, resolving the current user set by JWTMiddleware.
func ResolveEndpointWithAuth(h HandlerFuncWithAuth) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middleware.GetCurrentUser(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		result, apiErr := h(ctx, user)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}

// ResolveEndpoint adapts a public handler into a gin handler.
func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}
