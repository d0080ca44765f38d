package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bildungswerk/kursbuero/internal/db"
	"github.com/bildungswerk/kursbuero/internal/http/api"
	authapi "github.com/bildungswerk/kursbuero/internal/http/api/admin/auth/endpoints"
	adminapi "github.com/bildungswerk/kursbuero/internal/http/api/admin/endpoints"
	"github.com/bildungswerk/kursbuero/internal/storage"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, storageSystem storage.Storage) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		authapi.AuthSessionModule(env.SecretKey, store),

		// catalog
		adminapi.AreaModule(store),
		adminapi.ProgramModule(store),
		adminapi.CourseModule(store),
		adminapi.TrainerModule(store),

		// participants and billing
		adminapi.ParticipantModule(store),
		adminapi.RegistrationModule(store),
		adminapi.RecipientModule(store),
		adminapi.InvoiceModule(store),

		// scheduling and documents
		adminapi.ScheduleModule(store),
		adminapi.DocumentModule(store, storageSystem),
	)

	// Static content
	if !env.UseSpaces {
		r.Static("/uploads", "./uploads")
	}
}
