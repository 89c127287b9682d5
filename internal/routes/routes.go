package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"psycare-backend/internal/handlers"
	"psycare-backend/internal/middleware"
	"psycare-backend/pkg/utils"
)

// SetupRoutes wires the whole API surface.
func SetupRoutes(r *gin.Engine) {

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())
	r.Use(middleware.RequestLogger(log.Logger))

	api := r.Group("/api/v1")
	{
		api.GET("/status", func(c *gin.Context) {
			utils.APIResponse(c, http.StatusOK, true, "OK", nil)
		})

		auth := api.Group("/auth")
		{
			auth.POST("/login", handlers.Login)
		}

		// Specialist sign-up stays open: it creates the login account,
		// so there is no identity to authenticate yet.
		api.POST("/specialists", handlers.CreateSpecialist)

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			patients := protected.Group("/patients")
			{
				patients.GET("", middleware.AdminOnly(), handlers.ListPatients)
				patients.POST("", middleware.AdminOnly(), handlers.CreatePatient)
				patients.GET("/profile", handlers.PatientProfile)
				patients.GET("/:id", middleware.SelfOrAdmin(), handlers.GetPatient)
				patients.PUT("/:id", middleware.SelfOrAdmin(), handlers.ReplacePatient)
				patients.PATCH("/:id", middleware.SelfOrAdmin(), handlers.UpdatePatient)
				patients.DELETE("/:id", middleware.SelfOrAdmin(), handlers.DeletePatient)
			}

			// A specialist's token subject is the linked user account id,
			// not the record id, so the :id routes resolve ownership in the
			// handler after loading the record.
			specialists := protected.Group("/specialists")
			{
				specialists.GET("", middleware.AdminOnly(), handlers.ListSpecialists)
				specialists.GET("/profile", handlers.SpecialistProfile)
				specialists.GET("/:id", handlers.GetSpecialist)
				specialists.PUT("/:id", handlers.ReplaceSpecialist)
				specialists.PATCH("/:id", handlers.UpdateSpecialist)
				specialists.DELETE("/:id", handlers.DeleteSpecialist)
			}
		}
	}
}
