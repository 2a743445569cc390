package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/ableworks/ableworks-backend/internal/delivery/http/handler"
	"github.com/ableworks/ableworks-backend/internal/domain"
)

type Router struct {
	jobsHandler    *handler.JobsHandler
	profileHandler *handler.ProfileHandler
	resultsHandler *handler.ResultsHandler
	placesHandler  *handler.PlacesHandler
	allowedOrigins []string
}

func NewRouter(
	jobsHandler *handler.JobsHandler,
	profileHandler *handler.ProfileHandler,
	resultsHandler *handler.ResultsHandler,
	placesHandler *handler.PlacesHandler,
	allowedOrigins []string,
) *Router {
	return &Router{
		jobsHandler:    jobsHandler,
		profileHandler: profileHandler,
		resultsHandler: resultsHandler,
		placesHandler:  placesHandler,
		allowedOrigins: allowedOrigins,
	}
}

func (r *Router) Setup() *gin.Engine {
	registerValidations()

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(r.allowedOrigins) == 1 && r.allowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = r.allowedOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	router.Use(cors.New(corsConfig))

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		jobs := v1.Group("/jobs")
		{
			jobs.POST("/search", r.jobsHandler.SearchJobs)
			jobs.POST("/simplify", r.jobsHandler.SimplifyJob)
			jobs.POST("/training-plan", r.jobsHandler.TrainingPlan)
		}

		profile := v1.Group("/profile")
		{
			profile.POST("/encode", r.profileHandler.EncodeProfile)
			profile.GET("/decode", r.profileHandler.DecodeProfile)
		}

		v1.GET("/catalog", r.profileHandler.GetCatalog)
		v1.GET("/results", r.resultsHandler.GetResults)
		v1.GET("/places/search", r.placesHandler.SearchPlaces)
	}

	return router
}

// registerValidations adds the enum checks request bindings use.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("tone", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseTone(fl.Field().String())
		return err == nil
	})
}
