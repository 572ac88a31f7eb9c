package routes

import (
	"time"

	"food-rescue-api/handlers"
	"food-rescue-api/middleware"
	"food-rescue-api/models"

	"github.com/gin-gonic/gin"
)

// storageDeadline bounds every storage call made while handling a request
const storageDeadline = 5 * time.Second

func SetupRoutes(r *gin.Engine) {
	r.Use(middleware.TraceID(), middleware.StorageTimeout(storageDeadline))

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)

		// Available food (no auth needed)
		public.GET("/foods", handlers.ListFoods)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.POST("/feedback", handlers.SubmitFeedback)
		auth.GET("/dashboard", handlers.GetDashboard)
	}

	// ── Restaurant routes ──────────────────────────────────────────
	restaurant := r.Group("/api")
	restaurant.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleRestaurant))
	{
		restaurant.POST("/foods", handlers.PostFood)
		restaurant.PUT("/foods/:id", handlers.SetFoodAvailability)
		restaurant.PUT("/requests/:id", handlers.UpdateRequestStatus)
		restaurant.PUT("/requests/:id/complete", handlers.CompleteRequest)
	}

	// ── Charity routes ─────────────────────────────────────────────
	charity := r.Group("/api")
	charity.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCharity))
	{
		charity.POST("/requests", handlers.CreateRequest)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/monitor", handlers.AdminMonitor)
		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.DELETE("/user/:userId", handlers.AdminRemoveUser)
	}
}
