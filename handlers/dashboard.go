package handlers

import (
	"net/http"

	"food-rescue-api/config"
	"food-rescue-api/middleware"
	"food-rescue-api/models"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the caller's role-aware projection. Restaurants see
// their listings with every request and any feedback nested under each;
// charities see their requests with listing and restaurant context. Admins
// are pushed to the monitor endpoint instead.
func GetDashboard(c *gin.Context) {
	userID := middleware.GetUserID(c)
	db := config.DB.WithContext(c.Request.Context())

	switch middleware.GetRole(c) {
	case models.RoleRestaurant:
		var listings []models.FoodListing
		err := db.Preload("Requests.Charity").Preload("Requests.Feedback").
			Where("owner_id = ?", userID).
			Order("created_at desc").
			Find(&listings).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": models.RoleRestaurant, "count": len(listings), "foods": listings})

	case models.RoleCharity:
		var requests []models.Request
		err := db.Preload("Listing.Owner").Preload("Feedback").
			Where("charity_id = ?", userID).
			Order("created_at desc").
			Find(&requests).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": models.RoleCharity, "count": len(requests), "requests": requests})

	case models.RoleAdmin:
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin must use the monitor endpoint"})

	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid user role for dashboard access"})
	}
}
