package handlers

import (
	"errors"
	"net/http"

	"food-rescue-api/config"
	"food-rescue-api/middleware"
	"food-rescue-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateRequestRequest struct {
	FoodID uint `json:"food_id" binding:"required"`
}

// CreateRequest places a charity's claim against a listing. The new request
// starts pending; the schema does not stop several charities from claiming
// the same listing, the listing just stops being available once one of them
// completes.
func CreateRequest(c *gin.Context) {
	charityID := middleware.GetUserID(c)

	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := config.DB.WithContext(c.Request.Context())

	var listing models.FoodListing
	if err := db.First(&listing, req.FoodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up food item"})
		return
	}

	request := models.Request{
		ListingID: listing.ID,
		CharityID: charityID,
		Status:    models.StatusPending,
	}
	if err := db.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Food request created successfully",
		"request": request,
	})
}
