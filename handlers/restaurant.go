package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"food-rescue-api/config"
	"food-rescue-api/middleware"
	"food-rescue-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImageSize = 1 << 20 // 1MB

// PostFood creates a surplus listing from a multipart form. The image is
// mandatory, must be an image type and at most 1MB; it is stored under the
// uploads dir with a generated name and served via the static prefix.
func PostFood(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	itemName := c.PostForm("item_name")
	quantity := c.PostForm("quantity")
	if itemName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_name is required"})
		return
	}

	fileHeader, err := c.FormFile("food_image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please include a food image"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image must be 1MB or smaller"})
		return
	}
	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only images are allowed"})
		return
	}

	filename := "food-" + uuid.New().String() + filepath.Ext(fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, filepath.Join(config.UploadDir, filename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	listing := models.FoodListing{
		OwnerID:     ownerID,
		ItemName:    itemName,
		Quantity:    quantity,
		ImagePath:   "/uploads/" + filename,
		IsAvailable: true,
	}
	if err := config.DB.WithContext(c.Request.Context()).Create(&listing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create listing"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Food posted for redistribution",
		"food":    listing,
	})
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// SetFoodAvailability toggles a listing's availability. The ownership check
// lives inside the UPDATE predicate, so a non-owner and a nonexistent id
// report the same failure and nothing leaks about which listings exist.
func SetFoodAvailability(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	foodID := c.Param("id")

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := config.DB.WithContext(c.Request.Context()).
		Model(&models.FoodListing{}).
		Where("id = ? AND owner_id = ?", foodID, ownerID).
		Update("is_available", *req.IsAvailable)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update listing"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found or you do not own it"})
		return
	}

	var listing models.FoodListing
	config.DB.WithContext(c.Request.Context()).First(&listing, foodID)
	c.JSON(http.StatusOK, gin.H{"message": "Food status updated", "food": listing})
}
