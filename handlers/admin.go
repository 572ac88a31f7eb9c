package handlers

import (
	"errors"
	"log"
	"net/http"

	"food-rescue-api/config"
	"food-rescue-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminMonitor returns every user plus every listing with its full nested
// request and feedback history — admin only
func AdminMonitor(c *gin.Context) {
	db := config.DB.WithContext(c.Request.Context())

	var users []models.User
	if err := db.Order("role, id").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	var listings []models.FoodListing
	err := db.Preload("Owner").
		Preload("Requests.Charity").
		Preload("Requests.Feedback").
		Order("id desc").
		Find(&listings).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load food items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      users,
		"food_items": listings,
	})
}

// AdminGetAllUsers returns all users, optionally filtered by role
func AdminGetAllUsers(c *gin.Context) {
	query := config.DB.WithContext(c.Request.Context())
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// AdminRemoveUser deletes a user and everything causally dependent on them:
// feedback on requests against their listings, feedback they submitted,
// requests against their listings, requests they made, their listings, then
// the user row. The whole sequence is one transaction; the deletes must run
// in this order or the foreign keys object, and a missing user aborts the
// lot so nothing orphaned is ever committed.
func AdminRemoveUser(c *gin.Context) {
	userID := c.Param("userId")

	err := config.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		ownedListings := func() *gorm.DB {
			return tx.Model(&models.FoodListing{}).Select("id").Where("owner_id = ?", userID)
		}
		requestsOnOwned := func() *gorm.DB {
			return tx.Model(&models.Request{}).Select("id").Where("listing_id IN (?)", ownedListings())
		}

		if err := tx.Where("request_id IN (?)", requestsOnOwned()).Delete(&models.Feedback{}).Error; err != nil {
			return err
		}
		if err := tx.Where("submitted_by = ?", userID).Delete(&models.Feedback{}).Error; err != nil {
			return err
		}
		if err := tx.Where("listing_id IN (?)", ownedListings()).Delete(&models.Request{}).Error; err != nil {
			return err
		}
		if err := tx.Where("charity_id = ?", userID).Delete(&models.Request{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", userID).Delete(&models.FoodListing{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", userID).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Admin user removal failed (user %s): %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error during user removal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User " + userID + " removed successfully"})
}
