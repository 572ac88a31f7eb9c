package handlers

import (
	"net/http"

	"food-rescue-api/config"
	"food-rescue-api/models"
	"food-rescue-api/statemachine"

	"github.com/gin-gonic/gin"
)

// AvailableFood is a listing joined with its owner's display data
type AvailableFood struct {
	ID             uint     `json:"id"`
	ItemName       string   `json:"item_name"`
	Quantity       string   `json:"quantity"`
	ImagePath      string   `json:"image_path"`
	RestaurantName string   `json:"restaurant_name"`
	Lat            *float64 `json:"lat"`
	Lng            *float64 `json:"lng"`
}

// ListFoods returns all available listings with restaurant context (public)
func ListFoods(c *gin.Context) {
	var foods []AvailableFood
	err := config.DB.WithContext(c.Request.Context()).
		Model(&models.FoodListing{}).
		Select("food_listings.id, food_listings.item_name, food_listings.quantity, food_listings.image_path, users.name as restaurant_name, users.lat, users.lng").
		Joins("JOIN users ON users.id = food_listings.owner_id").
		Where("food_listings.is_available = ? AND users.role = ?", true, models.RoleRestaurant).
		Order("food_listings.created_at desc").
		Scan(&foods).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load listings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(foods),
		"foods": foods,
	})
}

// GetStateMachineInfo returns the request lifecycle for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []string{string(models.StatusRejected), string(models.StatusCompleted)},
		"description":     "Food Request Lifecycle State Machine",
	})
}
