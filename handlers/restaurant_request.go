package handlers

import (
	"errors"
	"net/http"

	"food-rescue-api/config"
	"food-rescue-api/middleware"
	"food-rescue-api/models"
	"food-rescue-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateRequestStatusRequest struct {
	Status models.RequestStatus `json:"status" binding:"required"`
}

// UpdateRequestStatus handles the restaurant's pending -> accepted/rejected
// transitions. The target state is validated against the state machine
// first; the from-state, existence and ownership checks are all folded into
// one conditional UPDATE so every failing cause reports identically.
func UpdateRequestStatus(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	requestID := c.Param("id")

	var req UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(models.StatusPending, req.Status, "restaurant"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(models.StatusPending),
		})
		return
	}

	db := config.DB.WithContext(c.Request.Context())
	ownedListings := db.Model(&models.FoodListing{}).Select("id").Where("owner_id = ?", ownerID)

	res := db.Model(&models.Request{}).
		Where("id = ? AND status = ? AND listing_id IN (?)", requestID, models.StatusPending, ownedListings).
		Update("status", req.Status)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found or you do not own the food item"})
		return
	}

	var request models.Request
	db.First(&request, requestID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Request status updated to " + string(req.Status),
		"request": request,
	})
}

// CompleteRequest finalizes a pickup: the request moves accepted ->
// completed and its listing becomes unavailable. Both writes run in one
// transaction; if either fails nothing is committed, so a completed request
// against an available listing is never observable.
func CompleteRequest(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	requestID := c.Param("id")

	var request models.Request
	err := config.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		ownedListings := tx.Model(&models.FoodListing{}).Select("id").Where("owner_id = ?", ownerID)

		res := tx.Model(&models.Request{}).
			Where("id = ? AND status = ? AND listing_id IN (?)", requestID, models.StatusAccepted, ownedListings).
			Update("status", models.StatusCompleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.First(&request, requestID).Error; err != nil {
			return err
		}
		return tx.Model(&models.FoodListing{}).
			Where("id = ?", request.ListingID).
			Update("is_available", false).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found or you do not own the food item"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Pickup confirmed and food marked unavailable",
		"request": request,
	})
}
