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

type SubmitFeedbackRequest struct {
	RequestID uint   `json:"request_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// SubmitFeedback attaches feedback to a completed request. Any
// authenticated role may submit; the unique index on request_id rejects a
// second submission with a conflict.
func SubmitFeedback(c *gin.Context) {
	submittedBy := middleware.GetUserID(c)

	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := config.DB.WithContext(c.Request.Context())

	var request models.Request
	if err := db.First(&request, req.RequestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up request"})
		return
	}
	if request.Status != models.StatusCompleted {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Feedback is only allowed on completed requests",
			"current_status": request.Status,
		})
		return
	}

	feedback := models.Feedback{
		RequestID:   req.RequestID,
		SubmittedBy: submittedBy,
		Rating:      req.Rating,
		Comment:     req.Comment,
	}
	if err := db.Create(&feedback).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Feedback already submitted for this request"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Feedback submitted successfully",
		"feedback": feedback,
	})
}
