package models

import "time"

// Feedback is attached to a completed request, at most once. The unique
// index on RequestID makes the one-per-request rule a hard invariant rather
// than a convention.
type Feedback struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RequestID   uint      `json:"request_id" gorm:"uniqueIndex;not null"`
	SubmittedBy uint      `json:"submitted_by" gorm:"not null"`
	Submitter   User      `json:"submitter,omitempty" gorm:"foreignKey:SubmittedBy"`
	Rating      int       `json:"rating" gorm:"not null"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}
