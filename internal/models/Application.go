// internal/models/application.go
package models

import "time"

// Application is an apprenticeship application submitted through the
// public portal. Status moves pending -> approved or rejected, once,
// by an administrator; everything else is immutable after submission.
type Application struct {
	ID            string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	FullName      string    `json:"fullName" binding:"required"`
	Email         string    `json:"email" binding:"required,email"`
	Phone         string    `json:"phone" binding:"required"`
	Experience    string    `json:"experience"`
	Portfolio     string    `json:"portfolio"`                      // original file name
	PortfolioData string    `gorm:"type:text" json:"portfolioData"` // base64 blob
	PortfolioType string    `json:"portfolioType"`                  // mime type
	Status        string    `gorm:"default:pending" json:"status"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

// Application statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)
