// internal/models/member.go
package models

import "time"

// Member is a registered church member. Phone is stored as the raw
// 10-digit local number; firstFruitNumber is optional.
type Member struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	FirstName        string    `json:"firstName" binding:"required"`
	MiddleName       string    `json:"middleName"`
	LastName         string    `json:"lastName" binding:"required"`
	Phone            string    `json:"phone" binding:"required"`
	FirstFruitNumber string    `json:"firstFruitNumber"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
