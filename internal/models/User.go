package models

import "time"

// User is a portal account (first-fruit payment portal or admin view).
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `gorm:"unique" json:"phone"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"` // "member" or "admin"
	CreatedAt time.Time `json:"createdAt"`
}
