// internal/models/transaction.go
package models

import "time"

// Transaction is a recorded payment (first fruit, tithe, offering...).
// Rows are append-only; member name and phone are denormalized copies
// taken at recording time, matching the original schema.
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	MemberID    uint      `json:"memberId"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Member      string    `json:"member"`
	Phone       string    `json:"phone"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"method"` // MoMo, Cash or Bank
	Status      string    `json:"status"`
	Month       string    `json:"month"`
	PaymentDate string    `json:"paymentDate"`
	CreatedAt   time.Time `json:"createdAt"`
}
