// internal/models/asset.go
package models

// Asset is a piece of church property. Category is a soft reference to
// AssetCategory by name.
type Asset struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	PurchaseDate  string  `json:"purchaseDate"`
	PurchaseValue float64 `json:"purchaseValue"`
	CurrentValue  float64 `json:"currentValue"`
	Condition     string  `gorm:"column:condition_status" json:"condition"` // Excellent, Good, Fair or Poor
	Location      string  `json:"location"`
	Description   string  `json:"description"`
	Quantity      int     `json:"quantity"`
}
