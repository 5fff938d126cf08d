// internal/models/asset_category.go
package models

// AssetCategory groups assets by name. Deletion is blocked while any
// asset still references the category name.
type AssetCategory struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `json:"name" binding:"required"`
	Code string `gorm:"unique" json:"code" binding:"required"`
}
