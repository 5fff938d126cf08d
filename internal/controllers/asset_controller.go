package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"church_admin/internal/models"
	"church_admin/internal/store"
)

// assetInput is the explicit request schema for asset writes. Numeric
// fields are pointers so omitted values can be told apart from zeros
// and defaulted: purchaseValue -> 0, currentValue -> purchaseValue,
// quantity -> 1.
type assetInput struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name" binding:"required"`
	Category      string   `json:"category"`
	PurchaseDate  string   `json:"purchaseDate"`
	PurchaseValue *float64 `json:"purchaseValue"`
	CurrentValue  *float64 `json:"currentValue"`
	Condition     string   `json:"condition"`
	Location      string   `json:"location"`
	Description   string   `json:"description"`
	Quantity      *int     `json:"quantity"`
}

func (in *assetInput) toModel() models.Asset {
	purchaseValue := 0.0
	if in.PurchaseValue != nil {
		purchaseValue = *in.PurchaseValue
	}
	currentValue := purchaseValue
	if in.CurrentValue != nil {
		currentValue = *in.CurrentValue
	}
	quantity := 1
	if in.Quantity != nil && *in.Quantity > 0 {
		quantity = *in.Quantity
	}
	return models.Asset{
		ID:            in.ID,
		Name:          in.Name,
		Category:      in.Category,
		PurchaseDate:  in.PurchaseDate,
		PurchaseValue: purchaseValue,
		CurrentValue:  currentValue,
		Condition:     in.Condition,
		Location:      in.Location,
		Description:   in.Description,
		Quantity:      quantity,
	}
}

// CreateAsset records a new asset with the numeric fallbacks applied.
func CreateAsset(c *gin.Context) {
	var input assetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset := input.toModel()
	asset.ID = 0
	if err := store.Current().CreateAsset(&asset); err != nil {
		logrus.WithError(err).Error("could not create asset")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

// ListAssets lists all assets, newest first.
func ListAssets(c *gin.Context) {
	assets, err := store.Current().ListAssets()
	if err != nil {
		logrus.WithError(err).Error("could not list assets")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch assets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": assets})
}

// UpdateAsset overwrites an asset unconditionally (last writer wins).
// The id must come with the body.
func UpdateAsset(c *gin.Context) {
	var input assetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Asset ID is required"})
		return
	}

	asset := input.toModel()
	if err := store.Current().UpdateAsset(&asset); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
			return
		}
		logrus.WithError(err).Error("could not update asset")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "asset": asset})
}

// DeleteAsset removes an asset by id. No referential check applies.
func DeleteAsset(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Asset ID is required"})
		return
	}

	if err := store.Current().DeleteAsset(uint(id)); err != nil {
		logrus.WithError(err).Error("could not delete asset")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete asset"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Asset deleted successfully"})
}
