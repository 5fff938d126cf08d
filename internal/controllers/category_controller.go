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

// CreateCategory registers an asset category. Codes are unique.
func CreateCategory(c *gin.Context) {
	var input models.AssetCategory
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := store.Current().CreateCategory(&input); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Category code already in use"})
			return
		}
		logrus.WithError(err).Error("could not create category")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": input})
}

// ListCategories lists all asset categories by name.
func ListCategories(c *gin.Context) {
	cats, err := store.Current().ListCategories()
	if err != nil {
		logrus.WithError(err).Error("could not list categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cats})
}

// DeleteCategory removes a category unless an asset still references
// it by name.
func DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category ID is required"})
		return
	}

	if err := store.Current().DeleteCategory(uint(id)); err != nil {
		switch {
		case errors.Is(err, store.ErrCategoryInUse):
			c.JSON(http.StatusConflict, gin.H{"error": "Could not delete category. It is still being used by assets."})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		default:
			logrus.WithError(err).Error("could not delete category")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
