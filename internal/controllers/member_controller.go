package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"church_admin/internal/models"
	"church_admin/internal/store"
)

// digitsOnly strips everything but 0-9 from a phone number.
func digitsOnly(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}

// CreateMember registers a member. The phone number must come out to
// exactly 10 digits; anything else is rejected before any storage call.
func CreateMember(c *gin.Context) {
	var input models.Member
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	phone := digitsOnly(input.Phone)
	if len(phone) != 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number must be exactly 10 digits"})
		return
	}
	input.Phone = phone

	if err := store.Current().CreateMember(&input); err != nil {
		logrus.WithError(err).Error("could not create member")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding member"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"member": input})
}

// ListMembers lists all members, first name ascending.
func ListMembers(c *gin.Context) {
	members, err := store.Current().ListMembers()
	if err != nil {
		logrus.WithError(err).Error("could not list members")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch members"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": members})
}

// UpdateMember overwrites a member record. The id must come with the
// body; last writer wins, there is no concurrency control.
func UpdateMember(c *gin.Context) {
	var input models.Member
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Member ID is required"})
		return
	}

	phone := digitsOnly(input.Phone)
	if len(phone) != 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number must be exactly 10 digits"})
		return
	}
	input.Phone = phone

	if err := store.Current().UpdateMember(&input); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		logrus.WithError(err).Error("could not update member")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Member updated successfully"})
}

// DeleteMember removes a member by id.
func DeleteMember(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Member ID is required"})
		return
	}

	if err := store.Current().DeleteMember(uint(id)); err != nil {
		logrus.WithError(err).Error("could not delete member")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Member deleted successfully"})
}
