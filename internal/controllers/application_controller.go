package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"church_admin/internal/models"
	"church_admin/internal/sms"
	"church_admin/internal/store"
)

// Notifier delivers approval texts. Tests swap in a client pointed at
// a stub gateway.
var Notifier = sms.NewClient()

// CreateApplication records an apprenticeship application submitted
// through the public portal. Status always starts out pending.
func CreateApplication(c *gin.Context) {
	var input models.Application
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.ID == "" {
		input.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	input.Status = models.StatusPending
	if input.SubmittedAt.IsZero() {
		input.SubmittedAt = time.Now()
	}

	if err := store.Current().CreateApplication(&input); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Application already exists"})
			return
		}
		logrus.WithError(err).Error("could not save application")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save application"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": input.ID, "message": "Application saved successfully"})
}

// ListApplications returns every application, newest first.
func ListApplications(c *gin.Context) {
	apps, err := store.Current().ListApplications()
	if err != nil {
		logrus.WithError(err).Error("could not list applications")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": apps})
}

type statusInput struct {
	Status             string `json:"status" binding:"required"`
	NotificationMethod string `json:"notificationMethod"`
	Message            string `json:"message"`
}

// UpdateApplicationStatus moves an application out of pending. Both
// approved and rejected are terminal; there is no way back. Approving
// with notificationMethod "sms" texts the applicant as a side effect.
func UpdateApplicationStatus(c *gin.Context) {
	id := c.Param("id")

	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Status != models.StatusApproved && input.Status != models.StatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be approved or rejected"})
		return
	}

	app, err := store.Current().GetApplication(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}
		logrus.WithError(err).Error("could not load application")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load application"})
		return
	}
	if app.Status != models.StatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Application has already been " + app.Status})
		return
	}

	if err := store.Current().UpdateApplicationStatus(id, input.Status); err != nil {
		logrus.WithError(err).Error("could not update application status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		return
	}

	notification := "none"
	if input.Status == models.StatusApproved && input.NotificationMethod == "sms" {
		recipient := sms.NormalizeRecipient(app.Phone)
		if err := Notifier.Send(recipient, input.Message); err != nil {
			notification = err.Error()
		} else {
			notification = "sent"
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "notification": notification})
}
