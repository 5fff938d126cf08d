package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"church_admin/internal/models"
	"church_admin/internal/store"
)

type attendanceInput struct {
	MemberID   uint   `json:"memberId" binding:"required"`
	MemberName string `json:"memberName"`
	Service    string `json:"service" binding:"required"`
	Date       string `json:"date"`
}

// CheckIn records a member's attendance at a service.
func CheckIn(c *gin.Context) {
	var input attendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	if input.Date == "" {
		input.Date = now.Format("2006-01-02")
	}

	rec := models.Attendance{
		MemberID:    input.MemberID,
		MemberName:  input.MemberName,
		Service:     input.Service,
		Date:        input.Date,
		CheckedInAt: now,
	}
	if err := store.Current().CreateAttendance(&rec); err != nil {
		logrus.WithError(err).Error("could not record attendance")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record attendance"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"attendance": rec})
}

// ListAttendance returns all check-ins, newest first.
func ListAttendance(c *gin.Context) {
	recs, err := store.Current().ListAttendance()
	if err != nil {
		logrus.WithError(err).Error("could not list attendance")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attendance"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": recs})
}
