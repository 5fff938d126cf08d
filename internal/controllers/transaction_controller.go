package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"church_admin/internal/models"
	"church_admin/internal/store"
)

type transactionInput struct {
	MemberID    uint    `json:"memberId" binding:"required"`
	Member      string  `json:"member"`
	Phone       string  `json:"phone"`
	Type        string  `json:"type" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Method      string  `json:"method" binding:"required,oneof=MoMo Cash Bank"`
	Status      string  `json:"status"`
	Month       string  `json:"month"`
	PaymentDate string  `json:"paymentDate"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
}

// CreateTransaction records a payment. Transactions are append-only;
// there are no update or delete routes.
func CreateTransaction(c *gin.Context) {
	var input transactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	if input.Date == "" {
		input.Date = now.Format("2006-01-02")
	}
	if input.Time == "" {
		input.Time = now.Format("15:04")
	}
	if input.Status == "" {
		input.Status = "Completed"
	}

	t := models.Transaction{
		MemberID:    input.MemberID,
		Date:        input.Date,
		Time:        input.Time,
		Member:      input.Member,
		Phone:       input.Phone,
		Type:        input.Type,
		Amount:      input.Amount,
		Method:      input.Method,
		Status:      input.Status,
		Month:       input.Month,
		PaymentDate: input.PaymentDate,
	}

	if err := store.Current().CreateTransaction(&t); err != nil {
		logrus.WithError(err).Error("could not save transaction")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save transaction"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": t.ID, "message": "Transaction recorded"})
}

// ListTransactions returns all recorded payments, newest first.
func ListTransactions(c *gin.Context) {
	txs, err := store.Current().ListTransactions()
	if err != nil {
		logrus.WithError(err).Error("could not list transactions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": txs})
}
