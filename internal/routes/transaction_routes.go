package routes

import (
	"church_admin/internal/controllers"

	"github.com/gin-gonic/gin"
)

// Transactions are append-only: list and create, nothing else.
func TransactionRoutes(r *gin.Engine) {
	txs := r.Group("/transactions")
	{
		txs.GET("", controllers.ListTransactions)
		txs.POST("", controllers.CreateTransaction)
	}
}
