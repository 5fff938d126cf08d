package routes

import (
	"church_admin/internal/controllers"
	"church_admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Dashboard aggregates are the one admin-gated surface.
func StatsRoutes(r *gin.Engine) {
	statsGroup := r.Group("/stats")
	statsGroup.Use(middleware.RequireAuthWithRole("admin"))
	{
		statsGroup.GET("/financial", controllers.FinancialStats)
		statsGroup.GET("/assets", controllers.AssetStats)
		statsGroup.GET("/attendance", controllers.AttendanceStats)
	}
}
