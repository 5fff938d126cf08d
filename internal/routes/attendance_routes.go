package routes

import (
	"church_admin/internal/controllers"

	"github.com/gin-gonic/gin"
)

func AttendanceRoutes(r *gin.Engine) {
	attendance := r.Group("/attendance")
	{
		attendance.GET("", controllers.ListAttendance)
		attendance.POST("", controllers.CheckIn)
	}
}
