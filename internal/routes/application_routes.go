package routes

import (
	"church_admin/internal/controllers"

	"github.com/gin-gonic/gin"
)

func ApplicationRoutes(r *gin.Engine) {
	apps := r.Group("/applications")
	{
		apps.GET("", controllers.ListApplications)
		apps.POST("", controllers.CreateApplication)
		apps.PATCH("/:id/status", controllers.UpdateApplicationStatus)
	}
}
