package routes

import (
	"church_admin/internal/controllers"

	"github.com/gin-gonic/gin"
)

func MemberRoutes(r *gin.Engine) {
	members := r.Group("/members")
	{
		members.GET("", controllers.ListMembers)
		members.POST("", controllers.CreateMember)
		members.PUT("", controllers.UpdateMember)
		members.DELETE("/:id", controllers.DeleteMember)
	}
}
