package routes

import (
	"church_admin/internal/controllers"

	"github.com/gin-gonic/gin"
)

func AssetRoutes(r *gin.Engine) {
	assets := r.Group("/assets")
	{
		assets.GET("", controllers.ListAssets)
		assets.POST("", controllers.CreateAsset)
		assets.PUT("", controllers.UpdateAsset)
		assets.DELETE("/:id", controllers.DeleteAsset)
	}

	categories := r.Group("/asset-categories")
	{
		categories.GET("", controllers.ListCategories)
		categories.POST("", controllers.CreateCategory)
		categories.DELETE("/:id", controllers.DeleteCategory)
	}
}
