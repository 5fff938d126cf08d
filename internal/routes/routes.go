package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires every endpoint group onto one engine.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), ginlog.SetLogger())

	AuthRoutes(r)
	ApplicationRoutes(r)
	MemberRoutes(r)
	TransactionRoutes(r)
	AssetRoutes(r)
	AttendanceRoutes(r)
	StatsRoutes(r)

	return r
}
