package router

import (
	"kurator/config"
	"kurator/internal/handler"
	"kurator/internal/middleware"
	"kurator/internal/service"
	"kurator/internal/ws"

	"github.com/gin-gonic/gin"
)

// Setup wires the admin dashboard API.
func Setup(cfg *config.Config, tracker *service.TrackerService, feed *ws.Hub) *gin.Engine {
	if cfg.Admin.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	adminHandler := handler.NewAdminHandler(cfg, tracker, feed)
	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1/admin")
	{
		api.POST("/login", adminHandler.Login)
		api.GET("/stats", authMw, adminHandler.Stats)
		api.GET("/feed", authMw, adminHandler.Feed)
	}
	return r
}
