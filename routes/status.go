package routes

import (
	"debatearena/controllers"

	"github.com/gin-gonic/gin"
)

// SetupStatusRoutes registers the public liveness surface.
func SetupStatusRoutes(r *gin.Engine, ctl *controllers.Controller) {
	r.GET("/", ctl.StatusPage)
	r.GET("/ping", ctl.Ping)
	r.GET("/stats", ctl.Stats)
}
