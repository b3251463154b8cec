package routes

import (
	"debatearena/controllers"

	"github.com/gin-gonic/gin"
)

// SetupArenaRoutes registers the command surface. The group is expected to
// carry the actor middleware.
func SetupArenaRoutes(rg *gin.RouterGroup, ctl *controllers.Controller) {
	rg.POST("/challenges", ctl.CreateChallenge)
	rg.POST("/challenges/:id/accept", ctl.AcceptChallenge)
	rg.POST("/challenges/:id/decline", ctl.DeclineChallenge)

	rg.POST("/debates/:id/resolve", ctl.ResolveDebate)
	rg.GET("/debates", ctl.ListDebates)

	rg.GET("/profile", ctl.GetProfile)
	rg.GET("/profile/:id", ctl.GetProfileByID)
	rg.GET("/leaderboard", ctl.GetLeaderboard)
	rg.GET("/help", ctl.Help)
}
