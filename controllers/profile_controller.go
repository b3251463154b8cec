package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the acting user's own stats.
func (ctl *Controller) GetProfile(c *gin.Context) {
	ctl.profileResponse(c, actorID(c))
}

// GetProfileByID returns another user's stats.
func (ctl *Controller) GetProfileByID(c *gin.Context) {
	ctl.profileResponse(c, c.Param("id"))
}

func (ctl *Controller) profileResponse(c *gin.Context, userID string) {
	profile := ctl.Svc.Profile(userID)

	winRate := "N/A"
	if pct, ok := profile.WinRatePercent(); ok {
		winRate = fmt.Sprintf("%d%%", pct)
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
		"winRate": winRate,
	})
}
