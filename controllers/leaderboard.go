package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LeaderboardEntry is one row of the ranking, minimal data for display.
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	UserID string `json:"userId"`
	Rating int    `json:"rating"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

// GetLeaderboard returns the top debaters sorted by rating descending.
func (ctl *Controller) GetLeaderboard(c *gin.Context) {
	profiles := ctl.Svc.Leaderboard()

	entries := make([]LeaderboardEntry, 0, len(profiles))
	for i, profile := range profiles {
		entries = append(entries, LeaderboardEntry{
			Rank:   i + 1,
			UserID: profile.ID,
			Rating: profile.Rating,
			Wins:   profile.Wins,
			Losses: profile.Losses,
		})
	}

	c.JSON(http.StatusOK, gin.H{"debaters": entries})
}
