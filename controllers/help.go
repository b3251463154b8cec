package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type helpEntry struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

var helpEntries = []helpEntry{
	{"challenge", "Challenge another user to a debate"},
	{"reputation", "Check rating and debate stats"},
	{"leaderboard", "View the top debaters"},
	{"debates", "List your active debates"},
	{"enddebate", "End a debate and declare winner"},
}

// Help returns the command catalog the adapter renders for the help
// command. Beating higher-rated opponents pays more points.
func (ctl *Controller) Help(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"commands": helpEntries})
}
