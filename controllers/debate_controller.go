package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type resolveBody struct {
	WinnerID string `json:"winnerId" binding:"required"`
}

// ResolveDebate ends a debate and declares the winner. Only a participant
// may resolve, and the winner must be a participant.
func (ctl *Controller) ResolveDebate(c *gin.Context) {
	var body resolveBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "winnerId is required"})
		return
	}

	result, err := ctl.Svc.ResolveDebate(c.Param("id"), actorID(c), body.WinnerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListDebates returns the acting user's active debates with time remaining,
// the shape the adapter renders for the debates command.
func (ctl *Controller) ListDebates(c *gin.Context) {
	userID := actorID(c)
	now := ctl.Svc.Now()

	type debateRow struct {
		ID          string `json:"id"`
		OpponentID  string `json:"opponentId"`
		Topic       string `json:"topic"`
		MinutesLeft int    `json:"minutesLeft"`
	}

	rows := make([]debateRow, 0)
	for _, debate := range ctl.Svc.ActiveDebates(userID) {
		rows = append(rows, debateRow{
			ID:          debate.ID,
			OpponentID:  debate.OpponentOf(userID),
			Topic:       debate.Topic,
			MinutesLeft: debate.MinutesLeft(now),
		})
	}

	c.JSON(http.StatusOK, gin.H{"debates": rows})
}
