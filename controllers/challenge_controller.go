package controllers

import (
	"fmt"
	"net/http"

	"debatearena/models"

	"github.com/gin-gonic/gin"
)

type challengeBody struct {
	OpponentID      string `json:"opponentId" binding:"required"`
	OpponentIsBot   bool   `json:"opponentIsBot"`
	Topic           string `json:"topic" binding:"required"`
	DurationMinutes int    `json:"durationMinutes"`
	GuildID         string `json:"guildId"`
	ChannelID       string `json:"channelId"`
}

// CreateChallenge issues a debate challenge from the acting user. Duration
// defaults when omitted and must be within the configured bounds otherwise.
func (ctl *Controller) CreateChallenge(c *gin.Context) {
	var body challengeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "opponentId and topic are required"})
		return
	}
	if body.DurationMinutes != 0 && (body.DurationMinutes < ctl.Cfg.MinDurationMinutes || body.DurationMinutes > ctl.Cfg.MaxDurationMinutes) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("durationMinutes must be between %d and %d", ctl.Cfg.MinDurationMinutes, ctl.Cfg.MaxDurationMinutes),
		})
		return
	}

	challenge, err := ctl.Svc.IssueChallenge(models.ChallengeRequest{
		ChallengerID:    actorID(c),
		OpponentID:      body.OpponentID,
		OpponentIsBot:   body.OpponentIsBot,
		Topic:           body.Topic,
		DurationMinutes: body.DurationMinutes,
		Context: models.ContextRef{
			GuildID:   body.GuildID,
			ChannelID: body.ChannelID,
		},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, challenge)
}

// AcceptChallenge handles the accept button on a pending challenge.
func (ctl *Controller) AcceptChallenge(c *gin.Context) {
	debate, err := ctl.Svc.RespondToChallenge(c.Param("id"), actorID(c), true)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accepted": true, "debate": debate})
}

// DeclineChallenge handles the decline button on a pending challenge.
func (ctl *Controller) DeclineChallenge(c *gin.Context) {
	if _, err := ctl.Svc.RespondToChallenge(c.Param("id"), actorID(c), false); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accepted": false})
}
