package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusPage serves a small HTML liveness page with current counters.
func (ctl *Controller) StatusPage(c *gin.Context) {
	stats := ctl.Svc.Stats()
	page := fmt.Sprintf(`<html>
<head><title>Debate Arena Status</title></head>
<body>
<h1>Debate Arena is Online</h1>
<p>Last ping: %s</p>
<h3>Current Stats</h3>
<p>Active Debates: %d</p>
<p>Pending Challenges: %d</p>
<p>Registered Users: %d</p>
</body>
</html>`,
		time.Now().Format(time.RFC1123),
		stats.ActiveDebates, stats.PendingChallenges, stats.RegisteredUsers)

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// Ping reports liveness for uptime monitors.
func (ctl *Controller) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "online",
		"ready":     true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(ctl.StartedAt).Seconds(),
	})
}

// Stats reports the arena counters as JSON.
func (ctl *Controller) Stats(c *gin.Context) {
	stats := ctl.Svc.Stats()
	c.JSON(http.StatusOK, gin.H{
		"activeDebates":     stats.ActiveDebates,
		"pendingChallenges": stats.PendingChallenges,
		"registeredUsers":   stats.RegisteredUsers,
		"uptime":            time.Since(ctl.StartedAt).Seconds(),
	})
}
