package models

// Lifecycle event types broadcast to connected clients.
const (
	EventChallengeIssued   = "challenge.issued"
	EventChallengeDeclined = "challenge.declined"
	EventChallengeExpired  = "challenge.expired"
	EventDebateStarted     = "debate.started"
	EventDebateExpired     = "debate.expired"
	EventDebateResolved    = "debate.resolved"
)

// Event is a lifecycle notification pushed to websocket clients. Only the
// field relevant to the event type is set.
type Event struct {
	Type      string        `json:"type"`
	Timestamp int64         `json:"timestamp"`
	Challenge *Challenge    `json:"challenge,omitempty"`
	Debate    *Debate       `json:"debate,omitempty"`
	Result    *DebateResult `json:"result,omitempty"`
}
