package models

import "time"

// ContextRef identifies where a challenge originated so replies can be
// routed back to the same guild and channel by the chat adapter.
type ContextRef struct {
	GuildID   string `json:"guildId,omitempty"`
	ChannelID string `json:"channelId,omitempty"`
}

// Challenge is a time-limited offer from one user to another to begin a
// debate. A challenge is pending from creation until it is accepted,
// declined, or expires.
type Challenge struct {
	ID              string     `json:"id"`
	ChallengerID    string     `json:"challengerId"`
	OpponentID      string     `json:"opponentId"`
	Topic           string     `json:"topic"`
	DurationMinutes int        `json:"durationMinutes"`
	CreatedAt       time.Time  `json:"createdAt"`
	ExpiresAt       time.Time  `json:"expiresAt"`
	Context         ContextRef `json:"context"`
}

// ChallengeRequest carries a validated challenge command from the adapter.
// OpponentIsBot is set by the adapter, which knows whether the target is an
// automated account on the chat platform.
type ChallengeRequest struct {
	ChallengerID    string     `json:"challengerId"`
	OpponentID      string     `json:"opponentId"`
	OpponentIsBot   bool       `json:"opponentIsBot"`
	Topic           string     `json:"topic"`
	DurationMinutes int        `json:"durationMinutes"`
	Context         ContextRef `json:"context"`
}
