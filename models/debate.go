package models

import "time"

// DebateStatus represents the lifecycle state of a debate
type DebateStatus string

const (
	DebateActive    DebateStatus = "active"
	DebateCompleted DebateStatus = "completed"
	DebateExpired   DebateStatus = "expired"
)

// Debate is a time-boxed contest between exactly two users on a topic,
// concluded by explicit resolution or by timeout.
type Debate struct {
	ID              string       `json:"id"`
	Participants    [2]string    `json:"participants"`
	Topic           string       `json:"topic"`
	DurationMinutes int          `json:"durationMinutes"`
	StartTime       time.Time    `json:"startTime"`
	EndTime         time.Time    `json:"endTime"`
	Status          DebateStatus `json:"status"`
	Context         ContextRef   `json:"context"`
	ExpiredAt       time.Time    `json:"expiredAt,omitempty"`
}

// HasParticipant reports whether the user is one of the two debaters.
func (d *Debate) HasParticipant(userID string) bool {
	return d.Participants[0] == userID || d.Participants[1] == userID
}

// OpponentOf returns the other participant, or "" when the user is not in
// the debate.
func (d *Debate) OpponentOf(userID string) string {
	switch userID {
	case d.Participants[0]:
		return d.Participants[1]
	case d.Participants[1]:
		return d.Participants[0]
	}
	return ""
}

// MinutesLeft returns the whole minutes remaining before the debate's end
// time, floored at zero.
func (d *Debate) MinutesLeft(now time.Time) int {
	left := d.EndTime.Sub(now)
	if left <= 0 {
		return 0
	}
	return int((left + time.Minute/2) / time.Minute)
}

// DebateResult summarizes a resolved debate for presentation. LoserDelta is
// the amount actually deducted after the rating floor is applied, so it can
// be smaller than WinnerDelta.
type DebateResult struct {
	DebateID     string `json:"debateId"`
	Topic        string `json:"topic"`
	WinnerID     string `json:"winnerId"`
	LoserID      string `json:"loserId"`
	WinnerDelta  int    `json:"winnerDelta"`
	LoserDelta   int    `json:"loserDelta"`
	WinnerRating int    `json:"winnerRating"`
	LoserRating  int    `json:"loserRating"`
}

// ArenaStats holds the counters exposed by the status endpoints.
type ArenaStats struct {
	ActiveDebates     int `json:"activeDebates"`
	PendingChallenges int `json:"pendingChallenges"`
	RegisteredUsers   int `json:"registeredUsers"`
}
