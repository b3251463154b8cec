package models

import "time"

// UserProfile defines a debater's standing. Profiles are created lazily on
// first reference and live for the lifetime of the process.
type UserProfile struct {
	ID            string    `json:"id"`
	Rating        int       `json:"rating"`
	Wins          int       `json:"wins"`
	Losses        int       `json:"losses"`
	ActiveDebates int       `json:"activeDebates"`
	TotalDebates  int       `json:"totalDebates"`
	CreatedAt     time.Time `json:"createdAt"`
}

// WinRatePercent returns the rounded win percentage. The second return is
// false when the user has no completed debates yet.
func (u *UserProfile) WinRatePercent() (int, bool) {
	if u.TotalDebates == 0 {
		return 0, false
	}
	return int(float64(u.Wins)/float64(u.TotalDebates)*100 + 0.5), true
}
