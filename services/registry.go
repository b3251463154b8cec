package services

import (
	"sort"
	"time"

	"debatearena/models"
	"debatearena/rating"
)

// UserRegistry maps user IDs to mutable profiles. It is not safe for
// concurrent use on its own; the DebateService serializes access.
type UserRegistry struct {
	profiles map[string]*models.UserProfile
	order    []string // insertion order, keeps leaderboard ties deterministic
	now      func() time.Time
}

// NewUserRegistry creates an empty registry.
func NewUserRegistry(now func() time.Time) *UserRegistry {
	if now == nil {
		now = time.Now
	}
	return &UserRegistry{
		profiles: make(map[string]*models.UserProfile),
		now:      now,
	}
}

// GetOrCreate returns the profile for the user, creating it with defaults on
// first reference.
func (r *UserRegistry) GetOrCreate(userID string) *models.UserProfile {
	if profile, ok := r.profiles[userID]; ok {
		return profile
	}
	profile := &models.UserProfile{
		ID:        userID,
		Rating:    rating.InitialRating,
		CreatedAt: r.now(),
	}
	r.profiles[userID] = profile
	r.order = append(r.order, userID)
	return profile
}

// ApplyWin credits a debate victory and releases the active slot.
func (r *UserRegistry) ApplyWin(userID string, delta int) {
	profile := r.GetOrCreate(userID)
	profile.Rating += delta
	profile.Wins++
	profile.TotalDebates++
	profile.ActiveDebates--
}

// ApplyLoss debits a debate loss, clamping the rating at the floor, and
// releases the active slot.
func (r *UserRegistry) ApplyLoss(userID string, delta int) {
	profile := r.GetOrCreate(userID)
	profile.Rating = rating.ApplyFloor(profile.Rating - delta)
	profile.Losses++
	profile.TotalDebates++
	profile.ActiveDebates--
}

// IncrementActive reserves an active-debate slot. Only challenge acceptance
// moves the counter upward.
func (r *UserRegistry) IncrementActive(userID string) {
	r.GetOrCreate(userID).ActiveDebates++
}

// DecrementActive releases an active-debate slot without recording a result
// (debate timeout).
func (r *UserRegistry) DecrementActive(userID string) {
	r.GetOrCreate(userID).ActiveDebates--
}

// Count returns the number of registered users.
func (r *UserRegistry) Count() int {
	return len(r.profiles)
}

// Ranked returns up to limit profile snapshots sorted by rating descending.
// Ties keep registration order (stable sort over the insertion sequence).
func (r *UserRegistry) Ranked(limit int) []models.UserProfile {
	ranked := make([]models.UserProfile, 0, len(r.order))
	for _, id := range r.order {
		ranked = append(ranked, *r.profiles[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating > ranked[j].Rating
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
