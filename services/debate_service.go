package services

import (
	"sync"
	"time"

	"debatearena/config"
	"debatearena/models"
	"debatearena/rating"

	"github.com/google/uuid"
)

// DebateService owns the user registry, the pending-challenge store, and the
// debate store, and is the only mutator of cross-entity invariants: profile
// counters move in lock-step with challenge and debate transitions. One
// mutex serializes every operation, including scheduled expiry actions.
type DebateService struct {
	cfg config.ArenaConfig

	mu          sync.Mutex
	users       *UserRegistry
	challenges  map[string]*models.Challenge
	debates     map[string]*models.Debate
	debateOrder []string

	sched   *Scheduler
	now     func() time.Time
	publish func(models.Event)
}

// NewDebateService creates an empty arena. Each instance is fully
// independent, so tests can run controllers side by side.
func NewDebateService(cfg config.ArenaConfig) *DebateService {
	s := &DebateService{
		cfg:        cfg,
		challenges: make(map[string]*models.Challenge),
		debates:    make(map[string]*models.Debate),
		sched:      NewScheduler(),
		now:        time.Now,
	}
	s.users = NewUserRegistry(func() time.Time { return s.now() })
	return s
}

// SetEventHandler registers the callback that receives lifecycle events.
// The service never formats or transports them itself.
func (s *DebateService) SetEventHandler(fn func(models.Event)) {
	s.publish = fn
}

// Start drives scheduled expiries from a background ticker.
func (s *DebateService) Start() {
	s.sched.Start(time.Second)
}

// Stop halts the expiry ticker.
func (s *DebateService) Stop() {
	s.sched.Stop()
}

// IssueChallenge validates and stores a new pending challenge and schedules
// its expiry. The challenge lives for the configured TTL unless accepted or
// declined first.
func (s *DebateService) IssueChallenge(req models.ChallengeRequest) (*models.Challenge, error) {
	s.mu.Lock()

	if req.ChallengerID == req.OpponentID {
		s.mu.Unlock()
		return nil, ErrSelfChallenge
	}
	if req.OpponentIsBot {
		s.mu.Unlock()
		return nil, ErrInvalidOpponent
	}

	challenger := s.users.GetOrCreate(req.ChallengerID)
	opponent := s.users.GetOrCreate(req.OpponentID)
	if challenger.ActiveDebates >= s.cfg.MaxActiveDebates || opponent.ActiveDebates >= s.cfg.MaxActiveDebates {
		s.mu.Unlock()
		return nil, ErrConcurrencyLimit
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = s.cfg.DefaultDurationMinutes
	}

	now := s.now()
	challenge := &models.Challenge{
		ID:              uuid.NewString(),
		ChallengerID:    req.ChallengerID,
		OpponentID:      req.OpponentID,
		Topic:           req.Topic,
		DurationMinutes: duration,
		CreatedAt:       now,
		ExpiresAt:       now.Add(time.Duration(s.cfg.ChallengeTTLMinutes) * time.Minute),
		Context:         req.Context,
	}
	s.challenges[challenge.ID] = challenge
	s.sched.Schedule(challenge.ExpiresAt, s.expireChallenge(challenge.ID))

	out := *challenge
	s.mu.Unlock()

	s.emit(models.Event{Type: models.EventChallengeIssued, Challenge: &out})
	return &out, nil
}

// expireChallenge returns the scheduled action that removes the challenge if
// it is still pending when the timer fires. Accept and decline win any race
// simply by deleting the entry first; a stale fire finds nothing to do.
func (s *DebateService) expireChallenge(challengeID string) func() {
	return func() {
		s.mu.Lock()
		challenge, ok := s.challenges[challengeID]
		if !ok {
			s.mu.Unlock()
			return
		}
		delete(s.challenges, challengeID)
		out := *challenge
		s.mu.Unlock()

		s.emit(models.Event{Type: models.EventChallengeExpired, Challenge: &out})
	}
}

// RespondToChallenge accepts or declines a pending challenge on behalf of
// the challenged user. Accepting consumes the challenge and starts the
// debate; the returned debate is nil on decline.
func (s *DebateService) RespondToChallenge(challengeID, responderID string, accept bool) (*models.Debate, error) {
	s.mu.Lock()

	challenge, ok := s.challenges[challengeID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	if responderID != challenge.OpponentID {
		s.mu.Unlock()
		return nil, ErrNotAuthorized
	}

	if !accept {
		delete(s.challenges, challengeID)
		out := *challenge
		s.mu.Unlock()

		s.emit(models.Event{Type: models.EventChallengeDeclined, Challenge: &out})
		return nil, nil
	}

	// Counts may have risen since the challenge was issued; the cap applies
	// at acceptance too. The challenge stays pending until it expires.
	challenger := s.users.GetOrCreate(challenge.ChallengerID)
	opponent := s.users.GetOrCreate(challenge.OpponentID)
	if challenger.ActiveDebates >= s.cfg.MaxActiveDebates || opponent.ActiveDebates >= s.cfg.MaxActiveDebates {
		s.mu.Unlock()
		return nil, ErrConcurrencyLimit
	}

	now := s.now()
	debate := &models.Debate{
		ID:              uuid.NewString(),
		Participants:    [2]string{challenge.ChallengerID, challenge.OpponentID},
		Topic:           challenge.Topic,
		DurationMinutes: challenge.DurationMinutes,
		StartTime:       now,
		EndTime:         now.Add(time.Duration(challenge.DurationMinutes) * time.Minute),
		Status:          models.DebateActive,
		Context:         challenge.Context,
	}
	s.debates[debate.ID] = debate
	s.debateOrder = append(s.debateOrder, debate.ID)
	s.users.IncrementActive(challenge.ChallengerID)
	s.users.IncrementActive(challenge.OpponentID)
	delete(s.challenges, challengeID)
	s.sched.Schedule(debate.EndTime, s.expireDebate(debate.ID))

	out := *debate
	s.mu.Unlock()

	s.emit(models.Event{Type: models.EventDebateStarted, Debate: &out})
	return &out, nil
}

// expireDebate returns the scheduled action that times out a debate still
// active at its end time. Both participants get their active slot back
// exactly once; the entry stays queryable until the retention window ends.
func (s *DebateService) expireDebate(debateID string) func() {
	return func() {
		s.mu.Lock()
		debate, ok := s.debates[debateID]
		if !ok || debate.Status != models.DebateActive {
			s.mu.Unlock()
			return
		}
		debate.Status = models.DebateExpired
		debate.ExpiredAt = s.now()
		s.users.DecrementActive(debate.Participants[0])
		s.users.DecrementActive(debate.Participants[1])
		retention := time.Duration(s.cfg.ExpiredRetentionMinutes) * time.Minute
		s.sched.Schedule(debate.ExpiredAt.Add(retention), s.evictDebate(debateID))

		out := *debate
		s.mu.Unlock()

		s.emit(models.Event{Type: models.EventDebateExpired, Debate: &out})
	}
}

// evictDebate returns the scheduled action that drops an expired entry once
// its retention window has passed, so the store does not grow without bound.
func (s *DebateService) evictDebate(debateID string) func() {
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		debate, ok := s.debates[debateID]
		if !ok || debate.Status != models.DebateExpired {
			return
		}
		s.removeDebate(debateID)
	}
}

// ResolveDebate concludes an active debate, declares the winner, and applies
// the pairwise rating update to both participants.
func (s *DebateService) ResolveDebate(debateID, requesterID, winnerID string) (*models.DebateResult, error) {
	s.mu.Lock()

	debate, ok := s.debates[debateID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	if debate.Status != models.DebateActive {
		s.mu.Unlock()
		return nil, ErrInvalidState
	}
	if !debate.HasParticipant(requesterID) {
		s.mu.Unlock()
		return nil, ErrNotAuthorized
	}
	if !debate.HasParticipant(winnerID) {
		s.mu.Unlock()
		return nil, ErrInvalidWinner
	}

	loserID := debate.OpponentOf(winnerID)
	winner := s.users.GetOrCreate(winnerID)
	loser := s.users.GetOrCreate(loserID)

	preLoserRating := loser.Rating
	delta := rating.ComputeDelta(winner.Rating, loser.Rating)
	s.users.ApplyWin(winnerID, delta)
	s.users.ApplyLoss(loserID, delta)

	debate.Status = models.DebateCompleted
	s.removeDebate(debateID)

	result := &models.DebateResult{
		DebateID:     debateID,
		Topic:        debate.Topic,
		WinnerID:     winnerID,
		LoserID:      loserID,
		WinnerDelta:  delta,
		LoserDelta:   preLoserRating - loser.Rating,
		WinnerRating: winner.Rating,
		LoserRating:  loser.Rating,
	}
	s.mu.Unlock()

	s.emit(models.Event{Type: models.EventDebateResolved, Result: result})
	return result, nil
}

// Profile returns a snapshot of the user's standing, creating the profile on
// first reference.
func (s *DebateService) Profile(userID string) models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.users.GetOrCreate(userID)
}

// Leaderboard returns the top profiles by rating. Ties keep registration
// order.
func (s *DebateService) Leaderboard() []models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users.Ranked(s.cfg.LeaderboardSize)
}

// ActiveDebates returns the user's active debates in insertion order.
func (s *DebateService) ActiveDebates(userID string) []models.Debate {
	s.mu.Lock()
	defer s.mu.Unlock()

	var active []models.Debate
	for _, id := range s.debateOrder {
		debate := s.debates[id]
		if debate.Status == models.DebateActive && debate.HasParticipant(userID) {
			active = append(active, *debate)
		}
	}
	return active
}

// Stats reports the counters shown on the status surface.
func (s *DebateService) Stats() models.ArenaStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := 0
	for _, debate := range s.debates {
		if debate.Status == models.DebateActive {
			active++
		}
	}
	return models.ArenaStats{
		ActiveDebates:     active,
		PendingChallenges: len(s.challenges),
		RegisteredUsers:   s.users.Count(),
	}
}

// Now reports the service clock, used by the adapter to render time-left
// values consistently with expiry decisions.
func (s *DebateService) Now() time.Time {
	return s.now()
}

// removeDebate deletes the entry and its slot in the insertion order.
// Caller holds the mutex.
func (s *DebateService) removeDebate(debateID string) {
	delete(s.debates, debateID)
	for i, id := range s.debateOrder {
		if id == debateID {
			s.debateOrder = append(s.debateOrder[:i], s.debateOrder[i+1:]...)
			break
		}
	}
}

func (s *DebateService) emit(ev models.Event) {
	if s.publish == nil {
		return
	}
	ev.Timestamp = s.now().Unix()
	s.publish(ev)
}
