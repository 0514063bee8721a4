package game

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/aaronzipp/imposter-party/internal/logger"
	"github.com/aaronzipp/imposter-party/internal/metrics"
	"github.com/aaronzipp/imposter-party/internal/models"
)

// RoundGenerator produces the content for a new round. Implementations
// must only fail when no categories are enabled; provider trouble is
// absorbed into fallback content so a round can always start.
type RoundGenerator interface {
	RequestRound(ctx context.Context, enabled []string, hist *History, difficulty int) (models.RoundContent, error)
}

// Session is the single game session owned by this process. All state
// (phase, roster, round content, history, stats) is mutated only inside
// its transition methods, which are serialized by the mutex. The content
// generation call is the one slow operation and runs with the lock
// released; the loading phase rejects re-entry while it is outstanding.
type Session struct {
	mu sync.Mutex

	phase    models.Phase
	players  []*models.Player
	settings models.Settings
	round    *models.RoundContent
	history  *History
	stats    models.SessionStats
	errorMsg string

	discussionStart time.Time

	generator RoundGenerator
	rng       *rand.Rand
	now       func() time.Time
}

// Snapshot is a copy of the observable session state for the
// presentation layer.
type Snapshot struct {
	Phase    models.Phase
	Players  []models.Player
	Round    *models.RoundContent
	Stats    models.SessionStats
	Settings models.Settings
	Error    string
}

// NewSession creates a session in the setup phase.
func NewSession(generator RoundGenerator, rng *rand.Rand) *Session {
	return &Session{
		phase:     models.PhaseSetup,
		settings:  models.DefaultSettings(),
		history:   NewHistory(),
		generator: generator,
		rng:       rng,
		now:       time.Now,
	}
}

// StartGame begins a new round. Valid from setup and reveal. It enters
// loading, requests round content, records the word in the history,
// assigns roles and lands in distribution. The only failure that sends
// the session back to setup is an invalid configuration (too few names,
// no enabled categories); provider failures arrive here as fallback
// content and still start the round.
func (s *Session) StartGame(ctx context.Context, names []string, settings models.Settings) error {
	valid := ValidNames(names)

	s.mu.Lock()
	if s.phase != models.PhaseSetup && s.phase != models.PhaseReveal {
		s.mu.Unlock()
		return ErrInvalidTransition
	}
	if len(valid) < MinPlayers {
		s.phase = models.PhaseSetup
		s.errorMsg = "At least 3 players are needed to start."
		s.mu.Unlock()
		return ErrTooFewPlayers
	}
	s.settings = settings.Clone()
	s.phase = models.PhaseLoading
	s.errorMsg = ""
	enabled := s.settings.Enabled()
	difficulty := s.settings.HintDifficulty
	s.mu.Unlock()

	// The generation request runs unlocked. The history is safe to read
	// here: it is only written by StartGame, and the loading phase keeps
	// a second StartGame out.
	round, err := s.generator.RequestRound(ctx, enabled, s.history, difficulty)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.phase = models.PhaseSetup
		s.errorMsg = "Failed to generate game. Please try again. " + err.Error()
		logger.Warnf("start game failed: %v", err)
		return err
	}

	s.history.Append(round.Category, round.SecretWord)
	s.players = Assign(s.rng, valid, s.settings.ImposterCount)
	s.round = &round
	s.stats = models.SessionStats{}
	s.phase = models.PhaseDistribution

	metrics.RoundsGenerated.WithLabelValues(round.Category).Inc()
	logger.Infof("round started: category=%s players=%d", round.Category, len(s.players))
	return nil
}

// MarkViewed records that a player has privately viewed their role.
// Idempotent per player. When the last unviewed player is marked, the
// discussion clock starts and the session advances to discussion on its
// own; the returned bool reports that edge.
func (s *Session) MarkViewed(playerID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseDistribution {
		return false, ErrInvalidTransition
	}

	var found *models.Player
	for _, p := range s.players {
		if p.ID == playerID {
			found = p
			break
		}
	}
	if found == nil {
		return false, ErrUnknownPlayer
	}
	found.HasViewed = true

	for _, p := range s.players {
		if !p.HasViewed {
			return false, nil
		}
	}

	s.discussionStart = s.now()
	s.phase = models.PhaseDiscussion
	logger.Infof("all players viewed, discussion started")
	return true, nil
}

// Reveal ends the discussion, captures its duration and moves to the
// reveal phase.
func (s *Session) Reveal() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseDiscussion {
		return ErrInvalidTransition
	}

	elapsed := s.now().Sub(s.discussionStart)
	if elapsed < 0 {
		elapsed = 0
	}
	s.stats.DiscussionDurationSeconds = int(elapsed / time.Second)
	s.phase = models.PhaseReveal

	metrics.DiscussionDuration.Observe(elapsed.Seconds())
	logger.Infof("round revealed: discussion=%ds", s.stats.DiscussionDurationSeconds)
	return nil
}

// PlayAgain starts a fresh round with the current roster names (order
// preserved) and settings. Previous roles, ids and content are discarded.
func (s *Session) PlayAgain(ctx context.Context) error {
	s.mu.Lock()
	if s.phase != models.PhaseReveal {
		s.mu.Unlock()
		return ErrInvalidTransition
	}
	names := make([]string, len(s.players))
	for i, p := range s.players {
		names[i] = p.Name
	}
	settings := s.settings.Clone()
	s.mu.Unlock()

	return s.StartGame(ctx, names, settings)
}

// ChangeSettings returns to setup for a new configuration, discarding
// the roster and round content. The settings value itself is kept so the
// setup screen can pre-fill it.
func (s *Session) ChangeSettings() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != models.PhaseReveal {
		return ErrInvalidTransition
	}
	s.players = nil
	s.round = nil
	s.phase = models.PhaseSetup
	return nil
}

// ClearError dismisses the current user-visible error message.
func (s *Session) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorMsg = ""
}

// Snapshot returns a copy of the observable state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Phase:    s.phase,
		Stats:    s.stats,
		Settings: s.settings.Clone(),
		Error:    s.errorMsg,
	}
	snap.Players = make([]models.Player, len(s.players))
	for i, p := range s.players {
		snap.Players[i] = *p
	}
	if s.round != nil {
		round := *s.round
		snap.Round = &round
	}
	return snap
}
