package game

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/imposter-party/internal/models"
)

// stubGenerator satisfies RoundGenerator with canned responses.
type stubGenerator struct {
	round models.RoundContent
	err   error

	calls          int
	lastEnabled    []string
	lastDifficulty int
}

func (g *stubGenerator) RequestRound(_ context.Context, enabled []string, _ *History, difficulty int) (models.RoundContent, error) {
	g.calls++
	g.lastEnabled = enabled
	g.lastDifficulty = difficulty
	if g.err != nil {
		return models.RoundContent{}, g.err
	}
	return g.round, nil
}

func testRound() models.RoundContent {
	return models.RoundContent{SecretWord: "Falafel", Category: "Foods", Hint: "street food"}
}

func newTestSession(gen RoundGenerator) *Session {
	return NewSession(gen, rand.New(rand.NewSource(1)))
}

func testSettings() models.Settings {
	s := models.DefaultSettings()
	s.ImposterCount = 1
	s.HintDifficulty = 4
	return s
}

func TestStartGame(t *testing.T) {
	gen := &stubGenerator{round: testRound()}
	s := newTestSession(gen)

	err := s.StartGame(context.Background(), []string{"Ann", "Bo", "Cy"}, testSettings())
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, models.PhaseDistribution, snap.Phase)
	require.Len(t, snap.Players, 3)

	imposters := 0
	for _, p := range snap.Players {
		assert.False(t, p.HasViewed)
		if p.IsImposter {
			imposters++
		}
	}
	assert.Equal(t, 1, imposters)

	require.NotNil(t, snap.Round)
	assert.Equal(t, "Falafel", snap.Round.SecretWord)

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, 4, gen.lastDifficulty)
	assert.Contains(t, gen.lastEnabled, "Foods")
	assert.Equal(t, 1, s.history.Len("Foods"), "word recorded under its category")
}

func TestStartGameTrimsNames(t *testing.T) {
	gen := &stubGenerator{round: testRound()}
	s := newTestSession(gen)

	err := s.StartGame(context.Background(), []string{" Ann ", "", "Bo", "  ", "Cy"}, testSettings())
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Len(t, snap.Players, 3)
	assert.Equal(t, "Ann", snap.Players[0].Name)
}

func TestStartGameTooFewPlayers(t *testing.T) {
	gen := &stubGenerator{round: testRound()}
	s := newTestSession(gen)

	err := s.StartGame(context.Background(), []string{"Ann", "", "   "}, testSettings())
	assert.ErrorIs(t, err, ErrTooFewPlayers)

	snap := s.Snapshot()
	assert.Equal(t, models.PhaseSetup, snap.Phase)
	assert.NotEmpty(t, snap.Error)
	assert.Zero(t, gen.calls, "no generation attempted")
}

func TestStartGameGeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("no categories selected")}
	s := newTestSession(gen)

	err := s.StartGame(context.Background(), []string{"Ann", "Bo", "Cy"}, testSettings())
	require.Error(t, err)

	snap := s.Snapshot()
	assert.Equal(t, models.PhaseSetup, snap.Phase, "configuration failure returns to setup")
	assert.Contains(t, snap.Error, "Failed to generate game")
}

func TestStartGameRejectedMidRound(t *testing.T) {
	gen := &stubGenerator{round: testRound()}
	s := newTestSession(gen)
	require.NoError(t, s.StartGame(context.Background(), []string{"Ann", "Bo", "Cy"}, testSettings()))

	err := s.StartGame(context.Background(), []string{"Ann", "Bo", "Cy"}, testSettings())
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, models.PhaseDistribution, s.Snapshot().Phase)
}

func TestMarkViewedIdempotent(t *testing.T) {
	gen := &stubGenerator{round: testRound()}
	s := newTestSession(gen)
	require.NoError(t, s.StartGame(context.Background(), []string{"Ann", "Bo", "Cy"}, testSettings()))

	id := s.Snapshot().Players[0].ID

	all, err := s.MarkViewed(id)
	require.NoError(t, err)
	assert.False(t, all)

	all, err = s.MarkViewed(id)
	require.NoError(t, err)
	assert.False(t, all)

	viewed := 0
	for _, p := range s.Snapshot().Players {
		if p.HasViewed {
			viewed++
		}
	}
	assert.Equal(t, 1, viewed)
	assert.Equal(t, models.PhaseDistribution, s.Snapshot().Phase)
}

func TestMarkViewedUnknownPlayer(t *testing.T) {
	gen := &stubGenerator{round: testRound()}
	s := newTestSession(gen)
	require.NoError(t, s.StartGame(context.Background(), []string{"Ann", "Bo", "Cy"}, testSettings()))

	_, err := s.MarkViewed("nope")
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestMarkViewedAdvancesOnlyWhenAllViewed(t *testing.T) {
	gen := &stubGenerator{round: testRound()}
	s := newTestSession(gen)
	require.NoError(t, s.StartGame(context.Background(), []string{"A", "B", "C", "D", "E"}, testSettings()))

	players := s.Snapshot().Players
	for _, p := range players[:4] {
		all, err := s.MarkViewed(p.ID)
		require.NoError(t, err)
		assert.False(t, all)
	}
	assert.Equal(t, models.PhaseDistribution, s.Snapshot().Phase, "four of five viewed must not advance")

	all, err := s.MarkViewed(players[4].ID)
	require.NoError(t, err)
	assert.True(t, all)
	assert.Equal(t, models.PhaseDiscussion, s.Snapshot().Phase)
}

func TestRevealCapturesDuration(t *testing.T) {
	gen := &stubGenerator{round: testRound()}
	s := newTestSession(gen)

	now := time.Date(2026, 8, 28, 20, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.StartGame(context.Background(), []string{"Ann", "Bo", "Cy"}, testSettings()))
	for _, p := range s.Snapshot().Players {
		s.MarkViewed(p.ID)
	}
	require.Equal(t, models.PhaseDiscussion, s.Snapshot().Phase)

	now = now.Add(95*time.Second + 700*time.Millisecond)
	require.NoError(t, s.Reveal())

	snap := s.Snapshot()
	assert.Equal(t, models.PhaseReveal, snap.Phase)
	assert.Equal(t, 95, snap.Stats.DiscussionDurationSeconds, "duration is floored to whole seconds")
}

func TestRevealOutsideDiscussion(t *testing.T) {
	gen := &stubGenerator{round: testRound()}
	s := newTestSession(gen)

	assert.ErrorIs(t, s.Reveal(), ErrInvalidTransition)

	require.NoError(t, s.StartGame(context.Background(), []string{"Ann", "Bo", "Cy"}, testSettings()))
	assert.ErrorIs(t, s.Reveal(), ErrInvalidTransition)
	assert.Equal(t, models.PhaseDistribution, s.Snapshot().Phase, "state untouched by rejected call")
}

func finishRound(t *testing.T, s *Session) {
	t.Helper()
	for _, p := range s.Snapshot().Players {
		_, err := s.MarkViewed(p.ID)
		require.NoError(t, err)
	}
	require.NoError(t, s.Reveal())
}

func TestPlayAgain(t *testing.T) {
	gen := &stubGenerator{round: testRound()}
	s := newTestSession(gen)
	require.NoError(t, s.StartGame(context.Background(), []string{"Ann", "Bo", "Cy"}, testSettings()))

	firstIDs := make(map[string]bool)
	for _, p := range s.Snapshot().Players {
		firstIDs[p.ID] = true
	}
	finishRound(t, s)

	gen.round = models.RoundContent{SecretWord: "Tiger", Category: "Animals", Hint: "stripes"}
	require.NoError(t, s.PlayAgain(context.Background()))

	snap := s.Snapshot()
	assert.Equal(t, models.PhaseDistribution, snap.Phase)
	require.Len(t, snap.Players, 3)
	for i, name := range []string{"Ann", "Bo", "Cy"} {
		assert.Equal(t, name, snap.Players[i].Name, "roster order preserved")
		assert.False(t, snap.Players[i].HasViewed)
		assert.False(t, firstIDs[snap.Players[i].ID], "replay must issue fresh ids")
	}
	assert.Equal(t, "Tiger", snap.Round.SecretWord)
	assert.Equal(t, 1, s.history.Len("Animals"))
	assert.Equal(t, 1, s.history.Len("Foods"))
}

func TestPlayAgainOnlyFromReveal(t *testing.T) {
	gen := &stubGenerator{round: testRound()}
	s := newTestSession(gen)

	assert.ErrorIs(t, s.PlayAgain(context.Background()), ErrInvalidTransition)
}

func TestChangeSettings(t *testing.T) {
	gen := &stubGenerator{round: testRound()}
	s := newTestSession(gen)
	require.NoError(t, s.StartGame(context.Background(), []string{"Ann", "Bo", "Cy"}, testSettings()))
	finishRound(t, s)

	require.NoError(t, s.ChangeSettings())

	snap := s.Snapshot()
	assert.Equal(t, models.PhaseSetup, snap.Phase)
	assert.Empty(t, snap.Players)
	assert.Nil(t, snap.Round)
	assert.Equal(t, 4, snap.Settings.HintDifficulty, "settings kept for editing")
}

func TestClearError(t *testing.T) {
	gen := &stubGenerator{round: testRound()}
	s := newTestSession(gen)

	s.StartGame(context.Background(), []string{"Ann"}, testSettings())
	assert.NotEmpty(t, s.Snapshot().Error)

	s.ClearError()
	assert.Empty(t, s.Snapshot().Error)
}

func TestSnapshotIsACopy(t *testing.T) {
	gen := &stubGenerator{round: testRound()}
	s := newTestSession(gen)
	require.NoError(t, s.StartGame(context.Background(), []string{"Ann", "Bo", "Cy"}, testSettings()))

	snap := s.Snapshot()
	snap.Players[0].HasViewed = true
	snap.Round.SecretWord = "mutated"
	snap.Settings.Categories["Foods"] = false

	fresh := s.Snapshot()
	assert.False(t, fresh.Players[0].HasViewed)
	assert.Equal(t, "Falafel", fresh.Round.SecretWord)
	assert.True(t, fresh.Settings.Categories["Foods"])
}
