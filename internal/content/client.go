package content

import (
	"context"
	"math/rand"

	"github.com/aaronzipp/imposter-party/internal/game"
	"github.com/aaronzipp/imposter-party/internal/logger"
	"github.com/aaronzipp/imposter-party/internal/metrics"
	"github.com/aaronzipp/imposter-party/internal/models"
)

// Client is the round-content gateway used by the session. It owns the
// parts of generation that must not be left to the provider: uniform
// category selection, the dedup window, difficulty banding, response
// normalization and the fallback policy.
type Client struct {
	provider Provider
	rng      *rand.Rand
}

// NewClient creates a content client. The rng drives category and style
// selection and is injected so tests can be deterministic.
func NewClient(provider Provider, rng *rand.Rand) *Client {
	return &Client{provider: provider, rng: rng}
}

// RequestRound produces the content for one round. It fails only with
// ErrNoCategories, before any provider call. Any provider failure or
// empty payload is converted into the sentinel fallback content so the
// session can always proceed to distribution.
func (c *Client) RequestRound(ctx context.Context, enabled []string, hist *game.History, difficulty int) (models.RoundContent, error) {
	if len(enabled) == 0 {
		return models.RoundContent{}, ErrNoCategories
	}

	// Picking the category locally keeps the distribution across
	// categories fair regardless of provider bias.
	category := enabled[c.rng.Intn(len(enabled))]

	req := Request{
		Category:   category,
		Band:       BandFor(difficulty),
		Difficulty: difficulty,
		Style:      styleDirectives[c.rng.Intn(len(styleDirectives))],
	}
	if hist != nil {
		req.RecentWords = hist.Recent(category, game.DedupWindow)
	}

	round, err := c.provider.RequestRound(ctx, req)
	if err != nil || round.SecretWord == "" {
		if err != nil {
			logger.Warnf("content provider failed, using fallback: %v", err)
		} else {
			logger.Warnf("content provider returned empty word, using fallback")
		}
		metrics.ContentFallbacks.Inc()
		return models.RoundContent{
			SecretWord: FallbackWord,
			Category:   FallbackCategory,
			Hint:       FallbackHint,
		}, nil
	}

	// The provider does not get to choose the category.
	round.Category = category
	return round, nil
}
