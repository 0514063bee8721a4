package content

import (
	"context"
	"errors"

	"github.com/aaronzipp/imposter-party/internal/models"
)

// Band is the hint-difficulty band handed to the provider. The exact
// hint wording is the provider's concern; the core only picks the band.
type Band string

const (
	BandEasy   Band = "easy"
	BandMedium Band = "medium"
	BandHard   Band = "hard"
)

// BandFor maps the 1-10 difficulty slider onto a band: <=3 easy,
// 4-7 medium, >=8 hard.
func BandFor(difficulty int) Band {
	switch {
	case difficulty <= 3:
		return BandEasy
	case difficulty >= 8:
		return BandHard
	default:
		return BandMedium
	}
}

// Request is what the provider receives for one round. The category is
// chosen locally and is final; RecentWords carries at most the
// DedupWindow most recent words for that category.
type Request struct {
	Category    string
	RecentWords []string
	Band        Band
	Difficulty  int
	Style       string
}

// Provider generates round content for a fixed category. A Provider may
// fail freely (network, parse, empty payload); the Client absorbs those
// failures.
type Provider interface {
	RequestRound(ctx context.Context, req Request) (models.RoundContent, error)
}

// ErrNoCategories is returned before any provider interaction when the
// enabled category set is empty.
var ErrNoCategories = errors.New("no categories selected")

// Fallback content served when the provider fails. Keeping the round
// playable on provider flakiness is deliberate; the failure is counted
// in metrics instead of surfaced as an error.
const (
	FallbackWord     = "Error Generating Word"
	FallbackCategory = "System"
	FallbackHint     = "Try Again"
)

// styleDirectives nudge the provider toward varied picks within a
// category. One is chosen at random per round.
var styleDirectives = []string{
	"a very popular and iconic example",
	"a classic or traditional example",
	"a modern or trending example",
	"a specific but recognizable example",
	"a broad concept or type within the category",
	"an example that is distinct from typical choices",
}
