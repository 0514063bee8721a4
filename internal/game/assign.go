package game

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/aaronzipp/imposter-party/internal/models"
)

// Assign builds the roster for a new round. One player per name, in input
// order, each with a fresh id and an unviewed role. min(imposterCount,
// len(names)-1) players are marked imposter, chosen uniformly without
// replacement, so at least one player always knows the word.
//
// Callers must validate len(names) >= MinPlayers; duplicate names are
// allowed and treated as distinct players.
func Assign(rng *rand.Rand, names []string, imposterCount int) []*models.Player {
	count := imposterCount
	if count > len(names)-1 {
		count = len(names) - 1
	}
	if count < 0 {
		count = 0
	}

	imposters := make(map[int]bool, count)
	for _, i := range rng.Perm(len(names))[:count] {
		imposters[i] = true
	}

	players := make([]*models.Player, len(names))
	for i, name := range names {
		players[i] = &models.Player{
			ID:         uuid.New().String(),
			Name:       name,
			IsImposter: imposters[i],
		}
	}
	return players
}

// ValidNames trims the input names and drops empty entries, preserving
// order.
func ValidNames(names []string) []string {
	valid := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			valid = append(valid, name)
		}
	}
	return valid
}
