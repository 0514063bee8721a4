package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignBasic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	players := Assign(rng, []string{"Ann", "Bo", "Cy"}, 1)

	require.Len(t, players, 3)
	imposters := 0
	for i, p := range players {
		assert.Equal(t, []string{"Ann", "Bo", "Cy"}[i], p.Name, "input order preserved")
		assert.NotEmpty(t, p.ID)
		assert.False(t, p.HasViewed)
		if p.IsImposter {
			imposters++
		}
	}
	assert.Equal(t, 1, imposters)
}

func TestAssignCapsImposterCount(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, requested := range []int{3, 4, 10} {
		players := Assign(rng, []string{"A", "B", "C"}, requested)
		imposters := 0
		for _, p := range players {
			if p.IsImposter {
				imposters++
			}
		}
		assert.Equal(t, 2, imposters, "requested=%d: at least one player must not be an imposter", requested)
	}
}

func TestAssignFreshIDs(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	first := Assign(rng, []string{"A", "B", "C"}, 1)
	second := Assign(rng, []string{"A", "B", "C"}, 1)

	seen := make(map[string]bool)
	for _, p := range append(first, second...) {
		assert.False(t, seen[p.ID], "ids must be unique across assignments")
		seen[p.ID] = true
	}
}

func TestAssignDuplicateNamesAreDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	players := Assign(rng, []string{"Sam", "Sam", "Sam"}, 1)

	require.Len(t, players, 3)
	assert.NotEqual(t, players[0].ID, players[1].ID)
	assert.NotEqual(t, players[1].ID, players[2].ID)
}

// TestAssignUniform checks that every position is picked as imposter at
// roughly the same rate over many trials.
func TestAssignUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	names := []string{"A", "B", "C", "D", "E"}
	const trials = 5000

	counts := make([]int, len(names))
	for trial := 0; trial < trials; trial++ {
		for i, p := range Assign(rng, names, 1) {
			if p.IsImposter {
				counts[i]++
			}
		}
	}

	expected := float64(trials) / float64(len(names))
	for i, c := range counts {
		assert.InDelta(t, expected, float64(c), expected*0.15, "position %d", i)
	}
}

func TestValidNames(t *testing.T) {
	got := ValidNames([]string{" Ann ", "", "  ", "Bo", "Cy"})
	assert.Equal(t, []string{"Ann", "Bo", "Cy"}, got)
}
