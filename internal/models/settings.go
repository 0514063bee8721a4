package models

// Settings holds the game configuration chosen during setup.
// It survives replays of the same roster and is only edited from setup.
type Settings struct {
	Categories             map[string]bool
	ImposterCount          int
	ShowCategoryToImposter bool
	ShowHintToImposter     bool
	HintDifficulty         int // 1-10
}

// DefaultSettings returns the initial configuration: every category
// enabled, one imposter, easiest hints.
func DefaultSettings() Settings {
	categories := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		categories[c] = true
	}
	return Settings{
		Categories:     categories,
		ImposterCount:  1,
		HintDifficulty: 1,
	}
}

// Enabled returns the enabled category names in the built-in order.
func (s Settings) Enabled() []string {
	enabled := make([]string, 0, len(s.Categories))
	for _, c := range Categories {
		if s.Categories[c] {
			enabled = append(enabled, c)
		}
	}
	// Categories outside the built-in list still count if enabled
	for c, on := range s.Categories {
		if on && !isBuiltin(c) {
			enabled = append(enabled, c)
		}
	}
	return enabled
}

// Clone returns a deep copy safe to hand to other goroutines.
func (s Settings) Clone() Settings {
	categories := make(map[string]bool, len(s.Categories))
	for c, on := range s.Categories {
		categories[c] = on
	}
	out := s
	out.Categories = categories
	return out
}

func isBuiltin(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
