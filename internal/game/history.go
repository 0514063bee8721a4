package game

// History records the secret words issued per category within this
// session. Append-only; it never shrinks. The dedup list handed to the
// content provider is capped via Recent, the stored lists are not.
type History struct {
	words map[string][]string
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{words: make(map[string][]string)}
}

// Append records a word under the given category.
func (h *History) Append(category, word string) {
	h.words[category] = append(h.words[category], word)
}

// Recent returns a copy of at most the n most recently appended words
// for the category, oldest first.
func (h *History) Recent(category string, n int) []string {
	words := h.words[category]
	if len(words) > n {
		words = words[len(words)-n:]
	}
	out := make([]string, len(words))
	copy(out, words)
	return out
}

// Len reports how many words have been recorded for the category.
func (h *History) Len(category string) int {
	return len(h.words[category])
}
