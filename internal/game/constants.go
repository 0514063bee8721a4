package game

const (
	// MinPlayers is the minimum number of named players required to start a round
	MinPlayers = 3

	// DedupWindow is how many recently used words per category are sent to
	// the content provider for duplicate avoidance. Stored history is not
	// trimmed; only the outward list is capped.
	DedupWindow = 50
)
