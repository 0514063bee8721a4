package models

// SessionStats holds the numbers shown on the reveal screen.
// Overwritten each round.
type SessionStats struct {
	DiscussionDurationSeconds int
}
