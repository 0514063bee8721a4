package models

// RoundContent holds the generated content for one round.
// It is set once when a round starts and replaced wholesale on replay.
type RoundContent struct {
	SecretWord string `json:"secretWord"`
	Category   string `json:"category"`
	Hint       string `json:"hint"`
}
