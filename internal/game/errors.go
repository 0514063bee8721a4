package game

import "errors"

var (
	// ErrInvalidTransition is returned when an operation is called in a
	// phase that does not allow it. Session state is left untouched.
	ErrInvalidTransition = errors.New("operation not valid in current phase")

	// ErrTooFewPlayers is returned when fewer than MinPlayers non-empty
	// names are supplied to StartGame.
	ErrTooFewPlayers = errors.New("need at least 3 players")

	// ErrUnknownPlayer is returned when a player id does not belong to
	// the current roster.
	ErrUnknownPlayer = errors.New("unknown player")
)
