package models

// Player represents one participant in the current round
type Player struct {
	ID         string
	Name       string
	IsImposter bool
	HasViewed  bool
}
