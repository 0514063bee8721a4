package models

// Phase represents the current stage of the session
type Phase string

const (
	PhaseSetup        Phase = "setup"
	PhaseLoading      Phase = "loading"
	PhaseDistribution Phase = "distribution"
	PhaseDiscussion   Phase = "discussion"
	PhaseReveal       Phase = "reveal"
)

func (p Phase) String() string {
	return string(p)
}
