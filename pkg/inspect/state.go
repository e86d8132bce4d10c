package inspect

// State is the lifecycle stage of one inspection run.
type State string

const (
	StateIdle              State = "idle"
	StateLoadingManifest   State = "loading_manifest"
	StateLoadingEnrichment State = "loading_enrichment"
	StateDone              State = "done"
	StateFailed            State = "failed"
)

var transitions = map[State][]State{
	StateIdle:              {StateLoadingManifest, StateFailed},
	StateLoadingManifest:   {StateLoadingEnrichment, StateFailed},
	StateLoadingEnrichment: {StateDone, StateFailed},
}

// CanTransition reports whether a run may move from s to next.
// Done and Failed are terminal.
func (s State) CanTransition(next State) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool { return s == StateDone || s == StateFailed }

func (s State) String() string { return string(s) }
