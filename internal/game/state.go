package game

// State is the session's position in the turn loop.
type State int

const (
	StateAwaitingStart State = iota // Welcome shown, waiting for confirm
	StateGuessing                   // Editing and submitting guesses
	StateReviewing                  // Browsing submitted guesses
	StateWon                        // Secret found
	StateLost                       // Tries exhausted
)

func (s State) String() string {
	switch s {
	case StateAwaitingStart:
		return "awaiting-start"
	case StateGuessing:
		return "guessing"
	case StateReviewing:
		return "reviewing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Outcome records how the game ended, independently of the state the
// player is currently looking at.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}
