package entities

import "time"

// RoundState is the phase a round is in
type RoundState string

const (
	StateDealing    RoundState = "DEALING"
	StatePlayerTurn RoundState = "PLAYER_TURN"
	StateDealerTurn RoundState = "DEALER_TURN"
	StateResolved   RoundState = "RESOLVED"
)

// Outcome represents how a resolved round ended
type Outcome string

const (
	OutcomePlayerBlackjack Outcome = "PLAYER_BLACKJACK"
	OutcomePlayerBust      Outcome = "PLAYER_BUST"
	OutcomeDealerBust      Outcome = "DEALER_BUST"
	OutcomePlayerWins      Outcome = "PLAYER_WINS"
	OutcomeDealerWins      Outcome = "DEALER_WINS"
)

// Outcomes returns every outcome a round can resolve to
func Outcomes() []Outcome {
	return []Outcome{
		OutcomePlayerBlackjack,
		OutcomePlayerBust,
		OutcomeDealerBust,
		OutcomePlayerWins,
		OutcomeDealerWins,
	}
}

// String returns the string representation of the outcome
func (o Outcome) String() string {
	return string(o)
}

// PlayerWon returns true if this outcome is a win for the player
func (o Outcome) PlayerWon() bool {
	return o == OutcomePlayerBlackjack || o == OutcomeDealerBust || o == OutcomePlayerWins
}

// Valid reports whether o is a known outcome
func (o Outcome) Valid() bool {
	for _, known := range Outcomes() {
		if o == known {
			return true
		}
	}
	return false
}

// Decision is a player's choice during their turn
type Decision int

const (
	DecisionNone Decision = iota
	DecisionHit
	DecisionStand
)

// String returns the string representation of the decision
func (d Decision) String() string {
	switch d {
	case DecisionHit:
		return "HIT"
	case DecisionStand:
		return "STAND"
	default:
		return "NONE"
	}
}

// Transition records one state change of a round
type Transition struct {
	From RoundState
	To   RoundState
	At   time.Time
}

// RoundResult is a snapshot of a resolved round
type RoundResult struct {
	ID          string
	Outcome     Outcome
	PlayerCards []Card
	DealerCards []Card
	PlayerTotal int
	DealerTotal int
	CompletedAt time.Time
}
