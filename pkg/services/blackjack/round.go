package blackjack

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/google/uuid"
)

// DecisionSource supplies the player's choices during their turn. An
// implementation may wait on a person; the round itself never reads input.
type DecisionSource interface {
	NextDecision() entities.Decision
}

// Round plays one hand of blackjack between a player and the dealer.
//
// A round moves through DEALING, PLAYER_TURN, DEALER_TURN and RESOLVED. A
// natural 21 on the deal or a player bust skips straight to RESOLVED without
// the dealer drawing. A Round is not safe for concurrent use.
type Round struct {
	id          string
	deck        *entities.Deck
	player      *Hand
	dealer      *Hand
	state       entities.RoundState
	outcome     entities.Outcome
	transitions []entities.Transition
	completedAt time.Time
	logger      *logging.Logger
	now         func() time.Time
}

// NewRound creates a round that deals from deck. The round owns the deck from
// here on.
func NewRound(deck *entities.Deck) *Round {
	return &Round{
		id:     uuid.New().String(),
		deck:   deck,
		player: NewHand(),
		dealer: NewHand(),
		state:  entities.StateDealing,
		logger: logging.Default,
		now:    time.Now,
	}
}

// NewShuffledRound builds a fresh 52 card deck, shuffles it once with rng and
// returns a round ready to deal
func NewShuffledRound(rng *rand.Rand) *Round {
	deck := entities.NewDeck(rng)
	deck.Shuffle()
	return NewRound(deck)
}

// WithLogger replaces the logger used for state changes
func (r *Round) WithLogger(logger *logging.Logger) *Round {
	r.logger = logger
	return r
}

// ID returns the round's unique identifier
func (r *Round) ID() string {
	return r.id
}

// State returns the current phase of the round
func (r *Round) State() entities.RoundState {
	return r.state
}

// Outcome returns how the round ended. The second value is false until the
// round is resolved.
func (r *Round) Outcome() (entities.Outcome, bool) {
	if r.state != entities.StateResolved {
		return "", false
	}
	return r.outcome, true
}

// Player returns the player's hand
func (r *Round) Player() *Hand {
	return r.player
}

// Dealer returns the dealer's hand
func (r *Round) Dealer() *Hand {
	return r.dealer
}

// DeckSize returns the number of undealt cards
func (r *Round) DeckSize() int {
	return r.deck.Size()
}

// Transitions returns the state changes made so far, oldest first
func (r *Round) Transitions() []entities.Transition {
	transitions := make([]entities.Transition, len(r.transitions))
	copy(transitions, r.transitions)
	return transitions
}

// Deal gives two cards each to the player and the dealer. A player natural
// resolves the round immediately.
func (r *Round) Deal() error {
	if err := r.requireState(entities.StateDealing, "deal"); err != nil {
		return err
	}

	for i := 0; i < InitialCards; i++ {
		r.player.AddCard(r.deck.Deal())
	}
	for i := 0; i < InitialCards; i++ {
		r.dealer.AddCard(r.deck.Deal())
	}

	if r.player.Total() == Blackjack {
		r.resolve(entities.OutcomePlayerBlackjack)
		return nil
	}

	r.transition(entities.StatePlayerTurn)
	return nil
}

// Act applies one player decision. Decisions other than hit and stand are
// ignored and leave the round where it was, so the caller can ask again.
func (r *Round) Act(decision entities.Decision) error {
	if err := r.requireState(entities.StatePlayerTurn, "act"); err != nil {
		return err
	}

	switch decision {
	case entities.DecisionHit:
		card := r.deck.Deal()
		r.player.AddCard(card)
		r.logger.Debug("Round %s: player hit %s, total %d", r.id, card, r.player.Total())
		if r.player.Total() > Blackjack {
			r.resolve(entities.OutcomePlayerBust)
		}
	case entities.DecisionStand:
		r.logger.Debug("Round %s: player stands on %d", r.id, r.player.Total())
		r.transition(entities.StateDealerTurn)
	default:
		r.logger.Debug("Round %s: ignoring unrecognized decision %d", r.id, int(decision))
	}

	return nil
}

// PlayDealer draws for the dealer until the total reaches 17, then settles
// the round
func (r *Round) PlayDealer() error {
	if err := r.requireState(entities.StateDealerTurn, "play dealer"); err != nil {
		return err
	}

	for DealerShouldDraw(r.dealer.cards) {
		card := r.deck.Deal()
		r.dealer.AddCard(card)
		r.logger.Debug("Round %s: dealer drew %s, total %d", r.id, card, r.dealer.Total())
	}

	r.resolve(Resolve(r.player.Total(), r.dealer.Total()))
	return nil
}

// Play runs the whole round, asking source for each player decision
func (r *Round) Play(source DecisionSource) (entities.Outcome, error) {
	if err := r.Deal(); err != nil {
		return "", err
	}

	for r.state == entities.StatePlayerTurn {
		if err := r.Act(source.NextDecision()); err != nil {
			return "", err
		}
	}

	if r.state == entities.StateDealerTurn {
		if err := r.PlayDealer(); err != nil {
			return "", err
		}
	}

	return r.outcome, nil
}

// Result returns a snapshot of a resolved round
func (r *Round) Result() (*entities.RoundResult, error) {
	if err := r.requireState(entities.StateResolved, "read result"); err != nil {
		return nil, err
	}

	return &entities.RoundResult{
		ID:          r.id,
		Outcome:     r.outcome,
		PlayerCards: r.player.Cards(),
		DealerCards: r.dealer.Cards(),
		PlayerTotal: r.player.Total(),
		DealerTotal: r.dealer.Total(),
		CompletedAt: r.completedAt,
	}, nil
}

func (r *Round) requireState(want entities.RoundState, action string) error {
	if r.state != want {
		return types.NewGameError(types.ErrInvalidState,
			fmt.Sprintf("cannot %s while round is %s", action, r.state))
	}
	return nil
}

func (r *Round) resolve(outcome entities.Outcome) {
	r.outcome = outcome
	r.completedAt = r.now()
	r.transition(entities.StateResolved)
	r.logger.Debug("Round %s resolved: %s (player %d, dealer %d)",
		r.id, outcome, r.player.Total(), r.dealer.Total())
}

func (r *Round) transition(to entities.RoundState) {
	r.transitions = append(r.transitions, entities.Transition{
		From: r.state,
		To:   to,
		At:   r.now(),
	})
	r.state = to
}
