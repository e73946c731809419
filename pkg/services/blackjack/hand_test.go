package blackjack

import (
	"testing"

	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/stretchr/testify/suite"
)

type HandTestSuite struct {
	suite.Suite
}

func TestHandSuite(t *testing.T) {
	suite.Run(t, new(HandTestSuite))
}

// cards builds cards of the given ranks, cycling through the suits
func cards(ranks ...entities.Rank) []entities.Card {
	suits := entities.Suits()
	out := make([]entities.Card, 0, len(ranks))
	for i, rank := range ranks {
		out = append(out, entities.NewCard(suits[i%len(suits)], rank))
	}
	return out
}

func handOf(ranks ...entities.Rank) *Hand {
	hand := NewHand()
	for _, card := range cards(ranks...) {
		hand.AddCard(card)
	}
	return hand
}

func (s *HandTestSuite) TestTotal() {
	testCases := []struct {
		name     string
		ranks    []entities.Rank
		expected int
		soft     bool
	}{
		{name: "empty hand", ranks: nil, expected: 0},
		{name: "no aces", ranks: []entities.Rank{entities.Ten, entities.Seven}, expected: 17},
		{name: "face cards", ranks: []entities.Rank{entities.King, entities.Queen}, expected: 20},
		{name: "blackjack", ranks: []entities.Rank{entities.Ace, entities.King}, expected: 21, soft: true},
		{name: "soft seventeen", ranks: []entities.Rank{entities.Ace, entities.Six}, expected: 17, soft: true},
		{name: "ace forced low", ranks: []entities.Rank{entities.Ace, entities.Nine, entities.Two}, expected: 12},
		{name: "two aces", ranks: []entities.Rank{entities.Ace, entities.Ace}, expected: 12, soft: true},
		{name: "two aces and nine", ranks: []entities.Rank{entities.Ace, entities.Ace, entities.Nine}, expected: 21, soft: true},
		{name: "hard sum exactly eleven", ranks: []entities.Rank{entities.Ace, entities.Four, entities.Six}, expected: 21, soft: true},
		{name: "hard sum twelve", ranks: []entities.Rank{entities.Ace, entities.Five, entities.Six}, expected: 12},
		{name: "four aces", ranks: []entities.Rank{entities.Ace, entities.Ace, entities.Ace, entities.Ace}, expected: 14, soft: true},
		{name: "bust", ranks: []entities.Rank{entities.Ten, entities.Nine, entities.Five}, expected: 24},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			hand := handOf(tc.ranks...)

			s.Equal(tc.expected, hand.Total())
			s.Equal(tc.soft, hand.IsSoft())
			s.Equal(tc.expected > Blackjack, hand.IsBust())
		})
	}
}

func (s *HandTestSuite) TestTotalWithoutAcesIsSum() {
	nonAces := entities.Ranks()[1:]
	for _, first := range nonAces {
		for _, second := range nonAces {
			for _, third := range nonAces {
				hand := handOf(first, second, third)
				expected := 0
				for _, card := range hand.Cards() {
					expected += card.Value()
				}
				s.Equal(expected, hand.Total(), "%v %v %v", first, second, third)
			}
		}
	}
}

func (s *HandTestSuite) TestTotalWithOneAce() {
	nonAces := entities.Ranks()[1:]
	for _, first := range nonAces {
		for _, second := range nonAces {
			hand := handOf(entities.Ace, first, second)
			hard := HardTotal(hand.Cards())
			if hard <= 11 {
				s.Equal(hard+10, hand.Total(), "Ace should count high on hard %d", hard)
			} else {
				s.Equal(hard, hand.Total(), "Ace should count low on hard %d", hard)
			}
		}
	}
}

func (s *HandTestSuite) TestTotalIsRecomputed() {
	hand := handOf(entities.Ace, entities.Five)
	s.Equal(16, hand.Total())

	hand.AddCard(entities.NewCard(entities.Clubs, entities.King))
	s.Equal(16, hand.Total(), "Ace should drop to 1 once the hand goes hard")

	hand.AddCard(entities.NewCard(entities.Clubs, entities.Six))
	s.Equal(22, hand.Total())
}

func (s *HandTestSuite) TestIsBlackjack() {
	s.True(handOf(entities.Ace, entities.Jack).IsBlackjack())
	s.False(handOf(entities.Seven, entities.Seven, entities.Seven).IsBlackjack(), "Three card 21 is not a natural")
	s.False(handOf(entities.Ace, entities.Nine).IsBlackjack())
}

func (s *HandTestSuite) TestCardsKeepsOrderAndCopies() {
	hand := handOf(entities.Two, entities.Ace, entities.King)

	held := hand.Cards()
	s.Equal(3, hand.Len())
	s.Equal(entities.Two, held[0].Rank())
	s.Equal(entities.Ace, held[1].Rank())
	s.Equal(entities.King, held[2].Rank())

	held[0] = entities.NewCard(entities.Hearts, entities.Ten)
	s.Equal(entities.Two, hand.Cards()[0].Rank(), "Callers should not be able to edit the hand")
}

func (s *HandTestSuite) TestResolve() {
	testCases := []struct {
		name     string
		player   int
		dealer   int
		expected entities.Outcome
	}{
		{name: "dealer bust", player: 18, dealer: 26, expected: entities.OutcomeDealerBust},
		{name: "player higher", player: 20, dealer: 18, expected: entities.OutcomePlayerWins},
		{name: "dealer higher", player: 17, dealer: 19, expected: entities.OutcomeDealerWins},
		{name: "tie goes to dealer", player: 20, dealer: 20, expected: entities.OutcomeDealerWins},
		{name: "dealer twenty one", player: 21, dealer: 21, expected: entities.OutcomeDealerWins},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, Resolve(tc.player, tc.dealer))
		})
	}
}

func (s *HandTestSuite) TestDealerShouldDraw() {
	s.True(DealerShouldDraw(cards(entities.Ten, entities.Six)))
	s.False(DealerShouldDraw(cards(entities.Ten, entities.Seven)))
	s.False(DealerShouldDraw(cards(entities.Ace, entities.Six)), "Dealer stands on soft 17")
	s.True(DealerShouldDraw(cards(entities.Ace, entities.Five)))
}
