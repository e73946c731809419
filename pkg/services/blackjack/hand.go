package blackjack

import (
	"github.com/fadedpez/blackjack/pkg/entities"
)

// Hand represents the cards a player or the dealer has received. The total is
// always derived from the cards; a hand keeps no score of its own.
type Hand struct {
	cards []entities.Card
}

// NewHand creates a new empty hand
func NewHand() *Hand {
	return &Hand{
		cards: make([]entities.Card, 0, InitialCards),
	}
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card entities.Card) {
	h.cards = append(h.cards, card)
}

// Cards returns a copy of the cards in the order they were received
func (h *Hand) Cards() []entities.Card {
	cards := make([]entities.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// Total returns the best score for the hand
func (h *Hand) Total() int {
	return Score(h.cards)
}

// IsSoft reports whether an ace is currently counted as 11
func (h *Hand) IsSoft() bool {
	return isSoft(h.cards)
}

// IsBust checks if the hand is over 21
func (h *Hand) IsBust() bool {
	return IsBust(h.cards)
}

// IsBlackjack checks if the hand is a natural 21
func (h *Hand) IsBlackjack() bool {
	return IsBlackjack(h.cards)
}
