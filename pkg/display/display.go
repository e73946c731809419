// Package display turns cards, hands and outcomes into text for a terminal.
// Nothing in here reads or writes; callers decide where the strings go.
package display

import (
	"fmt"
	"strings"

	"github.com/fadedpez/blackjack/pkg/entities"
)

var suitGlyphs = map[entities.Suit]string{
	entities.Hearts:   "♥",
	entities.Diamonds: "♦",
	entities.Spades:   "♠",
	entities.Clubs:    "♣",
}

var rankLabels = map[entities.Rank]string{
	entities.Ace:   "A",
	entities.Two:   "2",
	entities.Three: "3",
	entities.Four:  "4",
	entities.Five:  "5",
	entities.Six:   "6",
	entities.Seven: "7",
	entities.Eight: "8",
	entities.Nine:  "9",
	entities.Ten:   "10",
	entities.Jack:  "J",
	entities.Queen: "Q",
	entities.King:  "K",
}

var outcomeMessages = map[entities.Outcome]string{
	entities.OutcomePlayerBlackjack: "Blackjack! You win!",
	entities.OutcomePlayerBust:      "You've gone and busted my good man.",
	entities.OutcomeDealerBust:      "Dealer busts. You win!",
	entities.OutcomePlayerWins:      "You win!",
	entities.OutcomeDealerWins:      "You lose!",
}

// FormatSuit returns the suit glyph
func FormatSuit(suit entities.Suit) string {
	if glyph, ok := suitGlyphs[suit]; ok {
		return glyph
	}
	return "?"
}

// FormatRank returns the short rank label
func FormatRank(rank entities.Rank) string {
	if label, ok := rankLabels[rank]; ok {
		return label
	}
	return "?"
}

// FormatCard renders a card as rank then suit, e.g. "10♠"
func FormatCard(card entities.Card) string {
	return FormatRank(card.Rank()) + FormatSuit(card.Suit())
}

// FormatCards renders cards separated by spaces
func FormatCards(cards []entities.Card) string {
	parts := make([]string, 0, len(cards))
	for _, card := range cards {
		parts = append(parts, FormatCard(card))
	}
	return strings.Join(parts, " ")
}

// Hand is the read-only view of a hand the formatter needs
type Hand interface {
	Cards() []entities.Card
	Total() int
}

// FormatHand renders the cards in a hand
func FormatHand(hand Hand) string {
	return FormatCards(hand.Cards())
}

// FormatHandWithTotal renders a hand followed by its total
func FormatHandWithTotal(hand Hand) string {
	return fmt.Sprintf("%s (%d)", FormatHand(hand), hand.Total())
}

// FormatOutcome returns the message shown to the player when a round ends
func FormatOutcome(outcome entities.Outcome) string {
	if msg, ok := outcomeMessages[outcome]; ok {
		return msg
	}
	return string(outcome)
}
