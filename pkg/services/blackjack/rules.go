package blackjack

import (
	"github.com/fadedpez/blackjack/pkg/entities"
)

const (
	Blackjack      = 21 // Best possible total, and the bust threshold
	DealerStandsOn = 17 // Dealer draws below this total, soft or hard
	SoftAceBonus   = 10 // Added once when an ace can count as 11
	InitialCards   = 2  // Cards dealt to each hand before anyone acts
)

// HardTotal sums the card values with every ace counted as 1
func HardTotal(cards []entities.Card) int {
	total := 0
	for _, card := range cards {
		total += card.Value()
	}
	return total
}

func hasAce(cards []entities.Card) bool {
	for _, card := range cards {
		if card.IsAce() {
			return true
		}
	}
	return false
}

// isSoft reports whether one ace is being counted as 11. At most one ace can
// ever be promoted, since two would already put the hand over 21.
func isSoft(cards []entities.Card) bool {
	return hasAce(cards) && HardTotal(cards)+SoftAceBonus <= Blackjack
}

// Score returns the best total for a set of cards
func Score(cards []entities.Card) int {
	total := HardTotal(cards)
	if isSoft(cards) {
		total += SoftAceBonus
	}
	return total
}

// IsBlackjack checks for a two card 21
func IsBlackjack(cards []entities.Card) bool {
	return len(cards) == InitialCards && Score(cards) == Blackjack
}

// IsBust checks if a hand exceeds 21
func IsBust(cards []entities.Card) bool {
	return Score(cards) > Blackjack
}

// DealerShouldDraw applies the house rule: draw below 17, stand on any 17
func DealerShouldDraw(cards []entities.Card) bool {
	return Score(cards) < DealerStandsOn
}

// Resolve compares a standing player's total with the dealer's finished
// hand. Equal totals go to the dealer; there is no push.
func Resolve(playerTotal, dealerTotal int) entities.Outcome {
	switch {
	case dealerTotal > Blackjack:
		return entities.OutcomeDealerBust
	case dealerTotal < playerTotal:
		return entities.OutcomePlayerWins
	default:
		return entities.OutcomeDealerWins
	}
}
