package entities

import (
	"errors"
	"math/rand"
	"time"
)

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

// ErrDeckExhausted is the panic value raised when a card is dealt from an
// empty deck. A single round can never consume 52 cards, so reaching it means
// the caller broke the dealing protocol.
var ErrDeckExhausted = errors.New("deck exhausted")

// NewRandomSource returns a random source seeded from the clock
func NewRandomSource() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeededSource returns a reproducible random source
func NewSeededSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Deck is an ordered pile of cards. The top of the deck is index 0.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a new deck of 52 cards, one of each rank and suit, in
// suit-major, rank-minor order. rng is used by Shuffle; nil falls back to a
// clock-seeded source.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = NewRandomSource()
	}

	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, NewCard(suit, rank))
		}
	}

	return &Deck{cards: cards, rng: rng}
}

// NewStackedDeck creates a deck that deals the given cards in order
func NewStackedDeck(cards ...Card) *Deck {
	stacked := make([]Card, len(cards))
	copy(stacked, cards)
	return &Deck{cards: stacked, rng: NewRandomSource()}
}

// Shuffle puts the remaining cards in a uniformly random order
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card from the deck. It panics with
// ErrDeckExhausted when the deck is empty.
func (d *Deck) Deal() Card {
	if len(d.cards) == 0 {
		panic(ErrDeckExhausted)
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card
}

// Size returns the number of cards left in the deck
func (d *Deck) Size() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in dealing order
func (d *Deck) Cards() []Card {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}
