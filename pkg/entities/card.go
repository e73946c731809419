package entities

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Hearts Suit = iota + 1
	Diamonds
	Spades
	Clubs
)

var suitNames = map[Suit]string{
	Hearts:   "Hearts",
	Diamonds: "Diamonds",
	Spades:   "Spades",
	Clubs:    "Clubs",
}

// String returns the name of the suit
func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Hearts && s <= Clubs
}

// Rank represents a card rank. The numeric value of a rank is its pip count,
// with Ace as 1 and the face cards continuing from 11 to 13.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = map[Rank]string{
	Ace:   "Ace",
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
}

// String returns the name of the rank
func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

// Valid reports whether r is one of the thirteen ranks
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Suits returns every suit in deck construction order
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Spades, Clubs}
}

// Ranks returns every rank in deck construction order
func Ranks() []Rank {
	return []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
}

// Card represents a playing card. Cards are values; none of the fields can be
// changed once the card has been built.
type Card struct {
	suit  Suit
	rank  Rank
	value int
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{
		suit:  suit,
		rank:  rank,
		value: rankValue(rank),
	}
}

// rankValue caps face cards at ten
func rankValue(rank Rank) int {
	if rank > Ten {
		return 10
	}
	return int(rank)
}

// Suit returns the card's suit
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the card's rank
func (c Card) Rank() Rank {
	return c.rank
}

// Value returns the scoring value of the card. Aces are worth 1 here; the
// soft ace promotion belongs to hand scoring.
func (c Card) Value() int {
	return c.value
}

// IsAce reports whether the card is an ace
func (c Card) IsAce() bool {
	return c.rank == Ace
}

// String returns the string representation of the card
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.rank, c.suit)
}
