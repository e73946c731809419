package round

import (
	"encoding/json"
	"fmt"

	"github.com/fadedpez/blackjack/pkg/entities"
)

// cardRecord is the stored form of a card
type cardRecord struct {
	Suit int `json:"suit"`
	Rank int `json:"rank"`
}

func toCardRecords(cards []entities.Card) []cardRecord {
	records := make([]cardRecord, 0, len(cards))
	for _, card := range cards {
		records = append(records, cardRecord{Suit: int(card.Suit()), Rank: int(card.Rank())})
	}
	return records
}

func fromCardRecords(records []cardRecord) ([]entities.Card, error) {
	cards := make([]entities.Card, 0, len(records))
	for _, record := range records {
		suit, rank := entities.Suit(record.Suit), entities.Rank(record.Rank)
		if !suit.Valid() || !rank.Valid() {
			return nil, fmt.Errorf("invalid stored card suit=%d rank=%d", record.Suit, record.Rank)
		}
		cards = append(cards, entities.NewCard(suit, rank))
	}
	return cards, nil
}

func marshalCards(cards []entities.Card) ([]byte, error) {
	return json.Marshal(toCardRecords(cards))
}

func unmarshalCards(data []byte) ([]entities.Card, error) {
	var records []cardRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return fromCardRecords(records)
}

func copyResult(result *entities.RoundResult) *entities.RoundResult {
	clone := *result
	clone.PlayerCards = append([]entities.Card(nil), result.PlayerCards...)
	clone.DealerCards = append([]entities.Card(nil), result.DealerCards...)
	return &clone
}
