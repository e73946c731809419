package round

import (
	"context"

	"github.com/fadedpez/blackjack/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_round

// Repository is an append-only journal of finished rounds
type Repository interface {
	// SaveRoundResult stores a resolved round
	SaveRoundResult(ctx context.Context, result *entities.RoundResult) error

	// GetRecentResults returns up to limit of the most recent rounds, oldest
	// first. A limit of zero or less returns every round.
	GetRecentResults(ctx context.Context, limit int) ([]*entities.RoundResult, error)

	// Close closes any resources used by the repository
	Close() error
}
