package history

import (
	"context"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/repositories/round"
)

// OutcomeCounter is implemented by journals that can tally every stored
// round without reading them back
type OutcomeCounter interface {
	CountOutcomes(ctx context.Context) (map[entities.Outcome]int, error)
}

var _ OutcomeCounter = (*round.ElasticsearchRepository)(nil)

// Service records finished rounds and summarizes the journal
type Service struct {
	repository round.Repository
}

// NewService creates a new history service
func NewService(repository round.Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// Summary is a tally of recent rounds
type Summary struct {
	Rounds     int                      `json:"rounds"`
	PlayerWins int                      `json:"player_wins"`
	DealerWins int                      `json:"dealer_wins"`
	ByOutcome  map[entities.Outcome]int `json:"by_outcome"`
	Recent     []*entities.RoundResult  `json:"recent"`
}

// WinRate returns the player's share of rounds won as a percentage
func (s *Summary) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.PlayerWins) * 100 / float64(s.Rounds)
}

// Record stores a resolved round
func (s *Service) Record(ctx context.Context, result *entities.RoundResult) error {
	if result == nil {
		return types.NewGameError(types.ErrInvalidState, "no round result to record")
	}
	if result.ID == "" {
		return types.NewGameError(types.ErrInvalidState, "round result has no id")
	}
	if !result.Outcome.Valid() {
		return types.NewGameError(types.ErrInvalidState, "round has not been resolved")
	}

	return s.repository.SaveRoundResult(ctx, result)
}

// Summary tallies the most recent rounds; a limit of zero or less covers the whole journal
func (s *Service) Summary(ctx context.Context, limit int) (*Summary, error) {
	results, err := s.repository.GetRecentResults(ctx, limit)
	if err != nil {
		return nil, err
	}

	summary := newSummary()
	summary.Recent = results
	for _, result := range results {
		summary.add(result.Outcome, 1)
	}

	return summary, nil
}

// AllTime tallies every round in the journal. ok is false when the journal
// cannot count outcomes itself.
func (s *Service) AllTime(ctx context.Context) (summary *Summary, ok bool, err error) {
	counter, ok := s.repository.(OutcomeCounter)
	if !ok {
		return nil, false, nil
	}

	counts, err := counter.CountOutcomes(ctx)
	if err != nil {
		return nil, true, err
	}

	summary = newSummary()
	for outcome, count := range counts {
		summary.add(outcome, count)
	}
	return summary, true, nil
}

func newSummary() *Summary {
	return &Summary{
		ByOutcome: make(map[entities.Outcome]int),
	}
}

func (s *Summary) add(outcome entities.Outcome, count int) {
	s.Rounds += count
	s.ByOutcome[outcome] += count
	if outcome.PlayerWon() {
		s.PlayerWins += count
	} else {
		s.DealerWins += count
	}
}
