package round

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/stretchr/testify/suite"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	dbPath string
	repo   *SQLiteRepository
	ctx    context.Context
}

func TestSQLiteRepositorySuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dbPath = filepath.Join(s.T().TempDir(), "data", "blackjack.db")

	repo, err := NewSQLiteRepository(s.dbPath, logging.NewLogger(logging.ERROR))
	s.Require().NoError(err)
	s.repo = repo
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	if s.repo != nil {
		s.repo.Close()
	}
}

func (s *SQLiteRepositoryTestSuite) TestSaveAndLoad() {
	completedAt := time.Date(2024, 3, 1, 20, 30, 0, 0, time.UTC)
	s.Require().NoError(s.repo.SaveRoundResult(s.ctx, sampleResult("round-1", entities.OutcomePlayerWins, completedAt)))

	results, err := s.repo.GetRecentResults(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(results, 1)

	result := results[0]
	s.Equal("round-1", result.ID)
	s.Equal(entities.OutcomePlayerWins, result.Outcome)
	s.Equal(19, result.PlayerTotal)
	s.Equal(18, result.DealerTotal)
	s.True(completedAt.Equal(result.CompletedAt))
	s.Require().Len(result.PlayerCards, 2)
	s.Equal(entities.NewCard(entities.Hearts, entities.Ten), result.PlayerCards[0])
	s.Equal(entities.NewCard(entities.Diamonds, entities.Eight), result.DealerCards[1])
}

func (s *SQLiteRepositoryTestSuite) TestRecentResultsOldestFirst() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		s.Require().NoError(s.repo.SaveRoundResult(s.ctx, sampleResult(fmt.Sprintf("round-%d", i), entities.OutcomeDealerWins, base.Add(time.Duration(i)*time.Hour))))
	}

	results, err := s.repo.GetRecentResults(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(results, 2)
	s.Equal("round-2", results[0].ID)
	s.Equal("round-3", results[1].ID)

	all, err := s.repo.GetRecentResults(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(all, 4)
}

func (s *SQLiteRepositoryTestSuite) TestDuplicateID() {
	result := sampleResult("round-1", entities.OutcomePlayerBust, time.Now())
	s.Require().NoError(s.repo.SaveRoundResult(s.ctx, result))
	s.Error(s.repo.SaveRoundResult(s.ctx, result))
}

func (s *SQLiteRepositoryTestSuite) TestReopenKeepsJournal() {
	s.Require().NoError(s.repo.SaveRoundResult(s.ctx, sampleResult("round-1", entities.OutcomeDealerBust, time.Now())))
	s.Require().NoError(s.repo.Close())

	reopened, err := NewSQLiteRepository(s.dbPath, logging.NewLogger(logging.ERROR))
	s.Require().NoError(err)
	s.repo = reopened

	results, err := s.repo.GetRecentResults(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(results, 1)
}
