package round

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/db/migrations"
	"github.com/fadedpez/blackjack/pkg/entities"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteRepository implements the Repository interface using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite repository
func NewSQLiteRepository(dbPath string, logger *logging.Logger) (*SQLiteRepository, error) {
	// Ensure the directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error creating database directory", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error opening database", err)
	}

	migrator := migrations.NewMigrator(db, logger)
	if err := migrator.MigrateUp(); err != nil {
		db.Close()
		return nil, types.WrapError(types.ErrDatabaseError, "error applying migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// SaveRoundResult stores a round result
func (r *SQLiteRepository) SaveRoundResult(ctx context.Context, result *entities.RoundResult) error {
	playerCards, err := marshalCards(result.PlayerCards)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "error marshaling player cards", err)
	}
	dealerCards, err := marshalCards(result.DealerCards)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "error marshaling dealer cards", err)
	}

	query := `
		INSERT INTO round_results (id, outcome, player_cards, dealer_cards, player_total, dealer_total, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		result.ID,
		string(result.Outcome),
		string(playerCards),
		string(dealerCards),
		result.PlayerTotal,
		result.DealerTotal,
		result.CompletedAt.UTC(),
	)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, fmt.Sprintf("error saving round %s", result.ID), err)
	}
	return nil
}

// GetRecentResults retrieves the most recent round results, oldest first
func (r *SQLiteRepository) GetRecentResults(ctx context.Context, limit int) ([]*entities.RoundResult, error) {
	query := `
		SELECT id, outcome, player_cards, dealer_cards, player_total, dealer_total, completed_at
		FROM round_results
		ORDER BY completed_at DESC, rowid DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error querying round results", err)
	}
	defer rows.Close()

	var results []*entities.RoundResult
	for rows.Next() {
		var (
			outcome     string
			playerCards []byte
			dealerCards []byte
			completedAt time.Time
			result      entities.RoundResult
		)
		if err := rows.Scan(&result.ID, &outcome, &playerCards, &dealerCards, &result.PlayerTotal, &result.DealerTotal, &completedAt); err != nil {
			return nil, types.WrapError(types.ErrDatabaseError, "error scanning round result", err)
		}

		result.Outcome = entities.Outcome(outcome)
		result.CompletedAt = completedAt
		if result.PlayerCards, err = unmarshalCards(playerCards); err != nil {
			return nil, types.WrapError(types.ErrDatabaseError, "error decoding player cards", err)
		}
		if result.DealerCards, err = unmarshalCards(dealerCards); err != nil {
			return nil, types.WrapError(types.ErrDatabaseError, "error decoding dealer cards", err)
		}
		results = append(results, &result)
	}
	if err := rows.Err(); err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error iterating round results", err)
	}

	// Newest first from the query; callers want play order
	for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
		results[i], results[j] = results[j], results[i]
	}
	return results, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
