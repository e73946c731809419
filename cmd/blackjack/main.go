package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/fadedpez/blackjack/internal/config"
	"github.com/fadedpez/blackjack/internal/console"
	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/repositories/round"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/fadedpez/blackjack/pkg/services/history"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Default.LogError(err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.Level())

	repo, err := newRepository(cfg, logger)
	if err != nil {
		logger.LogError(err)
		os.Exit(1)
	}

	// Interrupting while the player is prompted abandons the round
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	code := run(ctx, cfg, repo, logger)

	stop()
	if err := repo.Close(); err != nil {
		logger.Warn("Error closing round journal: %v", err)
	}
	os.Exit(code)
}

func run(ctx context.Context, cfg *config.Config, repo round.Repository, logger *logging.Logger) int {
	game := blackjack.NewShuffledRound(newRandomSource(cfg)).WithLogger(logger)
	logger.Debug("Starting round %s", game.ID())

	session := console.NewSession(os.Stdin, os.Stdout, history.NewService(repo), cfg.HistoryLimit, logger)
	if _, err := session.PlayRound(ctx, game); err != nil {
		if types.IsGameError(err, types.ErrRoundAbandoned) {
			logger.Info("Round %s abandoned", game.ID())
			return 130
		}
		logger.LogError(err)
		return 1
	}
	return 0
}

func newRandomSource(cfg *config.Config) *rand.Rand {
	if cfg.ShuffleSeed != nil {
		return entities.NewSeededSource(*cfg.ShuffleSeed)
	}
	return entities.NewRandomSource()
}

// newRepository picks the round journal backend from the configuration
func newRepository(cfg *config.Config, logger *logging.Logger) (round.Repository, error) {
	switch cfg.StorageType {
	case config.StorageSQLite:
		logger.Info("Using SQLite round journal at %s", cfg.SQLitePath())
		return round.NewSQLiteRepository(cfg.SQLitePath(), logger)

	case config.StorageElasticsearch:
		base, err := round.NewSQLiteRepository(cfg.SQLitePath(), logger)
		if err != nil {
			return nil, err
		}
		esRepo, err := round.NewElasticsearchRepository(base, &round.ElasticsearchConfig{
			URL:      cfg.ElasticsearchURL,
			Username: cfg.ElasticsearchUsername,
			Password: cfg.ElasticsearchPassword,
			Index:    cfg.ElasticsearchIndex,
		})
		if err != nil {
			base.Close()
			return nil, err
		}
		logger.Info("Indexing rounds into Elasticsearch index %s", esRepo.Index())
		return esRepo, nil

	default:
		logger.Debug("Using in-memory round journal (rounds are lost on exit)")
		return round.NewMemoryRepository(), nil
	}
}
