package round

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
)

// DefaultIndex is used when no index name is configured
const DefaultIndex = "blackjack_rounds"

const roundMapping = `{
	"mappings": {
		"properties": {
			"round_id": { "type": "keyword" },
			"outcome": { "type": "keyword" },
			"player_won": { "type": "boolean" },
			"player_cards": { "type": "keyword" },
			"dealer_cards": { "type": "keyword" },
			"player_total": { "type": "integer" },
			"dealer_total": { "type": "integer" },
			"completed_at": { "type": "date" }
		}
	}
}`

// ElasticsearchConfig holds configuration options for the Elasticsearch repository
type ElasticsearchConfig struct {
	URL      string
	Username string
	Password string
	Index    string
	// Transport overrides the HTTP transport, mostly for tests
	Transport http.RoundTripper
}

// ElasticsearchRepository keeps the journal in a base repository and mirrors
// every round into an Elasticsearch index for reporting
type ElasticsearchRepository struct {
	baseRepo Repository
	client   *elasticsearch.Client
	index    string
}

// roundDocument is the indexed form of a round result
type roundDocument struct {
	RoundID     string    `json:"round_id"`
	Outcome     string    `json:"outcome"`
	PlayerWon   bool      `json:"player_won"`
	PlayerCards []string  `json:"player_cards"`
	DealerCards []string  `json:"dealer_cards"`
	PlayerTotal int       `json:"player_total"`
	DealerTotal int       `json:"dealer_total"`
	CompletedAt time.Time `json:"completed_at"`
}

// NewElasticsearchRepository creates a new Elasticsearch repository
func NewElasticsearchRepository(baseRepo Repository, config *ElasticsearchConfig) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{config.URL},
		Transport: config.Transport,
	}

	// Add authentication if provided
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, types.WrapError(types.ErrIndexError, "error creating Elasticsearch client", err)
	}

	index := config.Index
	if index == "" {
		index = DefaultIndex
	}

	repo := &ElasticsearchRepository{
		baseRepo: baseRepo,
		client:   client,
		index:    index,
	}

	if err := repo.initIndex(context.Background()); err != nil {
		return nil, types.WrapError(types.ErrIndexError, "error initializing index", err)
	}

	return repo, nil
}

// initIndex creates the round index if it doesn't exist
func (r *ElasticsearchRepository) initIndex(ctx context.Context) error {
	res, err := r.client.Indices.Exists([]string{r.index}, r.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("error checking if index exists: %w", err)
	}
	res.Body.Close()

	if res.StatusCode != http.StatusNotFound {
		if res.IsError() {
			return fmt.Errorf("error checking if index exists: %s", res.String())
		}
		return nil
	}

	req := esapi.IndicesCreateRequest{
		Index: r.index,
		Body:  bytes.NewReader([]byte(roundMapping)),
	}
	res, err = req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("error creating index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}
	return nil
}

// SaveRoundResult stores the round in the base repository and indexes it
func (r *ElasticsearchRepository) SaveRoundResult(ctx context.Context, result *entities.RoundResult) error {
	if err := r.baseRepo.SaveRoundResult(ctx, result); err != nil {
		return err
	}
	return r.IndexRoundResult(ctx, result)
}

// IndexRoundResult writes a single round to the index
func (r *ElasticsearchRepository) IndexRoundResult(ctx context.Context, result *entities.RoundResult) error {
	jsonData, err := json.Marshal(toDocument(result))
	if err != nil {
		return types.WrapError(types.ErrIndexError, "error marshaling round result", err)
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: result.ID,
		Body:       bytes.NewReader(jsonData),
		Refresh:    "true",
	}
	res, err := req.Do(ctx, r.client)
	if err != nil {
		return types.WrapError(types.ErrIndexError, "error indexing round result", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return types.NewGameError(types.ErrIndexError, fmt.Sprintf("error indexing round result: %s", res.String()))
	}
	return nil
}

// CountOutcomes returns how many indexed rounds ended with each outcome
func (r *ElasticsearchRepository) CountOutcomes(ctx context.Context) (map[entities.Outcome]int, error) {
	query := `{
		"size": 0,
		"aggs": {
			"outcomes": {
				"terms": { "field": "outcome", "size": 10 }
			}
		}
	}`

	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.index),
		r.client.Search.WithBody(bytes.NewReader([]byte(query))),
	)
	if err != nil {
		return nil, types.WrapError(types.ErrIndexError, "error searching for outcomes", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, types.NewGameError(types.ErrIndexError, fmt.Sprintf("error searching for outcomes: %s", res.String()))
	}

	var result struct {
		Aggregations struct {
			Outcomes struct {
				Buckets []struct {
					Key      string `json:"key"`
					DocCount int    `json:"doc_count"`
				} `json:"buckets"`
			} `json:"outcomes"`
		} `json:"aggregations"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, types.WrapError(types.ErrIndexError, "error parsing outcome counts", err)
	}

	counts := make(map[entities.Outcome]int)
	for _, bucket := range result.Aggregations.Outcomes.Buckets {
		outcome := entities.Outcome(bucket.Key)
		if !outcome.Valid() {
			continue
		}
		counts[outcome] = bucket.DocCount
	}
	return counts, nil
}

// GetRecentResults delegates to the base repository
func (r *ElasticsearchRepository) GetRecentResults(ctx context.Context, limit int) ([]*entities.RoundResult, error) {
	return r.baseRepo.GetRecentResults(ctx, limit)
}

// Close closes the base repository
func (r *ElasticsearchRepository) Close() error {
	return r.baseRepo.Close()
}

// Index returns the name of the index rounds are written to
func (r *ElasticsearchRepository) Index() string {
	return r.index
}

func toDocument(result *entities.RoundResult) roundDocument {
	return roundDocument{
		RoundID:     result.ID,
		Outcome:     string(result.Outcome),
		PlayerWon:   result.Outcome.PlayerWon(),
		PlayerCards: cardStrings(result.PlayerCards),
		DealerCards: cardStrings(result.DealerCards),
		PlayerTotal: result.PlayerTotal,
		DealerTotal: result.DealerTotal,
		CompletedAt: result.CompletedAt.UTC(),
	}
}

func cardStrings(cards []entities.Card) []string {
	out := make([]string, 0, len(cards))
	for _, card := range cards {
		out = append(out, card.String())
	}
	return out
}
