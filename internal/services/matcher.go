package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"entrelink/investor-match/internal/models"
	"entrelink/investor-match/internal/repositories"
)

// MatcherService runs the matching pipeline for one query: attribute
// extraction, contact search, normalization. The stages are strictly
// sequential because each stage's output is the next stage's input. No state
// is shared across requests.
type MatcherService interface {
	Match(ctx context.Context, query string) ([]models.Investor, error)
}

type matcherService struct {
	extractor    ExtractorService
	apollo       ApolloService
	queryLogRepo repositories.QueryLogRepository
}

func NewMatcherService(
	extractor ExtractorService,
	apollo ApolloService,
	queryLogRepo repositories.QueryLogRepository,
) MatcherService {
	return &matcherService{
		extractor:    extractor,
		apollo:       apollo,
		queryLogRepo: queryLogRepo,
	}
}

// Match implements MatcherService. The caller is responsible for rejecting
// empty queries before invoking this; failures from either outbound stage
// propagate untouched so the handler can map them to HTTP responses.
func (m *matcherService) Match(ctx context.Context, query string) ([]models.Investor, error) {
	log.Printf("🔍 Extracting startup attributes for: %s\n", query)
	filter, err := m.extractor.Extract(ctx, query)
	if err != nil {
		return nil, err
	}

	log.Printf("📡 Searching investors with %d title filters\n", len(filter.PersonTitles))
	people, err := m.apollo.SearchPeople(ctx, filter)
	if err != nil {
		return nil, err
	}

	investors := NormalizeInvestors(people)
	log.Printf("📊 Matched %d investors\n", len(investors))

	m.logQuery(query, filter, len(investors))

	return investors, nil
}

// logQuery appends an audit record for the run. Best effort: a failed write
// is logged and swallowed, never surfaced to the caller.
func (m *matcherService) logQuery(query string, filter models.SearchFilter, investorCount int) {
	if m.queryLogRepo == nil {
		return
	}

	titles, err := json.Marshal(filter.PersonTitles)
	if err != nil {
		titles = []byte("[]")
	}

	queryLog := &models.QueryLog{
		ID:            uuid.New(),
		Query:         query,
		PersonTitles:  string(titles),
		InvestorCount: investorCount,
	}

	if err := m.queryLogRepo.Create(queryLog); err != nil {
		log.Printf("⚠️  Failed to write query log: %v\n", err)
	}
}
