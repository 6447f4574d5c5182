package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"entrelink/investor-match/internal/models"
)

const peopleSearchPath = "/api/v1/mixed_people/search"

// ApolloService issues one best-effort search request per call: no retries,
// no pagination, no backoff.
type ApolloService interface {
	SearchPeople(ctx context.Context, filter models.SearchFilter) ([]models.RawInvestorRecord, error)
}

type apolloService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewApolloService(apiKey, baseURL string, timeout time.Duration) ApolloService {
	return &apolloService{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type peopleSearchResponse struct {
	People []models.RawInvestorRecord `json:"people"`
}

// SearchPeople implements ApolloService. A missing or empty "people" key is
// a normal zero-match outcome, not an error.
func (a *apolloService) SearchPeople(ctx context.Context, filter models.SearchFilter) ([]models.RawInvestorRecord, error) {
	if a.apiKey == "" {
		return nil, ErrMissingCredential
	}

	payload, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search filter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+peopleSearchPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamSearchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Body is kept for server-side diagnostics only, never forwarded.
		log.Printf("❌ Apollo API error (status %d): %s\n", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamSearchFailed, resp.StatusCode)
	}

	var parsed peopleSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid response body", ErrUpstreamSearchFailed)
	}

	if len(parsed.People) == 0 {
		log.Println("⚠️  No investors matched the search filter")
		return []models.RawInvestorRecord{}, nil
	}

	return parsed.People, nil
}
