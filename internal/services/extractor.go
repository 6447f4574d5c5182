package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"entrelink/investor-match/internal/models"
)

// Catalog holds the fixed vocabularies used to expand extracted keywords
// into search filters. It is injected at construction so tests can swap it.
type Catalog struct {
	TitleWords      []string
	Seniorities     []string
	MaxPersonTitles int
}

// DefaultCatalog returns the production vocabularies. The search API rejects
// filters with more than 10 person titles, hence the cap of 9.
func DefaultCatalog() Catalog {
	return Catalog{
		TitleWords: []string{
			"Investor", "Angel", "Angel Investor", "Venture Capitalist", "VC",
			"Founder", "CEO", "CTO", "COO", "CFO", "CMO", "Scout",
		},
		Seniorities:     []string{"owner", "founder", "c_suite", "partner"},
		MaxPersonTitles: 9,
	}
}

// BuildSearchFilter expands extracted attributes into the filter sent to the
// contact-search service. Pure and deterministic: keywords are lower-cased
// and trimmed, crossed with every title word, and the resulting phrases are
// capped at MaxPersonTitles in insertion order. Seniorities are constant.
func (c Catalog) BuildSearchFilter(attrs models.ExtractedAttributes) models.SearchFilter {
	var keywords []string
	for _, industry := range attrs.Industries {
		keywords = append(keywords, strings.ToLower(strings.TrimSpace(industry)))
	}
	if attrs.Stage != nil {
		for _, prefix := range attrs.Stage.AppropriateInvestorTitlePrefix {
			keywords = append(keywords, strings.ToLower(strings.TrimSpace(prefix)))
		}
	}

	titles := []string{}
	for _, keyword := range keywords {
		for _, titleWord := range c.TitleWords {
			phrase := strings.ToLower(strings.TrimSpace(keyword + " " + titleWord))
			titles = append(titles, phrase)
		}
	}
	if len(titles) > c.MaxPersonTitles {
		titles = titles[:c.MaxPersonTitles]
	}

	seniorities := make([]string, len(c.Seniorities))
	copy(seniorities, c.Seniorities)

	return models.SearchFilter{
		PersonTitles:      titles,
		PersonSeniorities: seniorities,
	}
}

type ExtractorService interface {
	Extract(ctx context.Context, query string) (models.SearchFilter, error)
}

type extractorService struct {
	completion    CompletionService
	promptBuilder *PromptBuilder
	catalog       Catalog
}

func NewExtractorService(completion CompletionService, catalog Catalog) ExtractorService {
	return &extractorService{
		completion:    completion,
		promptBuilder: NewPromptBuilder(),
		catalog:       catalog,
	}
}

// Extract implements ExtractorService. One completion round trip, no
// retries: any completion error, empty body, unparsable JSON, or missing
// top-level field surfaces as ErrExtractionFailed.
func (e *extractorService) Extract(ctx context.Context, query string) (models.SearchFilter, error) {
	response, err := e.completion.Complete(
		ctx,
		e.promptBuilder.ExtractionSystemPrompt(),
		e.promptBuilder.BuildExtractionPrompt(query),
		0.0,
		1024,
	)
	if err != nil {
		log.Printf("❌ Attribute extraction call failed: %v\n", err)
		return models.SearchFilter{}, fmt.Errorf("%w: completion call failed", ErrExtractionFailed)
	}

	jsonStr := extractJSON(response)
	if jsonStr == "" {
		log.Println("❌ Attribute extraction returned an empty response")
		return models.SearchFilter{}, fmt.Errorf("%w: empty response", ErrExtractionFailed)
	}

	var attrs models.ExtractedAttributes
	if err := json.Unmarshal([]byte(jsonStr), &attrs); err != nil {
		log.Printf("❌ Failed to parse extraction response: %v\n", err)
		return models.SearchFilter{}, fmt.Errorf("%w: invalid JSON", ErrExtractionFailed)
	}

	// A response missing either top-level field is structurally incomplete
	// and must not produce an empty filter.
	if attrs.Industries == nil || attrs.Stage == nil {
		log.Println("❌ Extraction response missing industries or stage")
		return models.SearchFilter{}, fmt.Errorf("%w: incomplete response", ErrExtractionFailed)
	}

	return e.catalog.BuildSearchFilter(attrs), nil
}

// extractJSON strips markdown fences the model sometimes wraps around its
// output and returns the outermost JSON object, or "" if none is found.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}

	return text[start : end+1]
}
