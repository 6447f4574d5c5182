package services

import (
	"math/rand/v2"

	"entrelink/investor-match/internal/models"
)

// matchScoreMin/Max bound the synthetic score shown next to each investor.
// The score is a presentation placeholder, not a relevance metric.
const (
	matchScoreMin = 90
	matchScoreMax = 100
)

// NormalizeInvestors maps raw search records into the stable Investor shape,
// applying a fallback for every field. Input order is preserved and no
// deduplication is performed. Cannot fail: any input, including nil, yields
// a fully populated (possibly empty) slice.
func NormalizeInvestors(records []models.RawInvestorRecord) []models.Investor {
	investors := make([]models.Investor, 0, len(records))

	for _, record := range records {
		investors = append(investors, models.Investor{
			ID:                 record.StringField("id", ""),
			Name:               record.StringField("name", "Unknown"),
			Industry:           record.NestedStringField("organization", "name", "Unknown Industry"),
			LinkedinURL:        record.StringField("linkedin_url", "#"),
			MatchScore:         randomMatchScore(),
			PhotoURL:           record.StringField("photo_url", models.PlaceholderPhotoURL),
			InvestmentThesis:   record.StringField("investment_thesis", "No thesis available"),
			PastInvestments:    record.StringListField("past_investments"),
			PreferredCheckSize: record.StringField("preferred_check_size", "Varies"),
		})
	}

	return investors
}

func randomMatchScore() int {
	return matchScoreMin + rand.IntN(matchScoreMax-matchScoreMin+1)
}
