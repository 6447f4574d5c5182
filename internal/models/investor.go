package models

// PlaceholderPhotoURL is served by the frontend when the search service
// returns no photo for a contact.
const PlaceholderPhotoURL = "/images/investor-placeholder.png"

// Investor is the stable entity returned to the caller. It is built fresh
// from a RawInvestorRecord on every request and never mutated afterwards.
type Investor struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Industry           string   `json:"industry"`
	LinkedinURL        string   `json:"linkedin_url"`
	MatchScore         int      `json:"match_score"`
	PhotoURL           string   `json:"photo_url"`
	InvestmentThesis   string   `json:"investment_thesis"`
	PastInvestments    []string `json:"past_investments"`
	PreferredCheckSize string   `json:"preferred_check_size"`
}

type MatchRequest struct {
	Query string `json:"query"`
}

type MatchResponse struct {
	Investors []Investor `json:"investors"`
}
