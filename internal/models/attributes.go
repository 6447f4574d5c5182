package models

// ExtractedAttributes is the structured output of the attribute extraction
// prompt. Both arrays may be empty, but the fields themselves must be present
// in the model response; a response missing either is treated as a failed
// extraction rather than an empty filter.
type ExtractedAttributes struct {
	Industries []string         `json:"industries"`
	Stage      *StageAttributes `json:"stage"`
}

type StageAttributes struct {
	StartupStage                   string   `json:"startup_stage"`
	AppropriateInvestorTitlePrefix []string `json:"appropriate_investor_title_prefix"`
}

// SearchFilter is the payload sent to the contact-search service.
// PersonTitles is capped upstream (the search API rejects more than 10
// title filters); PersonSeniorities is a fixed vocabulary.
type SearchFilter struct {
	PersonTitles      []string `json:"person_titles"`
	PersonSeniorities []string `json:"person_seniorities"`
}
