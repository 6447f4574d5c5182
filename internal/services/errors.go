package services

import "errors"

// Pipeline failure taxonomy. Handlers map these to HTTP statuses with
// errors.Is; the wrapped cause is only ever logged server-side.
var (
	// ErrExtractionFailed covers completion call errors, empty responses,
	// and unparsable or structurally incomplete extraction JSON.
	ErrExtractionFailed = errors.New("failed to extract startup attributes")

	// ErrMissingCredential means the search API key is absent. This is a
	// deployment defect, detected before any network call is attempted.
	ErrMissingCredential = errors.New("search API credential missing")

	// ErrUpstreamSearchFailed means the contact-search service returned a
	// non-success status.
	ErrUpstreamSearchFailed = errors.New("contact search request failed")

	// ErrEmailGenerationFailed covers completion failures while drafting an
	// introduction email.
	ErrEmailGenerationFailed = errors.New("failed to generate email")
)
