package models

// RawInvestorRecord is an arbitrary-shape contact record returned by the
// search service. Nothing about its structure is guaranteed, so every field
// access goes through an accessor that applies a fallback.
type RawInvestorRecord map[string]any

// StringField returns the record value under key if it is a non-empty
// string, otherwise fallback.
func (r RawInvestorRecord) StringField(key, fallback string) string {
	if v, ok := r[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// NestedStringField returns record[outer][inner] if both levels exist and
// the leaf is a non-empty string, otherwise fallback.
func (r RawInvestorRecord) NestedStringField(outer, inner, fallback string) string {
	nested, ok := r[outer].(map[string]any)
	if !ok {
		return fallback
	}
	if v, ok := nested[inner].(string); ok && v != "" {
		return v
	}
	return fallback
}

// StringListField coerces the record value under key to a list of strings.
// Non-string elements are skipped; a missing or malformed value yields an
// empty list, never nil.
func (r RawInvestorRecord) StringListField(key string) []string {
	out := []string{}
	items, ok := r[key].([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
