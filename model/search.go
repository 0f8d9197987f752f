package model

// SearchDocument is a full-text index hit flattened to its fields. The index
// schema is not enforced here.
type SearchDocument map[string]any

// Suggestion is an autocomplete entry. Its rank is its position in the
// returned slice, most relevant first.
type Suggestion struct {
	String string `json:"string"`
}

type SearchRequest struct {
	Query       string
	Limit       int
	FuzzySearch bool
}

// IndexDocument is the hash written for each website item.
type IndexDocument struct {
	Key    string
	Fields map[string]any
}

type IndexItemRequest struct {
	ItemCode string `validate:"required,max=140"`
}

type IndexItemResponse struct {
	ItemCode string `json:"item_code"`
	Indexed  bool   `json:"indexed"`
}

type RebuildIndexResponse struct {
	Total    int  `json:"total"`
	Enqueued bool `json:"enqueued"`
}
