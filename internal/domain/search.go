package domain

import (
	"slices"
	"strings"
)

// Search paging limits.
const (
	DefaultSearchPageSize = 10
	MaxSearchPageSize     = 100
	MinSearchStringLength = 2
)

// SearchCriteria describes a search request against the discussion index.
type SearchCriteria struct {
	// SearchString is the free-text query. Empty means "match all".
	SearchString string `json:"searchString,omitempty"`
	// Filters restricts results to documents whose field equals one of the values.
	Filters map[string][]string `json:"filterCriteriaMap,omitempty"`
	// RequestedFields limits the returned document keys. Empty returns full documents.
	RequestedFields []string `json:"requestedFields,omitempty"`
	// Facets lists fields to aggregate value counts for.
	Facets         []string `json:"facets,omitempty"`
	OrderBy        string   `json:"orderBy,omitempty"`
	OrderDirection string   `json:"orderDirection,omitempty"`
	PageNumber     int      `json:"pageNumber"`
	PageSize       int      `json:"pageSize"`
}

// Normalize applies defaults and clamps paging. It returns a copy so the
// caller's criteria are never mutated.
func (c SearchCriteria) Normalize() SearchCriteria {
	c.SearchString = strings.TrimSpace(c.SearchString)
	if c.PageSize <= 0 {
		c.PageSize = DefaultSearchPageSize
	}
	if c.PageSize > MaxSearchPageSize {
		c.PageSize = MaxSearchPageSize
	}
	if c.PageNumber < 0 {
		c.PageNumber = 0
	}
	switch strings.ToLower(c.OrderDirection) {
	case "asc":
		c.OrderDirection = "asc"
	default:
		c.OrderDirection = "desc"
	}

	if len(c.Filters) > 0 {
		filters := make(map[string][]string, len(c.Filters))
		for k, v := range c.Filters {
			vals := slices.Clone(v)
			slices.Sort(vals)
			filters[k] = slices.Compact(vals)
		}
		c.Filters = filters
	}
	c.RequestedFields = slices.Clone(c.RequestedFields)
	c.Facets = slices.Clone(c.Facets)
	return c
}

// Validate checks the free-text term length.
func (c SearchCriteria) Validate() error {
	s := strings.TrimSpace(c.SearchString)
	if s != "" && len([]rune(s)) < MinSearchStringLength {
		return NewValidationError("searchString", "minimum 2 characters are required to search")
	}
	return nil
}

// FacetValue is one bucket of a facet aggregation.
type FacetValue struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// SearchResult is one page of search hits.
type SearchResult struct {
	Data       []map[string]any        `json:"data"`
	Facets     map[string][]FacetValue `json:"facets"`
	TotalCount int64                   `json:"totalCount"`
}
