/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/go-openapi/strfmt"
)

// Filter operators understood by the content API. Operator keys are nested
// under the field name: Filters{"title": map[string]interface{}{OpEqual: "x"}}.
const (
	OpEqual          = "$eq"
	OpNotEqual       = "$ne"
	OpLowerThan      = "$lt"
	OpLowerOrEqual   = "$lte"
	OpGreaterThan    = "$gt"
	OpGreaterOrEqual = "$gte"
	OpIn             = "$in"
	OpNotIn          = "$notIn"
	OpContains       = "$contains"
	OpNotContains    = "$notContains"
	OpContainsFold   = "$containsi"
	OpStartsWith     = "$startsWith"
	OpEndsWith       = "$endsWith"
	OpNull           = "$null"
	OpNotNull        = "$notNull"
	OpAnd            = "$and"
	OpOr             = "$or"
	OpNot            = "$not"
)

// Publication states accepted by the content API.
const (
	PublicationStateLive    = "live"
	PublicationStatePreview = "preview"
)

// Filters maps field names to operator-to-value constraints, or a logical
// combinator (OpAnd, OpOr) to a slice of nested Filters.
type Filters map[string]interface{}

// Eq builds a single-field equality filter.
func Eq(field string, value interface{}) Filters {
	return Filters{field: map[string]interface{}{OpEqual: value}}
}

// In builds a single-field containment filter.
func In(field string, values ...interface{}) Filters {
	return Filters{field: map[string]interface{}{OpIn: values}}
}

// Merge returns a new Filters combining f with other. Keys in other win on
// collision. A nil receiver merges to a copy of other.
func (f Filters) Merge(other Filters) Filters {
	merged := make(Filters, len(f)+len(other))
	for k, v := range f {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// PaginationParams controls page-based or offset-based pagination. Page and
// Start are mutually exclusive on the server side; the client serializes
// whatever is set.
type PaginationParams struct {
	// Page is the 1-based page number.
	Page int
	// PageSize is the number of entries per page.
	PageSize int
	// Start is the 0-based offset for offset pagination.
	Start int
	// Limit is the number of entries for offset pagination.
	Limit int
	// WithCount asks the server to include the total count in the meta.
	WithCount *bool
}

// QueryParams describes a query against a resource collection. Every field is
// optional; the zero value serializes to an empty query string.
type QueryParams struct {
	// Filters constrains which entries match.
	Filters Filters
	// Populate selects related entries to embed. Accepted shapes: the
	// wildcard string "*", a []string of relation names, or a
	// map[string]interface{} of nested populate directives.
	Populate interface{}
	// Fields projects the returned attributes.
	Fields []string
	// Sort lists sort directives, each optionally suffixed ":asc" or ":desc".
	Sort []string
	// Pagination controls the result window.
	Pagination *PaginationParams
	// Locale scopes the query to one locale.
	Locale string
	// PublicationState selects live or preview entries.
	PublicationState string
}

// Clone returns a copy of the params safe to mutate without affecting the
// original. Filters is copied one level deep; nested operator maps are shared.
func (p *QueryParams) Clone() *QueryParams {
	if p == nil {
		return &QueryParams{}
	}
	out := *p
	if p.Filters != nil {
		out.Filters = p.Filters.Merge(nil)
	}
	if p.Fields != nil {
		out.Fields = append([]string(nil), p.Fields...)
	}
	if p.Sort != nil {
		out.Sort = append([]string(nil), p.Sort...)
	}
	if p.Pagination != nil {
		pg := *p.Pagination
		out.Pagination = &pg
	}
	return &out
}

// IsZero reports whether the params would serialize to an empty query string.
func (p *QueryParams) IsZero() bool {
	if p == nil {
		return true
	}
	return len(p.Filters) == 0 && p.Populate == nil && len(p.Fields) == 0 &&
		len(p.Sort) == 0 && p.Pagination == nil && p.Locale == "" &&
		p.PublicationState == ""
}

// Pagination is the pagination block of a collection response meta.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// ResponseMeta is the meta block of a response envelope.
type ResponseMeta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

// DocumentResponse is the envelope of single-entry responses: {data: T|null}.
type DocumentResponse[T any] struct {
	Data *T            `json:"data"`
	Meta *ResponseMeta `json:"meta,omitempty"`
}

// CollectionResponse is the envelope of collection responses:
// {data: [T], meta: {pagination}}.
type CollectionResponse[T any] struct {
	Data []T           `json:"data"`
	Meta *ResponseMeta `json:"meta,omitempty"`
}

// BaseEntry carries the identity and bookkeeping fields the content API
// returns on every entry. Resource structs can embed it instead of declaring
// the fields themselves.
type BaseEntry struct {
	ID          int              `json:"id,omitempty"`
	DocumentID  string           `json:"documentId,omitempty"`
	Locale      string           `json:"locale,omitempty"`
	CreatedAt   *strfmt.DateTime `json:"createdAt,omitempty"`
	UpdatedAt   *strfmt.DateTime `json:"updatedAt,omitempty"`
	PublishedAt *strfmt.DateTime `json:"publishedAt,omitempty"`
}
