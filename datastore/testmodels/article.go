package testmodels

import "github.com/go-openapi/strfmt"

type Article struct {

	// Numeric identifier of this entry.
	ID int `json:"id,omitempty"`

	// Identifier shared by all locale variants of the same logical entry.
	DocumentID string `json:"documentId,omitempty"`

	// Title of the article.
	// Required: true
	Title *string `json:"title"`

	// URL slug, unique per locale.
	// Required: true
	Slug *string `json:"slug"`

	// Body of the article in markdown.
	Body string `json:"body,omitempty"`

	// Locale tag of this variant.
	Locale string `json:"locale,omitempty"`

	// Timestamp when the entry was created.
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"createdAt,omitempty"`

	// Timestamp when the entry was last updated.
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"updatedAt,omitempty"`

	// Timestamp when the entry was published, null for drafts.
	// Format: date-time
	PublishedAt *strfmt.DateTime `json:"publishedAt,omitempty"`
}
