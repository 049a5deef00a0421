/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/contentstore/storagemodels"
)

// ContentStore is the generic CRUD surface over one resource of the content
// API. T is the caller-defined entry type; the store reads only its "id" and
// "documentId" JSON fields.
//
// Every method returns either a non-nil error and nil data, or nil error and
// the data (which may itself be nil for "no match", which is not an error).
type ContentStore[T any] interface {
	// FindMany returns every entry matching params. A response with a null
	// data field yields an empty slice, not an error.
	FindMany(ctx context.Context, params *storagemodels.QueryParams, locale string) ([]T, error)

	// Find returns a single entry: by ID when set, otherwise the first
	// match of FindMany. Nil when nothing matches.
	Find(ctx context.Context, opts FindOptions) (*T, error)

	// Create creates an entry. For a non-default locale the store first
	// ensures a default-locale base entry exists, then attaches the
	// localized variant via the shared documentId.
	Create(ctx context.Context, opts CreateOptions[T]) (*T, error)

	// Update replaces the entry addressed by ID.
	Update(ctx context.Context, opts UpdateOptions[T]) (*T, error)

	// Delete removes the entry addressed by ID and returns it when the
	// server echoes it back.
	Delete(ctx context.Context, opts DeleteOptions) (*T, error)

	// Upsert updates the first entry matching Filters, or creates one when
	// nothing matches. Not atomic under concurrent callers.
	Upsert(ctx context.Context, opts UpsertOptions[T]) (*T, error)
}

// FindOptions addresses a single entry, either directly by ID or by the first
// match of Params.
type FindOptions struct {
	ID     interface{}
	Params *storagemodels.QueryParams
	Locale string
}

// CreateOptions carries the payload for Create. Filters drive the base-entry
// discovery step of the non-default-locale protocol and are unused for the
// default locale.
type CreateOptions[T any] struct {
	Data    T
	Params  *storagemodels.QueryParams
	Locale  string
	Filters storagemodels.Filters
}

// UpdateOptions addresses an entry by ID (plain id or documentId) and carries
// the replacement payload.
type UpdateOptions[T any] struct {
	ID     interface{}
	Data   T
	Params *storagemodels.QueryParams
	Locale string
}

// DeleteOptions addresses the entry to remove.
type DeleteOptions struct {
	ID     interface{}
	Locale string
}

// UpsertOptions carries the payload and the match criteria for Upsert.
type UpsertOptions[T any] struct {
	Data    T
	Filters storagemodels.Filters
	Params  *storagemodels.QueryParams
	Locale  string
}
