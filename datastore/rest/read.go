/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rest

import (
	"context"
	"net/http"

	"github.com/suparena/contentstore/datastore"
	"github.com/suparena/contentstore/storagemodels"
)

// FindMany returns every entry of the resource matching params. The locale is
// merged into the query only when it differs from the default locale. A
// response whose data field is null yields an empty slice: no matches is not
// an error.
func (s *Store[T]) FindMany(ctx context.Context, params *storagemodels.QueryParams, locale string) ([]T, error) {
	query := encodeQuery(s.mergeLocale(params, locale))
	entries, _, err := s.requestCollection(ctx, s.collectionPath(query), requestOptions{method: http.MethodGet})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Find returns a single entry. With an ID it reads the item endpoint
// directly; without one it reads the collection and returns the first match.
// Nil with a nil error means nothing matched.
func (s *Store[T]) Find(ctx context.Context, opts datastore.FindOptions) (*T, error) {
	if id := idSegment(opts.ID); id != "" {
		query := encodeQuery(s.mergeLocale(opts.Params, opts.Locale))
		return s.requestDocument(ctx, s.documentPath(id, query), requestOptions{method: http.MethodGet})
	}

	entries, err := s.FindMany(ctx, opts.Params, opts.Locale)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}
