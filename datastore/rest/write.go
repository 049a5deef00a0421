/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rest

import (
	"context"
	"net/http"

	"github.com/suparena/contentstore/datastore"
	"github.com/suparena/contentstore/errors"
	"github.com/suparena/contentstore/storagemodels"
)

// Create creates an entry. In the default locale this is a single POST to the
// collection endpoint. In any other locale it runs the three-step protocol:
// discover a default-locale base entry via opts.Filters, create one from the
// payload when none exists, then attach the localized variant through the
// base entry's documentId. Each step's error aborts the whole operation
// unchanged; a base entry without a documentId is a failure even though its
// creation reported success.
func (s *Store[T]) Create(ctx context.Context, opts datastore.CreateOptions[T]) (*T, error) {
	locale := opts.Locale
	if locale == "" || locale == s.cfg.defaultLocale {
		query := encodeQuery(s.mergeLocale(opts.Params, ""))
		return s.requestDocument(ctx, s.collectionPath(query), requestOptions{
			method: http.MethodPost,
			body:   requestBody[T]{Data: opts.Data},
		})
	}

	base, err := s.findBaseEntry(ctx, opts)
	if err != nil {
		return nil, err
	}

	docID := ""
	if base != nil {
		docID = base.DocumentID
	}
	if docID == "" {
		docID, err = s.createBaseEntry(ctx, opts)
		if err != nil {
			return nil, err
		}
	}

	return s.localizeEntry(ctx, docID, locale, opts.Data)
}

// findBaseEntry searches for an existing base entry to hang the localized
// variant on. The search is scoped to the default locale unless the store was
// configured with WithLocaleScopedSearch. A match is any returned entry that
// carries a documentId.
func (s *Store[T]) findBaseEntry(ctx context.Context, opts datastore.CreateOptions[T]) (*storagemodels.EntryKeys, error) {
	params := opts.Params.Clone()
	if len(opts.Filters) > 0 {
		params.Filters = params.Filters.Merge(opts.Filters)
	}

	searchLocale := s.cfg.defaultLocale
	if s.cfg.localeScopedSearch {
		searchLocale = opts.Locale
	}

	entries, err := s.FindMany(ctx, params, searchLocale)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		keys, err := storagemodels.KeysOf(entries[i])
		if err != nil {
			continue
		}
		if keys.DocumentID != "" {
			return &keys, nil
		}
	}
	return nil, nil
}

// createBaseEntry creates the default-locale base entry from the payload and
// returns its documentId.
func (s *Store[T]) createBaseEntry(ctx context.Context, opts datastore.CreateOptions[T]) (string, error) {
	created, err := s.requestDocument(ctx, s.collectionPath(""), requestOptions{
		method: http.MethodPost,
		body:   requestBody[T]{Data: opts.Data},
	})
	if err != nil {
		return "", err
	}
	if created == nil {
		return "", errors.NewMissingDocumentIDError(s.resource)
	}

	keys, err := storagemodels.KeysOf(*created)
	if err != nil || keys.DocumentID == "" {
		return "", errors.NewMissingDocumentIDError(s.resource)
	}
	return keys.DocumentID, nil
}

// localizeEntry writes the payload as the locale variant of the document,
// using the verb configured with WithLocalizedWriteVerb.
func (s *Store[T]) localizeEntry(ctx context.Context, docID, locale string, data T) (*T, error) {
	query := encodeQuery(&storagemodels.QueryParams{Locale: locale})
	return s.requestDocument(ctx, s.documentPath(docID, query), requestOptions{
		method: string(s.cfg.localizeVerb),
		body:   requestBody[T]{Data: data},
	})
}

// Update replaces the entry addressed by opts.ID with the payload. The locale
// query parameter is omitted for the default locale.
func (s *Store[T]) Update(ctx context.Context, opts datastore.UpdateOptions[T]) (*T, error) {
	query := encodeQuery(s.mergeLocale(opts.Params, opts.Locale))
	return s.requestDocument(ctx, s.documentPath(idSegment(opts.ID), query), requestOptions{
		method: http.MethodPut,
		body:   requestBody[T]{Data: opts.Data},
	})
}

// Delete removes the entry addressed by opts.ID and returns it when the
// server echoes it back. A response body that fails to decode counts as
// success with no data. The locale parameter is honored unless the store was
// configured with WithDeleteLocale(false).
func (s *Store[T]) Delete(ctx context.Context, opts datastore.DeleteOptions) (*T, error) {
	query := ""
	if s.cfg.deleteLocale {
		query = encodeQuery(s.mergeLocale(nil, opts.Locale))
	}
	return s.requestDocument(ctx, s.documentPath(idSegment(opts.ID), query), requestOptions{
		method: http.MethodDelete,
	})
}

// Upsert updates the first entry matching opts.Filters, or creates one when
// nothing matches. The update targets the matched entry's documentId,
// falling back to its plain id when the entry carries none; the fallback
// cannot link locale variants, so entries without a documentId update only
// their own locale. The search-then-write sequence is not atomic: a
// concurrent caller can create a matching entry between the two requests.
func (s *Store[T]) Upsert(ctx context.Context, opts datastore.UpsertOptions[T]) (*T, error) {
	params := opts.Params.Clone()
	if len(opts.Filters) > 0 {
		params.Filters = params.Filters.Merge(opts.Filters)
	}
	params.Pagination = &storagemodels.PaginationParams{Page: 1, PageSize: 1}

	matches, err := s.FindMany(ctx, params, opts.Locale)
	if err != nil {
		return nil, err
	}

	if len(matches) > 0 {
		keys, err := storagemodels.KeysOf(matches[0])
		if err != nil {
			return nil, errors.NewValidationError("", err.Error())
		}
		var target interface{} = keys.DocumentID
		if keys.DocumentID == "" {
			target = keys.ID
		}
		return s.Update(ctx, datastore.UpdateOptions[T]{
			ID:     target,
			Data:   opts.Data,
			Params: opts.Params,
			Locale: opts.Locale,
		})
	}

	return s.Create(ctx, datastore.CreateOptions[T]{
		Data:    opts.Data,
		Params:  opts.Params,
		Locale:  opts.Locale,
		Filters: opts.Filters,
	})
}
