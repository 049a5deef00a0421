/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a mock implementation of the ContentStore interface for testing
package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/suparena/contentstore/datastore"
	"github.com/suparena/contentstore/errors"
	"github.com/suparena/contentstore/storagemodels"
)

// ContentStore is a mock implementation of datastore.ContentStore[T] for
// testing. Entries live in an in-memory map keyed by their id; ids and
// documentIds are generated on create when the payload carries none.
type ContentStore[T any] struct {
	mu           sync.RWMutex
	entries      map[string]T
	nextID       int
	findManyFunc func(ctx context.Context, params *storagemodels.QueryParams, locale string) ([]T, error)
	findError    error
	createError  error
	updateError  error
	deleteError  error
}

var _ datastore.ContentStore[struct{}] = (*ContentStore[struct{}])(nil)

// New creates a new mock ContentStore
func New[T any]() *ContentStore[T] {
	return &ContentStore[T]{
		entries: make(map[string]T),
		nextID:  1,
	}
}

// WithFindManyFunc sets a custom find-many function for testing
func (m *ContentStore[T]) WithFindManyFunc(f func(ctx context.Context, params *storagemodels.QueryParams, locale string) ([]T, error)) *ContentStore[T] {
	m.findManyFunc = f
	return m
}

// WithFindError makes read operations return an error
func (m *ContentStore[T]) WithFindError(err error) *ContentStore[T] {
	m.findError = err
	return m
}

// WithCreateError makes Create operations return an error
func (m *ContentStore[T]) WithCreateError(err error) *ContentStore[T] {
	m.createError = err
	return m
}

// WithUpdateError makes Update operations return an error
func (m *ContentStore[T]) WithUpdateError(err error) *ContentStore[T] {
	m.updateError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *ContentStore[T]) WithDeleteError(err error) *ContentStore[T] {
	m.deleteError = err
	return m
}

// Seed inserts entries directly, bypassing id generation. Entries without an
// id are rejected.
func (m *ContentStore[T]) Seed(entries ...T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, entry := range entries {
		keys, err := storagemodels.KeysOf(entry)
		if err != nil {
			return err
		}
		if !keys.HasID() {
			return errors.NewValidationError("id", "seeded entries need an id")
		}
		m.entries[keys.IDString()] = entry
	}
	return nil
}

// FindMany returns every stored entry in stable id order, or delegates to the
// custom find-many function when one is set.
func (m *ContentStore[T]) FindMany(ctx context.Context, params *storagemodels.QueryParams, locale string) ([]T, error) {
	if m.findError != nil {
		return nil, m.findError
	}
	if m.findManyFunc != nil {
		return m.findManyFunc(ctx, params, locale)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	results := make([]T, 0, len(keys))
	for _, k := range keys {
		results = append(results, m.entries[k])
	}
	return results, nil
}

// Find returns the entry with the given id, or the first find-many match when
// no id is set. Nil when nothing matches.
func (m *ContentStore[T]) Find(ctx context.Context, opts datastore.FindOptions) (*T, error) {
	if m.findError != nil {
		return nil, m.findError
	}

	if opts.ID != nil {
		key := storagemodels.EntryKeys{ID: opts.ID}.IDString()
		m.mu.RLock()
		defer m.mu.RUnlock()
		if entry, exists := m.entries[key]; exists {
			return &entry, nil
		}
		return nil, nil
	}

	entries, err := m.FindMany(ctx, opts.Params, opts.Locale)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// Create stores the payload, generating an id and a documentId when the
// payload carries none.
func (m *ContentStore[T]) Create(ctx context.Context, opts datastore.CreateOptions[T]) (*T, error) {
	if m.createError != nil {
		return nil, m.createError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, keys, err := m.assignIdentity(opts.Data)
	if err != nil {
		return nil, err
	}
	m.entries[keys.IDString()] = entry
	return &entry, nil
}

// Update replaces the entry addressed by opts.ID, matching the plain id first
// and the documentId second.
func (m *ContentStore[T]) Update(ctx context.Context, opts datastore.UpdateOptions[T]) (*T, error) {
	if m.updateError != nil {
		return nil, m.updateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key, err := m.resolveKey(opts.ID)
	if err != nil {
		return nil, err
	}
	m.entries[key] = opts.Data
	entry := opts.Data
	return &entry, nil
}

// Delete removes the entry addressed by opts.ID and returns it.
func (m *ContentStore[T]) Delete(ctx context.Context, opts datastore.DeleteOptions) (*T, error) {
	if m.deleteError != nil {
		return nil, m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key, err := m.resolveKey(opts.ID)
	if err != nil {
		return nil, err
	}
	entry := m.entries[key]
	delete(m.entries, key)
	return &entry, nil
}

// Upsert updates the first find-many match or creates a new entry. Mirrors
// the REST store's search-then-write shape without evaluating filters; use
// WithFindManyFunc to script matches.
func (m *ContentStore[T]) Upsert(ctx context.Context, opts datastore.UpsertOptions[T]) (*T, error) {
	params := opts.Params.Clone()
	if len(opts.Filters) > 0 {
		params.Filters = params.Filters.Merge(opts.Filters)
	}

	matches, err := m.FindMany(ctx, params, opts.Locale)
	if err != nil {
		return nil, err
	}

	if len(matches) > 0 {
		keys, err := storagemodels.KeysOf(matches[0])
		if err != nil {
			return nil, err
		}
		var target interface{} = keys.DocumentID
		if keys.DocumentID == "" {
			target = keys.ID
		}
		return m.Update(ctx, datastore.UpdateOptions[T]{
			ID:     target,
			Data:   opts.Data,
			Params: opts.Params,
			Locale: opts.Locale,
		})
	}

	return m.Create(ctx, datastore.CreateOptions[T]{
		Data:    opts.Data,
		Params:  opts.Params,
		Locale:  opts.Locale,
		Filters: opts.Filters,
	})
}

// assignIdentity fills in a generated id and documentId through a JSON
// round-trip, the same field-level view the REST store has of an entry.
// Caller must hold the write lock.
func (m *ContentStore[T]) assignIdentity(data T) (T, storagemodels.EntryKeys, error) {
	var zero T

	raw, err := json.Marshal(data)
	if err != nil {
		return zero, storagemodels.EntryKeys{}, fmt.Errorf("failed to marshal entry: %w", err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return zero, storagemodels.EntryKeys{}, fmt.Errorf("entry is not a JSON object: %w", err)
	}

	if v, ok := fields["id"]; !ok || v == nil || v == float64(0) {
		fields["id"] = m.nextID
		m.nextID++
	}
	if v, ok := fields["documentId"].(string); !ok || v == "" {
		fields["documentId"] = uuid.NewString()
	}

	patched, err := json.Marshal(fields)
	if err != nil {
		return zero, storagemodels.EntryKeys{}, err
	}
	var entry T
	if err := json.Unmarshal(patched, &entry); err != nil {
		return zero, storagemodels.EntryKeys{}, fmt.Errorf("failed to rebuild entry: %w", err)
	}

	keys, err := storagemodels.KeysOf(entry)
	if err != nil {
		return zero, storagemodels.EntryKeys{}, err
	}
	return entry, keys, nil
}

// resolveKey maps an id or documentId onto the storage key. Caller must hold
// at least the read lock.
func (m *ContentStore[T]) resolveKey(id interface{}) (string, error) {
	key := storagemodels.EntryKeys{ID: id}.IDString()
	if _, exists := m.entries[key]; exists {
		return key, nil
	}

	// Fall back to a documentId scan.
	for k, entry := range m.entries {
		keys, err := storagemodels.KeysOf(entry)
		if err != nil {
			continue
		}
		if keys.DocumentID != "" && keys.DocumentID == key {
			return k, nil
		}
	}

	var zero T
	return "", errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
}

// SetEntries directly replaces the internal map (for testing)
func (m *ContentStore[T]) SetEntries(entries map[string]T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = entries
}

// Entries returns a copy of the internal map (for testing)
func (m *ContentStore[T]) Entries() map[string]T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]T, len(m.entries))
	for k, v := range m.entries {
		result[k] = v
	}
	return result
}
