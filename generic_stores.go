/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package contentstore

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/suparena/contentstore/datastore"
)

// TypedStores provides type-safe access to ContentStore instances for a specific entry type T
type TypedStores[T any] struct {
	mu     sync.RWMutex
	stores map[string]datastore.ContentStore[T]
}

// NewTypedStores creates a new TypedStores for entry type T
func NewTypedStores[T any]() *TypedStores[T] {
	return &TypedStores[T]{
		stores: make(map[string]datastore.ContentStore[T]),
	}
}

// Register adds a content store with the given key
func (ts *TypedStores[T]) Register(key string, store datastore.ContentStore[T]) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.stores[key]; exists {
		return fmt.Errorf("content store with key %q already registered", key)
	}

	ts.stores[key] = store
	return nil
}

// Get retrieves a content store by key
func (ts *TypedStores[T]) Get(key string) (datastore.ContentStore[T], error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	store, exists := ts.stores[key]
	if !exists {
		return nil, fmt.Errorf("content store with key %q not found", key)
	}

	return store, nil
}

// Remove deletes a content store by key
func (ts *TypedStores[T]) Remove(key string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.stores[key]; !exists {
		return fmt.Errorf("content store with key %q not found", key)
	}

	delete(ts.stores, key)
	return nil
}

// List returns all registered content store keys
func (ts *TypedStores[T]) List() []string {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	keys := make([]string, 0, len(ts.stores))
	for k := range ts.stores {
		keys = append(keys, k)
	}
	return keys
}

// MultiTypeStores manages TypedStores instances for different entry types
type MultiTypeStores struct {
	mu     sync.RWMutex
	stores map[reflect.Type]interface{}
}

// NewMultiTypeStores creates a new MultiTypeStores
func NewMultiTypeStores() *MultiTypeStores {
	return &MultiTypeStores{
		stores: make(map[reflect.Type]interface{}),
	}
}

// GetTypedStores returns the TypedStores for the specified entry type, creating it if necessary
func GetTypedStores[T any](mts *MultiTypeStores) *TypedStores[T] {
	mts.mu.Lock()
	defer mts.mu.Unlock()

	var zero T
	typ := reflect.TypeOf(zero)

	if stores, exists := mts.stores[typ]; exists {
		return stores.(*TypedStores[T])
	}

	newStores := NewTypedStores[T]()
	mts.stores[typ] = newStores
	return newStores
}

// Convenience helpers for common operations

// RegisterContentStore registers a content store for entry type T
func RegisterContentStore[T any](mts *MultiTypeStores, key string, store datastore.ContentStore[T]) error {
	stores := GetTypedStores[T](mts)
	return stores.Register(key, store)
}

// GetContentStore retrieves a content store for entry type T
func GetContentStore[T any](mts *MultiTypeStores, key string) (datastore.ContentStore[T], error) {
	stores := GetTypedStores[T](mts)
	return stores.Get(key)
}

// RemoveContentStore removes a content store for entry type T
func RemoveContentStore[T any](mts *MultiTypeStores, key string) error {
	stores := GetTypedStores[T](mts)
	return stores.Remove(key)
}

// ListContentStores lists all content stores for entry type T
func ListContentStores[T any](mts *MultiTypeStores) []string {
	stores := GetTypedStores[T](mts)
	return stores.List()
}
