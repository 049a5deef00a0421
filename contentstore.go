/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package contentstore

import (
	"fmt"
	"sync"
)

// Stores is a higher-level interface that manages a collection of ContentStore instances.
// Note that its methods are not generic; they use the empty interface (any) to store and retrieve ContentStores.
type Stores interface {
	// RegisterStore registers a ContentStore under a given key (for example, "articles" or "authors").
	RegisterStore(key string, store any) error
	// GetStore retrieves the registered ContentStore for a given key.
	// The caller must type-assert the returned value to the appropriate ContentStore type.
	GetStore(key string) (any, error)
}

// storeManager is a thread-safe implementation of the Stores interface.
type storeManager struct {
	mu     sync.RWMutex
	stores map[string]any
}

// NewStoreManager creates and returns a new Stores implementation.
func NewStoreManager() Stores {
	return &storeManager{
		stores: make(map[string]any),
	}
}

// RegisterStore stores the provided ContentStore under the given key.
func (sm *storeManager) RegisterStore(key string, store any) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.stores[key]; exists {
		return fmt.Errorf("content store with key %q already registered", key)
	}
	sm.stores[key] = store
	return nil
}

// GetStore retrieves the ContentStore associated with the given key.
func (sm *storeManager) GetStore(key string) (any, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	store, exists := sm.stores[key]
	if !exists {
		return nil, fmt.Errorf("content store with key %q not found", key)
	}
	return store, nil
}
