/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"sync"
)

// ResourceDescriptor describes how one entry type maps onto the content API.
type ResourceDescriptor struct {
	// Name is the resource path segment, e.g. "articles".
	Name string `yaml:"name"`
	// DefaultLocale overrides the store's default locale when non-empty.
	DefaultLocale string `yaml:"defaultLocale,omitempty"`
	// UniqueField names the field upserts match on, e.g. "slug".
	UniqueField string `yaml:"uniqueField,omitempty"`
}

// ResourceRegistry is a registry for Go entry types and their resource descriptors.

var (
	resourceRegistry = make(map[reflect.Type]ResourceDescriptor)
	mu               sync.RWMutex
)

// RegisterResource associates a Go entry type T with a resource descriptor.
func RegisterResource[T any](desc ResourceDescriptor) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	resourceRegistry[t] = desc
}

// GetResource retrieves the resource descriptor for type T, if any.
func GetResource[T any]() (ResourceDescriptor, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.RLock()
	defer mu.RUnlock()
	desc, ok := resourceRegistry[t]
	return desc, ok
}

// namedRegistry holds descriptors addressable by resource name, populated by
// hand or from a YAML config.
var namedRegistry = make(map[string]ResourceDescriptor)

// RegisterNamed registers a descriptor under its resource name.
// If a descriptor is already registered for the name, it panics to prevent accidental overrides.
func RegisterNamed(desc ResourceDescriptor) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := namedRegistry[desc.Name]; exists {
		panic(fmt.Sprintf("resource registry: resource %q already registered", desc.Name))
	}
	namedRegistry[desc.Name] = desc
}

// LookupNamed returns the descriptor registered under the given resource name.
// If none is registered, it returns an error.
func LookupNamed(name string) (ResourceDescriptor, error) {
	mu.RLock()
	defer mu.RUnlock()

	desc, ok := namedRegistry[name]
	if !ok {
		return ResourceDescriptor{}, fmt.Errorf("resource registry: no resource registered for name %q", name)
	}
	return desc, nil
}

// NamedResources returns the names of all registered descriptors.
func NamedResources() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(namedRegistry))
	for name := range namedRegistry {
		names = append(names, name)
	}
	return names
}
