/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// EntryKeys holds the two identifiers the client reads off an entry: the
// plain id and the documentId shared across locale variants. Either may be
// absent.
type EntryKeys struct {
	// ID is the entry identifier as it appeared in JSON: a string, a
	// float64 for numeric ids, or nil when absent.
	ID interface{}
	// DocumentID links locale variants of the same logical entry. Empty
	// when the entry carries none.
	DocumentID string
}

// KeysOf extracts EntryKeys from an arbitrary entry value by marshaling it to
// JSON and inspecting the "id" and "documentId" fields. The entry type itself
// is never validated beyond these two fields.
func KeysOf(entry interface{}) (EntryKeys, error) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return EntryKeys{}, fmt.Errorf("failed to marshal entry: %w", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return EntryKeys{}, fmt.Errorf("entry is not a JSON object: %w", err)
	}

	keys := EntryKeys{}
	if v, ok := fields["id"]; ok {
		keys.ID = v
	}
	if v, ok := fields["documentId"].(string); ok {
		keys.DocumentID = v
	}
	return keys, nil
}

// HasID reports whether the entry carried a usable plain identifier.
func (k EntryKeys) HasID() bool {
	switch v := k.ID.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case float64:
		return v != 0
	default:
		return true
	}
}

// IDString renders the plain identifier as a path segment. Numeric ids print
// without a decimal point.
func (k EntryKeys) IDString() string {
	switch v := k.ID.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
