// Package clone produces deep, aliasing-free copies of domain values.
// Every value crossing the state store boundary goes through Of, so callers
// can freely mutate what they receive without touching store internals.
package clone

import (
	"encoding/json"
	"fmt"
)

// Of returns a structurally identical, referentially independent copy of v.
// It handles nested containers and cycle-free object graphs via a JSON
// round-trip. Domain entities are plain serializable structs; a marshal
// failure therefore indicates a programming error and panics.
func Of[T any](v T) T {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("clone: marshal %T: %v", v, err))
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("clone: unmarshal %T: %v", v, err))
	}
	return out
}

// Slice deep-copies a slice, returning an empty (non-nil) slice for nil
// input so list operations never hand out nil collections.
func Slice[T any](in []T) []T {
	if len(in) == 0 {
		return []T{}
	}
	return Of(in)
}
