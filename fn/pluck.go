package fn

import (
	"strings"

	"github.com/hasbyte1/go-seqops/arr"
)

// Pluck returns object[key], or an absent Optional when key is missing. It is
// meant to be partially applied and mapped across a slice of records:
//
//	getPrice := fn.Partial1(fn.Pluck[string, float64], "price")
//	arr.Map(products, getPrice) // → [Some(10) Some(5) Some(1)]
func Pluck[K comparable, V any](key K, object map[K]V) arr.Optional[V] {
	v, ok := object[key]
	if !ok {
		return arr.None[V]()
	}
	return arr.Some(v)
}

// PluckPath reads a value from nested map[string]any structures using a
// dot-separated path. The result is absent when a segment is missing or an
// intermediate value is not a map[string]any.
//
//	m := map[string]any{"user": map[string]any{"address": map[string]any{"city": "London"}}}
//	fn.PluckPath("user.address.city", m) // → Some(London)
func PluckPath(path string, object map[string]any) arr.Optional[any] {
	current := object
	segments := strings.Split(path, ".")
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return arr.None[any]()
		}
		if i == len(segments)-1 {
			return arr.Some(val)
		}
		nested, ok := val.(map[string]any)
		if !ok {
			return arr.None[any]()
		}
		current = nested
	}
	return arr.None[any]()
}
