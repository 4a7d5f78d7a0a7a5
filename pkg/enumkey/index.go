// Package enumkey provides case-insensitive lookup of enum values by member name.
//
// An Index is built from an enum's canonical name → value table and
// normalizes every key to upper case, so user-supplied strings such as
// "Stm32" and "STM32" resolve to the same value.
package enumkey

import (
	"sort"
	"strings"
)

// Index maps uppercased member names to enum values.
// The zero value is an empty index. An Index is never modified after New.
type Index[E comparable] struct {
	byKey map[string]E
}

// New builds an Index from an enum's member name → value table.
// The resulting index has the same cardinality as members.
func New[E comparable](members map[string]E) Index[E] {
	byKey := make(map[string]E, len(members))
	for name, value := range members {
		byKey[Normalize(name)] = value
	}
	return Index[E]{byKey: byKey}
}

// Normalize returns the lookup form of a key.
func Normalize(key string) string {
	return strings.ToUpper(key)
}

// Lookup returns the value for key, ignoring letter case.
func (i Index[E]) Lookup(key string) (E, bool) {
	v, ok := i.byKey[Normalize(key)]
	return v, ok
}

// Len returns the number of keys in the index.
func (i Index[E]) Len() int {
	return len(i.byKey)
}

// Keys returns the normalized keys in sorted order.
func (i Index[E]) Keys() []string {
	keys := make([]string, 0, len(i.byKey))
	for k := range i.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
