// Package orderedmap implements an insertion-ordered map with positional
// access: a generic map from unique keys to values that remembers the order
// keys were inserted in, and exposes that order as a zero-based index.
//
// Entries can be looked up, renamed and deleted either by key or by index.
// Deleting an entry shifts the index of every later entry down by one, which
// makes deletion O(n) in the worst case; all lookups are O(1).
//
// An OrderedMap is not safe for concurrent use. Callers must serialize
// access externally if the map is shared between goroutines.
package orderedmap

import "iter"

type entry[V any] struct {
	value V
	index int
}

// OrderedMap is a map that additionally keeps track of the order keys were
// inserted in, and supports lookup, rename and deletion by position.
//
// The zero value is ready to use; New allows pre-sizing and bulk loading.
type OrderedMap[K comparable, V any] struct {
	entries map[K]*entry[V]
	keys    []K
}

// Pair is a single key/value association, used for bulk construction.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

type initConfig[K comparable, V any] struct {
	capacity    int
	initialData []Pair[K, V]
}

// InitOption is an option to configure a map at construction time; see
// WithCapacity and WithInitialData.
type InitOption[K comparable, V any] func(config *initConfig[K, V])

// WithCapacity allows giving a capacity hint for the map, akin to the
// standard make(map[K]V, capacity).
func WithCapacity[K comparable, V any](capacity int) InitOption[K, V] {
	return func(config *initConfig[K, V]) {
		config.capacity = capacity
	}
}

// WithInitialData allows passing in initial data for the map. Pairs are
// inserted in the order given; if a key repeats, the first occurrence wins.
func WithInitialData[K comparable, V any](initialData ...Pair[K, V]) InitOption[K, V] {
	return func(config *initConfig[K, V]) {
		config.initialData = initialData
		if config.capacity < len(initialData) {
			config.capacity = len(initialData)
		}
	}
}

const invalidOptionMessage = `when using New, the options must be one of the following types: int or InitOption[K, V]`

func invalidOption() { panic(invalidOptionMessage) }

// New creates a new OrderedMap.
//
// options can either be one or several InitOption[K, V], or a single integer,
// which is then interpreted as a capacity hint, the same way as providing it
// to WithCapacity. Any other option makes New panic.
func New[K comparable, V any](options ...any) *OrderedMap[K, V] {
	om := &OrderedMap[K, V]{}

	var config initConfig[K, V]
	for _, untypedOption := range options {
		switch option := untypedOption.(type) {
		case int:
			if len(options) != 1 {
				invalidOption()
			}
			config.capacity = option

		case InitOption[K, V]:
			option(&config)

		default:
			invalidOption()
		}
	}

	om.initialize(config.capacity)
	for _, pair := range config.initialData {
		_, _ = om.Insert(pair.Key, pair.Value)
	}

	return om
}

// From creates a new OrderedMap from an iterator, preserving the iteration
// order. If a key repeats, the first occurrence wins.
func From[K comparable, V any](seq iter.Seq2[K, V]) *OrderedMap[K, V] {
	om := New[K, V]()
	for k, v := range seq {
		_, _ = om.Insert(k, v)
	}
	return om
}

func (om *OrderedMap[K, V]) initialize(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	om.entries = make(map[K]*entry[V], capacity)
	om.keys = make([]K, 0, capacity)
}

// Len returns the number of entries in the map. It also cheaply re-checks
// that the key->entry map and the ordered key sequence agree on that number,
// and panics with an *InternalConsistencyError if they do not; see the
// documentation on that type. A nil map has length 0.
func (om *OrderedMap[K, V]) Len() int {
	if om == nil {
		return 0
	}
	om.checkLengths()
	return len(om.keys)
}

func (om *OrderedMap[K, V]) checkLengths() {
	if len(om.entries) != len(om.keys) {
		panic(&InternalConsistencyError{MapLen: len(om.entries), SequenceLen: len(om.keys)})
	}
}

// Insert appends a new entry at the end of the insertion order and returns a
// pointer to the stored value, usable for in-place mutation. If the key is
// already present it returns a *DuplicateKeyError and leaves the map
// untouched - Insert never overwrites.
//
// The returned pointer aliases the map's internal storage: it stays valid
// across value mutations, but must not be retained across a structural
// mutation (Insert, Delete, DeleteAt, FastDelete, Rename, Clear). Once the
// entry is removed the pointer aliases an orphaned slot, and writes through
// it are silently lost.
func (om *OrderedMap[K, V]) Insert(key K, value V) (*V, error) {
	if om.entries == nil {
		om.initialize(0)
	}

	if _, present := om.entries[key]; present {
		return nil, &DuplicateKeyError[K]{key}
	}

	e := &entry[V]{value: value, index: len(om.keys)}
	om.entries[key] = e
	om.keys = append(om.keys, key)

	return &e.value, nil
}

// Get returns a pointer to the value stored for key, or a *KeyNotFoundError
// if the key is absent. The same aliasing rules as for Insert apply.
func (om *OrderedMap[K, V]) Get(key K) (*V, error) {
	e, present := om.entries[key]
	if !present {
		return nil, &KeyNotFoundError[K]{key}
	}
	return &e.value, nil
}

// Value returns the value stored for key, or V's zero value if the key is
// absent. It never fails; use Get or Has when absence matters.
func (om *OrderedMap[K, V]) Value(key K) V {
	if e, present := om.entries[key]; present {
		return e.value
	}
	var zero V
	return zero
}

// At returns a pointer to the value of the entry at the given position in
// insertion order, or an *IndexOutOfRangeError if index is outside [0, Len()).
// The same aliasing rules as for Insert apply.
func (om *OrderedMap[K, V]) At(index int) (*V, error) {
	if index < 0 || index >= len(om.keys) {
		return nil, &IndexOutOfRangeError{Index: index, Len: len(om.keys)}
	}
	return &om.entries[om.keys[index]].value, nil
}

// KeyAt returns the key of the entry at the given position in insertion
// order, or an *IndexOutOfRangeError if index is outside [0, Len()).
func (om *OrderedMap[K, V]) KeyAt(index int) (K, error) {
	if index < 0 || index >= len(om.keys) {
		var zero K
		return zero, &IndexOutOfRangeError{Index: index, Len: len(om.keys)}
	}
	return om.keys[index], nil
}

// IndexOf returns the current position of key in insertion order, or -1 if
// the key is absent. Unlike the other key-based accessors it never fails,
// so it doubles as an existence check.
func (om *OrderedMap[K, V]) IndexOf(key K) int {
	e, present := om.entries[key]
	if !present {
		return -1
	}
	return e.index
}

// Has reports whether key is present in the map.
func (om *OrderedMap[K, V]) Has(key K) bool {
	_, present := om.entries[key]
	return present
}

// Rename changes the key of an existing entry from oldKey to newKey. The
// entry's value and position are unchanged. It returns a *KeyNotFoundError
// if oldKey is absent, and a *DuplicateKeyError if newKey already belongs to
// another entry. Renaming a key onto itself is a no-op.
func (om *OrderedMap[K, V]) Rename(oldKey, newKey K) error {
	e, present := om.entries[oldKey]
	if !present {
		return &KeyNotFoundError[K]{oldKey}
	}
	if newKey == oldKey {
		return nil
	}
	if _, taken := om.entries[newKey]; taken {
		return &DuplicateKeyError[K]{newKey}
	}

	delete(om.entries, oldKey)
	om.entries[newKey] = e
	om.keys[e.index] = newKey

	return nil
}

// RenameAt changes the key of the entry at the given position in insertion
// order. It returns an *IndexOutOfRangeError if index is outside [0, Len()),
// and otherwise behaves like Rename.
func (om *OrderedMap[K, V]) RenameAt(index int, newKey K) error {
	if index < 0 || index >= len(om.keys) {
		return &IndexOutOfRangeError{Index: index, Len: len(om.keys)}
	}
	return om.Rename(om.keys[index], newKey)
}

// Delete removes the entry stored for key, or returns a *KeyNotFoundError if
// the key is absent. Every entry after the removed one shifts one position
// earlier, making Delete O(n) in the worst case.
func (om *OrderedMap[K, V]) Delete(key K) error {
	e, present := om.entries[key]
	if !present {
		return &KeyNotFoundError[K]{key}
	}

	om.removeAt(e.index, key)
	om.checkLengths()
	return nil
}

// DeleteAt removes the entry at the given position in insertion order, or
// returns an *IndexOutOfRangeError if index is outside [0, Len()). Every
// entry after the removed one shifts one position earlier.
func (om *OrderedMap[K, V]) DeleteAt(index int) error {
	if index < 0 || index >= len(om.keys) {
		return &IndexOutOfRangeError{Index: index, Len: len(om.keys)}
	}

	om.removeAt(index, om.keys[index])
	om.checkLengths()
	return nil
}

// FastDelete removes the entry at the given position, skipping all
// validation.
//
// UNSAFE: the caller must guarantee that index is a valid position and that
// key is exactly the key stored at that position (i.e. k, _ := om.KeyAt(i);
// k == key). Violating this corrupts the map's internal bookkeeping with no
// diagnostic until a later Len call panics. Use Delete or DeleteAt unless a
// profile says otherwise.
func (om *OrderedMap[K, V]) FastDelete(index int, key K) {
	om.removeAt(index, key)
}

// removeAt is the single removal path: it drops the map entry, compacts the
// key sequence, and re-stamps the recorded index of every entry after the
// removal point.
func (om *OrderedMap[K, V]) removeAt(index int, key K) {
	delete(om.entries, key)
	om.keys = append(om.keys[:index], om.keys[index+1:]...)
	om.reindex(index)
}

func (om *OrderedMap[K, V]) reindex(from int) {
	for i := from; i < len(om.keys); i++ {
		om.entries[om.keys[i]].index = i
	}
}

// Clear removes all entries from the map. It never fails.
func (om *OrderedMap[K, V]) Clear() {
	clear(om.entries)
	om.keys = om.keys[:0]
}

// Keys returns the keys in insertion order, as a freshly allocated slice.
func (om *OrderedMap[K, V]) Keys() []K {
	if om == nil {
		return nil
	}
	keys := make([]K, len(om.keys))
	copy(keys, om.keys)
	return keys
}

// Values returns the values in insertion order, as a freshly allocated slice.
func (om *OrderedMap[K, V]) Values() []V {
	if om == nil {
		return nil
	}
	values := make([]V, len(om.keys))
	for i, key := range om.keys {
		values[i] = om.entries[key].value
	}
	return values
}

// FromOldest returns an iterator over all the key/value pairs in the map,
// in insertion order. The map must not be structurally mutated while
// iterating, except by appending via Insert.
func (om *OrderedMap[K, V]) FromOldest() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if om == nil {
			return
		}
		for i := 0; i < len(om.keys); i++ {
			key := om.keys[i]
			if !yield(key, om.entries[key].value) {
				return
			}
		}
	}
}

// FromNewest returns an iterator over all the key/value pairs in the map,
// in reverse insertion order. The map must not be structurally mutated while
// iterating.
func (om *OrderedMap[K, V]) FromNewest() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if om == nil {
			return
		}
		for i := len(om.keys) - 1; i >= 0; i-- {
			key := om.keys[i]
			if !yield(key, om.entries[key].value) {
				return
			}
		}
	}
}

// KeysFromOldest returns an iterator over the keys, in insertion order.
func (om *OrderedMap[K, V]) KeysFromOldest() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range om.FromOldest() {
			if !yield(key) {
				return
			}
		}
	}
}

// KeysFromNewest returns an iterator over the keys, in reverse insertion
// order.
func (om *OrderedMap[K, V]) KeysFromNewest() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range om.FromNewest() {
			if !yield(key) {
				return
			}
		}
	}
}

// ValuesFromOldest returns an iterator over the values, in insertion order.
func (om *OrderedMap[K, V]) ValuesFromOldest() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range om.FromOldest() {
			if !yield(value) {
				return
			}
		}
	}
}

// ValuesFromNewest returns an iterator over the values, in reverse insertion
// order.
func (om *OrderedMap[K, V]) ValuesFromNewest() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range om.FromNewest() {
			if !yield(value) {
				return
			}
		}
	}
}
