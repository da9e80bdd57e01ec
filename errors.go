package orderedmap

import "fmt"

// DuplicateKeyError is returned by Insert and Rename when the target key is
// already present in the map.
type DuplicateKeyError[K comparable] struct {
	DuplicateKey K
}

func (e *DuplicateKeyError[K]) Error() string {
	return fmt.Sprintf("key already exists: %v", e.DuplicateKey)
}

// KeyNotFoundError is returned by key-based accessors and mutators when the
// requested key is not present in the map.
type KeyNotFoundError[K comparable] struct {
	MissingKey K
}

func (e *KeyNotFoundError[K]) Error() string {
	return fmt.Sprintf("missing key: %v", e.MissingKey)
}

// IndexOutOfRangeError is returned by index-based accessors and mutators when
// the requested index is outside [0, Len()).
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index out of range: %d with length %d", e.Index, e.Len)
}

// InternalConsistencyError indicates that the key->entry map and the ordered
// key sequence have diverged. This is never caused by regular use of the
// public API; it can only result from a violated FastDelete precondition (or
// a bug in the map itself), so it is surfaced as a panic value rather than a
// returned error.
type InternalConsistencyError struct {
	MapLen      int
	SequenceLen int
}

func (e *InternalConsistencyError) Error() string {
	return fmt.Sprintf("map length %d does not match key sequence length %d", e.MapLen, e.SequenceLen)
}
