package openaddr

import (
	"fmt"
	"iter"
)

// Map is an open-addressing hash map with tombstone deletion. It grows and
// shrinks between prime (or power-of-two) size tiers as entries come and go.
//
// A Map is not safe for concurrent use. Callers sharing one must hold an
// exclusive lock around every call, including reads: Insert and Remove may
// rebuild the whole slot array.
type Map[K comparable, V any] struct {
	table[K, V]
}

// New returns an empty map configured by opts.
func New[K comparable, V any](opts ...Option[K, V]) (*Map[K, V], error) {
	var m Map[K, V]
	if err := m.init(opts...); err != nil {
		return nil, err
	}

	return &m, nil
}

func (m *Map[K, V]) check() error {
	if m == nil || m.slots == nil {
		return fmt.Errorf("%w: nil or destroyed map", ErrInvalidArgument)
	}

	return nil
}

// Insert adds a new entry. It fails with ErrKeyExists if the key is present
// and with ErrNoSpace if its probe sequence has no free slot. A failed Insert
// leaves the entries unchanged.
func (m *Map[K, V]) Insert(key K, value V) error {
	if err := m.check(); err != nil {
		return err
	}

	return m.insert(key, value)
}

// Search returns the slot index holding key, or ErrKeyNotFound.
//
// The index is only valid until the next Insert, Remove or Compact: any of
// them may resize the table and move every entry.
func (m *Map[K, V]) Search(key K) (int, error) {
	if err := m.check(); err != nil {
		return -1, err
	}

	return m.search(key)
}

// Fetch returns the value at an index obtained from Search with no mutating
// call in between. Stale or out-of-range indices yield ErrInvalidArgument.
func (m *Map[K, V]) Fetch(index int) (V, error) {
	if err := m.check(); err != nil {
		var zero V
		return zero, err
	}

	return m.fetch(index)
}

// Get looks up key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V

	idx, err := m.Search(key)
	if err != nil {
		return zero, false
	}

	v, err := m.fetch(idx)
	if err != nil {
		return zero, false
	}

	return v, true
}

// Remove deletes key, leaving a tombstone, then shrinks the table if it has
// become sparse or tombstone-heavy.
//
// At the min capacity, or when the live entries would overload the smaller
// size, no shrink happens and tombstones stay until Compact or the next grow.
//
// An error wrapping ErrShrinkFailed means the key is gone but the shrink
// found a corrupt slot or could not allocate.
func (m *Map[K, V]) Remove(key K) error {
	if err := m.check(); err != nil {
		return err
	}

	return m.remove(key)
}

// Size returns the capacity.
func (m *Map[K, V]) Size() int {
	if m == nil {
		return 0
	}

	return m.capacity()
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}

	return m.active
}

// All iterates over live entries in slot order. The map must not be mutated
// during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.check() != nil {
			return
		}

		for i := range m.slots {
			sl := &m.slots[i]
			if sl.status != SlotOccupied {
				continue
			}
			if !yield(sl.key, sl.value) {
				return
			}
		}
	}
}

// Walk calls fn for every slot, live or not, until fn returns false. Key and
// value are zero for empty slots and tombstones.
func (m *Map[K, V]) Walk(fn func(index int, status SlotStatus, key K, value V) bool) error {
	if err := m.check(); err != nil {
		return err
	}

	for i := range m.slots {
		sl := &m.slots[i]
		if sl.status > SlotTombstone {
			return invalidState(i, sl.status)
		}
		if !fn(i, sl.status, sl.key, sl.value) {
			return nil
		}
	}

	return nil
}

// Compact rebuilds the table at its current capacity, dropping tombstones.
// Remove never does this by itself, so a table held at its min capacity
// collects tombstones until Compact is called.
func (m *Map[K, V]) Compact() error {
	if err := m.check(); err != nil {
		return err
	}

	return m.compact()
}

// Destroy passes every live key and value to the release callbacks, either
// of which may be nil, and drops the slot array. Every later call on the map
// fails with ErrInvalidArgument.
func (m *Map[K, V]) Destroy(releaseKey func(K), releaseValue func(V)) error {
	if err := m.check(); err != nil {
		return err
	}

	m.destroy(releaseKey, releaseValue)

	return nil
}

func (m *Map[K, V]) Stats() Stats {
	if m == nil {
		return Stats{}
	}

	return m.stats()
}
