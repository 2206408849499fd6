package openaddr

import "fmt"

// SlotStatus is the state of a single slot of the table.
type SlotStatus uint8

const (
	SlotEmpty SlotStatus = iota
	SlotOccupied
	// SlotTombstone marks a removed entry. It keeps probe chains that ran
	// through the slot intact until the next resize.
	SlotTombstone
)

func (s SlotStatus) String() string {
	switch s {
	case SlotEmpty:
		return "empty"
	case SlotOccupied:
		return "occupied"
	case SlotTombstone:
		return "tombstone"
	default:
		return fmt.Sprintf("SlotStatus(%d)", uint8(s))
	}
}

type slot[K comparable, V any] struct {
	status SlotStatus
	key    K
	value  V
}

// store is the flat slot array. It does no validation beyond Go's own
// bounds checks; the probe functions own that.
type store[K comparable, V any] []slot[K, V]

func (s store[K, V]) get(i int) slot[K, V] {
	return s[i]
}

func (s store[K, V]) set(i int, sl slot[K, V]) {
	s[i] = sl
}

func (s store[K, V]) capacity() int {
	return len(s)
}

func allocStore[K comparable, V any](capacity int) (store[K, V], error) {
	slots, err := allocate[slot[K, V]](capacity)
	if err != nil {
		return nil, err
	}

	return store[K, V](slots), nil
}

// allocate turns the runtime's makeslice panic into ErrAllocation. A real
// out-of-memory condition is still fatal to the process.
func allocate[T any](n int) (s []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("%w: %d elements: %v", ErrAllocation, n, r)
		}
	}()

	return make([]T, n), nil
}

func invalidState(index int, status SlotStatus) error {
	return fmt.Errorf("%w: slot %d has status %d", ErrInvalidState, index, uint8(status))
}
