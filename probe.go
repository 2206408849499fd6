package openaddr

import (
	"fmt"
	"strings"
)

// ProbeMethod selects the rule generating the sequence of slots examined for
// a key.
type ProbeMethod uint8

const (
	// Linear probes h, h+1, h+2, ... modulo the capacity.
	Linear ProbeMethod = iota

	// Quadratic probes h + T(i) modulo the capacity, where T(i) = (i+i²)/2 is
	// the i-th triangular number. The sequence visits every slot only when
	// the capacity is a power of two (see PowerOfTwoTiers). At a prime
	// capacity p it reaches (p+1)/2 distinct slots.
	Quadratic

	// DoubleHashing is reserved and rejected with ErrUnsupportedProbing.
	DoubleHashing
)

func (p ProbeMethod) String() string {
	switch p {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case DoubleHashing:
		return "double"
	default:
		return fmt.Sprintf("ProbeMethod(%d)", uint8(p))
	}
}

// ParseProbeMethod maps a method name, as printed by String, to its value.
// Reserved methods parse successfully and are rejected by New.
func ParseProbeMethod(s string) (ProbeMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "":
		return Linear, nil
	case "quadratic", "triangular":
		return Quadratic, nil
	case "double", "double-hashing":
		return DoubleHashing, nil
	default:
		return 0, fmt.Errorf("%w: unknown probing method %q", ErrInvalidArgument, s)
	}
}

// offsetFunc returns the distance from the start slot at probe step i.
type offsetFunc func(i uint64) uint64

func linearOffset(i uint64) uint64 {
	return i
}

func triangularOffset(i uint64) uint64 {
	return (i + i*i) >> 1
}

func (p ProbeMethod) offsets() (offsetFunc, error) {
	switch p {
	case Linear:
		return linearOffset, nil
	case Quadratic:
		return triangularOffset, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProbing, p)
	}
}

// search walks the probe sequence of hash and returns the index of the
// occupied slot holding key. The walk stops at the first empty slot or after
// capacity steps.
func (s store[K, V]) search(key K, hash uint64, offset offsetFunc, equal EqualFunc[K]) (int, error) {
	m := uint64(s.capacity())
	start := hash % m

	for i := uint64(0); i < m; i++ {
		idx := int((start + offset(i)) % m)
		sl := &s[idx]

		switch sl.status {
		case SlotEmpty:
			return -1, ErrKeyNotFound
		case SlotTombstone:
			// Keep walking, the chain continues past removed entries.
		case SlotOccupied:
			if equal(sl.key, key) {
				return idx, nil
			}
		default:
			return -1, invalidState(idx, sl.status)
		}
	}

	return -1, ErrKeyNotFound
}

// insertSlot returns the first empty or tombstone slot along the probe
// sequence of hash, and whether that slot was a tombstone.
func (s store[K, V]) insertSlot(hash uint64, offset offsetFunc) (int, bool, error) {
	m := uint64(s.capacity())
	start := hash % m

	for i := uint64(0); i < m; i++ {
		idx := int((start + offset(i)) % m)

		switch status := s[idx].status; status {
		case SlotEmpty:
			return idx, false, nil
		case SlotTombstone:
			return idx, true, nil
		case SlotOccupied:
		default:
			return -1, false, invalidState(idx, status)
		}
	}

	return -1, false, ErrNoSpace
}
