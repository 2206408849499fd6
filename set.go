package openaddr

import (
	"errors"
	"fmt"
)

// Set is a key-only variant of Map sharing its probing, tombstones and
// resize policy.
type Set[K comparable] struct {
	table[K, struct{}]
}

func NewSet[K comparable](opts ...Option[K, struct{}]) (*Set[K], error) {
	var s Set[K]
	if err := s.init(opts...); err != nil {
		return nil, err
	}

	return &s, nil
}

// Add puts key in the set. It returns false with a nil error when key was
// already present.
func (s *Set[K]) Add(key K) (bool, error) {
	if s == nil || s.slots == nil {
		return false, fmt.Errorf("%w: nil or destroyed set", ErrInvalidArgument)
	}

	err := s.insert(key, struct{}{})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrKeyExists):
		return false, nil
	default:
		return false, err
	}
}

func (s *Set[K]) Has(key K) bool {
	if s == nil || s.slots == nil {
		return false
	}

	_, err := s.search(key)

	return err == nil
}

func (s *Set[K]) Delete(key K) bool {
	if s == nil || s.slots == nil {
		return false
	}

	err := s.remove(key)

	return err == nil || errors.Is(err, ErrShrinkFailed)
}

func (s *Set[K]) Len() int {
	if s == nil {
		return 0
	}

	return s.active
}

func (s *Set[K]) Stats() Stats {
	if s == nil {
		return Stats{}
	}

	return s.stats()
}
