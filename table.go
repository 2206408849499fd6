package openaddr

import (
	"errors"
	"fmt"
)

type table[K comparable, V any] struct {
	slots store[K, V]

	// tier is the sizing tier of the current capacity.
	tier             int
	minTier, maxTier int

	// used counts occupied slots and tombstones, active only occupied ones.
	used   int
	active int

	cfg       Config
	sizing    Sizing
	hashFunc  HashFunc[K]
	equalFunc EqualFunc[K]
	offset    offsetFunc

	grows         int
	shrinks       int
	compactions   int
	failedShrinks int
}

func (t *table[K, V]) init(opts ...Option[K, V]) error {
	t.cfg = DefaultConfig()
	t.sizing = PrimeTiers()

	for _, opt := range opts {
		opt(t)
	}

	t.cfg = t.cfg.withDefaults()
	if err := t.cfg.validate(); err != nil {
		return err
	}

	offset, err := t.cfg.Probing.offsets()
	if err != nil {
		return err
	}
	t.offset = offset

	t.minTier, t.maxTier, err = resolveTiers(t.sizing, t.cfg.MinCapacity, t.cfg.MaxCapacity)
	if err != nil {
		return err
	}

	if t.hashFunc == nil {
		t.hashFunc = FNV1aHashFunc[K]()
	}
	if t.equalFunc == nil {
		t.equalFunc = defaultEqual[K]
	}

	slots, err := allocStore[K, V](t.sizing.TierSize(t.minTier))
	if err != nil {
		return err
	}

	t.slots = slots
	t.tier = t.minTier
	t.used, t.active = 0, 0

	return nil
}

func (t *table[K, V]) capacity() int {
	return t.slots.capacity()
}

func (t *table[K, V]) search(key K) (int, error) {
	return t.slots.search(key, t.hashFunc(key), t.offset, t.equalFunc)
}

func (t *table[K, V]) insert(key K, value V) error {
	_, err := t.search(key)
	switch {
	case err == nil:
		return ErrKeyExists
	case !errors.Is(err, ErrKeyNotFound):
		return err
	}

	// Any grow is undone if the insert fails afterwards.
	saved := *t

	if err := t.maybeGrow(); err != nil {
		*t = saved
		return err
	}

	idx, reused, err := t.slots.insertSlot(t.hashFunc(key), t.offset)
	if err != nil {
		*t = saved
		return err
	}

	t.slots.set(idx, slot[K, V]{status: SlotOccupied, key: key, value: value})
	if !reused {
		t.used++
	}
	t.active++

	return nil
}

func (t *table[K, V]) remove(key K) error {
	idx, err := t.search(key)
	if err != nil {
		return err
	}

	// Tombstones carry no payload.
	t.slots.set(idx, slot[K, V]{status: SlotTombstone})
	t.active--

	return t.maybeShrink()
}

func (t *table[K, V]) fetch(index int) (V, error) {
	var zero V

	if index < 0 || index >= t.capacity() {
		return zero, fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidArgument, index, t.capacity())
	}

	switch sl := t.slots.get(index); sl.status {
	case SlotOccupied:
		return sl.value, nil
	case SlotEmpty, SlotTombstone:
		return zero, fmt.Errorf("%w: slot %d is %s", ErrInvalidArgument, index, sl.status)
	default:
		return zero, invalidState(index, sl.status)
	}
}

// resize rebuilds the table at the given tier by reinserting every live
// entry along its probe sequence in a fresh slot array. On error the table
// is left exactly as it was.
func (t *table[K, V]) resize(tier int) error {
	next, err := allocStore[K, V](t.sizing.TierSize(tier))
	if err != nil {
		return err
	}

	live := 0
	for i := range t.slots {
		sl := t.slots.get(i)

		switch sl.status {
		case SlotEmpty, SlotTombstone:
			continue
		case SlotOccupied:
		default:
			return invalidState(i, sl.status)
		}

		idx, _, err := next.insertSlot(t.hashFunc(sl.key), t.offset)
		if err != nil {
			return fmt.Errorf("resize to %d slots: %w", next.capacity(), err)
		}

		next.set(idx, sl)
		live++
	}

	t.slots = next
	t.tier = tier
	t.used, t.active = live, live

	return nil
}

func (t *table[K, V]) compact() error {
	if err := t.resize(t.tier); err != nil {
		return err
	}

	t.compactions++

	return nil
}

func (t *table[K, V]) destroy(releaseKey func(K), releaseValue func(V)) {
	if releaseKey != nil || releaseValue != nil {
		for i := range t.slots {
			sl := &t.slots[i]
			if sl.status != SlotOccupied {
				continue
			}
			if releaseKey != nil {
				releaseKey(sl.key)
			}
			if releaseValue != nil {
				releaseValue(sl.value)
			}
		}
	}

	t.slots = nil
	t.used, t.active = 0, 0
	t.hashFunc, t.equalFunc = nil, nil
}

func (t *table[K, V]) stats() Stats {
	capacity := t.capacity()
	tombstones := t.used - t.active

	s := Stats{
		Capacity:      capacity,
		Tier:          t.tier,
		Size:          t.active,
		Used:          t.used,
		Tombstones:    tombstones,
		Grows:         t.grows,
		Shrinks:       t.shrinks,
		Compactions:   t.compactions,
		FailedShrinks: t.failedShrinks,
	}

	if capacity > 0 {
		s.LoadFactor = float64(t.active) / float64(capacity)
		s.TombstonesCapacityRatio = float64(tombstones) / float64(capacity)
	}
	if t.active > 0 {
		s.TombstonesSizeRatio = float64(tombstones) / float64(t.active)
	}

	return s
}
