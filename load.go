package openaddr

import (
	"errors"
	"fmt"
)

// maybeGrow runs before an insert. It moves to the next tier while the insert
// would bring used slots to the grow load factor, so the load after the
// insert stays below it. At the max tier it does nothing and the insert
// proceeds into whatever room is left.
func (t *table[K, V]) maybeGrow() error {
	for t.tier < t.maxTier && t.overGrowLoad(t.used+1, t.capacity()) {
		if err := t.resize(t.tier + 1); err != nil {
			return err
		}

		t.grows++
	}

	return nil
}

// maybeShrink runs after a remove. A table with too many tombstones or too
// few live entries moves one tier down, unless that is below the min tier or
// the live entries would already meet the grow load factor there. A failed
// shrink leaves the table unchanged; only corruption and allocation failures
// are reported.
func (t *table[K, V]) maybeShrink() error {
	capacity := float64(t.capacity())

	dead := float64(t.used-t.active) / capacity
	sparse := float64(t.active) / capacity

	if dead <= t.cfg.TombstoneRatio && sparse >= t.cfg.ShrinkLoadFactor {
		return nil
	}

	if t.tier <= t.minTier {
		return nil
	}

	if t.overGrowLoad(t.active, t.sizing.TierSize(t.tier-1)) {
		return nil
	}

	if err := t.resize(t.tier - 1); err != nil {
		t.failedShrinks++

		if errors.Is(err, ErrInvalidState) || errors.Is(err, ErrAllocation) {
			return fmt.Errorf("%w: to %d slots: %w", ErrShrinkFailed, t.sizing.TierSize(t.tier-1), err)
		}
		return nil
	}

	t.shrinks++

	return nil
}

func (t *table[K, V]) overGrowLoad(n, capacity int) bool {
	return float64(n)/float64(capacity) >= t.cfg.GrowLoadFactor
}
