package openaddr

import "fmt"

// Size tiers. Tier k holds roughly 2^k slots.
const (
	MinTier = 1
	MaxTier = 29
)

// primeDelta[k] is the distance from 2^k to the smallest prime at or above
// it.
var primeDelta = [MaxTier + 1]int{
	1, 0, 1, 3, 1, 5, 3, 3, 1, 9,
	7, 5, 3, 17, 27, 3, 1, 29, 3, 21,
	7, 17, 15, 9, 43, 35, 15, 29, 3, 11,
}

// Sizing maps a size tier in [MinTier, MaxTier] to a table capacity. Sizes
// must be strictly increasing with the tier. A non-positive size ends the
// usable range, so a sizing may cover only a prefix of the tiers.
type Sizing interface {
	TierSize(k int) int
}

type primeTiers struct{}

func (primeTiers) TierSize(k int) int {
	if k < MinTier || k > MaxTier {
		return 0
	}

	return 1<<k + primeDelta[k]
}

// PrimeTiers sizes tier k as the smallest prime >= 2^k. It is the default.
func PrimeTiers() Sizing {
	return primeTiers{}
}

type powerOfTwoTiers struct{}

func (powerOfTwoTiers) TierSize(k int) int {
	if k < MinTier || k > MaxTier {
		return 0
	}

	return 1 << k
}

// PowerOfTwoTiers sizes tier k as exactly 2^k. Quadratic probing only covers
// the whole table at these capacities.
func PowerOfTwoTiers() Sizing {
	return powerOfTwoTiers{}
}

// TierTable is a precomputed sizing indexed by tier; index 0 is unused.
type TierTable []int

func (t TierTable) TierSize(k int) int {
	if k < 0 || k >= len(t) {
		return 0
	}

	return t[k]
}

// ComputePrimeTiers builds the prime sizing with Miller-Rabin instead of the
// fixed offset table.
func ComputePrimeTiers() TierTable {
	t := make(TierTable, MaxTier+1)

	for k := MinTier; k <= MaxTier; k++ {
		p, _ := NextPrime(uint32(1) << k)
		t[k] = int(p)
	}

	return t
}

// tierRange returns the usable tiers of s.
func tierRange(s Sizing) (int, int, error) {
	if s == nil {
		return 0, 0, fmt.Errorf("%w: nil sizing", ErrInvalidArgument)
	}

	hi, prev := 0, 0
	for k := MinTier; k <= MaxTier; k++ {
		size := s.TierSize(k)
		if size <= 0 {
			break
		}
		if size <= prev {
			return 0, 0, fmt.Errorf("%w: tier %d size %d not above tier %d size %d",
				ErrInvalidArgument, k, size, k-1, prev)
		}

		hi, prev = k, size
	}

	if hi == 0 {
		return 0, 0, fmt.Errorf("%w: sizing has no usable tier", ErrInvalidArgument)
	}

	return MinTier, hi, nil
}

// resolveTiers maps capacity bounds onto tiers of s: minCapacity to the
// smallest tier at or above it and maxCapacity to the largest tier at or
// below it. Zero bounds mean the whole usable range.
func resolveTiers(s Sizing, minCapacity, maxCapacity int) (int, int, error) {
	lo, hi, err := tierRange(s)
	if err != nil {
		return 0, 0, err
	}

	minTier, maxTier := lo, hi

	if minCapacity > 0 {
		minTier = -1
		for k := lo; k <= hi; k++ {
			if s.TierSize(k) >= minCapacity {
				minTier = k
				break
			}
		}
		if minTier < 0 {
			return 0, 0, fmt.Errorf("%w: min capacity %d above largest tier size %d",
				ErrInvalidArgument, minCapacity, s.TierSize(hi))
		}
	}

	if maxCapacity > 0 {
		maxTier = -1
		for k := hi; k >= lo; k-- {
			if s.TierSize(k) <= maxCapacity {
				maxTier = k
				break
			}
		}
		if maxTier < 0 {
			return 0, 0, fmt.Errorf("%w: max capacity %d below smallest tier size %d",
				ErrInvalidArgument, maxCapacity, s.TierSize(lo))
		}
	}

	if minTier > maxTier {
		return 0, 0, fmt.Errorf("%w: no tier between min capacity %d and max capacity %d",
			ErrInvalidArgument, minCapacity, maxCapacity)
	}

	return minTier, maxTier, nil
}
