package openaddr

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Sieve is a Sieve of Eratosthenes over [0, limit], one bit per number. A set
// bit means prime.
//
// It trades memory (limit/8 bytes) for exact primality over its range and is
// meant for bulk precomputation, e.g. of a TierTable at startup.
type Sieve struct {
	bits  *bitset.BitSet
	limit uint32
}

// NewSieve builds a sieve covering every number up to and including limit.
func NewSieve(limit uint32) (*Sieve, error) {
	if limit < 2 {
		return nil, fmt.Errorf("%w: sieve limit %d", ErrInvalidArgument, limit)
	}

	words, err := allocate[uint64](int(limit/64) + 1)
	if err != nil {
		return nil, err
	}

	b := bitset.From(words)
	// Candidates are 2..limit; 0, 1 and the padding of the last word stay
	// clear.
	b.FlipRange(2, uint(limit)+1)

	for p := uint64(2); p*p <= uint64(limit); p++ {
		if !b.Test(uint(p)) {
			continue
		}
		for m := p * p; m <= uint64(limit); m += p {
			b.Clear(uint(m))
		}
	}

	return &Sieve{bits: b, limit: limit}, nil
}

// Limit returns the largest number covered by the sieve.
func (s *Sieve) Limit() uint32 {
	return s.limit
}

// IsPrime reports whether n is prime. Numbers above Limit report false.
func (s *Sieve) IsPrime(n uint32) bool {
	if n > s.limit {
		return false
	}

	return s.bits.Test(uint(n))
}

// NextPrime returns the smallest prime >= n within the sieve.
func (s *Sieve) NextPrime(n uint32) (uint32, bool) {
	if n > s.limit {
		return 0, false
	}

	p, ok := s.bits.NextSet(uint(n))
	if !ok {
		return 0, false
	}

	return uint32(p), true
}

// PrevPrime returns the largest prime <= n within the sieve. n above Limit is
// clamped to Limit.
func (s *Sieve) PrevPrime(n uint32) (uint32, bool) {
	p, ok := s.bits.PreviousSet(uint(min(n, s.limit)))
	if !ok {
		return 0, false
	}

	return uint32(p), true
}

// Count returns the number of primes <= Limit.
func (s *Sieve) Count() int {
	return int(s.bits.Count())
}

// Tiers returns the smallest prime at or above 2^k for every tier the sieve
// covers. Tiers past the sieve's range are left zero, which ends the table.
func (s *Sieve) Tiers() TierTable {
	t := make(TierTable, MaxTier+1)

	for k := MinTier; k <= MaxTier; k++ {
		p, ok := s.NextPrime(uint32(1) << k)
		if !ok {
			break
		}
		t[k] = int(p)
	}

	return t
}
