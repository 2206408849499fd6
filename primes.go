package openaddr

import (
	"math"
	"math/bits"
)

// Witnesses for Miller-Rabin. Any subset starting {2, 3, 5, 7, 11} is
// already deterministic below 2^32, which covers every uint32 input.
var millerRabinBases = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 31, 37}

// IsPrime reports whether n is prime using Miller-Rabin with a fixed witness
// set. The answer is exact for every uint32.
func IsPrime(n uint32) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n <= 1 || n%2 == 0 {
		return false
	}

	m := uint64(n)

	// m-1 = 2^s * d with d odd
	s := bits.TrailingZeros64(m - 1)
	d := (m - 1) >> s

witness:
	for _, a := range millerRabinBases {
		if a >= m {
			continue
		}

		x := powMod(a, d, m)
		if x == 1 || x == m-1 {
			continue
		}

		for r := 1; r < s; r++ {
			x = mulMod(x, x, m)
			if x == m-1 {
				continue witness
			}
		}

		return false
	}

	return true
}

// NextPrime returns the smallest prime >= n. It returns false when no such
// prime fits in a uint32.
func NextPrime(n uint32) (uint32, bool) {
	for c := uint64(n); c <= math.MaxUint32; c++ {
		if IsPrime(uint32(c)) {
			return uint32(c), true
		}
	}

	return 0, false
}

// PrevPrime returns the largest prime <= n. It returns false for n < 2.
func PrevPrime(n uint32) (uint32, bool) {
	for c := n; c >= 2; c-- {
		if IsPrime(c) {
			return c, true
		}
	}

	return 0, false
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

func powMod(base, exp, m uint64) uint64 {
	result := uint64(1)
	base %= m

	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		exp >>= 1
		base = mulMod(base, base, m)
	}

	return result
}
