package openaddr

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPrime(t *testing.T) {
	tests := []struct {
		name string
		n    uint32
		want bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"two", 2, true},
		{"three", 3, true},
		{"four", 4, false},
		{"witness itself", 37, true},
		{"Carmichael 561", 561, false},
		{"Carmichael 1105", 1105, false},
		{"Carmichael 1729", 1729, false},
		{"strong pseudoprime base 2", 2047, false},
		{"strong pseudoprime bases 2,3", 1373653, false},
		{"strong pseudoprime bases 2,3,5", 25326001, false},
		{"strong pseudoprime bases 2,3,5,7", 3215031751, false},
		{"Mersenne 2^31-1", 2147483647, true},
		{"largest uint32 prime", 4294967291, true},
		{"max uint32", math.MaxUint32, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsPrime(tt.n))
		})
	}
}

func TestIsPrime_AgreesWithBig(t *testing.T) {
	for n := uint32(0); n < 10000; n++ {
		want := big.NewInt(int64(n)).ProbablyPrime(20)
		require.Equalf(t, want, IsPrime(n), "n=%d", n)
	}

	rnd := rand.New(rand.NewSource(1))
	for range 2000 {
		n := rnd.Uint32()
		want := big.NewInt(int64(n)).ProbablyPrime(20)
		require.Equalf(t, want, IsPrime(n), "n=%d", n)
	}
}

func TestNextPrime(t *testing.T) {
	tests := []struct {
		n    uint32
		want uint32
		ok   bool
	}{
		{0, 2, true},
		{2, 2, true},
		{4, 5, true},
		{14, 17, true},
		{1 << 16, 65537, true},
		{4294967280, 4294967291, true},
		{math.MaxUint32, 0, false},
	}

	for _, tt := range tests {
		got, ok := NextPrime(tt.n)
		assert.Equalf(t, tt.ok, ok, "NextPrime(%d)", tt.n)
		assert.Equalf(t, tt.want, got, "NextPrime(%d)", tt.n)
	}
}

func TestPrevPrime(t *testing.T) {
	tests := []struct {
		n    uint32
		want uint32
		ok   bool
	}{
		{0, 0, false},
		{1, 0, false},
		{2, 2, true},
		{16, 13, true},
		{math.MaxUint32, 4294967291, true},
	}

	for _, tt := range tests {
		got, ok := PrevPrime(tt.n)
		assert.Equalf(t, tt.ok, ok, "PrevPrime(%d)", tt.n)
		assert.Equalf(t, tt.want, got, "PrevPrime(%d)", tt.n)
	}
}

func TestPowMod(t *testing.T) {
	require.Equal(t, uint64(1), powMod(2, 10, 1023))
	require.Equal(t, uint64(0), powMod(5, 3, 5))
	require.Equal(t, uint64(1), powMod(7, 0, 13))

	// Fermat: a^(p-1) = 1 mod p for the largest uint32 prime.
	p := uint64(4294967291)
	require.Equal(t, uint64(1), powMod(123456789, p-1, p))
}
