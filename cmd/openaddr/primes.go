package main

import (
	"fmt"
	"time"

	"github.com/homier/openaddr"
	"github.com/spf13/cobra"
)

// defaultSieveLimit covers the next prime above 2^MaxTier.
const defaultSieveLimit = uint32(1) << (openaddr.MaxTier + 1)

func newPrimesCmd() *cobra.Command {
	var limit uint32

	cmd := &cobra.Command{
		Use:   "primes",
		Short: "Sieve primes and list the smallest prime at or above each power of two",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPrimes(cmd, limit)
		},
	}

	cmd.Flags().Uint32Var(&limit, "limit", defaultSieveLimit, "largest number covered by the sieve")

	return cmd
}

func runPrimes(cmd *cobra.Command, limit uint32) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Performing sieve of Eratosthenes up to %d...\n", limit)

	start := time.Now()
	sieve, err := openaddr.NewSieve(limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Sieve completed in %s, %d primes.\n", time.Since(start).Round(time.Microsecond), sieve.Count())
	fmt.Fprintln(out, "Primes near powers of two:")

	tiers := sieve.Tiers()
	for k := openaddr.MinTier; k <= openaddr.MaxTier; k++ {
		prime := tiers.TierSize(k)
		if prime == 0 {
			fmt.Fprintf(out, "2^%d: beyond the sieve limit\n", k)
			break
		}

		power := 1 << k
		mr, _ := openaddr.NextPrime(uint32(power))

		check := "ok"
		if int(mr) != prime || openaddr.PrimeTiers().TierSize(k) != prime {
			check = "MISMATCH"
		}

		fmt.Fprintf(out, "2^%d = %d, Next Prime: %d, dif = %d, miller-rabin: %s\n",
			k, power, prime, prime-power, check)
	}

	return nil
}
