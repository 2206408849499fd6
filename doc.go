/*
Package openaddr provides an open-addressing hash table with pluggable
probing, tombstone deletion and tiered capacity management.

Basic usage:

	m, err := openaddr.New[int, int]()
	if err != nil {
		log.Fatal(err)
	}

	if err := m.Insert(42, 420); err != nil {
		log.Fatal(err)
	}

	idx, err := m.Search(42)
	if err == nil {
		v, _ := m.Fetch(idx) // valid until the next Insert, Remove or Compact
		fmt.Println(v)
	}

	_ = m.Remove(42)

Capacity:

Capacities come from size tiers 1..29. With the default PrimeTiers sizing,
tier k holds the smallest prime at or above 2^k; PowerOfTwoTiers holds exactly
2^k. An insert that would bring used slots (live entries plus tombstones) to
the grow load factor first moves the table one tier up. A remove that leaves
the table tombstone-heavy or sparse moves it one tier down, provided the live
entries stay below the grow load factor at the smaller size.

Every resize allocates a fresh slot array and reinserts the live entries, so
tombstones disappear and all indices returned by Search become stale.

Probing:

Linear probing examines consecutive slots. Quadratic probing adds triangular
numbers to the start slot; it reaches every slot only at power-of-two
capacities, so at prime capacities an insert can fail with ErrNoSpace while
free slots remain. The default load factors keep enough reachable slots free
for this never to happen.

Primes:

IsPrime is a deterministic Miller-Rabin test over uint32. Sieve packs a Sieve
of Eratosthenes into bits for bulk work; Sieve.Tiers precomputes a TierTable
usable with WithSizing.
*/
package openaddr
