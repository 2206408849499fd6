package main

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/homier/openaddr"
	"github.com/spf13/cobra"
)

const (
	keysInt  = "int"
	keysUUID = "uuid"

	hashFNV = "fnv"
	hashXX  = "xxhash"
)

type benchOptions struct {
	n    int
	keys string
	hash string
}

func newBenchCmd(a *app) *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Insert, search and remove N keys and report the table stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.n <= 0 {
				return fmt.Errorf("%w: --n must be positive, got %d", errUsage, opts.n)
			}

			switch opts.keys {
			case keysInt:
				return runBench(a, cmd.OutOrStdout(), opts, strconv.Itoa)
			case keysUUID:
				return runBench(a, cmd.OutOrStdout(), opts, func(int) string { return uuid.NewString() })
			default:
				return fmt.Errorf("%w: unknown key kind %q", errUsage, opts.keys)
			}
		},
	}

	cmd.Flags().IntVar(&opts.n, "n", 100_000, "number of keys")
	cmd.Flags().StringVar(&opts.keys, "keys", keysInt, "key kind: int or uuid")
	cmd.Flags().StringVar(&opts.hash, "hash", hashFNV, "hash function: fnv or xxhash")

	return cmd
}

func runBench(a *app, out io.Writer, opts benchOptions, genKey func(i int) string) error {
	var hashOpts []openaddr.Option[string, int]
	switch opts.hash {
	case hashFNV:
	case hashXX:
		hashOpts = append(hashOpts, openaddr.WithHashFunc[string, int](openaddr.XXHashFunc[string]()))
	default:
		return fmt.Errorf("%w: unknown hash %q", errUsage, opts.hash)
	}

	m, err := newMap[string, int](a, hashOpts...)
	if err != nil {
		return err
	}
	defer func() { _ = m.Destroy(nil, nil) }()

	keys := make([]string, opts.n)
	for i := range keys {
		keys[i] = genKey(i)
	}

	phase := func(name string, fn func(i int, k string) error) error {
		start := time.Now()
		capacity := m.Size()

		for i, k := range keys {
			if err := fn(i, k); err != nil {
				return fmt.Errorf("%s key %q: %w", name, k, err)
			}

			if size := m.Size(); size != capacity {
				log.Printf("%s: resized %d -> %d at %d entries", name, capacity, size, m.Len())
				capacity = size
			}
		}

		elapsed := time.Since(start)
		fmt.Fprintf(out, "%-7s %d keys in %s (%s/op)\n", name, len(keys), elapsed.Round(time.Microsecond),
			(elapsed / time.Duration(len(keys))).Round(time.Nanosecond))

		return nil
	}

	if err := phase("insert", func(i int, k string) error { return m.Insert(k, i) }); err != nil {
		return err
	}

	printStats(out, m.Stats())

	if err := phase("search", func(i int, k string) error {
		idx, err := m.Search(k)
		if err != nil {
			return err
		}
		v, err := m.Fetch(idx)
		if err != nil {
			return err
		}
		if v != i {
			return fmt.Errorf("%w: got value %d, want %d", openaddr.ErrInvalidState, v, i)
		}
		return nil
	}); err != nil {
		return err
	}

	if err := phase("remove", func(_ int, k string) error { return m.Remove(k) }); err != nil {
		return err
	}

	printStats(out, m.Stats())

	return nil
}

func printStats(out io.Writer, s openaddr.Stats) {
	fmt.Fprintf(out, "capacity=%d tier=%d size=%d used=%d tombstones=%d load=%.3f\n",
		s.Capacity, s.Tier, s.Size, s.Used, s.Tombstones, s.LoadFactor)
	fmt.Fprintf(out, "grows=%d shrinks=%d compactions=%d failed_shrinks=%d\n",
		s.Grows, s.Shrinks, s.Compactions, s.FailedShrinks)
}
