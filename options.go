package openaddr

import "fmt"

const (
	DefaultGrowLoadFactor   = 0.5
	DefaultShrinkLoadFactor = 0.25
	DefaultTombstoneRatio   = 0.1
)

// Config holds the scalar settings of a table. Zero values select the
// defaults; zero capacities select the bounds of the sizing in use.
type Config struct {
	MinCapacity int
	MaxCapacity int

	// GrowLoadFactor in (0, 1]: an insert that would bring used slots
	// (live + tombstones) to this share of the capacity grows the table first.
	GrowLoadFactor float64

	// ShrinkLoadFactor in (0, GrowLoadFactor): a remove leaving fewer live
	// entries than this share of the capacity attempts a shrink.
	ShrinkLoadFactor float64

	// TombstoneRatio in (0, 1]: a remove leaving more tombstones than this
	// share of the capacity attempts a shrink.
	TombstoneRatio float64

	Probing ProbeMethod
}

func DefaultConfig() Config {
	return Config{
		GrowLoadFactor:   DefaultGrowLoadFactor,
		ShrinkLoadFactor: DefaultShrinkLoadFactor,
		TombstoneRatio:   DefaultTombstoneRatio,
		Probing:          Linear,
	}
}

func (c Config) withDefaults() Config {
	if c.GrowLoadFactor == 0 {
		c.GrowLoadFactor = DefaultGrowLoadFactor
	}
	if c.ShrinkLoadFactor == 0 {
		c.ShrinkLoadFactor = DefaultShrinkLoadFactor
	}
	if c.TombstoneRatio == 0 {
		c.TombstoneRatio = DefaultTombstoneRatio
	}

	return c
}

func (c Config) validate() error {
	switch {
	case c.GrowLoadFactor <= 0 || c.GrowLoadFactor > 1:
		return fmt.Errorf("%w: grow load factor %v not in (0, 1]", ErrInvalidArgument, c.GrowLoadFactor)
	case c.ShrinkLoadFactor <= 0 || c.ShrinkLoadFactor >= c.GrowLoadFactor:
		return fmt.Errorf("%w: shrink load factor %v not in (0, %v)", ErrInvalidArgument, c.ShrinkLoadFactor, c.GrowLoadFactor)
	case c.TombstoneRatio <= 0 || c.TombstoneRatio > 1:
		return fmt.Errorf("%w: tombstone ratio %v not in (0, 1]", ErrInvalidArgument, c.TombstoneRatio)
	case c.MinCapacity < 0 || c.MaxCapacity < 0:
		return fmt.Errorf("%w: negative capacity bound", ErrInvalidArgument)
	case c.MaxCapacity > 0 && c.MinCapacity > c.MaxCapacity:
		return fmt.Errorf("%w: min capacity %d above max capacity %d", ErrInvalidArgument, c.MinCapacity, c.MaxCapacity)
	}

	return nil
}

type Option[K comparable, V any] func(t *table[K, V])

// WithConfig replaces every scalar setting at once.
func WithConfig[K comparable, V any](cfg Config) Option[K, V] {
	return func(t *table[K, V]) {
		t.cfg = cfg
	}
}

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// Override default key equality.
func WithEqualFunc[K comparable, V any](f EqualFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.equalFunc = f
	}
}

func WithProbing[K comparable, V any](p ProbeMethod) Option[K, V] {
	return func(t *table[K, V]) {
		t.cfg.Probing = p
	}
}

func WithSizing[K comparable, V any](s Sizing) Option[K, V] {
	return func(t *table[K, V]) {
		t.sizing = s
	}
}

func WithMinCapacity[K comparable, V any](n int) Option[K, V] {
	return func(t *table[K, V]) {
		t.cfg.MinCapacity = n
	}
}

func WithMaxCapacity[K comparable, V any](n int) Option[K, V] {
	return func(t *table[K, V]) {
		t.cfg.MaxCapacity = n
	}
}

// WithMaxMemory caps the capacity at the number of slots fitting in size
// bytes.
func WithMaxMemory[K comparable, V any](size uintptr) Option[K, V] {
	return func(t *table[K, V]) {
		t.cfg.MaxCapacity = CapacityFromSize[K, V](size)
		if t.cfg.MaxCapacity == 0 {
			// Not even one slot fits; let validation reject it.
			t.cfg.MaxCapacity = -1
		}
	}
}

func WithGrowLoadFactor[K comparable, V any](f float64) Option[K, V] {
	return func(t *table[K, V]) {
		t.cfg.GrowLoadFactor = f
	}
}

func WithShrinkLoadFactor[K comparable, V any](f float64) Option[K, V] {
	return func(t *table[K, V]) {
		t.cfg.ShrinkLoadFactor = f
	}
}

func WithTombstoneRatio[K comparable, V any](f float64) Option[K, V] {
	return func(t *table[K, V]) {
		t.cfg.TombstoneRatio = f
	}
}
