package openaddr

import "errors"

var (
	// ErrInvalidArgument is returned for a nil or destroyed map, an index
	// that does not address a live entry, or an invalid configuration.
	ErrInvalidArgument = errors.New("openaddr: invalid argument")

	// ErrKeyExists is returned by Insert when the key is already present.
	ErrKeyExists = errors.New("openaddr: key exists")

	// ErrKeyNotFound is returned by Search and Remove for an absent key.
	ErrKeyNotFound = errors.New("openaddr: key not found")

	// ErrNoSpace is returned when the bounded probe traversal found neither
	// an empty slot nor a tombstone.
	ErrNoSpace = errors.New("openaddr: no space")

	// ErrAllocation is returned when a slot array could not be obtained.
	ErrAllocation = errors.New("openaddr: allocation failure")

	// ErrInvalidState is returned when a slot carries an unknown status.
	// It means the slot array was corrupted.
	ErrInvalidState = errors.New("openaddr: invalid slot state")

	// ErrShrinkFailed is returned by Remove when the key was removed but the
	// shrink that followed hit a corrupt slot or could not allocate. It
	// wraps ErrInvalidState or ErrAllocation; the table keeps its size.
	ErrShrinkFailed = errors.New("openaddr: shrink failed")

	// ErrUnsupportedProbing is returned for a probing method that is not
	// implemented.
	ErrUnsupportedProbing = errors.New("openaddr: unsupported probing method")
)
