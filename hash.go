package openaddr

import (
	"encoding/binary"
	"hash/maphash"
	"math"

	"github.com/cespare/xxhash/v2"
)

type HashFunc[K comparable] func(K) uint64

type EqualFunc[K comparable] func(a, b K) bool

const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619
)

// Seed for keys without a fixed byte representation. It lives as long as
// the process, so hashes are stable across resizes.
var processSeed = maphash.MakeSeed()

// MakeSeededHashFunc hashes any comparable key with hash/maphash.
func MakeSeededHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// FNV1aHashFunc is the default hash: 32-bit FNV-1a over the key's
// little-endian byte representation. Keys of other than builtin numeric,
// bool or string type fall back to MakeSeededHashFunc.
func FNV1aHashFunc[K comparable]() HashFunc[K] {
	fallback := MakeSeededHashFunc[K](processSeed)

	return func(k K) uint64 {
		if s, ok := any(k).(string); ok {
			return uint64(fnv1a32String(s))
		}

		var buf [8]byte
		b, ok := appendKeyBytes(buf[:0], k)
		if !ok {
			return fallback(k)
		}

		return uint64(fnv1a32(b))
	}
}

// XXHashFunc hashes the same byte representation as FNV1aHashFunc with
// xxhash64.
func XXHashFunc[K comparable]() HashFunc[K] {
	fallback := MakeSeededHashFunc[K](processSeed)

	return func(k K) uint64 {
		if s, ok := any(k).(string); ok {
			return xxhash.Sum64String(s)
		}

		var buf [8]byte
		b, ok := appendKeyBytes(buf[:0], k)
		if !ok {
			return fallback(k)
		}

		return xxhash.Sum64(b)
	}
}

func defaultEqual[K comparable](a, b K) bool {
	return a == b
}

func fnv1a32(b []byte) uint32 {
	h := uint32(fnvOffset32)
	for _, c := range b {
		h ^= uint32(c)
		h *= fnvPrime32
	}

	return h
}

func fnv1a32String(s string) uint32 {
	h := uint32(fnvOffset32)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= fnvPrime32
	}

	return h
}

func appendKeyBytes[K comparable](buf []byte, k K) ([]byte, bool) {
	le := binary.LittleEndian

	switch v := any(k).(type) {
	case int:
		return le.AppendUint64(buf, uint64(v)), true
	case int8:
		return append(buf, byte(v)), true
	case int16:
		return le.AppendUint16(buf, uint16(v)), true
	case int32:
		return le.AppendUint32(buf, uint32(v)), true
	case int64:
		return le.AppendUint64(buf, uint64(v)), true
	case uint:
		return le.AppendUint64(buf, uint64(v)), true
	case uint8:
		return append(buf, v), true
	case uint16:
		return le.AppendUint16(buf, v), true
	case uint32:
		return le.AppendUint32(buf, v), true
	case uint64:
		return le.AppendUint64(buf, v), true
	case uintptr:
		return le.AppendUint64(buf, uint64(v)), true
	case float32:
		if v == 0 {
			v = 0 // -0 == +0
		}
		return le.AppendUint32(buf, math.Float32bits(v)), true
	case float64:
		if v == 0 {
			v = 0
		}
		return le.AppendUint64(buf, math.Float64bits(v)), true
	case bool:
		if v {
			return append(buf, 1), true
		}
		return append(buf, 0), true
	default:
		return buf, false
	}
}
