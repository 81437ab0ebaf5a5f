// Package hashing digests values that know how to feed themselves into a hash.Hash.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"
	"strconv"

	"github.com/zeebo/xxh3"
	"golang.org/x/exp/constraints"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// Sha256 and Xxh3 are both HashFuncs.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

// Xxh3 returns the 64-bit xxh3 hashing of the given Hashable as a hex-encoded string.
// Much faster than Sha256; use it for equality checks, not for anything adversarial.
func Xxh3(hashable Hashable) (string, error) {
	return digest(xxh3.New(), hashable)
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

// HashableInts hashes a slice of integers as fixed-width little-endian words,
// so equal contents always give equal digests regardless of the integer type's width.
type HashableInts[T constraints.Integer] []T

func (s HashableInts[T]) UpdateHash(h hash.Hash) error {
	buf := make([]byte, 0, 8*len(s)) //nolint:mnd

	for _, v := range s {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v)) //nolint:gosec
	}

	_, err := h.Write(buf)

	return err
}

// HashableFloats hashes a slice of floats by their IEEE-754 bits.
type HashableFloats[T constraints.Float] []T

func (s HashableFloats[T]) UpdateHash(h hash.Hash) error {
	buf := make([]byte, 0, 8*len(s)) //nolint:mnd

	for _, v := range s {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(float64(v)))
	}

	_, err := h.Write(buf)

	return err
}

// HashableStrings hashes a slice of strings, length-prefixing each one so that
// {"ab", "c"} and {"a", "bc"} differ.
type HashableStrings []string

func (s HashableStrings) UpdateHash(h hash.Hash) error {
	for _, v := range s {
		if _, err := h.Write([]byte(strconv.Itoa(len(v)) + ":" + v)); err != nil {
			return err
		}
	}

	return nil
}
