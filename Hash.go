package Byte_Table

import (
	"golang.org/x/exp/constraints"
)

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// Hash returns the 64-bit FNV-1a digest of b. It's deterministic and total over
// all byte sequences, so Hash(nil)==Hash([]byte{})==offset basis. Every table in
// this module derives bucket placement from it, don't change the constants.
func Hash(b []byte) uint64 {
	h := offset64
	for _, c := range b {
		h ^= uint64(c)
		h *= prime64
	}
	return h
}

// Index maps hash onto a bucket array of length capacity. capacity must be a
// power of 2, the masking is then the same as hash%capacity but cheaper.
func Index(hash uint64, capacity uint) uint {
	return uint(hash) & (capacity - 1)
}

// Max of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
