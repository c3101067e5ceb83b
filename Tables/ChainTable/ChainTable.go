// Package ChainTable implements a byte-string key-value table using separate
// chaining with FNV-1a bucket placement.
//
// # Ownership
// The table keeps private copies of all keys and values passed to Put, so
// callers may reuse their buffers freely. Get returns the stored bytes
// themselves; that view is only valid until the next operation that mutates
// the same key, copy it if you need it longer.
//
// # Thread Safety
// None. All operations assume a single thread of control; synchronize
// externally if you must share a table.
package ChainTable

import (
	"bytes"
	Byte_Table "github.com/g-m-twostay/byte-table"
	"github.com/g-m-twostay/byte-table/Tables"
)

const (
	// InitialCap is the bucket count of a fresh table. Capacities are always
	// powers of 2 so bucket selection can mask instead of mod.
	InitialCap uint = 64
	// maxLoadFactor is the size/capacity ceiling; exceeding it on insertion of
	// a new key doubles the bucket array. Updates never resize.
	maxLoadFactor = 0.75
)

var _ Tables.Table = (*ChainTable)(nil)

type ChainTable struct {
	buckets []*node
	size    uint
}

// MakeChainTable returns an empty table with InitialCap buckets.
func MakeChainTable() *ChainTable {
	t := new(ChainTable)
	t.buckets = make([]*node, InitialCap)
	return t
}

func (u *ChainTable) find(key []byte) *node {
	for cur := u.buckets[Byte_Table.Index(Byte_Table.Hash(key), uint(len(u.buckets)))]; cur != nil; cur = cur.nx {
		if bytes.Equal(cur.k, key) {
			return cur
		}
	}
	return nil
}

// grow relinks every node into a fresh bucket array of newCap heads, old
// buckets in ascending order, each node pushed onto the head of its new chain.
// Nodes are moved, the key/value bytes are never re-copied.
func (u *ChainTable) grow(newCap uint) {
	newBuckets := make([]*node, newCap)
	for _, cur := range u.buckets {
		for cur != nil {
			nx := cur.nx
			i := Byte_Table.Index(Byte_Table.Hash(cur.k), newCap)
			cur.nx = newBuckets[i]
			newBuckets[i] = cur
			cur = nx
		}
	}
	u.buckets = newBuckets
}

// Put inserts key→val or replaces the value of an existing key. It reports
// false without mutating anything when u, key, or val is nil. A replaced
// value keeps its entry's key bytes and chain position; a new key lands at the
// head of its bucket's chain.
func (u *ChainTable) Put(key, val []byte) bool {
	if u == nil || key == nil || val == nil {
		return false
	}
	if cur := u.find(key); cur != nil {
		cur.v = bytes.Clone(val)
		return true
	}
	if float64(u.size+1)/float64(len(u.buckets)) > maxLoadFactor {
		u.grow(uint(len(u.buckets)) << 1)
	}
	i := Byte_Table.Index(Byte_Table.Hash(key), uint(len(u.buckets)))
	u.buckets[i] = &node{k: bytes.Clone(key), v: bytes.Clone(val), nx: u.buckets[i]}
	u.size++
	return true
}

// Get returns the stored value bytes for key. The returned slice is borrowed,
// see the package doc.
func (u *ChainTable) Get(key []byte) ([]byte, bool) {
	if u == nil || key == nil {
		return nil, false
	}
	if cur := u.find(key); cur != nil {
		return cur.v, true
	}
	return nil, false
}

// HasKey reports whether key is present.
func (u *ChainTable) HasKey(key []byte) bool {
	if u == nil || key == nil {
		return false
	}
	return u.find(key) != nil
}

// Remove unlinks key's entry and reports whether it was present. The bucket
// array never shrinks.
func (u *ChainTable) Remove(key []byte) bool {
	if u == nil || key == nil {
		return false
	}
	prev := &u.buckets[Byte_Table.Index(Byte_Table.Hash(key), uint(len(u.buckets)))]
	for cur := *prev; cur != nil; cur = *prev {
		if bytes.Equal(cur.k, key) {
			*prev = cur.nx
			cur.nx = nil
			u.size--
			return true
		}
		prev = &cur.nx
	}
	return false
}

// Size is the number of stored entries.
func (u *ChainTable) Size() uint {
	if u == nil {
		return 0
	}
	return u.size
}

// Cap is the current bucket count, a power of 2 ≥ InitialCap.
func (u *ChainTable) Cap() uint {
	if u == nil {
		return 0
	}
	return uint(len(u.buckets))
}

// Clear drops every entry but keeps the bucket array at its current capacity.
func (u *ChainTable) Clear() {
	if u == nil {
		return
	}
	for i := range u.buckets {
		u.buckets[i] = nil
	}
	u.size = 0
}

// Keys returns copies of all stored keys, ascending bucket order, within each
// bucket newest first. The order is a function of insertion history and
// capacity, not of key contents; sort the result if you need a total order.
// An empty table yields nil.
func (u *ChainTable) Keys() [][]byte {
	if u == nil || u.size == 0 {
		return nil
	}
	ks := make([][]byte, 0, u.size)
	for _, cur := range u.buckets {
		for ; cur != nil; cur = cur.nx {
			ks = append(ks, bytes.Clone(cur.k))
		}
	}
	return ks
}

// Pairs returns an enumerator over (key, value) in the same order as Keys. The
// yielded slices are borrowed, don't mutate the table mid-walk.
func (u *ChainTable) Pairs() func() ([]byte, []byte, bool) {
	var cur *node
	i := 0
	return func() (k, v []byte, ok bool) {
		if u == nil {
			return
		}
		for cur == nil {
			if i >= len(u.buckets) {
				return
			}
			cur = u.buckets[i]
			i++
		}
		k, v, ok = cur.k, cur.v, true
		cur = cur.nx
		return
	}
}

// PrintAll dumps every entry to stdout for debugging.
func (u *ChainTable) PrintAll() {
	if u == nil {
		println("(nil table)")
		return
	}
	println("table contents (", u.size, "entries ):")
	for next := u.Pairs(); ; {
		k, v, ok := next()
		if !ok {
			break
		}
		println("k: ", string(k), "; v: ", string(v))
	}
}
