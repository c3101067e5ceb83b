package ChainTable

import (
	Byte_Table "github.com/g-m-twostay/byte-table"
)

// Stats describes the bucket layout of a table at one point in time.
// TotalCollisions is the sum over all buckets of max(chainLength-1, 0).
type Stats struct {
	TotalEntries    uint
	UsedBuckets     uint
	TotalCollisions uint
	MaxChainLength  uint
}

// Stats scans every bucket without mutating anything. All fields are 0 for an
// empty or nil table.
func (u *ChainTable) Stats() Stats {
	var s Stats
	if u == nil {
		return s
	}
	s.TotalEntries = u.size
	for _, cur := range u.buckets {
		if cur == nil {
			continue
		}
		s.UsedBuckets++
		chain := uint(0)
		for ; cur != nil; cur = cur.nx {
			chain++
		}
		if chain > 1 {
			s.TotalCollisions += chain - 1
		}
		s.MaxChainLength = Byte_Table.Max(s.MaxChainLength, chain)
	}
	return s
}
