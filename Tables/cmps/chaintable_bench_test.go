// Package cmps benchmarks ChainTable against the native map and several
// ecosystem hash maps on the same byte-string workload. The concurrent maps
// are run single-threaded here; the point is the per-operation cost of the
// chained layout, not contention behavior.
package cmps

import (
	"fmt"
	"github.com/g-m-twostay/byte-table/Tables/ChainTable"
	"testing"
)

const benchmarkItemCount = 1024

var (
	bkeys = func() [][]byte {
		ks := make([][]byte, benchmarkItemCount)
		for i := range ks {
			ks[i] = []byte(fmt.Sprintf("key_%d", i))
		}
		return ks
	}()
	skeys = func() []string {
		ks := make([]string, benchmarkItemCount)
		for i := range ks {
			ks[i] = fmt.Sprintf("key_%d", i)
		}
		return ks
	}()
	bval    = []byte("value")
	sideEff bool
)

func fillChainTable(b *testing.B) *ChainTable.ChainTable {
	b.Helper()
	m := ChainTable.MakeChainTable()
	for _, k := range bkeys {
		m.Put(k, bval)
	}
	return m
}

func BenchmarkChainTable_Put(b *testing.B) {
	for _t := 0; _t < b.N; _t++ {
		m := ChainTable.MakeChainTable()
		for _, k := range bkeys {
			m.Put(k, bval)
		}
	}
}

func BenchmarkChainTable_Get(b *testing.B) {
	m := fillChainTable(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, sideEff = m.Get(bkeys[i%benchmarkItemCount])
	}
}

func BenchmarkChainTable_Del(b *testing.B) {
	for _t := 0; _t < b.N; _t++ {
		b.StopTimer()
		m := fillChainTable(b)
		b.StartTimer()
		for _, k := range bkeys {
			m.Remove(k)
		}
	}
}
