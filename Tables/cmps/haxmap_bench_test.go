package cmps

import (
	"github.com/alphadose/haxmap"
	"testing"
)

// see https://github.com/alphadose/haxmap/issues/32 before trusting these under
// concurrent load; single-threaded they behave.
func fillHaxMap(b *testing.B) *haxmap.Map[string, []byte] {
	b.Helper()
	m := haxmap.New[string, []byte]()
	for _, k := range skeys {
		m.Set(k, bval)
	}
	return m
}

func BenchmarkHaxMap_Put(b *testing.B) {
	for _t := 0; _t < b.N; _t++ {
		m := haxmap.New[string, []byte]()
		for _, k := range skeys {
			m.Set(k, bval)
		}
	}
}

func BenchmarkHaxMap_Get(b *testing.B) {
	m := fillHaxMap(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, sideEff = m.Get(skeys[i%benchmarkItemCount])
	}
}

func BenchmarkHaxMap_Del(b *testing.B) {
	for _t := 0; _t < b.N; _t++ {
		b.StopTimer()
		m := fillHaxMap(b)
		b.StartTimer()
		for _, k := range skeys {
			m.Del(k)
		}
	}
}
