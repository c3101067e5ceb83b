package Tables

// Table is a byte-keyed, byte-valued key-value store. Keys are arbitrary byte
// sequences (including empty, but not nil); a table owns private copies of
// everything it stores.
type Table interface {
	Put(key, val []byte) bool
	Get(key []byte) ([]byte, bool)
	HasKey(key []byte) bool
	Remove(key []byte) bool
	Keys() [][]byte
	Pairs() func() ([]byte, []byte, bool)
	Size() uint
	Clear()
}
