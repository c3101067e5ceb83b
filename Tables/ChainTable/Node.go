package ChainTable

import "fmt"

// node is one chain entry. The table owns k and v; nx is the rest of the
// bucket's chain, nil terminated.
type node struct {
	k, v []byte
	nx   *node
}

func (u *node) String() string {
	return fmt.Sprintf("key: %q; val: %q", u.k, u.v)
}
