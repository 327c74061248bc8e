package subdiv

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
)

// Census counts fragments by number of vertices. Keys of the returned map
// are vertex counts in ascending order, values the number of fragments
// with this many vertices.
func Census(frags []Fragment) *treemap.Map {
	m := treemap.NewWithIntComparator()
	for _, f := range frags {
		n := f.Vertices.N()
		count := 0
		if c, found := m.Get(n); found {
			count = c.(int)
		}
		m.Put(n, count+1)
	}
	return m
}

// CensusString formats a census as "3-gons:4 4-gons:10 ...".
func CensusString(census *treemap.Map) string {
	var buf bytes.Buffer
	it := census.Iterator()
	for it.Next() {
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%d-gons:%d", it.Key().(int), it.Value().(int))
	}
	return buf.String()
}
