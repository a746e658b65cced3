package chainhashmap

import "github.com/gostonefire/chainhashmap/internal/model"

// chainEntries - Is used to iterate over the entries of one bucket chain one by one.
type chainEntries[V any] struct {
	entry *model.Entry[V]
}

// newChainEntries - Returns a pointer to a new chainEntries struct starting at the head of a bucket
func newChainEntries[V any](head *model.Entry[V]) *chainEntries[V] {
	return &chainEntries[V]{entry: head}
}

// hasNext - Returns true if there are more entries to be fetched from a call to next.
func (C *chainEntries[V]) hasNext() bool {
	return C.entry != nil
}

// next - Returns the next entry in the chain, or nil if the chain is exhausted.
// The returned entry's Next link is read before returning, so the caller may relink the entry
// into another chain without breaking the iteration.
func (C *chainEntries[V]) next() (entry *model.Entry[V]) {
	entry = C.entry
	if entry != nil {
		C.entry = entry.Next
	}

	return
}
