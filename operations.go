package chainhashmap

import (
	"github.com/gostonefire/chainhashmap/internal/hash"
	"github.com/gostonefire/chainhashmap/internal/model"
	"github.com/gostonefire/chainhashmap/internal/utils"
)

// Retrieve - Gets the value that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found, otherwise the zero value of V
//   - ok is true if a matching record was found
func (T *Table[V]) Retrieve(key string) (value V, ok bool) {
	entry := T.get(key)
	if entry == nil {
		return
	}

	return entry.Value, true
}

// Insert - Adds a record, replacing any existing record with the same key.
// An existing record is removed first and the new one is then put at the head of its bucket chain,
// so both the removal and the insert may resize the table.
//   - key is the identifier of a record
//   - value is the value to store along with its key
func (T *Table[V]) Insert(key string, value V) {
	if T.get(key) != nil {
		T.Remove(key)
	}

	bucketNo := T.bucketNo(key)
	T.buckets[bucketNo] = &model.Entry[V]{Key: key, Value: value, Next: T.buckets[bucketNo]}
	T.count++

	if utils.NeedsGrow(T.count, T.capacity) {
		T.resize(utils.GrowCapacity(T.capacity))
	}
}

// Remove - Removes the record corresponding to key. Nothing happens if there is no such record.
//   - key is the identifier of a record
func (T *Table[V]) Remove(key string) {
	bucketNo := T.bucketNo(key)

	var prev *model.Entry[V]
	iter := newChainEntries(T.buckets[bucketNo])
	for iter.hasNext() {
		entry := iter.next()
		if entry.Key != key {
			prev = entry
			continue
		}

		// Splice out of chain
		if prev == nil {
			T.buckets[bucketNo] = entry.Next
		} else {
			prev.Next = entry.Next
		}
		entry.Next = nil
		T.count--

		if utils.NeedsShrink(T.count, T.capacity, T.originalCapacity) {
			T.resize(utils.ShrinkCapacity(T.capacity, T.originalCapacity))
		}

		return
	}
}

// Stat - Walks through the entire set of buckets and produce a TableStat struct with information.
// The TableStat.BucketDistribution slice will have one entry per bucket.
//   - includeDistribution set to true will include a slice of length Capacity with number of records per bucket, false will set TableStat.BucketDistribution to nil.
func (T *Table[V]) Stat(includeDistribution bool) (tableStat TableStat) {
	tableStat = TableStat{
		Capacity:         T.capacity,
		OriginalCapacity: T.originalCapacity,
		LoadFactor:       T.LoadFactor(),
	}

	if includeDistribution {
		tableStat.BucketDistribution = make([]int64, T.capacity)
	}

	// Iterate over every available bucket
	for i, head := range T.buckets {
		var chainLength int64
		iter := newChainEntries(head)
		for iter.hasNext() {
			_ = iter.next()
			chainLength++
		}

		tableStat.Records += chainLength
		if chainLength > 0 {
			tableStat.UsedBuckets++
		}
		if chainLength > tableStat.LongestChain {
			tableStat.LongestChain = chainLength
		}
		if includeDistribution {
			tableStat.BucketDistribution[i] = chainLength
		}
	}

	return
}

// get - Returns the entry matching key, or nil if there is none
func (T *Table[V]) get(key string) *model.Entry[V] {
	iter := newChainEntries(T.buckets[T.bucketNo(key)])
	for iter.hasNext() {
		entry := iter.next()
		if entry.Key == key {
			return entry
		}
	}

	return nil
}

// resize - Rebuilds the table into newCapacity buckets. Buckets are read in ascending order and every chain
// from head to tail, each entry being relinked at the head of its bucket in the new generation.
// Entries are placed directly, never through Insert, so no threshold checks (and no nested resizes) happen.
func (T *Table[V]) resize(newCapacity int64) {
	if newCapacity == T.capacity {
		return
	}

	newBuckets := make(model.Buckets[V], newCapacity)
	for _, head := range T.buckets {
		iter := newChainEntries(head)
		for iter.hasNext() {
			entry := iter.next()
			bucketNo := hash.BucketNumber(T.hashAlgorithm.HashFunc(entry.Key), newCapacity)
			entry.Next = newBuckets[bucketNo]
			newBuckets[bucketNo] = entry
		}
	}

	T.buckets = newBuckets
	T.capacity = newCapacity
}
