package chainhashmap

import (
	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/gostonefire/chainhashmap/internal/hash"
	"github.com/gostonefire/chainhashmap/internal/model"
	"github.com/gostonefire/chainhashmap/internal/utils"
)

// TableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - Capacity is the current number of buckets
//   - OriginalCapacity is the capacity the table was created with and will never shrink below
//   - LoadFactor is Records divided by Capacity
//   - UsedBuckets is the number of buckets holding at least one record
//   - LongestChain is the number of records in the most populated bucket
//   - BucketDistribution is the number of records stored in each available bucket
type TableStat struct {
	Records            int64
	Capacity           int64
	OriginalCapacity   int64
	LoadFactor         float64
	UsedBuckets        int64
	LongestChain       int64
	BucketDistribution []int64
}

// Table - The main implementation struct. It maps string keys to values of type V using separate chaining
// and grows or shrinks its bucket array as the load factor passes thresholds.
// A Table is not safe for concurrent use, callers sharing one between goroutines must provide their own locking.
type Table[V any] struct {
	buckets          model.Buckets[V]
	capacity         int64
	originalCapacity int64
	count            int64
	hashAlgorithm    hashfunc.HashAlgorithm
}

// NewTable - Returns a new table with the given number of buckets.
//   - initialCapacity is the number of buckets to start with, it also becomes the floor the table never shrinks below.
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface, nil gives djb2.
//
// It returns:
//   - table is a pointer to a Table struct
//   - err is of type InvalidCapacity if initialCapacity is not a positive value
func NewTable[V any](initialCapacity int64, hashAlgorithm hashfunc.HashAlgorithm) (table *Table[V], err error) {
	// Check if initialCapacity is valid
	if initialCapacity <= 0 {
		err = InvalidCapacity{capacity: initialCapacity}
		return
	}

	// If no HashAlgorithm was given then use the default internal
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewDJB2HashAlgorithm()
	}

	table = &Table[V]{
		buckets:          make(model.Buckets[V], initialCapacity),
		capacity:         initialCapacity,
		originalCapacity: initialCapacity,
		hashAlgorithm:    hashAlgorithm,
	}

	return
}

// LoadFactor - Returns number of records divided by number of buckets
func (T *Table[V]) LoadFactor() float64 {
	return utils.LoadFactor(T.count, T.capacity)
}

// Len - Returns number of records stored
func (T *Table[V]) Len() int64 {
	return T.count
}

// Capacity - Returns current number of buckets
func (T *Table[V]) Capacity() int64 {
	return T.capacity
}

// OriginalCapacity - Returns the number of buckets the table was created with
func (T *Table[V]) OriginalCapacity() int64 {
	return T.originalCapacity
}

// bucketNo - Returns which bucket the given key belongs to in the current table generation.
// The result must never be kept across calls that may resize.
func (T *Table[V]) bucketNo(key string) int64 {
	return hash.BucketNumber(T.hashAlgorithm.HashFunc(key), T.capacity)
}
