package utils

import "github.com/gostonefire/chainhashmap/internal/conf"

// LoadFactor - Returns the ratio of records to buckets, capacity is expected to be 1 or higher
func LoadFactor(records, capacity int64) float64 {
	return float64(records) / float64(capacity)
}

// NeedsGrow - Returns true if the load factor has passed the grow threshold
func NeedsGrow(records, capacity int64) bool {
	return LoadFactor(records, capacity) > conf.GrowLoadFactor
}

// NeedsShrink - Returns true if the load factor has fallen below the shrink threshold and the table
// is still larger than its original capacity
func NeedsShrink(records, capacity, originalCapacity int64) bool {
	return LoadFactor(records, capacity) < conf.ShrinkLoadFactor && capacity > originalCapacity
}

// GrowCapacity - Returns the capacity to use when growing from the given capacity
func GrowCapacity(capacity int64) int64 {
	return capacity * conf.GrowFactor
}

// ShrinkCapacity - Returns the capacity to use when shrinking from the given capacity, floored at originalCapacity
func ShrinkCapacity(capacity, originalCapacity int64) int64 {
	c := capacity / conf.GrowFactor
	if c < originalCapacity {
		c = originalCapacity
	}

	return c
}
