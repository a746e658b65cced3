package hash

// BucketNumber - Reduces a hash value to a bucket number between 0 and tableSize - 1.
// The function is pure so that two table generations (old and new during a resize) can compute
// bucket numbers independently of each other.
//   - hashValue is a value returned from a hashfunc.HashAlgorithm
//   - tableSize is the number of buckets, it has to be 1 or higher
func BucketNumber(hashValue uint64, tableSize int64) int64 {
	return int64(hashValue % uint64(tableSize))
}
