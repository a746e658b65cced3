package hash

import "github.com/cespare/xxhash/v2"

// XXHashAlgorithm - Alternative hash algorithm using 64-bit xxHash with its fixed zero seed.
// It spreads keys with common prefixes (such as "line_1", "line_2") far better than djb2.
type XXHashAlgorithm struct{}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm() *XXHashAlgorithm {
	return &XXHashAlgorithm{}
}

// HashFunc - Given key it generates a hash value independent of any table size
func (X *XXHashAlgorithm) HashFunc(key string) uint64 {
	return xxhash.Sum64String(key)
}
