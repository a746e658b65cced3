package hash

import "github.com/gostonefire/chainhashmap/internal/conf"

// DJB2HashAlgorithm - The internally used hash algorithm. It is Dan Bernstein's djb2, hash = hash * 33 + c,
// starting from 5381 and iterating the key by unicode code point. Arithmetic wraps on overflow.
type DJB2HashAlgorithm struct{}

// NewDJB2HashAlgorithm - Returns a pointer to a new DJB2HashAlgorithm instance
func NewDJB2HashAlgorithm() *DJB2HashAlgorithm {
	return &DJB2HashAlgorithm{}
}

// HashFunc - Given key it generates a hash value independent of any table size
func (D *DJB2HashAlgorithm) HashFunc(key string) uint64 {
	h := conf.DJB2Seed
	for _, c := range key {
		h = h*conf.DJB2Multiplier + uint64(c)
	}

	return h
}
