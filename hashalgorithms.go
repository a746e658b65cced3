package chainhashmap

import (
	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/gostonefire/chainhashmap/internal/hash"
)

// NewDJB2HashAlgorithm - Returns the djb2 hash algorithm, the same one NewTable uses when given nil
func NewDJB2HashAlgorithm() hashfunc.HashAlgorithm {
	return hash.NewDJB2HashAlgorithm()
}

// NewXXHashAlgorithm - Returns a hash algorithm based on 64-bit xxHash
func NewXXHashAlgorithm() hashfunc.HashAlgorithm {
	return hash.NewXXHashAlgorithm()
}
