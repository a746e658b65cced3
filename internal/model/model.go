package model

// Entry - Represents one key/value pair in a bucket chain. An entry is owned either by its bucket slot
// or by the preceding entry in the chain.
type Entry[V any] struct {
	Key   string
	Value V
	Next  *Entry[V]
}

// Buckets - Represents the storage array of a table generation, each slot holding the head of a chain
type Buckets[V any] []*Entry[V]
