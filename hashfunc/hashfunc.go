package hashfunc

// HashAlgorithm - Interface that permits an implementation using the Table to supply a custom hash
// algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// HashFunc - Given key it generates a hash value.
	// The value must not depend on table capacity and must be the same for the same key every time it is called,
	// the table reduces it to a bucket number by itself, both before and after a resize. Randomly seeded hash
	// functions will therefore break the table.
	HashFunc(key string) uint64
}
