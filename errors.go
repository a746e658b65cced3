package chainhashmap

import "fmt"

// InvalidCapacity - Custom error to inform that a table can't be created with the requested capacity
type InvalidCapacity struct {
	capacity int64
}

// Error - Used to notify that the requested capacity was not a positive value
func (E InvalidCapacity) Error() string {
	return fmt.Sprintf("initial capacity must be a positive value higher than 0 (zero), got %d", E.capacity)
}

// Is - Makes any InvalidCapacity match regardless of the capacity it carries, so errors.Is(err, InvalidCapacity{}) works
func (E InvalidCapacity) Is(target error) bool {
	_, ok := target.(InvalidCapacity)
	return ok
}
