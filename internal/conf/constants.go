package conf

// GrowLoadFactor - Load factor above which the table doubles its number of buckets
const GrowLoadFactor float64 = 0.7

// ShrinkLoadFactor - Load factor below which the table halves its number of buckets (never below original capacity)
const ShrinkLoadFactor float64 = 0.2

// GrowFactor - Multiplier applied to capacity when growing, and divisor when shrinking
const GrowFactor int64 = 2

// DJB2Seed - Initial accumulator value for the DJB2 hash algorithm
const DJB2Seed uint64 = 5381

// DJB2Multiplier - Multiplier applied to the accumulator for each character in DJB2
const DJB2Multiplier uint64 = 33
