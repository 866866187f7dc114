package conf

// OccupancyLimitPercent - Occupancy percentage at which the table is expanded to keep
// the collision rate from degrading insertions
const OccupancyLimitPercent int64 = 70

// PoolGrowthLimitPercent - String pool utilization percentage at which a table expansion
// also grows the pool
const PoolGrowthLimitPercent int64 = 80

// PoolBytesPerSlot - Number of pool bytes reserved per table slot at creation time.
// Estimated that each word is a bit more than 8 characters long on average, though as only
// 70% of the table will ever be occupied, roughly 70% of that number is used.
const PoolBytesPerSlot int64 = 6

// InitialWordBufferLength - Initial capacity of the word buffer used when scanning input
const InitialWordBufferLength int = 16

// MinWordBufferLength - Smallest allowed initial word buffer capacity
const MinWordBufferLength int = 2
