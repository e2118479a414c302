package jent

// TimeEntropyBits (TEB) is the bit-width of one folded sample: the assumed
// lower bound on the min-entropy carried by a single jitter measurement.
// Legal range is 1..8; the canonical build uses 1.
const TimeEntropyBits = 1

// DataSizeBits is the width of the entropy pool and of one Read chunk.
const DataSizeBits = 64

// Memory-access noise source sizing. MemoryBlockSize * MemoryBlocks gives
// a buffer on the order of tens of kilobytes, comfortably larger than a
// typical L1 data cache, so the access pattern induces genuine eviction
// traffic rather than staying resident.
const (
	MemoryBlockSize   = 64
	MemoryBlocks      = 512
	MemoryAccessLoops = 128
)

// JentMemorySize is the total size, in bytes, of the memory-access scratch
// buffer allocated by Alloc unless DisableMemoryAccess is set.
const JentMemorySize = MemoryBlockSize * MemoryBlocks

// Loop-count shuffler bit-window bounds (§4.3).
const (
	MaxFoldLoopBit = 4
	MinFoldLoopBit = 0
)

// Startup health test parameters (§4.11).
const (
	testLoopCount = 300
	clearCache    = 100
)
