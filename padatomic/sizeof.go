package padatomic

// These constants are verified via unit tests.
const (
	// sizeOfCacheLine is the size of a CPU cache line.
	// 64 bytes is standard for x86-64.
	// 128 bytes is standard for Apple Silicon (M1/M2/M3) and other ARM64.
	// We use 128 to satisfy the largest common alignment requirement.
	sizeOfCacheLine = 128

	// sizeOfAtomicUint64 is the size of an atomic.Uint64 variable.
	sizeOfAtomicUint64 = 8

	// sizeOfAtomicInt64 is the size of an atomic.Int64 variable.
	sizeOfAtomicInt64 = 8

	// sizeOfAtomicUint32 is the size of an atomic.Uint32 variable.
	sizeOfAtomicUint32 = 4

	// sizeOfAtomicBool is the size of an atomic.Bool variable.
	sizeOfAtomicBool = 4

	// sizeOfAtomicPointer is the size of an atomic.Pointer variable, on
	// 64-bit platforms. On 32-bit platforms the actual size is smaller,
	// which only makes the trailing padding slightly larger than a cache
	// line, never smaller.
	sizeOfAtomicPointer = 8

	// sizeOfAtomicValue is the size of an atomic.Value variable, on 64-bit
	// platforms. As above, an upper bound on 32-bit platforms.
	sizeOfAtomicValue = 16
)
