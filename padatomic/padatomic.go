package padatomic

import (
	"sync/atomic"
)

// Pointer is a cache-line-padded [atomic.Pointer]. The zero value holds a
// nil *T.
//
// Concurrent atomic operations on an unpadded pointer cell and ordinary
// access to whatever happens to share its cache line cause coherence traffic
// (false sharing) that degrades throughput under contention; the pads on
// either side of the value prevent that regardless of where the cell itself
// is allocated.
type Pointer[T any] struct { // betteralign:ignore
	_ [sizeOfCacheLine]byte // Cache line padding (before value) //nolint:unused
	atomic.Pointer[T]
	_ [sizeOfCacheLine - sizeOfAtomicPointer]byte // Pad to complete the cache line //nolint:unused
}

// NewPointer returns a new Pointer holding val.
func NewPointer[T any](val *T) *Pointer[T] {
	x := new(Pointer[T])
	x.Store(val)
	return x
}

// StoreRelaxed stores val as an ordered write: guaranteed to become visible
// to other goroutines eventually, and ordered after prior writes on the
// calling goroutine, but with no immediate-visibility guarantee. See the
// package documentation for the precise contract.
func (x *Pointer[T]) StoreRelaxed(val *T) {
	x.Pointer.Store(val)
}

// Value is a cache-line-padded [atomic.Value]. The zero value holds nil.
//
// It retains atomic.Value's semantics: all stored values must be of the
// same concrete type, storing nil panics, and CompareAndSwap requires a
// comparable dynamic type.
type Value struct { // betteralign:ignore
	_ [sizeOfCacheLine]byte // Cache line padding (before value) //nolint:unused
	atomic.Value
	_ [sizeOfCacheLine - sizeOfAtomicValue]byte // Pad to complete the cache line //nolint:unused
}

// NewValue returns a new Value holding val. If val is nil the cell is left
// empty, as [atomic.Value] cannot hold nil.
func NewValue(val any) *Value {
	x := new(Value)
	if val != nil {
		x.Store(val)
	}
	return x
}

// StoreRelaxed stores val as an ordered write; see [Pointer.StoreRelaxed].
func (x *Value) StoreRelaxed(val any) {
	x.Value.Store(val)
}

// Uint64 is a cache-line-padded [atomic.Uint64]. The zero value holds 0.
type Uint64 struct { // betteralign:ignore
	_ [sizeOfCacheLine]byte // Cache line padding (before value) //nolint:unused
	atomic.Uint64
	_ [sizeOfCacheLine - sizeOfAtomicUint64]byte // Pad to complete the cache line //nolint:unused
}

// NewUint64 returns a new Uint64 holding val.
func NewUint64(val uint64) *Uint64 {
	x := new(Uint64)
	x.Store(val)
	return x
}

// StoreRelaxed stores val as an ordered write; see [Pointer.StoreRelaxed].
func (x *Uint64) StoreRelaxed(val uint64) {
	x.Uint64.Store(val)
}

// Int64 is a cache-line-padded [atomic.Int64]. The zero value holds 0.
type Int64 struct { // betteralign:ignore
	_ [sizeOfCacheLine]byte // Cache line padding (before value) //nolint:unused
	atomic.Int64
	_ [sizeOfCacheLine - sizeOfAtomicInt64]byte // Pad to complete the cache line //nolint:unused
}

// NewInt64 returns a new Int64 holding val.
func NewInt64(val int64) *Int64 {
	x := new(Int64)
	x.Store(val)
	return x
}

// StoreRelaxed stores val as an ordered write; see [Pointer.StoreRelaxed].
func (x *Int64) StoreRelaxed(val int64) {
	x.Int64.Store(val)
}

// Uint32 is a cache-line-padded [atomic.Uint32]. The zero value holds 0.
type Uint32 struct { // betteralign:ignore
	_ [sizeOfCacheLine]byte // Cache line padding (before value) //nolint:unused
	atomic.Uint32
	_ [sizeOfCacheLine - sizeOfAtomicUint32]byte // Pad to complete the cache line //nolint:unused
}

// NewUint32 returns a new Uint32 holding val.
func NewUint32(val uint32) *Uint32 {
	x := new(Uint32)
	x.Store(val)
	return x
}

// StoreRelaxed stores val as an ordered write; see [Pointer.StoreRelaxed].
func (x *Uint32) StoreRelaxed(val uint32) {
	x.Uint32.Store(val)
}

// Bool is a cache-line-padded [atomic.Bool]. The zero value holds false.
type Bool struct { // betteralign:ignore
	_ [sizeOfCacheLine]byte // Cache line padding (before value) //nolint:unused
	atomic.Bool
	_ [sizeOfCacheLine - sizeOfAtomicBool]byte // Pad to complete the cache line //nolint:unused
}

// NewBool returns a new Bool holding val.
func NewBool(val bool) *Bool {
	x := new(Bool)
	x.Store(val)
	return x
}

// StoreRelaxed stores val as an ordered write; see [Pointer.StoreRelaxed].
func (x *Bool) StoreRelaxed(val bool) {
	x.Bool.Store(val)
}
