// Package padatomic provides cache-line-padded atomic cells: single-value
// atomic storage physically surrounded by inert filler, so that the value
// occupies a cache line exclusively and concurrent operations on the cell do
// not induce false sharing with adjacent memory.
//
// Each cell embeds the corresponding [sync/atomic] type between two
// fixed-size pads, and so exposes that type's full method set (Load, Store,
// Swap, CompareAndSwap, plus Add on the numeric cells). The pads are never
// read or written after construction; they exist purely to separate the
// value's cache line from its neighbors. Padding is sized for 128-byte
// cache lines, the largest in common use, which also cleanly covers 64-byte
// lines.
//
// Cells are usable in their zero state, or may be constructed with an
// explicit initial value via the New* functions. A cell must not be copied
// after first use.
//
// # Ordered stores
//
// Every cell additionally provides StoreRelaxed, an ordered write for call
// sites that do not require immediate cross-goroutine visibility: the write
// is guaranteed to become visible eventually, and preserves program order
// with respect to other writes on the calling goroutine. Go's memory model
// only exposes sequentially consistent atomics, so StoreRelaxed currently
// delegates to Store; the distinct method keeps the weaker requirement
// visible at call sites (e.g. code ported from runtimes with lazy/ordered
// stores), and leaves room to weaken the implementation per architecture
// without changing any caller.
package padatomic
