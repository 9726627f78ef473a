// Package mem provides aligned raw-memory allocators.
//
// An Allocator hands out Allocations whose Data slice starts at an
// address divisible by the requested power-of-two alignment. The full
// backing block is recorded in the Allocation so that Free always
// releases exactly what was acquired, with the parameters recorded at
// acquisition time.
//
// # Allocators
//
//   - GoAllocator: over-allocates from the Go heap and shifts to the
//     boundary; memory stays under the garbage collector and Free is a
//     no-op.
//   - MmapAllocator: anonymous private mappings outside the Go heap;
//     Free unmaps immediately.
//   - CheckedAllocator: wraps another allocator and tracks outstanding
//     allocations, for leak detection in tests.
//
// Allocation failure is treated as an unrecoverable resource condition
// and panics; no allocator in this package returns an error value.
package mem
