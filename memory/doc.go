// SPDX-License-Identifier: MIT

// Package memory is the raw-storage boundary of the nstd containers.
//
// What:
//
//   - Allocator: the only interface to system memory management. Containers
//     request byte-sized blocks and hand them back on shrink, reallocation
//     and release.
//   - Heap: the default allocator.
//   - Tracker: an allocator wrapper that records every live block, enforces an
//     optional byte limit, injects failures on demand, and logs through zap.
//     Tests use it to prove containers never leak and stay intact when an
//     allocation fails.
//   - Buffer[T]: an exclusively owned block of capacity slots with a live
//     count. Construct, Destroy and Take are the in-place lifetime primitives
//     the containers build their growth logic on.
//
// Why typed slots:
//
//	The garbage collector must know which words hold pointers, so the slots
//	of a Buffer are a typed slice. The allocator still governs every byte:
//	no Buffer exists without a granted Block of capacity*sizeof(T) bytes.
//
// Errors:
//
//   - ErrTooLarge         negative or oversized request
//   - ErrLimitExceeded    Tracker byte limit would be exceeded
//   - ErrInjectedFailure  Tracker failure injection fired
//   - ErrLeak             Tracker.Check found live blocks
package memory
