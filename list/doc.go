// SPDX-License-Identifier: MIT

// Package list implements List[T], a doubly linked, sentinel-terminated
// circular sequence.
//
// Nodes live in an arena of fixed-size chunks, each chunk reserved through a
// memory.Allocator. Nodes are addressed by index and never move, so:
//
//   - index 0 is the sentinel; an empty list is the sentinel linked to itself;
//   - an Iterator stays valid until its own node is removed, whatever else is
//     inserted or removed;
//   - element addresses returned by Iterator.Ptr are stable for the node's life.
//
// Removed nodes go to a free chain and are reused before a new chunk is
// reserved. Each node carries a generation that is bumped on removal, so a
// stale Iterator is detected and rejected with ErrInvalidPosition instead of
// aliasing the node's next occupant.
//
// Element lifecycle follows algo.Traits: values passed to PushBack and friends
// are moved in, Clone copies through Traits.Clone, and every removed element
// is handed to Traits.Drop exactly once.
//
// Errors:
//
//   - ErrEmpty            PopBack, PopFront, Front or Back on an empty list
//   - ErrInvalidPosition  an Iterator from another list, or to a removed node
//   - memory errors       a chunk reservation was refused (wrapped)
//
// A List is single-owner and not safe for concurrent use.
//
// Complexity: every insertion and removal is O(1) (amortized over chunk
// reservations); Len is O(1); Clone, Clear and Release are O(n).
package list
