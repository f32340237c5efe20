// SPDX-License-Identifier: MIT

package memory

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Stats is a snapshot of a Tracker's counters.
type Stats struct {
	Allocs     int // successful allocations
	Frees      int // successful deallocations
	Failures   int // refused allocations (limit, injection, parent error)
	BadFrees   int // deallocations of unknown, already freed or resized blocks
	LiveBlocks int // blocks granted and not yet returned
	InUse      int // bytes in live blocks
	Peak       int // high-water mark of InUse
}

// TrackerOption configures a Tracker at construction.
type TrackerOption func(*Tracker)

// WithParent sets the allocator the Tracker forwards to (default: Default()).
func WithParent(a Allocator) TrackerOption {
	return func(t *Tracker) {
		if a != nil {
			t.parent = a
		}
	}
}

// WithLimit caps the bytes that may be live at once. Zero means no limit.
// Panics on a negative limit.
func WithLimit(bytes int) TrackerOption {
	if bytes < 0 {
		panic("memory: WithLimit requires bytes >= 0")
	}

	return func(t *Tracker) { t.limit = bytes }
}

// WithFailAfter lets n allocations succeed and refuses every one after.
// A negative n disables injection.
func WithFailAfter(n int) TrackerOption {
	return func(t *Tracker) { t.failAfter = n }
}

// WithLogger routes the Tracker's events to logger.
func WithLogger(logger *zap.Logger) TrackerOption {
	return func(t *Tracker) {
		if logger != nil {
			t.log = logger
		}
	}
}

// Tracker is an Allocator that records every live block.
// It is safe for concurrent use; one Tracker is typically shared by all
// containers under test.
type Tracker struct {
	mu        sync.Mutex
	parent    Allocator
	log       *zap.Logger
	limit     int
	failAfter int
	nextID    uint64
	live      map[uint64]grant
	stats     Stats
}

// grant is a live block: the parent's block and the size handed out.
type grant struct {
	parent Block
	size   int
}

// NewTracker builds a Tracker over Default() with no limit, no injection and
// a no-op logger, then applies opts in order.
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{
		parent:    Default(),
		log:       zap.NewNop(),
		failAfter: -1,
		live:      make(map[uint64]grant),
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Allocate grants a block of size bytes through the parent allocator,
// unless the limit or failure injection refuses it.
// Complexity: O(1) plus the parent's cost.
func (t *Tracker) Allocate(size int) (Block, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.failAfter == 0 {
		return t.refuse(size, ErrInjectedFailure)
	}
	if t.limit > 0 && t.stats.InUse+size > t.limit {
		return t.refuse(size, ErrLimitExceeded)
	}
	pb, err := t.parent.Allocate(size)
	if err != nil {
		return t.refuse(size, err)
	}
	if t.failAfter > 0 {
		t.failAfter--
	}

	t.nextID++
	b := Block{ID: t.nextID, Size: size}
	t.live[b.ID] = grant{parent: pb, size: size}
	t.stats.Allocs++
	t.stats.LiveBlocks++
	t.stats.InUse += size
	if t.stats.InUse > t.stats.Peak {
		t.stats.Peak = t.stats.InUse
	}
	t.log.Debug("allocate", zap.Uint64("block", b.ID), zap.Int("size", size), zap.Int("in_use", t.stats.InUse))

	return b, nil
}

// refuse records a failed allocation. Caller holds mu.
func (t *Tracker) refuse(size int, err error) (Block, error) {
	t.stats.Failures++
	t.log.Warn("allocation refused", zap.Int("size", size), zap.Error(err))

	return Block{}, fmt.Errorf("Tracker.Allocate(%d): %w", size, err)
}

// Deallocate returns b to the parent allocator. Unknown or already freed
// blocks, and blocks whose Size differs from the granted one, are counted as
// bad frees and otherwise ignored.
// Complexity: O(1) plus the parent's cost.
func (t *Tracker) Deallocate(b Block) {
	if b.ID == 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	g, ok := t.live[b.ID]
	if !ok || g.size != b.Size {
		t.stats.BadFrees++
		t.log.Warn("bad free", zap.Uint64("block", b.ID), zap.Int("size", b.Size), zap.Bool("known", ok))
		return
	}
	delete(t.live, b.ID)
	t.parent.Deallocate(g.parent)
	t.stats.Frees++
	t.stats.LiveBlocks--
	t.stats.InUse -= g.size
	t.log.Debug("deallocate", zap.Uint64("block", b.ID), zap.Int("size", g.size), zap.Int("in_use", t.stats.InUse))
}

// FailAfter re-arms failure injection: n more allocations succeed, then
// every allocation is refused. A negative n disables injection.
func (t *Tracker) FailAfter(n int) {
	t.mu.Lock()
	t.failAfter = n
	t.mu.Unlock()
}

// SetLimit replaces the byte limit. Zero removes it.
func (t *Tracker) SetLimit(bytes int) {
	t.mu.Lock()
	t.limit = bytes
	t.mu.Unlock()
}

// Stats returns a snapshot of the counters.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.stats
}

// Leaks returns the live blocks ordered by ID.
// Complexity: O(L log L) for L live blocks.
func (t *Tracker) Leaks() []Block {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Block, 0, len(t.live))
	for id, g := range t.live {
		out = append(out, Block{ID: id, Size: g.size})
	}
	slices.SortFunc(out, func(a, b Block) int { return cmp.Compare(a.ID, b.ID) })

	return out
}

// Check returns ErrLeak when any block is still live, logging each one.
func (t *Tracker) Check() error {
	leaks := t.Leaks()
	if len(leaks) == 0 {
		return nil
	}
	bytes := 0
	for _, b := range leaks {
		bytes += b.Size
		t.log.Warn("leaked block", zap.Uint64("block", b.ID), zap.Int("size", b.Size))
	}

	return fmt.Errorf("Tracker.Check: %d blocks, %d bytes: %w", len(leaks), bytes, ErrLeak)
}
