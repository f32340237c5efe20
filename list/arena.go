// SPDX-License-Identifier: MIT

package list

import "github.com/katalvlaran/nstd/memory"

// links are the chain fields shared by the sentinel and every node.
type links struct {
	prev, next int
}

// node is one arena slot. A slot is either on the free chain (used == false,
// next threads the chain) or linked into the list holding a live element.
type node[T any] struct {
	links
	val  T
	gen  uint32 // bumped on every removal
	used bool
}

// arena owns the nodes of one list. Node i (i >= 1) lives in chunk
// (i-1)/chunkSize; index 0 is the sentinel, stored inline as root.
// The zero root is the empty chain: the sentinel linked to itself.
type arena[T any] struct {
	root      links
	chunks    []*memory.Buffer[node[T]]
	chunkSize int
	free      int // head of the free chain, 0 when exhausted
	n         int
	drop      func(T)
	released  bool // set once release has returned the chunks
}

func newArena[T any](chunkSize int, drop func(T)) *arena[T] {
	return &arena[T]{chunkSize: chunkSize, drop: drop}
}

// node returns the slot of node i; i must be in [1, cap].
func (a *arena[T]) node(i int) *node[T] {
	i--
	return a.chunks[i/a.chunkSize].Ptr(i % a.chunkSize)
}

// link returns the chain fields of i, the sentinel included.
func (a *arena[T]) link(i int) *links {
	if i == 0 {
		return &a.root
	}

	return &a.node(i).links
}

// slots is the number of node slots across all chunks.
func (a *arena[T]) slots() int { return len(a.chunks) * a.chunkSize }

// reserve guarantees one free node, reserving a new chunk from alloc when
// the free chain is exhausted. Fresh nodes are chained in index order.
func (a *arena[T]) reserve(alloc memory.Allocator) error {
	if a.free != 0 {
		return nil
	}
	c, err := memory.NewBuffer[node[T]](alloc, a.chunkSize, nil)
	if err != nil {
		return err
	}
	base := a.slots()
	a.chunks = append(a.chunks, c)
	for j := a.chunkSize - 1; j >= 0; j-- {
		c.Construct(j, node[T]{links: links{next: a.free}})
		a.free = base + j + 1
	}

	return nil
}

// linkBefore takes the head of the free chain, stores v in it and links it
// in front of at. A free node must have been reserved.
func (a *arena[T]) linkBefore(at int, v T) int {
	i := a.free
	nd := a.node(i)
	a.free = nd.next

	p := a.link(at).prev
	nd.prev, nd.next = p, at
	nd.val, nd.used = v, true
	a.link(p).next = i
	a.link(at).prev = i
	a.n++

	return i
}

// unlink detaches live node i, returns it to the free chain and hands back
// its element. The element's lifetime is the caller's.
func (a *arena[T]) unlink(i int) T {
	nd := a.node(i)
	a.link(nd.prev).next = nd.next
	a.link(nd.next).prev = nd.prev

	v := nd.val
	var zero T
	nd.val, nd.used = zero, false
	nd.gen++
	nd.prev, nd.next = 0, a.free
	a.free = i
	a.n--

	return v
}

// relink moves live node i in front of at without touching its element.
func (a *arena[T]) relink(i, at int) {
	if i == at || a.link(at).prev == i {
		return
	}
	nd := a.node(i)
	a.link(nd.prev).next = nd.next
	a.link(nd.next).prev = nd.prev

	p := a.link(at).prev
	nd.prev, nd.next = p, at
	a.link(p).next = i
	a.link(at).prev = i
}

// remove unlinks node i, drops its element and returns the index that
// followed it.
func (a *arena[T]) remove(i int) int {
	next := a.node(i).next
	v := a.unlink(i)
	if a.drop != nil {
		a.drop(v)
	}

	return next
}

// clear removes every element front to back. Chunks are kept.
func (a *arena[T]) clear() {
	for i := a.root.next; i != 0; {
		i = a.remove(i)
	}
}

// release returns every chunk to alloc. The chain must be empty.
func (a *arena[T]) release() {
	for _, c := range a.chunks {
		for j := 0; j < c.Cap(); j++ {
			c.Destroy(j)
		}
		c.Free()
	}
	a.chunks, a.free = nil, 0
	a.released = true
}

// live reports whether i addresses a linked node whose generation is gen.
func (a *arena[T]) live(i int, gen uint32) bool {
	if i < 1 || i > a.slots() {
		return false
	}
	nd := a.node(i)

	return nd.used && nd.gen == gen
}

// at returns an Iterator for index i, capturing the node's generation.
func (a *arena[T]) at(i int) Iterator[T] {
	it := Iterator[T]{a: a, i: i}
	if i != 0 {
		it.gen = a.node(i).gen
	}

	return it
}
