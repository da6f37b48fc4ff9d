package arena

// Pool mirrors new_block/new_item/free_item/free_block: chained
// fixed-size blocks plus a free list. Go has no portable way to
// overlay a "next" pointer inside a freed record the way a C union
// would, so Free keeps freed *T pointers directly in a slice instead —
// since blocks are fixed-size []T slices that are never grown in
// place (a new block is appended, never reallocated), a pointer into
// a block stays valid for the block's lifetime, and LIFO reuse of the
// free list falls out for free.

// Pool allocates records of type T from chained fixed-size blocks,
// recycling freed records on a LIFO free list.
//
// A Pool with maxBlocks == 0 grows without bound (a fresh block is
// appended whenever the free list runs dry). A Pool with maxBlocks > 0
// refuses to grow past that many blocks; New returns (nil, false) once
// both the free list and the block budget are exhausted, which is how
// the per-graph allocation ceilings of §5 are expressed.
type Pool[T any] struct {
	blockSize int
	maxBlocks int
	blocks    [][]T
	free      []*T
	issued    int
}

// New constructs a Pool whose blocks hold blockSize records each.
// maxBlocks caps the number of blocks ever allocated; pass 0 for no
// cap.
func New[T any](blockSize, maxBlocks int) *Pool[T] {
	if blockSize <= 0 {
		blockSize = 1
	}

	return &Pool[T]{blockSize: blockSize, maxBlocks: maxBlocks}
}

// New returns a fresh zero-valued *T, growing the pool by one block
// when the free list is empty. ok is false when the pool has hit its
// maxBlocks ceiling and has nothing left to hand out — the caller
// must treat this as arena exhaustion and abort the current
// construction (§7).
func (p *Pool[T]) New() (item *T, ok bool) {
	if len(p.free) == 0 {
		if !p.grow() {
			return nil, false
		}
	}

	n := len(p.free) - 1
	item = p.free[n]
	p.free = p.free[:n]
	p.issued++

	return item, true
}

// Free returns item to the pool's free list for LIFO reuse, zeroing it
// first so a reused record never leaks the previous occupant's state.
func (p *Pool[T]) Free(item *T) {
	var zero T
	*item = zero
	p.free = append(p.free, item)
	p.issued--
}

// Remaining reports how many records could still be issued without
// growing past maxBlocks. It returns -1 for an unbounded pool
// (maxBlocks == 0), letting a caller pre-check a multi-record request
// against a ceiling the same way the source checks
// _nodes_available/_blocks_available before committing a multi-part
// allocation.
func (p *Pool[T]) Remaining() int {
	if p.maxBlocks == 0 {
		return -1
	}

	return p.maxBlocks*p.blockSize - p.issued
}

// Blocks reports how many blocks have been allocated so far.
func (p *Pool[T]) Blocks() int {
	return len(p.blocks)
}

// Cap reports the total record capacity across all allocated blocks.
func (p *Pool[T]) Cap() int {
	return len(p.blocks) * p.blockSize
}

func (p *Pool[T]) grow() bool {
	if p.maxBlocks > 0 && len(p.blocks) >= p.maxBlocks {
		return false
	}

	block := make([]T, p.blockSize)
	p.blocks = append(p.blocks, block)
	for i := range block {
		p.free = append(p.free, &block[i])
	}

	return true
}
