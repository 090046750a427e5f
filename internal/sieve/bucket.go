package sieve

import (
	"errors"

	"golang.org/x/sys/cpu"
)

// bigPrime is the triple EratBig stores per sparse sieving prime: its
// byte-scaled value, its offset within whichever future segment it
// next strikes, and its wheel state.
type bigPrime struct {
	d             uint32
	multipleIndex uint32
	wheelIndex    uint32
}

const bucketCap = 1024

type idx32 uint32

const nilIdx idx32 = ^idx32(0)

// bucketNode is one fixed-capacity block of stored primes, chained to
// further nodes when a single future segment collects more primes
// than one block holds. The count/next header is followed by a cache
// line of padding so that CrossOff's drain loop, which rewrites count
// and next on every node it visits, never shares a line with the
// start of the following node's items array.
type bucketNode struct {
	items [bucketCap]bigPrime
	count uint32
	next  idx32
	_     cpu.CacheLinePad
}

// bucketArena is an index-based free list of bucketNodes, avoiding
// both pointer-chasing and per-insertion garbage collector pressure:
// nodes are borrowed and returned by index, never allocated or freed
// individually once the arena has grown to cover demand.
type bucketArena struct {
	nodes    []bucketNode
	freeHead idx32
}

func newBucketArena(initialCap int) *bucketArena {
	if initialCap < 1 {
		initialCap = 1
	}
	a := &bucketArena{nodes: make([]bucketNode, initialCap)}
	for i := 0; i < initialCap; i++ {
		a.nodes[i].next = idx32(i + 1)
	}
	a.nodes[initialCap-1].next = nilIdx
	a.freeHead = 0
	return a
}

// maxArenaNodes caps how large a single arena may grow. Legitimate
// sieve runs need nowhere near this many buckets; hitting it signals a
// horizon or estimate bug feeding runaway demand, not real work, so it
// is reported as an AllocationError rather than left to exhaust memory.
const maxArenaNodes = 1 << 24

func (a *bucketArena) borrow() (idx32, error) {
	if a.freeHead == nilIdx {
		if err := a.grow(); err != nil {
			return nilIdx, err
		}
	}
	h := a.freeHead
	n := &a.nodes[h]
	a.freeHead = n.next
	n.count = 0
	n.next = nilIdx
	return h, nil
}

func (a *bucketArena) grow() error {
	old := len(a.nodes)
	next := old * 2
	if next <= old || next > maxArenaNodes {
		return &AllocationError{RequestedNodes: next, Err: errors.New("requested slab size exceeds the arena's safety ceiling")}
	}
	grown := make([]bucketNode, next)
	copy(grown, a.nodes)
	a.nodes = grown
	for i := old; i < len(a.nodes); i++ {
		a.nodes[i].next = idx32(i + 1)
	}
	a.nodes[len(a.nodes)-1].next = nilIdx
	a.freeHead = idx32(old)
	return nil
}

func (a *bucketArena) release(h idx32) {
	n := &a.nodes[h]
	n.count = 0
	n.next = a.freeHead
	a.freeHead = h
}
