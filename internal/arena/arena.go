// Package arena provides append-only, index-addressed storage for the
// nodes of one parse. It is not safe for concurrent use: one parser owns
// one arena for the duration of one parse (spec §5).
package arena

import "errors"

// NodeIndex is an opaque, stable handle into an Arena. Indices are never
// recycled and are assigned in allocation order, so post-order allocation
// (children before parents) means a child's index is always strictly less
// than its parent's.
type NodeIndex int

// Node is the immutable record stored at one arena slot.
type Node struct {
	Kind     NodeKind
	Start    uint32
	End      uint32
	Children []NodeIndex
}

// chunkSize is the number of nodes per backing chunk; chunking keeps
// previously issued NodeIndex values valid across growth (no slice
// reallocation ever moves an already-allocated Node), the same technique
// gosonata's NodeArena uses for its ASTNode allocator.
const chunkSize = 256

// ErrCapacityExceeded is returned by Allocate when the arena has reached
// its configured node cap (spec §4.1, §4.4).
var ErrCapacityExceeded = errors.New("arena: node capacity exceeded")

// Arena is the append-only node store for one parse.
type Arena struct {
	chunks     [][]Node
	count      int
	maxNodes   int
	attributes map[NodeIndex]any
}

// New creates an Arena that refuses to grow past maxNodes nodes. A
// maxNodes of 0 means unbounded (used only in tests; production callers
// always supply the SecurityEnvelope's configured cap).
func New(maxNodes int) *Arena {
	a := &Arena{maxNodes: maxNodes}
	a.chunks = append(a.chunks, make([]Node, 0, chunkSize))
	return a
}

// Allocate appends a node and returns its index. It fails with
// ErrCapacityExceeded once NodeCount() == maxNodes, which the parser
// surfaces as a ResourceExhausted::ArenaCapacity diagnostic.
func (a *Arena) Allocate(kind NodeKind, start, end uint32, children []NodeIndex) (NodeIndex, error) {
	if a.maxNodes > 0 && a.count >= a.maxNodes {
		return 0, ErrCapacityExceeded
	}
	last := len(a.chunks) - 1
	if len(a.chunks[last]) == cap(a.chunks[last]) {
		a.chunks = append(a.chunks, make([]Node, 0, chunkSize))
		last++
	}
	idx := NodeIndex(a.count)
	a.chunks[last] = append(a.chunks[last], Node{Kind: kind, Start: start, End: end, Children: children})
	a.count++
	return idx, nil
}

// AllocateWithAttribute allocates a node and associates a typed attribute
// payload with it, keyed by the returned index (spec §4.1).
func (a *Arena) AllocateWithAttribute(kind NodeKind, start, end uint32, children []NodeIndex, attribute any) (NodeIndex, error) {
	idx, err := a.Allocate(kind, start, end, children)
	if err != nil {
		return 0, err
	}
	if a.attributes == nil {
		a.attributes = make(map[NodeIndex]any)
	}
	a.attributes[idx] = attribute
	return idx, nil
}

// Get returns the node at index. index must have been previously returned
// by Allocate/AllocateWithAttribute on this arena; lookup is infallible.
func (a *Arena) Get(index NodeIndex) Node {
	chunk := int(index) / chunkSize
	offset := int(index) % chunkSize
	return a.chunks[chunk][offset]
}

// Attribute returns the typed attribute payload for index, if any.
func (a *Arena) Attribute(index NodeIndex) (any, bool) {
	if a.attributes == nil {
		return nil, false
	}
	v, ok := a.attributes[index]
	return v, ok
}

// NodeCount returns the number of nodes allocated so far.
func (a *Arena) NodeCount() int { return a.count }
