package javaparser

import (
	"reflect"

	"github.com/dhamidi/jparse/internal/arena"
)

// Tree is an opaque handle over the Arena plus the root NodeIndex (spec
// §6). A successful parse produces exactly one, with its compilation-unit
// node as the highest-indexed node in the arena.
type Tree struct {
	arena *arena.Arena
	root  arena.NodeIndex
}

// Root returns the compilation-unit node index.
func (t *Tree) Root() arena.NodeIndex { return t.root }

// NodeView is a read-only projection of one arena node.
type NodeView struct {
	Kind      arena.NodeKind
	Start     uint32
	End       uint32
	Children  []arena.NodeIndex
	Attribute any
}

// Node returns a view of the node at i. i must have been produced by this
// Tree's parse.
func (t *Tree) Node(i arena.NodeIndex) NodeView {
	n := t.arena.Get(i)
	attr, _ := t.arena.Attribute(i)
	return NodeView{Kind: n.Kind, Start: n.Start, End: n.End, Children: n.Children, Attribute: attr}
}

// NodeCount returns the number of nodes in the tree's arena.
func (t *Tree) NodeCount() int { return t.arena.NodeCount() }

// Equal reports whether two trees are structurally equal: same node
// multiset with identical kinds, positions, and attributes (spec §8
// property 6, idempotence).
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.arena.NodeCount() != other.arena.NodeCount() {
		return false
	}
	return t.nodeEqual(t.root, other, other.root)
}

func (t *Tree) nodeEqual(ai arena.NodeIndex, other *Tree, bi arena.NodeIndex) bool {
	a := t.Node(ai)
	b := other.Node(bi)
	if a.Kind != b.Kind || a.Start != b.Start || a.End != b.End {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	if !attributeEqual(a.Attribute, b.Attribute) {
		return false
	}
	for i := range a.Children {
		if !t.nodeEqual(a.Children[i], other, b.Children[i]) {
			return false
		}
	}
	return true
}

func attributeEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
