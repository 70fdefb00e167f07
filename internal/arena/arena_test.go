package arena

import "testing"

func TestAllocateAssignsSequentialIndices(t *testing.T) {
	a := New(0)
	i0, err := a.Allocate(KindLiteral, 0, 1, nil)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	i1, err := a.Allocate(KindLiteral, 1, 2, nil)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if i0 != 0 || i1 != 1 {
		t.Fatalf("got indices %d, %d, want 0, 1", i0, i1)
	}
	if a.NodeCount() != 2 {
		t.Fatalf("NodeCount() = %d, want 2", a.NodeCount())
	}
}

func TestAllocateAcrossChunkBoundary(t *testing.T) {
	a := New(0)
	var last NodeIndex
	for i := 0; i < chunkSize+10; i++ {
		idx, err := a.Allocate(KindLiteral, uint32(i), uint32(i+1), nil)
		if err != nil {
			t.Fatalf("Allocate at %d: %v", i, err)
		}
		last = idx
	}
	if last != NodeIndex(chunkSize+9) {
		t.Fatalf("last index = %d, want %d", last, chunkSize+9)
	}
	n := a.Get(last)
	if n.Start != uint32(chunkSize+9) {
		t.Fatalf("Get(%d).Start = %d, want %d", last, n.Start, chunkSize+9)
	}
}

func TestAllocateRespectsCapacity(t *testing.T) {
	a := New(2)
	if _, err := a.Allocate(KindLiteral, 0, 1, nil); err != nil {
		t.Fatalf("Allocate 1: %v", err)
	}
	if _, err := a.Allocate(KindLiteral, 0, 1, nil); err != nil {
		t.Fatalf("Allocate 2: %v", err)
	}
	if _, err := a.Allocate(KindLiteral, 0, 1, nil); err != ErrCapacityExceeded {
		t.Fatalf("Allocate 3 err = %v, want ErrCapacityExceeded", err)
	}
}

func TestAttributeRoundTrip(t *testing.T) {
	a := New(0)
	idx, err := a.AllocateWithAttribute(KindIdentifier, 0, 3, nil, IdentifierAttr{Name: "foo"})
	if err != nil {
		t.Fatalf("AllocateWithAttribute: %v", err)
	}
	attr, ok := a.Attribute(idx)
	if !ok {
		t.Fatalf("Attribute(%d) not found", idx)
	}
	id, ok := attr.(IdentifierAttr)
	if !ok || id.Name != "foo" {
		t.Fatalf("Attribute(%d) = %#v, want IdentifierAttr{Name: \"foo\"}", idx, attr)
	}
}

func TestAttributeAbsentByDefault(t *testing.T) {
	a := New(0)
	idx, _ := a.Allocate(KindLiteral, 0, 1, nil)
	if _, ok := a.Attribute(idx); ok {
		t.Fatalf("Attribute(%d) found, want absent", idx)
	}
}

func TestChildIndicesPrecedeParent(t *testing.T) {
	a := New(0)
	c1, _ := a.Allocate(KindLiteral, 0, 1, nil)
	c2, _ := a.Allocate(KindLiteral, 1, 2, nil)
	parent, _ := a.Allocate(KindBinaryExpr, 0, 2, []NodeIndex{c1, c2})
	if !(c1 < parent && c2 < parent) {
		t.Fatalf("children %d,%d not both less than parent %d", c1, c2, parent)
	}
}
