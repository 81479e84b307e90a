package trace

import (
	"testing"
)

// fakeResolver resolves every leaf id from a fixed table, defaulting
// to an Unknown sentinel like the real document resolver.
type fakeResolver struct {
	refs map[string]int64
}

func (r *fakeResolver) ResolveLeaf(nodeID string) (string, int64) {
	if amount, ok := r.refs[nodeID]; ok {
		return "Leaf " + nodeID, amount
	}
	return "Unknown (" + nodeID + ")", 0
}

func TestBuildSimpleTree(t *testing.T) {
	s := NewStore()
	if err := s.Add(New(7500000, "form1040.line1a", "w2:w2-1:box1")); err != nil {
		t.Fatal(err)
	}

	leaves := &fakeResolver{refs: map[string]int64{"w2:w2-1:box1": 7500000}}
	root := Build(s, "form1040.line1a", leaves)

	if root.Output.NodeID != "form1040.line1a" {
		t.Errorf("root node id = %q", root.Output.NodeID)
	}
	if len(root.Inputs) != 1 {
		t.Fatalf("root has %d inputs, want 1", len(root.Inputs))
	}

	leaf := root.Inputs[0]
	if leaf.Output.NodeID != "w2:w2-1:box1" {
		t.Errorf("leaf node id = %q, want w2:w2-1:box1", leaf.Output.NodeID)
	}
	if leaf.Output.Amount != 7500000 {
		t.Errorf("leaf amount = %d, want 7500000", leaf.Output.Amount)
	}
	if len(leaf.Inputs) != 0 {
		t.Errorf("leaf has %d inputs, want 0", len(leaf.Inputs))
	}
}

func TestBuildAbsentTargetIsLeaf(t *testing.T) {
	s := NewStore()
	leaves := &fakeResolver{refs: map[string]int64{"w2:w2-1:box1": 42}}

	root := Build(s, "w2:w2-1:box1", leaves)
	if root.Output.Amount != 42 {
		t.Errorf("amount = %d, want 42", root.Output.Amount)
	}
	if len(root.Inputs) != 0 {
		t.Errorf("document leaf has %d inputs, want 0", len(root.Inputs))
	}
}

func TestBuildPreservesDuplicateInputs(t *testing.T) {
	s := NewStore()
	if err := s.Add(New(50, "base")); err != nil {
		t.Fatal(err)
	}
	// base contributes twice through two arithmetic steps that happen
	// to share a dependency; the audit trail must show both.
	if err := s.Add(New(100, "total", "base", "base")); err != nil {
		t.Fatal(err)
	}

	root := Build(s, "total", &fakeResolver{})
	if len(root.Inputs) != 2 {
		t.Fatalf("duplicate inputs collapsed: got %d subtrees, want 2", len(root.Inputs))
	}
	for i, child := range root.Inputs {
		if child.Output.NodeID != "base" {
			t.Errorf("input %d node id = %q, want base", i, child.Output.NodeID)
		}
	}
}

func TestBuildInputOrder(t *testing.T) {
	s := NewStore()
	// Deliberately not sorted by id: order must match derivation order.
	if err := s.Add(New(1, "z")); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(New(2, "a")); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(New(3, "m", "z", "a")); err != nil {
		t.Fatal(err)
	}

	root := Build(s, "m", &fakeResolver{})
	want := []string{"z", "a"}
	for i, child := range root.Inputs {
		if child.Output.NodeID != want[i] {
			t.Errorf("input %d = %q, want %q", i, child.Output.NodeID, want[i])
		}
	}
}

func TestBuildGuardedCutsCycle(t *testing.T) {
	s := NewStore()
	if err := s.Add(New(1, "a", "b")); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(New(2, "b", "a")); err != nil {
		t.Fatal(err)
	}

	// Build would recurse forever here; the guarded variant renders
	// the repeated node as a leaf instead.
	root := BuildGuarded(s, "a", &fakeResolver{})
	if len(root.Inputs) != 1 {
		t.Fatalf("a has %d inputs, want 1", len(root.Inputs))
	}
	b := root.Inputs[0]
	if len(b.Inputs) != 1 {
		t.Fatalf("b has %d inputs, want 1", len(b.Inputs))
	}
	repeat := b.Inputs[0]
	if repeat.Output.NodeID != "a" {
		t.Errorf("cycle cut node = %q, want a", repeat.Output.NodeID)
	}
	if len(repeat.Inputs) != 0 {
		t.Errorf("cycle cut node should have no inputs, got %d", len(repeat.Inputs))
	}
}

func TestBuildGuardedSharedDiamond(t *testing.T) {
	// A diamond is not a cycle: the shared node must still expand in
	// both branches.
	s := NewStore()
	if err := s.Add(New(1, "leaf")); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(New(2, "left", "leaf")); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(New(3, "right", "leaf")); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(New(4, "top", "left", "right")); err != nil {
		t.Fatal(err)
	}

	root := BuildGuarded(s, "top", &fakeResolver{})
	for i, branch := range root.Inputs {
		if len(branch.Inputs) != 1 {
			t.Errorf("branch %d lost its shared input", i)
		}
	}
}
