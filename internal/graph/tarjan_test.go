package graph

import (
	"testing"
)

func TestFindCyclesNone(t *testing.T) {
	g := NewGraph(createTestStore(t))

	if g.HasCycles() {
		t.Error("HasCycles = true on a DAG")
	}
	if cycles := g.FindCycles(); len(cycles) != 0 {
		t.Errorf("FindCycles = %v, want none", cycles)
	}
}

func TestFindCyclesDetects(t *testing.T) {
	g := NewGraph(createCyclicStore(t, "a", "b", "c"))

	cycles := g.FindCycles()
	if len(cycles) != 1 {
		t.Fatalf("found %d cycles, want 1", len(cycles))
	}
	if len(cycles[0]) != 3 {
		t.Errorf("cycle has %d members, want 3: %v", len(cycles[0]), cycles[0])
	}
}

func TestFindCyclesSelfLoop(t *testing.T) {
	g := NewGraph(createCyclicStore(t, "a"))

	cycles := g.FindCycles()
	if len(cycles) != 1 || len(cycles[0]) != 1 || cycles[0][0] != "a" {
		t.Errorf("FindCycles = %v, want [[a]]", cycles)
	}
}

func TestFindCyclePath(t *testing.T) {
	g := NewGraph(createCyclicStore(t, "a", "b", "c"))

	cycles := g.FindCycles()
	if len(cycles) != 1 {
		t.Fatalf("found %d cycles, want 1", len(cycles))
	}

	path := g.FindCyclePath(cycles[0])
	if len(path) != 4 {
		t.Fatalf("path = %v, want length 4 (closed loop)", path)
	}
	if path[0] != path[len(path)-1] {
		t.Errorf("path %v does not close on itself", path)
	}
}

func TestSortAndTarjanAgree(t *testing.T) {
	dag := NewGraph(createTestStore(t))
	if _, err := dag.TopologicalSort(); err != nil {
		t.Errorf("sort failed on a DAG the SCC check clears: %v", err)
	}

	cyclic := NewGraph(createCyclicStore(t, "x", "y"))
	if !cyclic.HasCycles() {
		t.Error("Tarjan missed a cycle")
	}
	if _, err := cyclic.TopologicalSort(); err == nil {
		t.Error("sort succeeded on a store the SCC check rejects")
	}
}
