package graph

import (
	"fmt"
	"strings"
)

// CycleError reports a dependency cycle found during topological
// sorting. Cycle holds the node ids on the cycle in traversal order;
// a cycle is always a defect in a rule module, never a valid state.
type CycleError struct {
	Cycle []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(e.Cycle, " -> "))
}

// visit states for the depth-first traversal.
const (
	unvisited = iota
	inProgress
	done
)

// TopologicalSort returns every stored node id in an order where each
// node's inputs appear strictly before it, or a *CycleError naming the
// ids on a cycle.
//
// Sorting runs eagerly and separately from evaluation: amounts are
// already computed by the time a store exists, so the sort's only job
// is to provide and validate an explainable ordering. Traversal starts
// from nodes in insertion order and follows inputs in derivation
// order, so the result is deterministic for a given store.
func (g *Graph) TopologicalSort() ([]string, error) {
	state := make(map[string]int, g.store.Len())
	order := make([]string, 0, g.store.Len())

	// stack tracks the current DFS path for cycle reporting.
	var stack []string

	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case done:
			return nil
		case inProgress:
			// Back edge: slice the current path from the first
			// occurrence of id, then close the loop.
			for i, onPath := range stack {
				if onPath == id {
					cycle := append(append([]string{}, stack[i:]...), id)
					return &CycleError{Cycle: cycle}
				}
			}
			return &CycleError{Cycle: []string{id, id}}
		}

		state[id] = inProgress
		stack = append(stack, id)

		for _, input := range g.inputs[id] {
			if err := visit(input); err != nil {
				return err
			}
		}

		stack = stack[:len(stack)-1]
		state[id] = done
		order = append(order, id)
		return nil
	}

	for _, id := range g.store.IDs() {
		if err := visit(id); err != nil {
			return nil, err
		}
	}

	return order, nil
}
