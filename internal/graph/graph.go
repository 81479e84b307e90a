// Package graph provides dependency graph algorithms over a node value store.
package graph

import (
	"github.com/taxtrace-ai/taxtrace-go/internal/trace"
)

// Graph represents the dependency graph of a computation run.
//
// Edges run from a node to its inputs. Only ids present in the store
// become graph nodes: document leaves are resolved outside the store
// and are intentionally not part of the graph.
type Graph struct {
	store *trace.Store

	// Adjacency lists
	inputs     map[string][]string // node -> stored ids it derives from
	dependents map[string][]string // node -> stored ids derived from it
}

// NewGraph builds a dependency graph from a store.
func NewGraph(s *trace.Store) *Graph {
	g := &Graph{
		store:      s,
		inputs:     make(map[string][]string),
		dependents: make(map[string][]string),
	}

	for _, v := range s.All() {
		g.inputs[v.NodeID] = make([]string, 0, len(v.Inputs))
		for _, input := range v.Inputs {
			// Document leaves never live in the store; skip them.
			if s.Exists(input) {
				g.inputs[v.NodeID] = append(g.inputs[v.NodeID], input)
				g.dependents[input] = append(g.dependents[input], v.NodeID)
			}
		}
	}

	return g
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return g.store.Len()
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, inputs := range g.inputs {
		count += len(inputs)
	}
	return count
}

// Inputs returns the stored ids a node directly derives from.
func (g *Graph) Inputs(nodeID string) []string {
	return g.inputs[nodeID]
}

// Dependents returns the stored ids directly derived from a node.
func (g *Graph) Dependents(nodeID string) []string {
	return g.dependents[nodeID]
}

// TransitiveInputs returns every stored id a node derives from,
// directly or indirectly.
func (g *Graph) TransitiveInputs(nodeID string) []string {
	visited := make(map[string]bool)
	var result []string

	var dfs func(id string)
	dfs = func(id string) {
		for _, input := range g.inputs[id] {
			if !visited[input] {
				visited[input] = true
				result = append(result, input)
				dfs(input)
			}
		}
	}

	dfs(nodeID)
	return result
}

// TransitiveDependents returns every stored id derived from a node,
// directly or indirectly.
func (g *Graph) TransitiveDependents(nodeID string) []string {
	visited := make(map[string]bool)
	var result []string

	var dfs func(id string)
	dfs = func(id string) {
		for _, dep := range g.dependents[id] {
			if !visited[dep] {
				visited[dep] = true
				result = append(result, dep)
				dfs(dep)
			}
		}
	}

	dfs(nodeID)
	return result
}

// Roots returns nodes with no stored inputs.
func (g *Graph) Roots() []string {
	var roots []string
	for _, id := range g.store.IDs() {
		if len(g.inputs[id]) == 0 {
			roots = append(roots, id)
		}
	}
	return roots
}

// Leaves returns nodes with no dependents.
func (g *Graph) Leaves() []string {
	var leaves []string
	for _, id := range g.store.IDs() {
		if len(g.dependents[id]) == 0 {
			leaves = append(leaves, id)
		}
	}
	return leaves
}
