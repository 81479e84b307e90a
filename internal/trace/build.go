package trace

// LeafResolver resolves a node id that is absent from the store into a
// label and amount, by looking it up in the source documents of the
// return. It never fails; unresolvable ids degrade to an "Unknown"
// label and a zero amount.
type LeafResolver interface {
	ResolveLeaf(nodeID string) (label string, amountCents int64)
}

// Node is one node of a derivation tree: a traced value together with
// the recursively expanded trees of its inputs.
type Node struct {
	Output *Value
	Inputs []*Node
}

// Build expands the value at nodeID into its full derivation tree.
//
// Ids absent from the store are resolved through leaves and become
// zero-input leaf nodes. Input order is preserved and duplicate inputs
// produce duplicate subtrees.
//
// Build has no cycle guard: callers must have validated the store with
// graph.TopologicalSort first. On a cyclic store it recurses without
// bound. See BuildGuarded for a defensive variant.
func Build(s *Store, nodeID string, leaves LeafResolver) *Node {
	v := s.Get(nodeID)
	if v == nil {
		label, amount := leaves.ResolveLeaf(nodeID)
		return &Node{Output: &Value{
			Amount: amount,
			NodeID: nodeID,
			Label:  label,
		}}
	}

	node := &Node{Output: v, Inputs: make([]*Node, 0, len(v.Inputs))}
	for _, input := range v.Inputs {
		node.Inputs = append(node.Inputs, Build(s, input, leaves))
	}
	return node
}

// BuildGuarded is Build with a visited-path guard: if a node id recurs
// on the current expansion path, the repeat is rendered as a leaf
// instead of recursing. Intended for callers that cannot guarantee the
// store was validated; Build remains the default.
func BuildGuarded(s *Store, nodeID string, leaves LeafResolver) *Node {
	return buildGuarded(s, nodeID, leaves, make(map[string]bool))
}

func buildGuarded(s *Store, nodeID string, leaves LeafResolver, onPath map[string]bool) *Node {
	v := s.Get(nodeID)
	if v == nil {
		label, amount := leaves.ResolveLeaf(nodeID)
		return &Node{Output: &Value{
			Amount: amount,
			NodeID: nodeID,
			Label:  label,
		}}
	}
	if onPath[nodeID] {
		// Cut the cycle: repeat the value without its inputs.
		return &Node{Output: v}
	}

	onPath[nodeID] = true
	node := &Node{Output: v, Inputs: make([]*Node, 0, len(v.Inputs))}
	for _, input := range v.Inputs {
		node.Inputs = append(node.Inputs, buildGuarded(s, input, leaves, onPath))
	}
	delete(onPath, nodeID)
	return node
}
