// Package trace provides the traced-value model for tax computations.
//
// Every computed number in a return is stored as a Value: an exact
// integer amount in cents annotated with its own node id, a label, and
// the ordered list of node ids it was derived from. The Store collects
// all values produced by one computation run, and Build expands any
// value into the full derivation tree behind it.
package trace

// Value is one traced amount in the computation graph.
type Value struct {
	// Amount is the exact amount in cents. All rounding happens before
	// a Value is constructed, so amounts compose by integer arithmetic.
	Amount int64

	// NodeID identifies this value, e.g. "form1040.line9".
	NodeID string

	// Label is a short human-readable description. May be empty when a
	// label table supplies it at render time.
	Label string

	// Inputs lists the node ids this value was derived from, in
	// derivation order. Empty for leaves. Duplicates are permitted and
	// preserved.
	Inputs []string
}

// New creates a traced value derived from the given input node ids.
func New(amountCents int64, nodeID string, inputs ...string) *Value {
	return &Value{
		Amount: amountCents,
		NodeID: nodeID,
		Inputs: inputs,
	}
}

// NewLabeled creates a traced value with an inline label.
func NewLabeled(amountCents int64, nodeID, label string, inputs ...string) *Value {
	return &Value{
		Amount: amountCents,
		NodeID: nodeID,
		Label:  label,
		Inputs: inputs,
	}
}

// Zero creates a labeled zero value with no inputs, for lines that are
// definitionally zero because they do not apply.
func Zero(nodeID, label string) *Value {
	return &Value{
		NodeID: nodeID,
		Label:  label,
	}
}

// IsLeaf returns true if the value has no inputs.
func (v *Value) IsLeaf() bool {
	return len(v.Inputs) == 0
}
