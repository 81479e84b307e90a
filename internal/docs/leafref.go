package docs

import (
	"strings"
)

// LeafRef is a parsed document-leaf node id. Node ids that bottom out
// in source documents arrive as strings ("w2:w2-1:box1"); parsing them
// into a closed set of variants at this boundary keeps resolution an
// exhaustive switch instead of string-prefix branching, and makes the
// unrecognized case a real value rather than an implicit catch-all.
type LeafRef interface {
	leafRef()
}

// W2Box references one box of a W-2 by document id.
type W2Box struct {
	ID  string
	Box string
}

// Int1099Box references one box of a 1099-INT by document id.
type Int1099Box struct {
	ID  string
	Box string
}

// Div1099Box references one box of a 1099-DIV by document id.
type Div1099Box struct {
	ID  string
	Box string
}

// TransactionRef references a capital-asset transaction; its amount is
// the gain or loss.
type TransactionRef struct {
	ID string
}

// StandardDeductionRef references the synthetic standard-deduction leaf.
type StandardDeductionRef struct{}

// ItemizedFieldRef references a named field of the itemized sub-model.
type ItemizedFieldRef struct {
	Name string
}

// UnrecognizedRef carries a node id no parser rule matched. It resolves
// to the "Unknown" sentinel rather than failing.
type UnrecognizedRef struct {
	Raw string
}

func (W2Box) leafRef()                {}
func (Int1099Box) leafRef()           {}
func (Div1099Box) leafRef()           {}
func (TransactionRef) leafRef()       {}
func (StandardDeductionRef) leafRef() {}
func (ItemizedFieldRef) leafRef()     {}
func (UnrecognizedRef) leafRef()      {}

// ParseLeafRef parses a document-leaf node id into its LeafRef variant.
// It never fails: anything unparseable becomes an UnrecognizedRef.
func ParseLeafRef(nodeID string) LeafRef {
	if nodeID == "standardDeduction" {
		return StandardDeductionRef{}
	}
	if field, ok := strings.CutPrefix(nodeID, "itemized."); ok && field != "" {
		return ItemizedFieldRef{Name: field}
	}

	parts := strings.Split(nodeID, ":")
	switch parts[0] {
	case "w2":
		if id, box, ok := splitDocBox(parts); ok {
			return W2Box{ID: id, Box: box}
		}
	case "1099int":
		if id, box, ok := splitDocBox(parts); ok {
			return Int1099Box{ID: id, Box: box}
		}
	case "1099div":
		if id, box, ok := splitDocBox(parts); ok {
			return Div1099Box{ID: id, Box: box}
		}
	case "tx":
		if len(parts) == 2 && parts[1] != "" {
			return TransactionRef{ID: parts[1]}
		}
	}

	return UnrecognizedRef{Raw: nodeID}
}

// splitDocBox extracts the document id and box number from a
// three-part id of the form prefix:docID:boxN.
func splitDocBox(parts []string) (id, box string, ok bool) {
	if len(parts) != 3 || parts[1] == "" {
		return "", "", false
	}
	box, hasBox := strings.CutPrefix(parts[2], "box")
	if !hasBox || box == "" {
		return "", "", false
	}
	return parts[1], box, true
}
