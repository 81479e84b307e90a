package render

import (
	"strings"

	"github.com/taxtrace-ai/taxtrace-go/internal/trace"
)

// indentMarker prefixes each nesting level of an explanation, so a
// line's indentation alone conveys its depth in the derivation.
const indentMarker = "  "

// Explainer renders derivation trees as indented text for the audit
// ("why is this number?") view.
type Explainer struct {
	labels Labels
}

// NewExplainer creates an explainer using the given label table, or
// the default table if labels is nil.
func NewExplainer(labels Labels) *Explainer {
	if labels == nil {
		labels = DefaultLabels()
	}
	return &Explainer{labels: labels}
}

// Explain renders the full derivation chain of nodeID as a multi-line
// string: one line per traced value, children indented one level
// deeper than their parent, each line carrying a label, a currency
// amount, and a bracketed node-id citation.
//
// The store must have passed topological sorting; Explain expands the
// tree without a cycle guard (see trace.Build).
func (e *Explainer) Explain(s *trace.Store, leaves trace.LeafResolver, nodeID string) string {
	root := trace.Build(s, nodeID, leaves)

	var b strings.Builder
	e.writeNode(&b, root, 0)
	return b.String()
}

// ExplainTree renders an already-built derivation tree.
func (e *Explainer) ExplainTree(root *trace.Node) string {
	var b strings.Builder
	e.writeNode(&b, root, 0)
	return b.String()
}

func (e *Explainer) writeNode(b *strings.Builder, n *trace.Node, depth int) {
	v := n.Output
	b.WriteString(strings.Repeat(indentMarker, depth))
	b.WriteString(e.labels.Lookup(v.NodeID, v.Label))
	b.WriteString(": ")
	b.WriteString(FormatCents(v.Amount))
	b.WriteString(" [")
	b.WriteString(v.NodeID)
	b.WriteString("]\n")

	for _, input := range n.Inputs {
		e.writeNode(b, input, depth+1)
	}
}
