package docs

import (
	"fmt"
)

// UnknownLabel marks a document reference that could not be resolved.
// Resolution never fails; unresolved leaves degrade to this visible,
// greppable sentinel with a zero amount so a partial or malformed
// return still renders an explanation.
const UnknownLabel = "Unknown"

// Ref is a resolved document reference: a label and an amount in cents.
type Ref struct {
	Label  string
	Amount int64
}

// Resolver projects document-leaf node ids onto the documents of one
// return. It reads the return model only; it has no knowledge of the
// node value store.
type Resolver struct {
	ret *Return
}

// NewResolver creates a resolver over a return.
func NewResolver(ret *Return) *Resolver {
	return &Resolver{ret: ret}
}

// Resolve resolves a parsed leaf reference against the return.
func (r *Resolver) Resolve(ref LeafRef) Ref {
	switch ref := ref.(type) {
	case W2Box:
		if w2 := r.ret.W2(ref.ID); w2 != nil {
			if amount, ok := w2.Box(ref.Box); ok {
				return Ref{
					Label:  fmt.Sprintf("%s Box %s", w2.Employer, ref.Box),
					Amount: amount,
				}
			}
		}
		return unknownRef("W-2", ref.ID)

	case Int1099Box:
		if f := r.ret.Int1099(ref.ID); f != nil {
			if amount, ok := f.Box(ref.Box); ok {
				return Ref{
					Label:  fmt.Sprintf("%s 1099-INT Box %s", f.Payer, ref.Box),
					Amount: amount,
				}
			}
		}
		return unknownRef("1099-INT", ref.ID)

	case Div1099Box:
		if f := r.ret.Div1099(ref.ID); f != nil {
			if amount, ok := f.Box(ref.Box); ok {
				return Ref{
					Label:  fmt.Sprintf("%s 1099-DIV Box %s", f.Payer, ref.Box),
					Amount: amount,
				}
			}
		}
		return unknownRef("1099-DIV", ref.ID)

	case TransactionRef:
		if tx := r.ret.Transaction(ref.ID); tx != nil {
			return Ref{
				Label:  fmt.Sprintf("%s gain/loss", tx.Description),
				Amount: tx.GainLoss(),
			}
		}
		return unknownRef("transaction", ref.ID)

	case StandardDeductionRef:
		return Ref{
			Label:  fmt.Sprintf("Standard deduction (%s)", r.ret.FilingStatus.Display()),
			Amount: r.ret.StandardDeductionCents(),
		}

	case ItemizedFieldRef:
		if r.ret.Itemized != nil {
			if amount, ok := r.ret.Itemized.Field(ref.Name); ok {
				return Ref{
					Label:  fmt.Sprintf("Itemized %s", ref.Name),
					Amount: amount,
				}
			}
		}
		return unknownRef("itemized field", ref.Name)

	case UnrecognizedRef:
		return unknownRef("reference", ref.Raw)

	default:
		return Ref{Label: UnknownLabel}
	}
}

// ResolveLeaf resolves a raw document-leaf node id. It implements
// trace.LeafResolver for the trace builder.
func (r *Resolver) ResolveLeaf(nodeID string) (string, int64) {
	ref := r.Resolve(ParseLeafRef(nodeID))
	return ref.Label, ref.Amount
}

func unknownRef(kind, id string) Ref {
	return Ref{Label: fmt.Sprintf("%s %s (%s)", UnknownLabel, kind, id)}
}
