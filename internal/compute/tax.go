package compute

import (
	"github.com/taxtrace-ai/taxtrace-go/internal/docs"
	"github.com/taxtrace-ai/taxtrace-go/internal/trace"
)

// bracket is one marginal rate band. Amounts are cents; the rate is a
// whole percentage.
type bracket struct {
	upTo int64 // upper bound of the band, 0 for the top band
	rate int64
}

// Illustrative 2024-shaped brackets. Tax-law fidelity is explicitly
// out of scope; these exist so line 16 has a real derivation.
var singleBrackets = []bracket{
	{1160000, 10},
	{4715000, 12},
	{10052500, 22},
	{19195000, 24},
	{24372500, 32},
	{60935000, 35},
	{0, 37},
}

var marriedJointBrackets = []bracket{
	{2320000, 10},
	{9430000, 12},
	{20105000, 22},
	{38390000, 24},
	{48745000, 32},
	{73120000, 35},
	{0, 37},
}

func bracketsFor(fs docs.FilingStatus) []bracket {
	if fs == docs.FilingMarriedJoint {
		return marriedJointBrackets
	}
	return singleBrackets
}

// bracketTax computes marginal tax on a taxable amount, truncated to
// whole cents per band.
func bracketTax(taxable int64, brackets []bracket) int64 {
	var tax, lower int64
	for _, b := range brackets {
		upper := b.upTo
		if upper == 0 || upper > taxable {
			upper = taxable
		}
		if upper > lower {
			tax += (upper - lower) * b.rate / 100
		}
		if b.upTo == 0 || taxable <= b.upTo {
			break
		}
		lower = b.upTo
	}
	return tax
}

// computeTax produces taxable income, the tax itself, and the final
// payment reconciliation lines. Always on.
func computeTax(ret *docs.Return, s *trace.Store) error {
	taxable := s.Amount("form1040.line11") - s.Amount("form1040.line12")
	if taxable < 0 {
		taxable = 0
	}

	tax := bracketTax(taxable, bracketsFor(ret.FilingStatus))

	if err := addAll(s,
		trace.New(taxable, "form1040.line15", "form1040.line11", "form1040.line12"),
		trace.New(tax, "form1040.line16", "form1040.line15"),
		trace.New(tax, "form1040.line22", "form1040.line16"),
		trace.New(tax, "form1040.line24", "form1040.line22"),
		trace.New(s.Amount("form1040.line25a"), "form1040.line33", "form1040.line25a"),
	); err != nil {
		return err
	}

	payments := s.Amount("form1040.line33")
	if payments >= tax {
		return addAll(s,
			trace.New(payments-tax, "form1040.line34", "form1040.line33", "form1040.line24"),
			trace.Zero("form1040.line37", "Amount you owe"),
		)
	}
	return addAll(s,
		trace.Zero("form1040.line34", "Overpayment (refund)"),
		trace.New(tax-payments, "form1040.line37", "form1040.line24", "form1040.line33"),
	)
}
