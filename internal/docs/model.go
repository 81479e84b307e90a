// Package docs provides the tax-return document model and the resolver
// that projects document fields into labeled amounts for the trace.
package docs

import (
	"fmt"
	"strings"
)

// FilingStatus represents the taxpayer's filing status.
type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingMarriedJoint    FilingStatus = "married_joint"
	FilingMarriedSeparate FilingStatus = "married_separate"
	FilingHeadOfHousehold FilingStatus = "head_of_household"
)

// AllFilingStatuses returns all valid filing status values.
func AllFilingStatuses() []FilingStatus {
	return []FilingStatus{FilingSingle, FilingMarriedJoint, FilingMarriedSeparate, FilingHeadOfHousehold}
}

// ParseFilingStatus parses a string into a FilingStatus, case-insensitive.
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "":
		return FilingSingle, nil
	case "married_joint", "mfj":
		return FilingMarriedJoint, nil
	case "married_separate", "mfs":
		return FilingMarriedSeparate, nil
	case "head_of_household", "hoh":
		return FilingHeadOfHousehold, nil
	default:
		return FilingSingle, fmt.Errorf("invalid filing status: %q", s)
	}
}

// String returns the string representation of the filing status.
func (fs FilingStatus) String() string {
	return string(fs)
}

// Display returns a human-readable name for the filing status.
func (fs FilingStatus) Display() string {
	switch fs {
	case FilingMarriedJoint:
		return "Married filing jointly"
	case FilingMarriedSeparate:
		return "Married filing separately"
	case FilingHeadOfHousehold:
		return "Head of household"
	default:
		return "Single"
	}
}

// Term classifies a capital-asset holding period.
type Term string

const (
	TermShort Term = "short"
	TermLong  Term = "long"
)

// W2 is one Form W-2 wage statement. All box amounts are in cents.
type W2 struct {
	ID       string `yaml:"id"`
	Employer string `yaml:"employer"`
	Box1     int64  `yaml:"box1"` // wages, tips, other compensation
	Box2     int64  `yaml:"box2"` // federal income tax withheld
	Box17    int64  `yaml:"box17"` // state income tax withheld
}

// Box returns the amount in the named W-2 box, or false if the box is
// not one this model carries.
func (w *W2) Box(box string) (int64, bool) {
	switch box {
	case "1":
		return w.Box1, true
	case "2":
		return w.Box2, true
	case "17":
		return w.Box17, true
	default:
		return 0, false
	}
}

// Form1099INT is one Form 1099-INT interest statement.
type Form1099INT struct {
	ID    string `yaml:"id"`
	Payer string `yaml:"payer"`
	Box1  int64  `yaml:"box1"` // interest income
	Box3  int64  `yaml:"box3"` // US savings bond / treasury interest
}

// Box returns the amount in the named 1099-INT box.
func (f *Form1099INT) Box(box string) (int64, bool) {
	switch box {
	case "1":
		return f.Box1, true
	case "3":
		return f.Box3, true
	default:
		return 0, false
	}
}

// Form1099DIV is one Form 1099-DIV dividend statement.
type Form1099DIV struct {
	ID    string `yaml:"id"`
	Payer string `yaml:"payer"`
	Box1a int64  `yaml:"box1a"` // total ordinary dividends
	Box1b int64  `yaml:"box1b"` // qualified dividends
}

// Box returns the amount in the named 1099-DIV box.
func (f *Form1099DIV) Box(box string) (int64, bool) {
	switch box {
	case "1a":
		return f.Box1a, true
	case "1b":
		return f.Box1b, true
	default:
		return 0, false
	}
}

// Transaction is one capital-asset disposal. Its traced amount is the
// gain or loss, not the proceeds.
type Transaction struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Term        Term   `yaml:"term"`
	Proceeds    int64  `yaml:"proceeds"`
	Basis       int64  `yaml:"basis"`
}

// GainLoss returns the transaction's gain (positive) or loss (negative).
func (t *Transaction) GainLoss() int64 {
	return t.Proceeds - t.Basis
}

// Business is one sole-proprietorship activity feeding Schedule C.
type Business struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	GrossReceipts int64  `yaml:"gross_receipts"`
	Expenses      int64  `yaml:"expenses"`
}

// Itemized holds the itemized-deduction sub-model.
type Itemized struct {
	MedicalExpenses         int64 `yaml:"medical_expenses"`
	StateLocalTaxes         int64 `yaml:"state_local_taxes"`
	MortgageInterest        int64 `yaml:"mortgage_interest"`
	CharitableContributions int64 `yaml:"charitable_contributions"`
}

// Field returns the named itemized-deduction field, or false if the
// name is not recognized.
func (it *Itemized) Field(name string) (int64, bool) {
	switch name {
	case "medicalExpenses":
		return it.MedicalExpenses, true
	case "stateLocalTaxes":
		return it.StateLocalTaxes, true
	case "mortgageInterest":
		return it.MortgageInterest, true
	case "charitableContributions":
		return it.CharitableContributions, true
	default:
		return 0, false
	}
}

// Return is the full tax-return document model: the source documents a
// computation run reads from. It is never mutated by the computation.
type Return struct {
	Year         int           `yaml:"year"`
	FilingStatus FilingStatus  `yaml:"filing_status"`
	W2s          []W2          `yaml:"w2s"`
	Int1099s     []Form1099INT `yaml:"form1099_ints"`
	Div1099s     []Form1099DIV `yaml:"form1099_divs"`
	Transactions []Transaction `yaml:"transactions"`
	Businesses   []Business    `yaml:"businesses"`
	Itemized     *Itemized     `yaml:"itemized"`
}

// W2 returns the W-2 with the given id, or nil.
func (r *Return) W2(id string) *W2 {
	for i := range r.W2s {
		if r.W2s[i].ID == id {
			return &r.W2s[i]
		}
	}
	return nil
}

// Int1099 returns the 1099-INT with the given id, or nil.
func (r *Return) Int1099(id string) *Form1099INT {
	for i := range r.Int1099s {
		if r.Int1099s[i].ID == id {
			return &r.Int1099s[i]
		}
	}
	return nil
}

// Div1099 returns the 1099-DIV with the given id, or nil.
func (r *Return) Div1099(id string) *Form1099DIV {
	for i := range r.Div1099s {
		if r.Div1099s[i].ID == id {
			return &r.Div1099s[i]
		}
	}
	return nil
}

// Transaction returns the transaction with the given id, or nil.
func (r *Return) Transaction(id string) *Transaction {
	for i := range r.Transactions {
		if r.Transactions[i].ID == id {
			return &r.Transactions[i]
		}
	}
	return nil
}

// StandardDeductionCents returns the standard deduction for the
// return's filing status. Illustrative 2024-shaped amounts.
func (r *Return) StandardDeductionCents() int64 {
	switch r.FilingStatus {
	case FilingMarriedJoint:
		return 2920000
	case FilingHeadOfHousehold:
		return 2190000
	case FilingMarriedSeparate:
		return 1460000
	default:
		return 1460000
	}
}
