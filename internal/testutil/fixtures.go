// Package testutil provides shared return fixtures and golden-file
// helpers for taxtrace tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/taxtrace-ai/taxtrace-go/internal/docs"
)

// SingleW2YAML is the simplest real return: one W-2 and nothing else.
const SingleW2YAML = `year: 2024
filing_status: single
w2s:
  - id: w2-1
    employer: Acme Corp
    box1: 7500000
    box2: 800000
`

// FullReturnYAML exercises every optional schedule at once: interest,
// dividends, capital transactions, a business, and itemized deductions.
const FullReturnYAML = `year: 2024
filing_status: married_joint
w2s:
  - id: w2-1
    employer: Acme Corp
    box1: 9000000
    box2: 1100000
  - id: w2-2
    employer: Globex
    box1: 4000000
    box2: 400000
form1099_ints:
  - id: int-1
    payer: First Bank
    box1: 32000
form1099_divs:
  - id: div-1
    payer: Brokerage Co
    box1a: 150000
    box1b: 120000
transactions:
  - id: tx-1
    description: 100 sh XYZ
    term: long
    proceeds: 2500000
    basis: 2000000
  - id: tx-2
    description: 50 sh ABC
    term: short
    proceeds: 400000
    basis: 700000
businesses:
  - id: biz-1
    name: Side Consulting
    gross_receipts: 3000000
    expenses: 800000
itemized:
  state_local_taxes: 1800000
  mortgage_interest: 1600000
  charitable_contributions: 500000
`

// WriteReturn writes a return fixture into a temp directory and
// returns the file path.
func WriteReturn(t *testing.T, yamlBody string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "return.yaml")
	if err := os.WriteFile(path, []byte(yamlBody), 0644); err != nil {
		t.Fatalf("Failed to write return fixture: %v", err)
	}
	return path
}

// ParseReturn parses a YAML return fixture, failing the test on error.
func ParseReturn(t *testing.T, yamlBody string) *docs.Return {
	t.Helper()

	ret, err := docs.ParseReturn([]byte(yamlBody))
	if err != nil {
		t.Fatalf("Failed to parse return fixture: %v", err)
	}
	return ret
}
