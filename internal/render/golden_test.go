package render

import (
	"testing"

	"github.com/taxtrace-ai/taxtrace-go/internal/compute"
	"github.com/taxtrace-ai/taxtrace-go/internal/docs"
	"github.com/taxtrace-ai/taxtrace-go/internal/testutil"
)

// TestExplainGolden pins the exact rendered explanation for a
// single-W-2 return so formatting regressions show up as diffs.
func TestExplainGolden(t *testing.T) {
	ret := testutil.ParseReturn(t, testutil.SingleW2YAML)

	res, err := compute.ComputeAll(ret)
	if err != nil {
		t.Fatalf("ComputeAll failed: %v", err)
	}

	rendered := NewExplainer(nil).Explain(res.Values, docs.NewResolver(ret), "form1040.line11")
	testutil.GoldenString(t, "explain_agi_single_w2", rendered)
}
