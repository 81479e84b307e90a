package render

import (
	"strings"
	"testing"

	"github.com/taxtrace-ai/taxtrace-go/internal/trace"
)

type stubResolver struct {
	refs map[string]int64
}

func (r *stubResolver) ResolveLeaf(nodeID string) (string, int64) {
	if amount, ok := r.refs[nodeID]; ok {
		return "Doc " + nodeID, amount
	}
	return "Unknown (" + nodeID + ")", 0
}

func buildStore(t *testing.T) *trace.Store {
	t.Helper()
	s := trace.NewStore()
	values := []*trace.Value{
		trace.New(7500000, "form1040.line1a", "w2:w2-1:box1"),
		trace.NewLabeled(12550, "form1040.line2b", "Interest from bank"),
		trace.New(7512550, "form1040.line9", "form1040.line1a", "form1040.line2b"),
	}
	for _, v := range values {
		if err := s.Add(v); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func TestExplainStructure(t *testing.T) {
	s := buildStore(t)
	leaves := &stubResolver{refs: map[string]int64{"w2:w2-1:box1": 7500000}}
	e := NewExplainer(nil)

	got := e.Explain(s, leaves, "form1040.line9")
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("explanation has %d lines, want 4:\n%s", len(lines), got)
	}

	// Root: label from the default table, amount, citation.
	if !strings.HasPrefix(lines[0], "Total income: $75,125.50 [form1040.line9]") {
		t.Errorf("root line = %q", lines[0])
	}

	// Children indented one marker, grandchild two.
	if !strings.HasPrefix(lines[1], "  ") || strings.HasPrefix(lines[1], "    ") {
		t.Errorf("child indentation wrong: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "    ") {
		t.Errorf("grandchild indentation wrong: %q", lines[2])
	}
	if !strings.Contains(lines[2], "[w2:w2-1:box1]") {
		t.Errorf("grandchild citation missing: %q", lines[2])
	}

	if strings.Contains(got, "Unknown") {
		t.Errorf("fully resolvable trace rendered an Unknown sentinel:\n%s", got)
	}
}

func TestExplainIndentationDepth(t *testing.T) {
	// A chain four deep: each line must be strictly deeper than the
	// one above it, regardless of sibling count.
	s := trace.NewStore()
	chain := []string{"d", "c", "b", "a"}
	for i, id := range chain {
		var inputs []string
		if i > 0 {
			inputs = []string{chain[i-1]}
		}
		if err := s.Add(trace.New(int64(i), id, inputs...)); err != nil {
			t.Fatal(err)
		}
	}

	got := NewExplainer(Labels{}).Explain(s, &stubResolver{}, "a")
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}

	prevIndent := -1
	for i, line := range lines {
		indent := len(line) - len(strings.TrimLeft(line, " "))
		if indent <= prevIndent {
			t.Errorf("line %d indent %d not deeper than parent's %d: %q", i, indent, prevIndent, line)
		}
		prevIndent = indent
	}
}

func TestExplainLabelFallback(t *testing.T) {
	s := buildStore(t)
	leaves := &stubResolver{refs: map[string]int64{"w2:w2-1:box1": 7500000}}

	// Empty table: inline labels win, then the id itself.
	got := NewExplainer(Labels{}).Explain(s, leaves, "form1040.line9")
	if !strings.Contains(got, "Interest from bank") {
		t.Errorf("inline label not used:\n%s", got)
	}
	if !strings.Contains(got, "form1040.line9: ") {
		t.Errorf("id fallback not used for unlabeled node:\n%s", got)
	}

	// Substituted table overrides both.
	alt := Labels{"form1040.line2b": "Bank interest (alt)"}
	got = NewExplainer(alt).Explain(s, leaves, "form1040.line2b")
	if !strings.HasPrefix(got, "Bank interest (alt)") {
		t.Errorf("alternate table ignored: %q", got)
	}
}

func TestExplainNegativeAmount(t *testing.T) {
	s := trace.NewStore()
	if err := s.Add(trace.NewLabeled(-300000, "scheduleD.line16", "Total capital loss")); err != nil {
		t.Fatal(err)
	}

	got := NewExplainer(nil).Explain(s, &stubResolver{}, "scheduleD.line16")
	if !strings.Contains(got, "-$3,000.00") {
		t.Errorf("negative amount misrendered: %q", got)
	}
	if strings.Contains(got, "($") {
		t.Errorf("parenthesized negative in explanation: %q", got)
	}
}

func TestExplainDuplicateInputsRenderTwice(t *testing.T) {
	s := trace.NewStore()
	if err := s.Add(trace.New(50, "base")); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(trace.New(100, "total", "base", "base")); err != nil {
		t.Fatal(err)
	}

	got := NewExplainer(Labels{}).Explain(s, &stubResolver{}, "total")
	if n := strings.Count(got, "[base]"); n != 2 {
		t.Errorf("duplicate input rendered %d times, want 2:\n%s", n, got)
	}
}

func TestExplainUnknownLeafIsVisible(t *testing.T) {
	s := trace.NewStore()
	if err := s.Add(trace.New(0, "line", "w2:missing:box1")); err != nil {
		t.Fatal(err)
	}

	got := NewExplainer(Labels{}).Explain(s, &stubResolver{}, "line")
	if !strings.Contains(got, "Unknown") {
		t.Errorf("unresolved leaf not marked Unknown:\n%s", got)
	}
}
