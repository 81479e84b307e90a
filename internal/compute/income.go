package compute

import (
	"github.com/taxtrace-ai/taxtrace-go/internal/docs"
	"github.com/taxtrace-ai/taxtrace-go/internal/trace"
)

// computeIncome aggregates total income (line 9) and AGI (line 11)
// from whatever income lines the earlier schedules produced. Lines a
// skipped schedule would have produced become explicit zeros, so line
// 9 never references a node that was not constructed.
func computeIncome(ret *docs.Return, s *trace.Store) error {
	zeroIfAbsent := []struct {
		nodeID, label string
	}{
		{"form1040.line2b", "Taxable interest"},
		{"form1040.line3a", "Qualified dividends"},
		{"form1040.line3b", "Ordinary dividends"},
		{"form1040.line7", "Capital gain or (loss)"},
	}
	for _, z := range zeroIfAbsent {
		if !s.Exists(z.nodeID) {
			if err := s.Add(trace.Zero(z.nodeID, z.label)); err != nil {
				return err
			}
		}
	}

	if s.Exists("schedule1.line10") {
		if err := s.Add(trace.New(s.Amount("schedule1.line10"), "form1040.line8", "schedule1.line10")); err != nil {
			return err
		}
	} else if err := s.Add(trace.Zero("form1040.line8", "Additional income")); err != nil {
		return err
	}

	total := s.Amount("form1040.line1a") +
		s.Amount("form1040.line2b") +
		s.Amount("form1040.line3b") +
		s.Amount("form1040.line7") +
		s.Amount("form1040.line8")

	// No above-the-line adjustments are modeled, so AGI equals line 9.
	return addAll(s,
		trace.New(total, "form1040.line9",
			"form1040.line1a", "form1040.line2b", "form1040.line3b",
			"form1040.line7", "form1040.line8"),
		trace.New(total, "form1040.line11", "form1040.line9"),
	)
}
