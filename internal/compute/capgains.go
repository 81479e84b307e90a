package compute

import (
	"fmt"

	"github.com/taxtrace-ai/taxtrace-go/internal/docs"
	"github.com/taxtrace-ai/taxtrace-go/internal/trace"
)

// capitalLossLimitCents is the maximum net capital loss deductible
// against ordinary income ($3,000, or $1,500 married filing separately).
const capitalLossLimitCents = 300000

// computeCapitalGains produces Form 8949 rows and Schedule D totals
// from the return's capital-asset transactions, plus Form 1040 line 7
// after the capital-loss limitation. Runs only when transactions exist.
func computeCapitalGains(ret *docs.Return, s *trace.Store) error {
	var short, long int64
	allRows := make([]string, 0, len(ret.Transactions))
	shortRows := make([]string, 0)
	longRows := make([]string, 0)

	for i := range ret.Transactions {
		tx := &ret.Transactions[i]
		rowID := fmt.Sprintf("form8949.tx.%s", tx.ID)
		if err := s.Add(trace.NewLabeled(tx.GainLoss(), rowID,
			fmt.Sprintf("%s gain or (loss)", tx.Description),
			fmt.Sprintf("tx:%s", tx.ID))); err != nil {
			return err
		}

		allRows = append(allRows, rowID)
		if tx.Term == docs.TermShort {
			short += tx.GainLoss()
			shortRows = append(shortRows, rowID)
		} else {
			long += tx.GainLoss()
			longRows = append(longRows, rowID)
		}
	}

	total := short + long
	if err := addAll(s,
		trace.NewLabeled(total, "form8949.line2h", "Total gain or (loss)", allRows...),
		trace.New(short, "scheduleD.line7", shortRows...),
		trace.New(long, "scheduleD.line15", longRows...),
		trace.New(total, "scheduleD.line16", "scheduleD.line7", "scheduleD.line15"),
	); err != nil {
		return err
	}

	// A net loss is limited before it reaches Form 1040.
	limit := int64(capitalLossLimitCents)
	if ret.FilingStatus == docs.FilingMarriedSeparate {
		limit = capitalLossLimitCents / 2
	}
	if total < -limit {
		return addAll(s,
			trace.New(-limit, "scheduleD.line21", "scheduleD.line16"),
			trace.New(-limit, "form1040.line7", "scheduleD.line21"),
		)
	}
	return s.Add(trace.New(total, "form1040.line7", "scheduleD.line16"))
}
