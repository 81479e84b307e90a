package compute

import (
	"fmt"

	"github.com/taxtrace-ai/taxtrace-go/internal/docs"
	"github.com/taxtrace-ai/taxtrace-go/internal/trace"
)

// computeScheduleC produces business income lines from the return's
// sole-proprietorship activities and carries the net profit through
// Schedule 1. Runs only when businesses exist.
//
// Business activities have no document-leaf encoding; their gross and
// expense figures enter the store as labeled leaf values.
func computeScheduleC(ret *docs.Return, s *trace.Store) error {
	var gross, expenses int64
	grossInputs := make([]string, 0, len(ret.Businesses))
	expenseInputs := make([]string, 0, len(ret.Businesses))

	for i := range ret.Businesses {
		b := &ret.Businesses[i]
		grossID := fmt.Sprintf("scheduleC.gross.%s", b.ID)
		expenseID := fmt.Sprintf("scheduleC.expenses.%s", b.ID)
		if err := addAll(s,
			trace.NewLabeled(b.GrossReceipts, grossID, fmt.Sprintf("%s gross receipts", b.Name)),
			trace.NewLabeled(b.Expenses, expenseID, fmt.Sprintf("%s expenses", b.Name)),
		); err != nil {
			return err
		}
		gross += b.GrossReceipts
		expenses += b.Expenses
		grossInputs = append(grossInputs, grossID)
		expenseInputs = append(expenseInputs, expenseID)
	}

	net := gross - expenses
	return addAll(s,
		trace.New(gross, "scheduleC.line1", grossInputs...),
		trace.New(expenses, "scheduleC.line28", expenseInputs...),
		trace.New(net, "scheduleC.line31", "scheduleC.line1", "scheduleC.line28"),
		trace.New(net, "schedule1.line3", "scheduleC.line31"),
		trace.New(net, "schedule1.line10", "schedule1.line3"),
	)
}
