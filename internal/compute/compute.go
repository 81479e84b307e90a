package compute

import (
	"fmt"

	"github.com/taxtrace-ai/taxtrace-go/internal/docs"
	"github.com/taxtrace-ai/taxtrace-go/internal/graph"
	"github.com/taxtrace-ai/taxtrace-go/internal/trace"
)

// step is one entry in the dispatch table: an always-on stage (when is
// nil) or an optional schedule gated by a precondition on the return.
type step struct {
	tag  ScheduleTag
	when func(ret *docs.Return) bool
	run  func(ret *docs.Return, s *trace.Store) error
}

// steps is the full computation sequence. Order matters: a module may
// read lines produced by earlier modules, and Schedule A needs AGI, so
// income aggregation runs between the income schedules and the
// deduction stages.
func steps() []step {
	return []step{
		{run: computeWages},
		{tag: TagScheduleB, when: hasInterestOrDividends, run: computeScheduleB},
		{tag: TagScheduleD, when: hasTransactions, run: computeCapitalGains},
		{tag: TagScheduleC, when: hasBusinesses, run: computeScheduleC},
		{run: computeIncome},
		{tag: TagScheduleA, when: hasItemized, run: computeScheduleA},
		{run: computeDeduction},
		{run: computeTax},
	}
}

func hasInterestOrDividends(ret *docs.Return) bool {
	return len(ret.Int1099s) > 0 || len(ret.Div1099s) > 0
}

func hasTransactions(ret *docs.Return) bool {
	return len(ret.Transactions) > 0
}

func hasBusinesses(ret *docs.Return) bool {
	return len(ret.Businesses) > 0
}

func hasItemized(ret *docs.Return) bool {
	return ret.Itemized != nil
}

// ComputeAll runs every applicable rule module against the return and
// returns the accumulated store plus the set of optional schedules
// that executed. The finished store is topologically validated; a
// cycle means a defective rule module and fails the whole run.
func ComputeAll(ret *docs.Return) (*Result, error) {
	res, err := ComputeUnchecked(ret)
	if err != nil {
		return nil, err
	}

	if _, err := graph.NewGraph(res.Values).TopologicalSort(); err != nil {
		return nil, err
	}

	return res, nil
}

// ComputeUnchecked is ComputeAll without the final acyclicity check.
// Cycle diagnostics use it to inspect a store that would fail
// validation; everything else should call ComputeAll.
func ComputeUnchecked(ret *docs.Return) (*Result, error) {
	s := trace.NewStore()
	executed := make(map[ScheduleTag]bool)

	for _, st := range steps() {
		if st.when != nil && !st.when(ret) {
			continue
		}
		if err := st.run(ret, s); err != nil {
			return nil, fmt.Errorf("computing %s: %w", stepName(st), err)
		}
		if st.tag != "" {
			executed[st.tag] = true
		}
	}

	return &Result{Values: s, Executed: executed}, nil
}

func stepName(st step) string {
	if st.tag != "" {
		return string(st.tag)
	}
	return "form1040"
}

// addAll inserts values into the store, stopping at the first error.
func addAll(s *trace.Store, values ...*trace.Value) error {
	for _, v := range values {
		if err := s.Add(v); err != nil {
			return err
		}
	}
	return nil
}
