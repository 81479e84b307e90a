package compute

import (
	"fmt"

	"github.com/taxtrace-ai/taxtrace-go/internal/docs"
	"github.com/taxtrace-ai/taxtrace-go/internal/trace"
)

// computeScheduleB produces interest (part I) and dividend (part II)
// lines from the return's 1099-INTs and 1099-DIVs. Runs only when at
// least one such form is present.
func computeScheduleB(ret *docs.Return, s *trace.Store) error {
	if len(ret.Int1099s) > 0 {
		var interest int64
		inputs := make([]string, 0, len(ret.Int1099s))
		for i := range ret.Int1099s {
			f := &ret.Int1099s[i]
			interest += f.Box1
			inputs = append(inputs, fmt.Sprintf("1099int:%s:box1", f.ID))
		}

		if err := addAll(s,
			trace.New(interest, "scheduleB.line2", inputs...),
			trace.New(interest, "scheduleB.line4", "scheduleB.line2"),
			trace.New(interest, "form1040.line2b", "scheduleB.line4"),
		); err != nil {
			return err
		}
	}

	if len(ret.Div1099s) > 0 {
		var ordinary, qualified int64
		ordinaryInputs := make([]string, 0, len(ret.Div1099s))
		qualifiedInputs := make([]string, 0, len(ret.Div1099s))
		for i := range ret.Div1099s {
			f := &ret.Div1099s[i]
			ordinary += f.Box1a
			qualified += f.Box1b
			ordinaryInputs = append(ordinaryInputs, fmt.Sprintf("1099div:%s:box1a", f.ID))
			qualifiedInputs = append(qualifiedInputs, fmt.Sprintf("1099div:%s:box1b", f.ID))
		}

		if err := addAll(s,
			trace.New(ordinary, "scheduleB.line6", ordinaryInputs...),
			trace.New(ordinary, "form1040.line3b", "scheduleB.line6"),
			trace.New(qualified, "form1040.line3a", qualifiedInputs...),
		); err != nil {
			return err
		}
	}

	return nil
}
