package compute

import (
	"fmt"

	"github.com/taxtrace-ai/taxtrace-go/internal/docs"
	"github.com/taxtrace-ai/taxtrace-go/internal/trace"
)

// computeWages produces Form 1040 line 1a (wages) and line 25a
// (federal withholding) from the return's W-2s. Always on: a return
// with no W-2s still gets explicit zero lines.
func computeWages(ret *docs.Return, s *trace.Store) error {
	if len(ret.W2s) == 0 {
		return addAll(s,
			trace.Zero("form1040.line1a", "Wages, salaries, tips"),
			trace.Zero("form1040.line25a", "Federal income tax withheld"),
		)
	}

	var wages, withheld int64
	wageInputs := make([]string, 0, len(ret.W2s))
	withheldInputs := make([]string, 0, len(ret.W2s))
	for i := range ret.W2s {
		w2 := &ret.W2s[i]
		wages += w2.Box1
		withheld += w2.Box2
		wageInputs = append(wageInputs, fmt.Sprintf("w2:%s:box1", w2.ID))
		withheldInputs = append(withheldInputs, fmt.Sprintf("w2:%s:box2", w2.ID))
	}

	return addAll(s,
		trace.New(wages, "form1040.line1a", wageInputs...),
		trace.New(withheld, "form1040.line25a", withheldInputs...),
	)
}
