// Package compute orchestrates a full computation run over a tax return.
//
// ComputeAll walks a fixed sequence of rule modules, skipping optional
// schedules whose preconditions do not hold against the return, and
// accumulates every produced traced value into one store. The store is
// validated for acyclicity before the result is returned.
package compute

import (
	"sort"

	"github.com/taxtrace-ai/taxtrace-go/internal/trace"
)

// ScheduleTag identifies an optional schedule that may or may not run
// for a given return.
type ScheduleTag string

const (
	TagScheduleA ScheduleTag = "scheduleA" // itemized deductions
	TagScheduleB ScheduleTag = "scheduleB" // interest and dividends
	TagScheduleC ScheduleTag = "scheduleC" // business income
	TagScheduleD ScheduleTag = "scheduleD" // capital gains and losses
)

// Result is the output of one computation run: every traced value the
// rule modules produced, plus the set of optional schedules that
// actually ran. Results are rebuilt from scratch on every recompute.
type Result struct {
	Values   *trace.Store
	Executed map[ScheduleTag]bool
}

// Ran returns true if the tagged schedule executed during this run.
func (r *Result) Ran(tag ScheduleTag) bool {
	return r.Executed[tag]
}

// ExecutedTags returns the executed schedule tags in sorted order.
func (r *Result) ExecutedTags() []ScheduleTag {
	tags := make([]ScheduleTag, 0, len(r.Executed))
	for tag := range r.Executed {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}
