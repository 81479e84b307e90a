package compute

import (
	"github.com/taxtrace-ai/taxtrace-go/internal/docs"
	"github.com/taxtrace-ai/taxtrace-go/internal/trace"
)

// saltCapCents caps the state and local tax deduction at $10,000.
const saltCapCents = 1000000

// medicalFloorPermille is the AGI floor under which medical expenses
// are not deductible (7.5%).
const medicalFloorPermille = 75

// computeScheduleA produces itemized-deduction lines from the
// return's itemized sub-model. Runs only when the sub-model is
// present; whether it beats the standard deduction is decided later
// by computeDeduction.
func computeScheduleA(ret *docs.Return, s *trace.Store) error {
	agi := s.Amount("form1040.line11")

	medical := ret.Itemized.MedicalExpenses - agi*medicalFloorPermille/1000
	if medical < 0 {
		medical = 0
	}

	salt := ret.Itemized.StateLocalTaxes
	if salt > saltCapCents {
		salt = saltCapCents
	}

	mortgage := ret.Itemized.MortgageInterest
	charity := ret.Itemized.CharitableContributions

	return addAll(s,
		trace.New(medical, "scheduleA.line4", "itemized.medicalExpenses", "form1040.line11"),
		trace.New(salt, "scheduleA.line5e", "itemized.stateLocalTaxes"),
		trace.New(mortgage, "scheduleA.line8e", "itemized.mortgageInterest"),
		trace.New(charity, "scheduleA.line11", "itemized.charitableContributions"),
		trace.New(medical+salt+mortgage+charity, "scheduleA.line17",
			"scheduleA.line4", "scheduleA.line5e", "scheduleA.line8e", "scheduleA.line11"),
	)
}

// computeDeduction picks the larger of the standard deduction and any
// computed itemized total for Form 1040 line 12. Always on.
func computeDeduction(ret *docs.Return, s *trace.Store) error {
	std := ret.StandardDeductionCents()

	if itemized := s.Amount("scheduleA.line17"); s.Exists("scheduleA.line17") && itemized > std {
		return s.Add(trace.New(itemized, "form1040.line12", "scheduleA.line17"))
	}
	return s.Add(trace.New(std, "form1040.line12", "standardDeduction"))
}
