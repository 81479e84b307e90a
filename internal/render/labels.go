// Package render formats traced values and derivation trees for display.
package render

// Labels maps node ids to display labels. The renderer falls back to a
// value's inline label, then to the node id itself, when a lookup
// misses. The table is plain data with no lifecycle so tests can
// substitute alternate sets.
type Labels map[string]string

// DefaultLabels returns the standard label table for federal form lines.
func DefaultLabels() Labels {
	return Labels{
		"form1040.line1a":   "Wages, salaries, tips",
		"form1040.line2b":   "Taxable interest",
		"form1040.line3a":   "Qualified dividends",
		"form1040.line3b":   "Ordinary dividends",
		"form1040.line7":    "Capital gain or (loss)",
		"form1040.line8":    "Additional income",
		"form1040.line9":    "Total income",
		"form1040.line11":   "Adjusted gross income",
		"form1040.line12":   "Deduction",
		"form1040.line15":   "Taxable income",
		"form1040.line16":   "Tax",
		"form1040.line22":   "Total tax before other taxes",
		"form1040.line24":   "Total tax",
		"form1040.line25a":  "Federal income tax withheld",
		"form1040.line33":   "Total payments",
		"form1040.line34":   "Overpayment (refund)",
		"form1040.line37":   "Amount you owe",
		"schedule1.line3":   "Business income or (loss)",
		"schedule1.line10":  "Additional income total",
		"scheduleA.line4":   "Deductible medical expenses",
		"scheduleA.line5e":  "State and local taxes (capped)",
		"scheduleA.line8e":  "Home mortgage interest",
		"scheduleA.line11":  "Charitable contributions",
		"scheduleA.line17":  "Total itemized deductions",
		"scheduleB.line2":   "Total interest",
		"scheduleB.line4":   "Taxable interest to Form 1040",
		"scheduleB.line6":   "Total ordinary dividends",
		"scheduleC.line1":   "Gross receipts",
		"scheduleC.line28":  "Total expenses",
		"scheduleC.line31":  "Net profit or (loss)",
		"scheduleD.line7":   "Net short-term gain or (loss)",
		"scheduleD.line15":  "Net long-term gain or (loss)",
		"scheduleD.line16":  "Total capital gain or (loss)",
		"scheduleD.line21":  "Allowed capital loss",
		"standardDeduction": "Standard deduction",
	}
}

// Lookup returns the display label for a value: the table entry for
// its node id if present, else the inline label, else the id itself.
func (l Labels) Lookup(nodeID, inline string) string {
	if label, ok := l[nodeID]; ok {
		return label
	}
	if inline != "" {
		return inline
	}
	return nodeID
}
