package cmd

import (
	"github.com/spf13/cobra"

	"github.com/taxtrace-ai/taxtrace-go/internal/compute"
	"github.com/taxtrace-ai/taxtrace-go/internal/output"
	"github.com/taxtrace-ai/taxtrace-go/internal/render"
)

var computeAllLines bool

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute the return and show key form lines",
	Long: `Run the full computation over the tax return and display the key
Form 1040 lines plus the optional schedules that executed.

With --all, every computed node is listed in computation order instead
of the summary view.`,
	RunE: runCompute,
}

func init() {
	computeCmd.Flags().BoolVarP(&computeAllLines, "all", "a", false, "list every computed node")

	rootCmd.AddCommand(computeCmd)
}

// summaryLines are the Form 1040 lines shown by the default view, in
// form order.
var summaryLines = []string{
	"form1040.line1a",
	"form1040.line2b",
	"form1040.line3b",
	"form1040.line7",
	"form1040.line8",
	"form1040.line9",
	"form1040.line11",
	"form1040.line12",
	"form1040.line15",
	"form1040.line16",
	"form1040.line24",
	"form1040.line25a",
	"form1040.line34",
	"form1040.line37",
}

func runCompute(cmd *cobra.Command, args []string) error {
	if noColor {
		output.DisableColor()
	}

	ret, err := loadReturn()
	if err != nil {
		return err
	}

	res, err := compute.ComputeAll(ret)
	if err != nil {
		return err
	}

	labels := effectiveLabels()
	table := output.NewTable("Line", "Label", "Amount")

	if computeAllLines {
		for _, v := range res.Values.All() {
			table.AddRow(v.NodeID,
				output.Truncate(labels.Lookup(v.NodeID, v.Label), 40),
				output.Color(render.FormatCents(v.Amount), output.AmountColor(v.Amount)))
		}
	} else {
		for _, id := range summaryLines {
			v := res.Values.Get(id)
			if v == nil {
				continue
			}
			table.AddRow(id,
				labels.Lookup(id, v.Label),
				output.Color(render.FormatCents(v.Amount), output.AmountColor(v.Amount)))
		}
	}

	cmd.Print(table.Render())

	cmd.Println()
	if tags := res.ExecutedTags(); len(tags) > 0 {
		cmd.Print("Executed schedules:")
		for _, tag := range tags {
			cmd.Printf(" %s", tag)
		}
		cmd.Println()
	} else {
		cmd.Println("No optional schedules executed.")
	}

	return nil
}

// effectiveLabels merges config label overrides over the default table.
func effectiveLabels() render.Labels {
	labels := render.DefaultLabels()
	cfg, _, err := loadConfig()
	if err != nil {
		return labels
	}
	for id, label := range cfg.Taxtrace.Labels {
		labels[id] = label
	}
	return labels
}
