package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taxtrace-ai/taxtrace-go/internal/compute"
	"github.com/taxtrace-ai/taxtrace-go/internal/graph"
	"github.com/taxtrace-ai/taxtrace-go/internal/output"
)

var cyclesJSON bool

var cyclesCmd = &cobra.Command{
	Use:   "cycles",
	Short: "Detect dependency cycles in the computation graph",
	Long: `Detect and display dependency cycles among computed values.

A cycle always indicates a defective rule module: computed amounts are
fixed by the time the graph exists, so no line can legitimately depend
on itself. Uses Tarjan's Strongly Connected Components algorithm.

Exit codes:
  0  No cycles found
  1  Cycles found`,
	RunE: runCycles,
}

func init() {
	cyclesCmd.Flags().BoolVar(&cyclesJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(cyclesCmd)
}

func runCycles(cmd *cobra.Command, args []string) error {
	if noColor {
		output.DisableColor()
	}

	ret, err := loadReturn()
	if err != nil {
		return err
	}

	// Skip the validating entry point: this command exists to inspect
	// stores that would fail it.
	res, err := compute.ComputeUnchecked(ret)
	if err != nil {
		return err
	}

	g := graph.NewGraph(res.Values)
	cycles := g.FindCycles()

	if cyclesJSON {
		return outputCyclesJSON(cmd, cycles)
	}
	return outputCyclesText(cmd, cycles, g)
}

type cycleResult struct {
	Found  bool       `json:"found"`
	Count  int        `json:"count"`
	Cycles [][]string `json:"cycles"`
}

func outputCyclesJSON(cmd *cobra.Command, cycles [][]string) error {
	result := cycleResult{
		Found:  len(cycles) > 0,
		Count:  len(cycles),
		Cycles: cycles,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize cycles: %w", err)
	}

	cmd.Println(string(data))

	if len(cycles) > 0 {
		return NewExitError(1, "")
	}
	return nil
}

func outputCyclesText(cmd *cobra.Command, cycles [][]string, g *graph.Graph) error {
	if len(cycles) == 0 {
		cmd.Println(output.Color("No dependency cycles found.", output.Green))
		return nil
	}

	cmd.Println(output.Color(fmt.Sprintf("%d dependency cycle(s) found:", len(cycles)), output.BoldRed))
	for i, cycle := range cycles {
		path := g.FindCyclePath(cycle)
		cmd.Printf("  %d. %s\n", i+1, strings.Join(path, " -> "))
	}
	return NewExitError(1, "")
}
