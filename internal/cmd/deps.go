package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taxtrace-ai/taxtrace-go/internal/compute"
	"github.com/taxtrace-ai/taxtrace-go/internal/graph"
	"github.com/taxtrace-ai/taxtrace-go/internal/output"
	"github.com/taxtrace-ai/taxtrace-go/internal/render"
)

var (
	depsReverse bool
	depsAll     bool
)

var depsCmd = &cobra.Command{
	Use:   "deps [node-id]",
	Short: "Show dependencies between computed values",
	Long: `Display dependency information for computed values.

Without arguments, shows an overview of the dependency graph.
With a node id, shows the stored values that node derives from.
Document leaves (W-2 and 1099 boxes) are resolved outside the store
and do not appear here; use 'taxtrace explain' to see them.

Flags:
  --reverse   Show dependents instead of inputs
  --all       Show transitive dependencies (not just direct)`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDeps,
}

func init() {
	depsCmd.Flags().BoolVarP(&depsReverse, "reverse", "r", false, "show dependents instead of inputs")
	depsCmd.Flags().BoolVarP(&depsAll, "all", "a", false, "show transitive dependencies")

	rootCmd.AddCommand(depsCmd)
}

func runDeps(cmd *cobra.Command, args []string) error {
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

	g := graph.NewGraph(res.Values)

	if len(args) > 0 {
		return showNodeDeps(cmd, args[0], res, g)
	}
	return showDepsOverview(cmd, res, g)
}

func showNodeDeps(cmd *cobra.Command, nodeID string, res *compute.Result, g *graph.Graph) error {
	v := res.Values.Get(nodeID)
	if v == nil {
		return fmt.Errorf("no computed value for node %s", nodeID)
	}

	labels := effectiveLabels()
	width := 80
	cmd.Println(output.Header(fmt.Sprintf("Dependencies: %s", nodeID), width))
	cmd.Println()
	cmd.Printf("%s: %s\n\n", labels.Lookup(v.NodeID, v.Label), render.FormatCents(v.Amount))

	var deps []string
	var label string

	if depsReverse {
		if depsAll {
			deps = g.TransitiveDependents(nodeID)
			label = "All Dependents (transitive)"
		} else {
			deps = g.Dependents(nodeID)
			label = "Direct Dependents"
		}
	} else {
		if depsAll {
			deps = g.TransitiveInputs(nodeID)
			label = "All Inputs (transitive)"
		} else {
			deps = g.Inputs(nodeID)
			label = "Direct Inputs"
		}
	}

	cmd.Printf("%s:\n", label)
	if len(deps) == 0 {
		cmd.Println("  (none)")
		return nil
	}
	for _, id := range deps {
		dv := res.Values.Get(id)
		if dv == nil {
			continue
		}
		amount := render.FormatCents(dv.Amount)
		cmd.Printf("  %s  %s  [%s]\n",
			output.PadRight(output.Truncate(labels.Lookup(dv.NodeID, dv.Label), 40), 40),
			output.Color(output.PadLeft(amount, 14), output.AmountColor(dv.Amount)),
			id)
	}
	return nil
}

func showDepsOverview(cmd *cobra.Command, res *compute.Result, g *graph.Graph) error {
	width := 80
	cmd.Println(output.Header("Dependency Graph", width))
	cmd.Println()
	cmd.Printf("Nodes: %d\n", g.NodeCount())
	cmd.Printf("Edges: %d\n\n", g.EdgeCount())

	roots := g.Roots()
	cmd.Printf("Roots (no stored inputs): %d\n", len(roots))
	for _, id := range roots {
		cmd.Printf("  %s\n", id)
	}
	cmd.Println()

	leaves := g.Leaves()
	cmd.Printf("Terminal values (nothing derives from them): %d\n", len(leaves))
	for _, id := range leaves {
		cmd.Printf("  %s\n", id)
	}
	return nil
}
