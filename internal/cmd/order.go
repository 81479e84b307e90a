package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/taxtrace-ai/taxtrace-go/internal/compute"
	"github.com/taxtrace-ai/taxtrace-go/internal/graph"
	"github.com/taxtrace-ai/taxtrace-go/internal/render"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Print the validated computation order",
	Long: `Compute the return and print every node id in topological order:
each node's inputs appear strictly before the node itself.

Exit codes:
  0  Order is valid
  1  Dependency cycle detected`,
	RunE: runOrder,
}

func init() {
	rootCmd.AddCommand(orderCmd)
}

func runOrder(cmd *cobra.Command, args []string) error {
	ret, err := loadReturn()
	if err != nil {
		return err
	}

	res, err := compute.ComputeAll(ret)
	if err != nil {
		var cycleErr *graph.CycleError
		if errors.As(err, &cycleErr) {
			cmd.PrintErrln(cycleErr.Error())
			return NewExitError(1, "")
		}
		return err
	}

	order, err := graph.NewGraph(res.Values).TopologicalSort()
	if err != nil {
		return err
	}

	for _, id := range order {
		if v := res.Values.Get(id); v != nil {
			cmd.Printf("%s  %s\n", id, render.FormatCents(v.Amount))
		}
	}
	cmd.Printf("%d nodes\n", len(order))
	return nil
}
