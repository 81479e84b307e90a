package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taxtrace-ai/taxtrace-go/internal/compute"
	"github.com/taxtrace-ai/taxtrace-go/internal/graph"
	"github.com/taxtrace-ai/taxtrace-go/internal/render"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export computed values as CSV",
	Long: `Export every computed node as CSV, one row per node in topological
order so downstream consumers can replay the computation in a valid
order.

Columns: node_id, label, amount_cents, amount, inputs (semicolon
separated). Writes to stdout unless -o is given.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "write CSV to file instead of stdout")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ret, err := loadReturn()
	if err != nil {
		return err
	}

	res, err := compute.ComputeAll(ret)
	if err != nil {
		return err
	}

	order, err := graph.NewGraph(res.Values).TopologicalSort()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if exportOut != "" {
		file, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer file.Close()
		out = file
	}

	labels := effectiveLabels()
	w := csv.NewWriter(out)
	if err := w.Write([]string{"node_id", "label", "amount_cents", "amount", "inputs"}); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for _, id := range order {
		v := res.Values.Get(id)
		if v == nil {
			continue
		}
		record := []string{
			v.NodeID,
			labels.Lookup(v.NodeID, v.Label),
			strconv.FormatInt(v.Amount, 10),
			render.FormatCents(v.Amount),
			strings.Join(v.Inputs, ";"),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}
	return nil
}
