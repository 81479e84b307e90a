package cmd

import (
	"github.com/spf13/cobra"

	"github.com/taxtrace-ai/taxtrace-go/internal/compute"
	"github.com/taxtrace-ai/taxtrace-go/internal/docs"
	"github.com/taxtrace-ai/taxtrace-go/internal/render"
)

var explainCmd = &cobra.Command{
	Use:   "explain <node-id>",
	Short: "Explain how a computed line was derived",
	Long: `Print the full derivation chain behind one computed line.

Each line of output is one traced value; indentation shows which
values fed which, down to the literal source-document boxes:

  taxtrace explain form1040.line9
  taxtrace explain scheduleD.line16

Unresolvable references render with an "Unknown" label rather than
failing, so partial returns still explain.`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	ret, err := loadReturn()
	if err != nil {
		return err
	}

	res, err := compute.ComputeAll(ret)
	if err != nil {
		return err
	}

	nodeID := args[0]
	if !res.Values.Exists(nodeID) {
		return NewExitError(1, "no computed value for node "+nodeID)
	}

	explainer := render.NewExplainer(effectiveLabels())
	cmd.Print(explainer.Explain(res.Values, docs.NewResolver(ret), nodeID))
	return nil
}
