package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/taxtrace-ai/taxtrace-go/internal/config"
	"github.com/taxtrace-ai/taxtrace-go/internal/output"
)

var initForce bool

// sampleReturn is the starter return document written by init.
const sampleReturn = `# taxtrace return document. All amounts are in cents.
year: 2024
filing_status: single

w2s:
  - id: main-job
    employer: Example Employer
    box1: 6500000   # wages
    box2: 700000    # federal income tax withheld

# Uncomment to add interest income:
# form1099_ints:
#   - id: savings
#     payer: Example Bank
#     box1: 12500
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a taxtrace workspace",
	Long: `Initialize a taxtrace workspace in the current directory.

Creates a starter structure:
  .taxtrace/
  └── config.yaml         # Configuration
  return.yaml             # Sample return document

Edit return.yaml with real W-2 and 1099 amounts (in cents), then run
'taxtrace compute'.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing files")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if noColor {
		output.DisableColor()
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	configDir := filepath.Join(cwd, ".taxtrace")
	configPath := filepath.Join(configDir, "config.yaml")
	returnPath := filepath.Join(cwd, "return.yaml")

	if !initForce {
		for _, path := range []string{configPath, returnPath} {
			if _, err := os.Stat(path); err == nil {
				cmd.Printf("%s %s already exists\n", output.Color("Warning:", output.Yellow), path)
				cmd.Printf("%s\n", output.Color("Use --force to overwrite", output.Dim))
				return NewExitError(1, "")
			}
		}
	}

	if err := config.DefaultConfig().Save(configPath); err != nil {
		return err
	}
	cmd.Printf("  %s %s\n", output.Color("created", output.Green), configPath)

	if err := os.WriteFile(returnPath, []byte(sampleReturn), 0644); err != nil {
		return fmt.Errorf("failed to write sample return: %w", err)
	}
	cmd.Printf("  %s %s\n", output.Color("created", output.Green), returnPath)

	cmd.Println("\nEdit return.yaml, then run 'taxtrace compute'.")
	return nil
}
