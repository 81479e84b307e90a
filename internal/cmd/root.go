// Package cmd provides the CLI commands for taxtrace.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taxtrace-ai/taxtrace-go/internal/config"
	"github.com/taxtrace-ai/taxtrace-go/internal/docs"
)

var (
	// Version is set at build time via ldflags.
	Version = "dev"
	// Commit is set at build time via ldflags.
	Commit = "none"
	// Date is set at build time via ldflags.
	Date = "unknown"
)

var (
	cfgFile    string
	returnFile string
	noColor    bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "taxtrace",
	Short: "Traced tax-return computation toolkit",
	Long: `taxtrace computes a tax return as a traced dependency graph.

Every computed line carries the source-document boxes and upstream
lines it was derived from, so any number on the return can be explained
down to the W-2 or 1099 box it came from.

Commands cover computing a return, explaining a single line, printing
the validated computation order, and exporting computed values.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .taxtrace/config.yaml or taxtrace.yaml)")
	rootCmd.PersistentFlags().StringVar(&returnFile, "return", "", "tax-return YAML file (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the effective configuration, honoring --config.
func loadConfig() (*config.Config, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get working directory: %w", err)
	}

	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return nil, "", err
		}
		return cfg, cwd, nil
	}

	cfg, err := config.LoadFromDir(cwd)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, cwd, nil
}

// loadReturn loads the tax return named by --return or the config.
func loadReturn() (*docs.Return, error) {
	cfg, cwd, err := loadConfig()
	if err != nil {
		return nil, err
	}

	path := returnFile
	if path == "" {
		path = cfg.ReturnPath(cwd)
	}

	return docs.LoadReturn(path)
}
